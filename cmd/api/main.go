package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/grooming-service/internal/api/http"
	"github.com/spec-kit/grooming-service/internal/api/http/handlers"
	"github.com/spec-kit/grooming-service/internal/auth"
	"github.com/spec-kit/grooming-service/internal/config"
	"github.com/spec-kit/grooming-service/internal/events"
	"github.com/spec-kit/grooming-service/internal/mailer"
	"github.com/spec-kit/grooming-service/internal/observability"
	"github.com/spec-kit/grooming-service/internal/persistence"
	"github.com/spec-kit/grooming-service/internal/repository"
	"github.com/spec-kit/grooming-service/internal/service"
	"github.com/spec-kit/grooming-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	dogRepo := repository.NewDogRepository(pool)
	serviceRepo := repository.NewServiceRepository(pool)
	appointmentRepo := repository.NewAppointmentRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	mail := mailer.NewSMTPSender(cfg.Mail)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo: userRepo,
		Mail:     mail,
		Logger:   logger,
	})
	appointmentService := service.NewAppointmentService(service.AppointmentDependencies{
		AppointmentRepo: appointmentRepo,
		DogRepo:         dogRepo,
		ServiceRepo:     serviceRepo,
		Dispatcher:      dispatcher,
	})
	dogService := service.NewDogService(dogRepo)
	catalogService := service.NewCatalogService(serviceRepo, dispatcher)
	rosterService := service.NewRosterService(userRepo, appointmentRepo, dispatcher)

	notifications := service.NewNotificationService(dispatcher, mail, logger)
	notifications.RegisterHandlers()

	if cfg.Reminder.Enabled {
		reminderWorker := worker.NewReminderWorker(appointmentRepo, userRepo, dispatcher, logger, cfg.Reminder.Interval())
		go reminderWorker.Run(ctx)
	}

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	loginLimiter := auth.NewLoginLimiter(redis.Client, logger, cfg.Auth.LoginRateLimit,
		time.Duration(cfg.Auth.LoginRateWindowSeconds)*time.Second)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	pageSize := cfg.App.PageSize
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Appointments:   handlers.NewAppointmentsHandler(appointmentService, rosterService, pageSize),
		Dogs:           handlers.NewDogsHandler(dogService, pageSize),
		Services:       handlers.NewServicesHandler(catalogService, pageSize),
		Users:          handlers.NewUsersHandler(rosterService, pageSize),
		AuthMiddleware: authMiddleware,
		LoginLimiter:   loginLimiter,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
