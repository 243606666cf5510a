package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/grooming-service/internal/api/http/handlers"
	"github.com/spec-kit/grooming-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Appointments   *handlers.AppointmentsHandler
	Dogs           *handlers.DogsHandler
	Services       *handlers.ServicesHandler
	Users          *handlers.UsersHandler
	AuthMiddleware *auth.AuthMiddleware
	LoginLimiter   *auth.LoginLimiter
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/register", cfg.Auth.Register)
	app.Post("/login", cfg.LoginLimiter.Handle, cfg.Auth.Login)
	app.Post("/reset_password_request", cfg.Auth.ResetPasswordRequest)
	app.Post("/reset_password/:token", cfg.Auth.ResetPassword)

	protected := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	protected.Post("/logout", cfg.Auth.Logout)
	protected.Get("/edit_profile", cfg.Auth.EditProfile)
	protected.Post("/edit_profile", cfg.Auth.EditProfile)

	protected.Get("/index", cfg.Appointments.Index)
	protected.Post("/index", cfg.Appointments.Index)
	protected.Get("/user/:username", cfg.Appointments.UserList)
	protected.Get("/reschedule/:appointment_id", cfg.Appointments.Reschedule)
	protected.Post("/reschedule/:appointment_id", cfg.Appointments.Reschedule)

	protected.Get("/doglist", cfg.Dogs.List)
	protected.Post("/add_dog", cfg.Dogs.Add)
	protected.Get("/edit_dog/:name", cfg.Dogs.Edit)
	protected.Post("/edit_dog/:name", cfg.Dogs.Edit)

	admin := protected.Group("", auth.RequireAdministrator())
	admin.Get("/administrator/:username", cfg.Appointments.AdminQueue)
	admin.Get("/complete/:appointment_id", cfg.Appointments.Complete)
	admin.Get("/delete/:appointment_id", cfg.Appointments.Delete)

	admin.Get("/servicelist", cfg.Services.List)
	admin.Post("/add_service", cfg.Services.Add)
	admin.Get("/edit_service/:name", cfg.Services.Edit)
	admin.Post("/edit_service/:name", cfg.Services.Edit)
	admin.Get("/expire_service/:id", cfg.Services.Expire)

	admin.Get("/userlist", cfg.Users.List)
	admin.Post("/deleteuser/:id", cfg.Users.Delete)
	admin.Post("/set_permission/:id/:administrator", cfg.Users.SetPermission)
}
