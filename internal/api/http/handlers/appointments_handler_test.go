package handlers

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/grooming-service/internal/auth"
	"github.com/spec-kit/grooming-service/internal/domain"
)

// stubUserRepo backs handler tests that only need principal loading.
type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, user := range users {
		r.users[user.ID] = user
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *stubUserRepo) List(_ context.Context, _, _ int) ([]domain.User, int, error) {
	return nil, 0, nil
}

func (r *stubUserRepo) SetAdministrator(_ context.Context, id string, administrator bool) error {
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Administrator = administrator
	return nil
}

func (r *stubUserRepo) TouchLastSeen(context.Context, string) error { return nil }

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func bearerFor(t *testing.T, tm *auth.TokenManager, user *domain.User) string {
	t.Helper()
	token, _, err := tm.GenerateToken(user.ID, user.Administrator)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return "Bearer " + token
}

func TestAdminRouteRedirectsNonAdministrator(t *testing.T) {
	customer := &domain.User{ID: "user-1", Username: "alice"}
	tm := auth.NewTokenManager("test-secret", 15, 600)
	middleware := auth.NewAuthMiddleware(tm, newStubUserRepo(customer))

	app := fiber.New()
	app.Get("/servicelist", middleware.Handle, auth.RequireAdministrator(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(fiber.MethodGet, "/servicelist", nil)
	req.Header.Set("Authorization", bearerFor(t, tm, customer))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusSeeOther)
	}
	if loc := resp.Header.Get("Location"); loc != "/user/alice?notice=Permission+Denied" {
		t.Errorf("location = %q, want denial redirect to the personal list", loc)
	}
}

func TestAdminRoutePassesAdministrator(t *testing.T) {
	admin := &domain.User{ID: "user-2", Username: "boss", Administrator: true}
	tm := auth.NewTokenManager("test-secret", 15, 600)
	middleware := auth.NewAuthMiddleware(tm, newStubUserRepo(admin))

	app := fiber.New()
	app.Get("/servicelist", middleware.Handle, auth.RequireAdministrator(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(fiber.MethodGet, "/servicelist", nil)
	req.Header.Set("Authorization", bearerFor(t, tm, admin))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
}

func TestIndexRedirectsAdministratorToQueue(t *testing.T) {
	admin := &domain.User{ID: "user-2", Username: "boss", Administrator: true}
	tm := auth.NewTokenManager("test-secret", 15, 600)
	middleware := auth.NewAuthMiddleware(tm, newStubUserRepo(admin))

	// The handler redirects administrators before touching any service.
	handler := NewAppointmentsHandler(nil, nil, 10)

	app := fiber.New()
	app.Get("/index", middleware.Handle, auth.RequireAuthenticated(), handler.Index)

	req := httptest.NewRequest(fiber.MethodGet, "/index", nil)
	req.Header.Set("Authorization", bearerFor(t, tm, admin))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusSeeOther)
	}
	if loc := resp.Header.Get("Location"); loc != "/administrator/boss" {
		t.Errorf("location = %q, want the administrator queue", loc)
	}
}
