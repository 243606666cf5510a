package handlers

import (
	"net/http"
	"net/mail"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/grooming-service/internal/api/dto"
	"github.com/spec-kit/grooming-service/internal/auth"
	"github.com/spec-kit/grooming-service/internal/service"
)

// AuthHandler exposes registration, login and password reset endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username, email, password required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid email address")
	}
	if req.Password != req.Password2 {
		return fiber.NewError(http.StatusBadRequest, "passwords do not match")
	}

	user, err := h.auth.Register(c.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data":   dto.FromUser(*user),
		"notice": "Congratulations, you are now a registered user!",
	})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	user, token, exp, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.FromUser(*user),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
		"next": "/user/" + user.Username,
	})
}

// Logout handles POST /logout; tokens are stateless so this is a no-op.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	var id string
	if principal != nil && principal.User != nil {
		id = principal.User.ID
	}
	_ = h.auth.Logout(c.Context(), id)
	return c.JSON(fiber.Map{"notice": "Logged out."})
}

// ResetPasswordRequest handles POST /reset_password_request. The response is
// identical whether or not the address is known.
func (h *AuthHandler) ResetPasswordRequest(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequestPayload
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "email required")
	}

	if err := h.auth.RequestPasswordReset(c.Context(), req.Email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"notice": "Check your email for the instructions to reset your password"})
}

// ResetPassword handles POST /reset_password/:token. Invalid or expired
// tokens redirect home without detail.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordPayload
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Password == "" || req.Password != req.Password2 {
		return fiber.NewError(http.StatusBadRequest, "passwords do not match")
	}

	if err := h.auth.ConfirmPasswordReset(c.Context(), c.Params("token"), req.Password); err != nil {
		return c.Redirect("/index", fiber.StatusSeeOther)
	}
	return c.JSON(fiber.Map{"notice": "Your password has been reset."})
}

// EditProfile handles GET and POST /edit_profile.
func (h *AuthHandler) EditProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	if c.Method() == fiber.MethodGet {
		return c.JSON(fiber.Map{"data": dto.FromUser(*principal.User)})
	}

	var req dto.EditProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" {
		return fiber.NewError(http.StatusBadRequest, "username required")
	}

	user, err := h.auth.UpdateProfile(c.Context(), principal.User.ID, req.Username, req.Address)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data":   dto.FromUser(*user),
		"notice": "Your changes have been saved.",
	})
}
