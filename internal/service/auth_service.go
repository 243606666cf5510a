package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/grooming-service/internal/auth"
	"github.com/spec-kit/grooming-service/internal/config"
	"github.com/spec-kit/grooming-service/internal/domain"
	"github.com/spec-kit/grooming-service/internal/mailer"
	"github.com/spec-kit/grooming-service/internal/repository"
	apperrors "github.com/spec-kit/grooming-service/pkg/util"
)

// AuthService coordinates registration, login, profile and password flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	mail       mailer.Sender
	logger     *zap.Logger
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
	Mail     mailer.Sender
	Logger   *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes, cfg.Auth.PasswordResetTTLSeconds),
		mail:       deps.Mail,
		logger:     deps.Logger,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new user account. Username and email must be unused.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, apperrors.NewValidationError("please use a different username", map[string]any{"field": "username"})
	} else if err != pgx.ErrNoRows {
		return nil, err
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewValidationError("please use a different email address", map[string]any{"field": "email"})
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates by username and returns a bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid username or password")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid username or password")
	}
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Administrator)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Logout is a no-op for the stateless JWT approach.
func (s *AuthService) Logout(_ context.Context, _ string) error {
	return nil
}

// RequestPasswordReset mails a signed reset token to the address when it
// belongs to a known user. Unknown addresses are not reported to the caller.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil
		}
		return err
	}

	token, err := s.tokenMgr.GenerateResetToken(user.ID)
	if err != nil {
		return err
	}
	if s.mail != nil {
		body := "To reset your password visit /reset_password/" + token
		if err := s.mail.Send(user.Email, "Reset Your Password", body); err != nil {
			s.logger.Warn("password reset mail failed", zap.Error(err))
		}
	}
	return nil
}

// ConfirmPasswordReset verifies the signed token and stores the new hash.
// Token failures are reported uniformly as unauthorized.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, tokenStr, newPassword string) error {
	userID, err := s.tokenMgr.VerifyResetToken(tokenStr)
	if err != nil {
		return apperrors.NewUnauthorized("invalid or expired reset token")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewUnauthorized("invalid or expired reset token")
		}
		return err
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// UpdateProfile changes username and address, rejecting username collisions
// with other accounts.
func (s *AuthService) UpdateProfile(ctx context.Context, userID, username, address string) (*domain.User, error) {
	if len(address) > 140 {
		return nil, apperrors.NewValidationError("address must be at most 140 characters", map[string]any{"field": "address"})
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}

	if username != user.Username {
		if _, err := s.users.GetByUsername(ctx, username); err == nil {
			return nil, apperrors.NewValidationError("please use a different username", map[string]any{"field": "username"})
		} else if err != pgx.ErrNoRows {
			return nil, err
		}
	}

	user.Username = username
	user.Address = address
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
