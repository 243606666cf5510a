package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/grooming-service/internal/domain"
	"github.com/spec-kit/grooming-service/internal/events"
	"github.com/spec-kit/grooming-service/internal/repository"
	apperrors "github.com/spec-kit/grooming-service/pkg/util"
)

// RosterService covers the administrator's user management operations.
type RosterService struct {
	users        repository.UserRepository
	appointments repository.AppointmentRepository
	dispatcher   events.Dispatcher
}

// NewRosterService constructs the service.
func NewRosterService(users repository.UserRepository, appointments repository.AppointmentRepository, dispatcher events.Dispatcher) *RosterService {
	return &RosterService{users: users, appointments: appointments, dispatcher: dispatcher}
}

// List returns all users ordered by id, paginated.
func (s *RosterService) List(ctx context.Context, limit, offset int) ([]domain.User, int, error) {
	return s.users.List(ctx, limit, offset)
}

// GetByUsername loads a user profile.
func (s *RosterService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", map[string]any{"username": username})
		}
		return nil, err
	}
	return user, nil
}

// Delete removes a user, cascading to their appointments first so no
// appointment row is left referencing a missing user.
func (s *RosterService) Delete(ctx context.Context, id string) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("user", nil)
		}
		return err
	}

	if err := s.appointments.DeleteByUser(ctx, user.ID); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, user.ID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("user", nil)
		}
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:   uuid.NewString(),
			Type: events.EventUserDeleted,
			Payload: events.UserDeletedPayload{
				UserID:   user.ID,
				Username: user.Username,
			},
		})
	}
	return nil
}

// SetPermission flips the administrator flag on a user.
func (s *RosterService) SetPermission(ctx context.Context, id string, administrator bool) error {
	if err := s.users.SetAdministrator(ctx, id, administrator); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("user", nil)
		}
		return err
	}
	return nil
}
