package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/grooming-service/internal/domain"
	"github.com/spec-kit/grooming-service/internal/events"
	"github.com/spec-kit/grooming-service/internal/repository"
	"github.com/spec-kit/grooming-service/internal/schedule"
	apperrors "github.com/spec-kit/grooming-service/pkg/util"
)

const commentMaxLen = 140

// AppointmentService coordinates the appointment lifecycle.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	dogs         repository.DogRepository
	services     repository.ServiceRepository
	dispatcher   events.Dispatcher
	now          func() time.Time
}

// AppointmentDependencies bundles repositories for the appointment service.
type AppointmentDependencies struct {
	AppointmentRepo repository.AppointmentRepository
	DogRepo         repository.DogRepository
	ServiceRepo     repository.ServiceRepository
	Dispatcher      events.Dispatcher
	Now             func() time.Time
}

// AppointmentCreateInput describes the booking payload.
type AppointmentCreateInput struct {
	Date      string
	SlotIndex int
	DogID     string
	ServiceID string
	Comment   string
}

// BookingChoices are the pre-filtered options offered on the booking form.
type BookingChoices struct {
	Dates    []schedule.DateChoice
	Slots    []schedule.Slot
	Dogs     []domain.Dog
	Services []domain.Service
}

// NewAppointmentService constructs the service.
func NewAppointmentService(deps AppointmentDependencies) *AppointmentService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &AppointmentService{
		appointments: deps.AppointmentRepo,
		dogs:         deps.DogRepo,
		services:     deps.ServiceRepo,
		dispatcher:   deps.Dispatcher,
		now:          now,
	}
}

// Choices returns the selectable dates, slots, dogs and services for a user's
// booking form. Dogs are limited to the caller's own, services to unexpired.
func (s *AppointmentService) Choices(ctx context.Context, userID string) (*BookingChoices, error) {
	dogs, err := s.dogs.ListAllByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	services, err := s.services.ListAllActive(ctx)
	if err != nil {
		return nil, err
	}
	return &BookingChoices{
		Dates:    schedule.DateChoices(s.now()),
		Slots:    schedule.Slots[:],
		Dogs:     dogs,
		Services: services,
	}, nil
}

// Create books a new appointment for the user. Dog ownership and service
// availability are re-checked at commit, not just at choice-list time.
func (s *AppointmentService) Create(ctx context.Context, user *domain.User, input AppointmentCreateInput) (*domain.Appointment, error) {
	date, err := schedule.ParseDate(input.Date, s.now())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), map[string]any{"field": "date"})
	}
	slotTime, ok := schedule.SlotTime(input.SlotIndex)
	if !ok {
		return nil, apperrors.NewValidationError("invalid timeslot", map[string]any{"field": "time"})
	}
	if len(input.Comment) > commentMaxLen {
		return nil, apperrors.NewValidationError("comment must be at most 140 characters", map[string]any{"field": "comment"})
	}

	dog, err := s.dogs.GetByID(ctx, input.DogID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("dog", nil)
		}
		return nil, err
	}
	if dog.OwnerID != user.ID {
		return nil, apperrors.NewForbidden("dog does not belong to you")
	}

	svc, err := s.services.GetByID(ctx, input.ServiceID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("service", nil)
		}
		return nil, err
	}
	if svc.Expired {
		return nil, apperrors.NewValidationError("service is no longer offered", map[string]any{"field": "service"})
	}

	appointment := &domain.Appointment{
		UserID:    user.ID,
		DogID:     dog.ID,
		ServiceID: svc.ID,
		Address:   user.Address,
		Date:      date,
		Time:      slotTime,
		Comment:   input.Comment,
		Complete:  false,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventAppointmentCreated,
		ActorID: user.ID,
		Payload: events.AppointmentCreatedPayload{
			AppointmentID: appointment.ID,
			UserID:        user.ID,
			DogID:         dog.ID,
			ServiceID:     svc.ID,
			Date:          appointment.Date.Format(schedule.DateLayout),
			Time:          appointment.Time,
		},
	})
	return appointment, nil
}

// RescheduleChoices returns the date window anchored at the appointment's
// current date, plus the slot table. Scoped to the owner or an administrator,
// same as the mutation itself.
func (s *AppointmentService) RescheduleChoices(ctx context.Context, caller *domain.User, appointmentID string) (*domain.Appointment, []schedule.DateChoice, []schedule.Slot, error) {
	appointment, err := s.get(ctx, appointmentID)
	if err != nil {
		return nil, nil, nil, err
	}
	if appointment.UserID != caller.ID && !caller.Administrator {
		return nil, nil, nil, apperrors.NewForbidden("not your appointment")
	}
	return appointment, schedule.DateChoices(appointment.Date), schedule.Slots[:], nil
}

// Reschedule moves an appointment to a new date and slot. Only the owner or
// an administrator may do so; every other field is left untouched.
func (s *AppointmentService) Reschedule(ctx context.Context, caller *domain.User, appointmentID, newDate string, slotIndex int) (*domain.Appointment, error) {
	appointment, err := s.get(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.UserID != caller.ID && !caller.Administrator {
		return nil, apperrors.NewForbidden("not your appointment")
	}

	// The window is computed from the appointment's current date, not today.
	date, err := schedule.ParseDate(newDate, appointment.Date)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), map[string]any{"field": "date"})
	}
	slotTime, ok := schedule.SlotTime(slotIndex)
	if !ok {
		return nil, apperrors.NewValidationError("invalid timeslot", map[string]any{"field": "time"})
	}

	oldDate, oldTime := appointment.Date, appointment.Time
	if err := s.appointments.Reschedule(ctx, appointment.ID, date, slotTime); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("appointment", nil)
		}
		return nil, err
	}
	appointment.Date = date
	appointment.Time = slotTime

	s.publish(ctx, events.Event{
		Type:    events.EventAppointmentRescheduled,
		ActorID: caller.ID,
		Payload: events.AppointmentRescheduledPayload{
			AppointmentID: appointment.ID,
			OldDate:       oldDate.Format(schedule.DateLayout),
			OldTime:       oldTime,
			NewDate:       date.Format(schedule.DateLayout),
			NewTime:       slotTime,
		},
	})
	return appointment, nil
}

// Complete marks an appointment complete. One-directional; there is no
// operation that flips the flag back.
func (s *AppointmentService) Complete(ctx context.Context, actorID, appointmentID string) error {
	appointment, err := s.get(ctx, appointmentID)
	if err != nil {
		return err
	}
	if err := s.appointments.SetComplete(ctx, appointment.ID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("appointment", nil)
		}
		return err
	}
	s.publish(ctx, events.Event{
		Type:    events.EventAppointmentCompleted,
		ActorID: actorID,
		Payload: events.AppointmentCompletedPayload{
			AppointmentID: appointment.ID,
			UserID:        appointment.UserID,
		},
	})
	return nil
}

// Delete permanently removes an appointment.
func (s *AppointmentService) Delete(ctx context.Context, actorID, appointmentID string) error {
	appointment, err := s.get(ctx, appointmentID)
	if err != nil {
		return err
	}
	if err := s.appointments.Delete(ctx, appointment.ID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("appointment", nil)
		}
		return err
	}
	s.publish(ctx, events.Event{
		Type:    events.EventAppointmentDeleted,
		ActorID: actorID,
		Payload: events.AppointmentDeletedPayload{
			AppointmentID: appointment.ID,
			UserID:        appointment.UserID,
		},
	})
	return nil
}

// ListForUser returns the user's incomplete appointments, newest first.
func (s *AppointmentService) ListForUser(ctx context.Context, userID string, limit, offset int) ([]domain.Appointment, int, error) {
	return s.appointments.ListIncompleteByUser(ctx, userID, limit, offset)
}

// ListQueue returns the pending queue ordered by date then time ascending.
func (s *AppointmentService) ListQueue(ctx context.Context, limit, offset int) ([]domain.Appointment, int, error) {
	return s.appointments.ListIncomplete(ctx, limit, offset)
}

func (s *AppointmentService) get(ctx context.Context, id string) (*domain.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("appointment", nil)
		}
		return nil, err
	}
	return appointment, nil
}

func (s *AppointmentService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
