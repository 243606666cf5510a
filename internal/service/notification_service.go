package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/grooming-service/internal/events"
	"github.com/spec-kit/grooming-service/internal/mailer"
)

// NotificationService reacts to domain events: it logs the appointment
// lifecycle and delivers reminder mail fire-and-forget.
type NotificationService struct {
	dispatcher events.Dispatcher
	mail       mailer.Sender
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, mail mailer.Sender, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		mail:       mail,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventAppointmentCreated, n.handleLifecycleEvent)
	n.dispatcher.Subscribe(events.EventAppointmentRescheduled, n.handleLifecycleEvent)
	n.dispatcher.Subscribe(events.EventAppointmentCompleted, n.handleLifecycleEvent)
	n.dispatcher.Subscribe(events.EventAppointmentDeleted, n.handleLifecycleEvent)
	n.dispatcher.Subscribe(events.EventServiceExpired, n.handleLifecycleEvent)
	n.dispatcher.Subscribe(events.EventUserDeleted, n.handleLifecycleEvent)
	n.dispatcher.Subscribe(events.EventReminderDue, n.handleReminderDue)
}

func (n *NotificationService) handleLifecycleEvent(_ context.Context, event events.Event) error {
	n.logger.Info("domain event",
		zap.String("type", string(event.Type)),
		zap.String("actor_id", event.ActorID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleReminderDue(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ReminderDuePayload)
	if !ok {
		n.logger.Warn("reminder event with unexpected payload", zap.Any("payload", event.Payload))
		return nil
	}
	n.logger.Info("sending appointment reminder",
		zap.String("appointment_id", payload.AppointmentID),
		zap.String("user_id", payload.UserID))

	if n.mail == nil {
		return nil
	}
	body := "Reminder: your grooming appointment is tomorrow, " + payload.Date + " at " + payload.Time + "."
	if err := n.mail.Send(payload.Email, "Appointment Reminder", body); err != nil {
		n.logger.Warn("reminder mail failed",
			zap.String("appointment_id", payload.AppointmentID),
			zap.Error(err))
	}
	return nil
}
