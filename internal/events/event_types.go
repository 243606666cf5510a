package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAppointmentCreated     EventType = "appointment_created"
	EventAppointmentRescheduled EventType = "appointment_rescheduled"
	EventAppointmentCompleted   EventType = "appointment_completed"
	EventAppointmentDeleted     EventType = "appointment_deleted"
	EventServiceExpired         EventType = "service_expired"
	EventUserDeleted            EventType = "user_deleted"
	EventReminderDue            EventType = "reminder_due"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AppointmentCreatedPayload payload.
type AppointmentCreatedPayload struct {
	AppointmentID string `json:"appointment_id"`
	UserID        string `json:"user_id"`
	DogID         string `json:"dog_id"`
	ServiceID     string `json:"service_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

// AppointmentRescheduledPayload payload.
type AppointmentRescheduledPayload struct {
	AppointmentID string `json:"appointment_id"`
	OldDate       string `json:"old_date"`
	OldTime       string `json:"old_time"`
	NewDate       string `json:"new_date"`
	NewTime       string `json:"new_time"`
}

// AppointmentCompletedPayload payload.
type AppointmentCompletedPayload struct {
	AppointmentID string `json:"appointment_id"`
	UserID        string `json:"user_id"`
}

// AppointmentDeletedPayload payload.
type AppointmentDeletedPayload struct {
	AppointmentID string `json:"appointment_id"`
	UserID        string `json:"user_id"`
}

// ServiceExpiredPayload payload.
type ServiceExpiredPayload struct {
	ServiceID string `json:"service_id"`
	Name      string `json:"name"`
}

// UserDeletedPayload payload.
type UserDeletedPayload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// ReminderDuePayload payload.
type ReminderDuePayload struct {
	AppointmentID string `json:"appointment_id"`
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}
