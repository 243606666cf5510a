package dto

import (
	"time"

	"github.com/spec-kit/grooming-service/internal/domain"
	"github.com/spec-kit/grooming-service/internal/schedule"
)

// CreateAppointmentRequest payload for booking.
type CreateAppointmentRequest struct {
	Date    string `json:"date"`
	Time    int    `json:"time"`
	Dog     string `json:"dog"`
	Service string `json:"service"`
	Comment string `json:"comment"`
}

// RescheduleRequest payload for moving an appointment.
type RescheduleRequest struct {
	Date string `json:"date"`
	Time int    `json:"time"`
}

// AppointmentResponse is the wire form of an appointment.
type AppointmentResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	DogID      string    `json:"dog_id"`
	ServiceID  string    `json:"service_id"`
	Address    string    `json:"address"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Comment    string    `json:"comment"`
	Complete   bool      `json:"complete"`
	CreateTime time.Time `json:"create_time"`
}

// FromAppointment maps the domain record.
func FromAppointment(a domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		DogID:      a.DogID,
		ServiceID:  a.ServiceID,
		Address:    a.Address,
		Date:       a.Date.Format(schedule.DateLayout),
		Time:       a.Time,
		Comment:    a.Comment,
		Complete:   a.Complete,
		CreateTime: a.CreateTime,
	}
}

// FromAppointments maps a slice.
func FromAppointments(items []domain.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromAppointment(a))
	}
	return out
}

// SlotChoice is one selectable timeslot.
type SlotChoice struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

// BookingChoicesResponse lists the booking form options.
type BookingChoicesResponse struct {
	Dates    []string          `json:"dates"`
	Slots    []SlotChoice      `json:"slots"`
	Dogs     []DogResponse     `json:"dogs"`
	Services []ServiceResponse `json:"services"`
}
