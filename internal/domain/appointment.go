package domain

import "time"

// Appointment is the central aggregate. Address is copied from the applicant's
// profile at booking time and never re-derived. Time holds the canonical slot
// start string ("HH:MM:SS " with a trailing space).
type Appointment struct {
	ID         string
	UserID     string
	DogID      string
	ServiceID  string
	Address    string
	Date       time.Time
	Time       string
	Comment    string
	Complete   bool
	CreateTime time.Time
}
