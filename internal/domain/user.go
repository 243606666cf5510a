package domain

import "time"

// User is the domain model for customers and administrators alike; the
// Administrator flag decides which moderation operations are reachable.
type User struct {
	ID            string
	Username      string
	Email         string
	PasswordHash  string
	Address       string
	Administrator bool
	LastSeen      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
