package domain

// Service is a bookable grooming offering. Expired services no longer appear
// in booking choice lists but stay referenced by historical appointments.
type Service struct {
	ID      string
	Name    string
	Price   float64
	Expired bool
}
