package dto

import "github.com/spec-kit/grooming-service/internal/domain"

// ServiceRequest payload for creating or editing a catalog entry.
type ServiceRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ServiceResponse is the wire form of a catalog entry.
type ServiceResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Expired bool    `json:"expired"`
}

// FromService maps the domain record.
func FromService(s domain.Service) ServiceResponse {
	return ServiceResponse{ID: s.ID, Name: s.Name, Price: s.Price, Expired: s.Expired}
}

// FromServices maps a slice.
func FromServices(items []domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromService(s))
	}
	return out
}
