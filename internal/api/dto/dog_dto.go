package dto

import "github.com/spec-kit/grooming-service/internal/domain"

// DogRequest payload for creating or editing a dog profile.
type DogRequest struct {
	Name    string  `json:"name"`
	Breed   string  `json:"breed"`
	Age     int     `json:"age"`
	Length  float64 `json:"length"`
	Gender  string  `json:"gender"`
	Comment string  `json:"comment"`
}

// DogResponse is the wire form of a dog.
type DogResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Breed   string  `json:"breed"`
	Age     int     `json:"age"`
	Length  float64 `json:"length"`
	Gender  string  `json:"gender"`
	Comment string  `json:"comment"`
}

// FromDog maps the domain record.
func FromDog(d domain.Dog) DogResponse {
	return DogResponse{
		ID:      d.ID,
		Name:    d.Name,
		Breed:   d.Breed,
		Age:     d.Age,
		Length:  d.Length,
		Gender:  string(d.Gender),
		Comment: d.Comment,
	}
}

// FromDogs maps a slice.
func FromDogs(items []domain.Dog) []DogResponse {
	out := make([]DogResponse, 0, len(items))
	for _, d := range items {
		out = append(out, FromDog(d))
	}
	return out
}
