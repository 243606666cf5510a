package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/grooming-service/internal/domain"
	"github.com/spec-kit/grooming-service/internal/repository"
	apperrors "github.com/spec-kit/grooming-service/pkg/util"
)

// DogService manages dog profiles. Dogs are never deleted.
type DogService struct {
	dogs repository.DogRepository
}

// NewDogService constructs the service.
func NewDogService(dogs repository.DogRepository) *DogService {
	return &DogService{dogs: dogs}
}

// DogInput carries profile fields for create and edit.
type DogInput struct {
	Name    string
	Breed   string
	Age     int
	Length  float64
	Gender  domain.Gender
	Comment string
}

func (in DogInput) validate() error {
	if in.Name == "" {
		return apperrors.NewValidationError("dog name is required", map[string]any{"field": "name"})
	}
	if in.Breed == "" {
		return apperrors.NewValidationError("dog breed is required", map[string]any{"field": "breed"})
	}
	if in.Age < 0 || in.Age > 30 {
		return apperrors.NewValidationError("age must be between 0 and 30", map[string]any{"field": "age"})
	}
	if in.Length < 0 || in.Length > 10 {
		return apperrors.NewValidationError("length must be between 0 and 10", map[string]any{"field": "length"})
	}
	if !domain.ValidGender(in.Gender) {
		return apperrors.NewValidationError("gender must be MALE or FEMALE", map[string]any{"field": "gender"})
	}
	if len(in.Comment) > commentMaxLen {
		return apperrors.NewValidationError("comment must be at most 140 characters", map[string]any{"field": "comment"})
	}
	return nil
}

// Add registers a dog under the owner's profile.
func (s *DogService) Add(ctx context.Context, ownerID string, input DogInput) (*domain.Dog, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	dog := &domain.Dog{
		OwnerID: ownerID,
		Name:    input.Name,
		Breed:   input.Breed,
		Age:     input.Age,
		Length:  input.Length,
		Gender:  input.Gender,
		Comment: input.Comment,
	}
	if err := s.dogs.Create(ctx, dog); err != nil {
		return nil, err
	}
	return dog, nil
}

// Edit updates the dog identified by its current name within the owner's list.
func (s *DogService) Edit(ctx context.Context, ownerID, name string, input DogInput) (*domain.Dog, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	dog, err := s.dogs.GetByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("dog", map[string]any{"name": name})
		}
		return nil, err
	}

	dog.Name = input.Name
	dog.Breed = input.Breed
	dog.Age = input.Age
	dog.Length = input.Length
	dog.Gender = input.Gender
	dog.Comment = input.Comment
	if err := s.dogs.Update(ctx, dog); err != nil {
		return nil, err
	}
	return dog, nil
}

// GetForEdit loads a dog by owner and name for form population.
func (s *DogService) GetForEdit(ctx context.Context, ownerID, name string) (*domain.Dog, error) {
	dog, err := s.dogs.GetByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("dog", map[string]any{"name": name})
		}
		return nil, err
	}
	return dog, nil
}

// List returns the owner's dogs, paginated.
func (s *DogService) List(ctx context.Context, ownerID string, limit, offset int) ([]domain.Dog, int, error) {
	return s.dogs.ListByOwner(ctx, ownerID, limit, offset)
}
