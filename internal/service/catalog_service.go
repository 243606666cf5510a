package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/grooming-service/internal/domain"
	"github.com/spec-kit/grooming-service/internal/events"
	"github.com/spec-kit/grooming-service/internal/repository"
	apperrors "github.com/spec-kit/grooming-service/pkg/util"
)

// CatalogService manages the bookable service catalog.
type CatalogService struct {
	services   repository.ServiceRepository
	dispatcher events.Dispatcher
}

// NewCatalogService constructs the service.
func NewCatalogService(services repository.ServiceRepository, dispatcher events.Dispatcher) *CatalogService {
	return &CatalogService{services: services, dispatcher: dispatcher}
}

// ServiceInput carries catalog fields for create and edit.
type ServiceInput struct {
	Name  string
	Price float64
}

func (in ServiceInput) validate() error {
	if in.Name == "" {
		return apperrors.NewValidationError("service name is required", map[string]any{"field": "name"})
	}
	if in.Price < 0 || in.Price > 1000 {
		return apperrors.NewValidationError("price must be between 0 and 1000", map[string]any{"field": "price"})
	}
	return nil
}

// Add puts a new offering online.
func (s *CatalogService) Add(ctx context.Context, input ServiceInput) (*domain.Service, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	service := &domain.Service{Name: input.Name, Price: input.Price}
	if err := s.services.Create(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// Edit updates the offering identified by its current name.
func (s *CatalogService) Edit(ctx context.Context, name string, input ServiceInput) (*domain.Service, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	service, err := s.services.GetByName(ctx, name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("service", map[string]any{"name": name})
		}
		return nil, err
	}

	service.Name = input.Name
	service.Price = input.Price
	if err := s.services.Update(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// GetForEdit loads an offering by name for form population.
func (s *CatalogService) GetForEdit(ctx context.Context, name string) (*domain.Service, error) {
	service, err := s.services.GetByName(ctx, name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("service", map[string]any{"name": name})
		}
		return nil, err
	}
	return service, nil
}

// Expire takes an offering offline by flipping its flag. The record is kept
// so existing appointments retain their reference.
func (s *CatalogService) Expire(ctx context.Context, id string) error {
	service, err := s.services.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("service", nil)
		}
		return err
	}
	if err := s.services.SetExpired(ctx, service.ID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("service", nil)
		}
		return err
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:   uuid.NewString(),
			Type: events.EventServiceExpired,
			Payload: events.ServiceExpiredPayload{
				ServiceID: service.ID,
				Name:      service.Name,
			},
		})
	}
	return nil
}

// List returns unexpired offerings ordered by price descending, paginated.
func (s *CatalogService) List(ctx context.Context, limit, offset int) ([]domain.Service, int, error) {
	return s.services.ListActive(ctx, limit, offset)
}
