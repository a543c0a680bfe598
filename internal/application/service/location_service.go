package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wekesa/dukapos-api/internal/domain/entity"
	"github.com/wekesa/dukapos-api/internal/domain/repository"
	"github.com/wekesa/dukapos-api/pkg/apperror"
)

// LocationService handles stock location business logic
type LocationService struct {
	locationRepo repository.LocationRepository
}

// NewLocationService creates a new location service
func NewLocationService(locationRepo repository.LocationRepository) *LocationService {
	return &LocationService{locationRepo: locationRepo}
}

// Create creates a new stock location
func (s *LocationService) Create(ctx context.Context, name string, address *string) (*entity.Location, error) {
	location := &entity.Location{
		Name:     name,
		Address:  address,
		IsActive: true,
	}
	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

// GetByID retrieves a location by ID
func (s *LocationService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, apperror.NewNotFoundError("Location")
	}
	return location, nil
}

// ListActive lists all active locations
func (s *LocationService) ListActive(ctx context.Context) ([]entity.Location, error) {
	return s.locationRepo.ListActive(ctx)
}

// Deactivate marks a location inactive. Its balances are kept; the location
// just stops accepting new movements at the API layer.
func (s *LocationService) Deactivate(ctx context.Context, id uuid.UUID) error {
	location, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	location.IsActive = false
	return s.locationRepo.Update(ctx, location)
}
