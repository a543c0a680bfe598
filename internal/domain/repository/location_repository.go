package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wekesa/dukapos-api/internal/domain/entity"
)

// LocationRepository defines the interface for location data operations
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	ListActive(ctx context.Context) ([]entity.Location, error)
	Update(ctx context.Context, location *entity.Location) error
}
