package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wekesa/dukapos-api/internal/domain/entity"
	domainRepo "github.com/wekesa/dukapos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) domainRepo.LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	return conn(ctx, r.db).Create(location).Error
}

func (r *locationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var location entity.Location
	err := conn(ctx, r.db).First(&location, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &location, err
}

func (r *locationRepository) ListActive(ctx context.Context) ([]entity.Location, error) {
	var locations []entity.Location
	err := conn(ctx, r.db).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&locations).Error
	return locations, err
}

func (r *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	return conn(ctx, r.db).Save(location).Error
}
