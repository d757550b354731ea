package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/Eesar1/booking-system/internal/domain/availability"
	"github.com/Eesar1/booking-system/internal/models"
)

type AvailabilityGormStore struct {
	db *gorm.DB
}

func NewAvailabilityGormStore(db *gorm.DB) *AvailabilityGormStore {
	return &AvailabilityGormStore{db: db}
}

func (s *AvailabilityGormStore) LoadSettings(
	ctx context.Context,
	key string,
) (*models.AvailabilitySettings, error) {

	var settings models.AvailabilitySettings
	err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (s *AvailabilityGormStore) CreateSettings(
	ctx context.Context,
	settings *models.AvailabilitySettings,
) error {
	return s.db.WithContext(ctx).Create(settings).Error
}

func (s *AvailabilityGormStore) SaveSettings(
	ctx context.Context,
	settings *models.AvailabilitySettings,
) error {
	return s.db.WithContext(ctx).Save(settings).Error
}

// Compile-time check
var _ domain.SettingsStore = (*AvailabilityGormStore)(nil)
