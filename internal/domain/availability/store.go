package availability

import (
	"context"

	"github.com/Eesar1/booking-system/internal/models"
)

// SettingsStore owns persistence of the availability singleton.
type SettingsStore interface {
	// LoadSettings returns (nil, nil) when no record exists for the key.
	LoadSettings(
		ctx context.Context,
		key string,
	) (*models.AvailabilitySettings, error)

	CreateSettings(
		ctx context.Context,
		settings *models.AvailabilitySettings,
	) error

	SaveSettings(
		ctx context.Context,
		settings *models.AvailabilitySettings,
	) error
}
