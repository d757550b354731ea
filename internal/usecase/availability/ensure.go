package availability

import (
	"context"

	domain "github.com/Eesar1/booking-system/internal/domain/availability"
	"github.com/Eesar1/booking-system/internal/models"
)

// EnsureSettings returns the availability singleton, creating it with fixed
// defaults on first access. Idempotent: a second call with no intervening
// write returns the same record.
func EnsureSettings(
	ctx context.Context,
	store domain.SettingsStore,
) (*models.AvailabilitySettings, error) {

	settings, err := store.LoadSettings(ctx, domain.SettingsKey)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	settings = domain.DefaultSettings()
	if err := store.CreateSettings(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
