package availability

import (
	"context"

	domain "github.com/Eesar1/booking-system/internal/domain/availability"
	"github.com/Eesar1/booking-system/internal/models"
)

type GetAvailability struct {
	store domain.SettingsStore
	cache domain.SlotCache
}

// NewGetAvailability accepts a nil cache: slot labels are then regenerated
// on every call.
func NewGetAvailability(
	store domain.SettingsStore,
	cache domain.SlotCache,
) *GetAvailability {
	return &GetAvailability{
		store: store,
		cache: cache,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
) (*models.AvailabilitySettings, []string, error) {

	settings, err := EnsureSettings(ctx, uc.store)
	if err != nil {
		return nil, nil, err
	}

	if uc.cache != nil {
		if slots, ok := uc.cache.GetSlots(ctx, domain.SettingsKey); ok {
			return settings, slots, nil
		}
	}

	slots, err := domain.GenerateSlots(settings)
	if err != nil {
		return nil, nil, err
	}

	if uc.cache != nil {
		uc.cache.SetSlots(ctx, domain.SettingsKey, slots)
	}

	return settings, slots, nil
}
