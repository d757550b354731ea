package availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/Eesar1/booking-system/internal/audit"
	domain "github.com/Eesar1/booking-system/internal/domain/availability"
	"github.com/Eesar1/booking-system/internal/models"
)

type UpdateAvailability struct {
	store domain.SettingsStore
	cache domain.SlotCache
	audit *audit.Dispatcher
}

func NewUpdateAvailability(
	store domain.SettingsStore,
	cache domain.SlotCache,
	audit *audit.Dispatcher,
) *UpdateAvailability {
	return &UpdateAvailability{
		store: store,
		cache: cache,
		audit: audit,
	}
}

// Execute validates the patch, applies the submitted fields to the singleton
// and saves it. Validation happens before the write: an invalid patch never
// mutates the stored configuration.
func (uc *UpdateAvailability) Execute(
	ctx context.Context,
	actorID uuid.UUID,
	patch domain.SettingsPatch,
) (*models.AvailabilitySettings, []string, error) {

	if err := domain.ValidatePatch(patch); err != nil {
		return nil, nil, err
	}

	settings, err := EnsureSettings(ctx, uc.store)
	if err != nil {
		return nil, nil, err
	}

	patch.Apply(settings)

	if err := uc.store.SaveSettings(ctx, settings); err != nil {
		return nil, nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateSlots(ctx, domain.SettingsKey)
	}

	slots, err := domain.GenerateSlots(settings)
	if err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "availability_updated",
		Entity:   "availability_settings",
		EntityID: &settings.ID,
	})

	return settings, slots, nil
}
