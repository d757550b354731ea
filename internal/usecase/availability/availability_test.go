package availability

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Eesar1/booking-system/internal/domain/availability"
	"github.com/Eesar1/booking-system/internal/httperr"
	"github.com/Eesar1/booking-system/internal/models"
)

// fakeStore keeps the singleton in memory and counts writes.
type fakeStore struct {
	settings *models.AvailabilitySettings
	creates  int
	saves    int
}

func (s *fakeStore) LoadSettings(
	_ context.Context,
	key string,
) (*models.AvailabilitySettings, error) {
	if s.settings == nil || s.settings.Key != key {
		return nil, nil
	}
	return s.settings, nil
}

func (s *fakeStore) CreateSettings(_ context.Context, settings *models.AvailabilitySettings) error {
	s.creates++
	settings.ID = uuid.New()
	s.settings = settings
	return nil
}

func (s *fakeStore) SaveSettings(_ context.Context, settings *models.AvailabilitySettings) error {
	s.saves++
	s.settings = settings
	return nil
}

var _ domain.SettingsStore = (*fakeStore)(nil)

type fakeCache struct {
	slots       map[string][]string
	hits, sets  int
	invalidates int
}

func newFakeCache() *fakeCache {
	return &fakeCache{slots: map[string][]string{}}
}

func (c *fakeCache) GetSlots(_ context.Context, key string) ([]string, bool) {
	slots, ok := c.slots[key]
	if ok {
		c.hits++
	}
	return slots, ok
}

func (c *fakeCache) SetSlots(_ context.Context, key string, slots []string) {
	c.sets++
	c.slots[key] = slots
}

func (c *fakeCache) InvalidateSlots(_ context.Context, key string) {
	c.invalidates++
	delete(c.slots, key)
}

var _ domain.SlotCache = (*fakeCache)(nil)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestEnsureSettings_CreatesDefaultsOnce(t *testing.T) {
	store := &fakeStore{}

	first, err := EnsureSettings(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, 1, store.creates)
	assert.Equal(t, "09:00", first.StartTime)

	second, err := EnsureSettings(context.Background(), store)
	require.NoError(t, err)

	// Same record both times, no second insert.
	assert.Equal(t, 1, store.creates)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first, second)
}

func TestGet_GeneratesAndCaches(t *testing.T) {
	store := &fakeStore{}
	cache := newFakeCache()

	uc := NewGetAvailability(store, cache)

	settings, slots, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.SettingsKey, settings.Key)
	assert.Len(t, slots, 7) // 09:00-17:00, hourly, minus the 13:00 break
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, slots, cache.slots[domain.SettingsKey])
}

func TestGet_CacheHitSkipsGeneration(t *testing.T) {
	store := &fakeStore{}
	cache := newFakeCache()
	cache.slots[domain.SettingsKey] = []string{"8:00 AM"}

	uc := NewGetAvailability(store, cache)

	_, slots, err := uc.Execute(context.Background())
	require.NoError(t, err)

	// The cached value wins even though it disagrees with the settings.
	assert.Equal(t, []string{"8:00 AM"}, slots)
	assert.Equal(t, 1, cache.hits)
	assert.Zero(t, cache.sets)
}

func TestGet_NilCache(t *testing.T) {
	store := &fakeStore{}

	uc := NewGetAvailability(store, nil)

	_, slots, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, slots, 7)
}

func TestUpdate_AppliesPatchAndInvalidates(t *testing.T) {
	store := &fakeStore{}
	cache := newFakeCache()
	cache.slots[domain.SettingsKey] = []string{"stale"}

	uc := NewUpdateAvailability(store, cache, nil)

	settings, slots, err := uc.Execute(context.Background(), uuid.New(), domain.SettingsPatch{
		SlotDurationMinutes: intPtr(120),
	})
	require.NoError(t, err)

	assert.Equal(t, 120, settings.SlotDurationMinutes)
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, 1, cache.invalidates)
	assert.NotContains(t, cache.slots, domain.SettingsKey)

	// 09:00-17:00 with two-hour slots and a 13:00-14:00 break. The 13:00
	// cursor position overlaps the break and is dropped.
	assert.Equal(t, []string{"9:00 AM", "11:00 AM", "3:00 PM"}, slots)
}

func TestUpdate_InvalidPatchNeverWrites(t *testing.T) {
	store := &fakeStore{}
	cache := newFakeCache()

	uc := NewUpdateAvailability(store, cache, nil)

	_, _, err := uc.Execute(context.Background(), uuid.New(), domain.SettingsPatch{
		StartTime: strPtr("9am"),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_time_format"))

	assert.Zero(t, store.creates)
	assert.Zero(t, store.saves)
	assert.Zero(t, cache.invalidates)
}

func TestUpdate_UnsetFieldsKeepValues(t *testing.T) {
	store := &fakeStore{}

	uc := NewUpdateAvailability(store, nil, nil)

	settings, _, err := uc.Execute(context.Background(), uuid.New(), domain.SettingsPatch{
		EndTime: strPtr("18:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "09:00", settings.StartTime)
	assert.Equal(t, "18:00", settings.EndTime)
	assert.Equal(t, 60, settings.SlotDurationMinutes)
}

func TestUpdate_KeepsSingletonIdentity(t *testing.T) {
	store := &fakeStore{}

	uc := NewUpdateAvailability(store, nil, nil)

	first, _, err := uc.Execute(context.Background(), uuid.New(), domain.SettingsPatch{
		SlotDurationMinutes: intPtr(30),
	})
	require.NoError(t, err)

	second, _, err := uc.Execute(context.Background(), uuid.New(), domain.SettingsPatch{
		SlotDurationMinutes: intPtr(45),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, store.creates)
	assert.Equal(t, 2, store.saves)
}
