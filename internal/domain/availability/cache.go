package availability

import "context"

// SlotCache holds generated slot labels between settings changes. Lookups
// are advisory: a miss or a backend failure just means the labels are
// regenerated.
type SlotCache interface {
	GetSlots(ctx context.Context, key string) ([]string, bool)
	SetSlots(ctx context.Context, key string, slots []string)
	InvalidateSlots(ctx context.Context, key string)
}
