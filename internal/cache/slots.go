package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	domain "github.com/Eesar1/booking-system/internal/domain/availability"
)

const slotsTTL = 12 * time.Hour

// SlotCacheRedis stores generated slot labels in Redis. Every failure is
// fail-open: a broken cache degrades to recomputing labels, never to an
// error response.
type SlotCacheRedis struct {
	rdb *redis.Client
}

func NewSlotCacheRedis(rdb *redis.Client) *SlotCacheRedis {
	return &SlotCacheRedis{rdb: rdb}
}

func slotsKey(key string) string {
	return "availability:slots:" + key
}

func (c *SlotCacheRedis) GetSlots(ctx context.Context, key string) ([]string, bool) {
	raw, err := c.rdb.Get(ctx, slotsKey(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Debug().Err(err).Msg("slot cache read failed")
		}
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotCacheRedis) SetSlots(ctx context.Context, key string, slots []string) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, slotsKey(key), raw, slotsTTL).Err(); err != nil {
		log.Debug().Err(err).Msg("slot cache write failed")
	}
}

func (c *SlotCacheRedis) InvalidateSlots(ctx context.Context, key string) {
	if err := c.rdb.Del(ctx, slotsKey(key)).Err(); err != nil {
		log.Debug().Err(err).Msg("slot cache invalidate failed")
	}
}

// Compile-time check
var _ domain.SlotCache = (*SlotCacheRedis)(nil)
