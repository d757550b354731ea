package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AvailabilitySettings is a singleton row keyed by "default". It is created
// lazily with fixed defaults on first read and mutated only by admins.
type AvailabilitySettings struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Key string `gorm:"size:20;uniqueIndex;not null" json:"-"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	SlotDurationMinutes int `gorm:"not null" json:"slot_duration_minutes"`

	// Weekdays open for booking, 0 = Sunday.
	WorkingDays datatypes.JSONSlice[int] `json:"working_days"`

	BreakStartTime string `gorm:"size:5" json:"break_start_time"`
	BreakEndTime   string `gorm:"size:5" json:"break_end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
