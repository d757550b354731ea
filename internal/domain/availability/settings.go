package availability

import (
	"gorm.io/datatypes"

	"github.com/Eesar1/booking-system/internal/httperr"
	"github.com/Eesar1/booking-system/internal/models"
)

// SettingsKey identifies the single system-wide availability configuration.
const SettingsKey = "default"

const MinSlotDurationMinutes = 15

// SettingsPatch is a partial admin edit. Nil means the field was not
// submitted; an empty time string clears a break bound.
type SettingsPatch struct {
	StartTime           *string `json:"start_time"`
	EndTime             *string `json:"end_time"`
	SlotDurationMinutes *int    `json:"slot_duration_minutes"`
	WorkingDays         *[]int  `json:"working_days"`
	BreakStartTime      *string `json:"break_start_time"`
	BreakEndTime        *string `json:"break_end_time"`
}

// ValidatePatch checks the patch field by field, first failure wins: time
// fields against HH:mm, then the slot duration floor, then working day
// values. No cross-field validation is performed: start/end ordering and
// break placement are accepted as submitted.
func ValidatePatch(p SettingsPatch) error {
	timeFields := []struct {
		name  string
		value *string
	}{
		{"start_time", p.StartTime},
		{"end_time", p.EndTime},
		{"break_start_time", p.BreakStartTime},
		{"break_end_time", p.BreakEndTime},
	}

	for _, f := range timeFields {
		if f.value != nil && *f.value != "" && !timePattern.MatchString(*f.value) {
			return httperr.Validation(
				"invalid_time_format",
				f.name+" must be in HH:mm format.",
			)
		}
	}

	if p.SlotDurationMinutes != nil && *p.SlotDurationMinutes < MinSlotDurationMinutes {
		return httperr.Validation(
			"invalid_slot_duration",
			"slot_duration_minutes must be an integer >= 15.",
		)
	}

	if p.WorkingDays != nil {
		for _, day := range *p.WorkingDays {
			if day < 0 || day > 6 {
				return httperr.Validation(
					"invalid_working_days",
					"working_days must be a list of values between 0 and 6.",
				)
			}
		}
	}

	return nil
}

// Apply copies the submitted fields onto the settings record.
func (p SettingsPatch) Apply(s *models.AvailabilitySettings) {
	if p.StartTime != nil {
		s.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		s.EndTime = *p.EndTime
	}
	if p.SlotDurationMinutes != nil {
		s.SlotDurationMinutes = *p.SlotDurationMinutes
	}
	if p.WorkingDays != nil {
		s.WorkingDays = datatypes.NewJSONSlice(*p.WorkingDays)
	}
	if p.BreakStartTime != nil {
		s.BreakStartTime = *p.BreakStartTime
	}
	if p.BreakEndTime != nil {
		s.BreakEndTime = *p.BreakEndTime
	}
}

// DefaultSettings is the configuration created on first access.
func DefaultSettings() *models.AvailabilitySettings {
	return &models.AvailabilitySettings{
		Key:                 SettingsKey,
		StartTime:           "09:00",
		EndTime:             "17:00",
		SlotDurationMinutes: 60,
		WorkingDays:         datatypes.NewJSONSlice([]int{1, 2, 3, 4, 5, 6}),
		BreakStartTime:      "13:00",
		BreakEndTime:        "14:00",
	}
}
