package availability

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Eesar1/booking-system/internal/httperr"
	"github.com/Eesar1/booking-system/internal/models"
)

// Wall-clock time of day, 24-hour, zero-padded.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ParseTimeToMinutes converts an "HH:mm" string to minutes since midnight.
func ParseTimeToMinutes(value string) (int, error) {
	m := timePattern.FindStringSubmatch(value)
	if m == nil {
		return 0, httperr.Validation(
			"invalid_time_format",
			fmt.Sprintf("%q must be in HH:mm format.", value),
		)
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes, nil
}

// FormatMinutesTo12Hour renders minutes since midnight as "H:MM AM|PM".
// Hours 0 and 12 both render as 12.
func FormatMinutesTo12Hour(totalMinutes int) string {
	hours24 := totalMinutes / 60
	minutes := totalMinutes % 60

	period := "AM"
	if hours24 >= 12 {
		period = "PM"
	}

	hours12 := hours24 % 12
	if hours12 == 0 {
		hours12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hours12, minutes, period)
}

// GenerateSlots materializes the ordered bookable slot labels for a day. A
// slot is emitted for every cursor position where the full slot still fits
// before end of day and the interval [cursor, cursor+duration) does not
// overlap the break window. The trailing partial slot is omitted.
//
// Pure and deterministic: same settings, same labels.
func GenerateSlots(s *models.AvailabilitySettings) ([]string, error) {
	start, err := ParseTimeToMinutes(s.StartTime)
	if err != nil {
		return nil, err
	}

	end, err := ParseTimeToMinutes(s.EndTime)
	if err != nil {
		return nil, err
	}

	hasBreak := false
	var breakStart, breakEnd int
	if s.BreakStartTime != "" && s.BreakEndTime != "" {
		bs, errStart := ParseTimeToMinutes(s.BreakStartTime)
		be, errEnd := ParseTimeToMinutes(s.BreakEndTime)
		if errStart == nil && errEnd == nil {
			hasBreak = true
			breakStart = bs
			breakEnd = be
		}
	}

	slots := make([]string, 0)

	// A non-positive duration would never advance the cursor.
	if s.SlotDurationMinutes <= 0 {
		return slots, nil
	}

	for cursor := start; cursor+s.SlotDurationMinutes <= end; cursor += s.SlotDurationMinutes {
		slotEnd := cursor + s.SlotDurationMinutes

		if hasBreak && !(slotEnd <= breakStart || cursor >= breakEnd) {
			continue
		}

		slots = append(slots, FormatMinutesTo12Hour(cursor))
	}

	return slots, nil
}
