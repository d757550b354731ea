package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/Eesar1/booking-system/internal/httperr"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate accepts a plain calendar date or an RFC 3339 timestamp. Only the
// date part matters for appointment_date; start/end carry the time of day.
func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, httperr.Validation(
		"invalid_appointment_date",
		"Invalid appointment date.",
	)
}

func parseID(value, code, message string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, httperr.Validation(code, message)
	}
	return id, nil
}
