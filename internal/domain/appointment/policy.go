package appointment

import (
	"github.com/google/uuid"

	"github.com/Eesar1/booking-system/internal/models"
)

// CanAccess gates single-record reads and updates: admins see everything,
// customers only their own rows.
func CanAccess(ap *models.Appointment, actorID uuid.UUID, role Role) bool {
	return role == RoleAdmin || ap.CustomerID == actorID
}

// UpdatePatch is a partial appointment edit. Nil means the field was not
// submitted. Unknown keys in the request body never reach this struct, which
// is the deliberate permissive-ignore policy: extra fields are dropped
// silently, never rejected.
type UpdatePatch struct {
	Customer        *string `json:"customer"`
	Service         *string `json:"service"`
	AppointmentDate *string `json:"appointment_date"`
	StartTime       *string `json:"start_time"`
	EndTime         *string `json:"end_time"`
	Status          *string `json:"status"`
	Notes           *string `json:"notes"`
}

// FilterForRole intersects the submitted fields with the role's allowed
// update set. Admins may touch every field; customers may not reassign the
// customer or the service.
func (p UpdatePatch) FilterForRole(role Role) UpdatePatch {
	if role == RoleAdmin {
		return p
	}

	p.Customer = nil
	p.Service = nil
	return p
}
