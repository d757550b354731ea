package appointment

import "github.com/Eesar1/booking-system/internal/httperr"

// ===============================
// Roles
// ===============================

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func InitialStatus() Status {
	return StatusPending
}

func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return Status(value), nil
	}
	return "", httperr.Validation("invalid_status", "Unknown appointment status.")
}

// ===============================
// Transition permissions
// ===============================

// statusByRole is the transition-permission table: which target statuses a
// role may set on an existing appointment. Customers may only cancel.
var statusByRole = map[Role]map[Status]bool{
	RoleAdmin: {
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCancelled: true,
		StatusCompleted: true,
	},
	RoleCustomer: {
		StatusCancelled: true,
	},
}

func CanSetStatus(role Role, target Status) bool {
	return statusByRole[role][target]
}
