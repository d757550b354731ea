package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Eesar1/booking-system/internal/models"
)

// ListFilter narrows an appointment listing. Nil fields are ignored.
type ListFilter struct {
	CustomerID *uuid.UUID
	ServiceID  *uuid.UUID
	Status     *Status
	DateFrom   *time.Time
	DateTo     *time.Time
}

// Repository is the storage port for appointments and the records they
// reference. Lookups return (nil, nil) when the record is absent.
type Repository interface {
	// -------- User --------
	FindUserByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.User, error)

	// -------- Service --------
	FindServiceByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Service, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	FindAppointmentByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	// UpdateAppointmentByID applies the pre-validated field set in a single
	// write and returns the refreshed record.
	UpdateAppointmentByID(
		ctx context.Context,
		id uuid.UUID,
		fields map[string]any,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)
}
