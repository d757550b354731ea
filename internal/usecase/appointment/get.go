package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/Eesar1/booking-system/internal/domain/appointment"
	"github.com/Eesar1/booking-system/internal/httperr"
	"github.com/Eesar1/booking-system/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	actorID uuid.UUID,
	role domain.Role,
) (*models.Appointment, error) {

	id, err := parseID(appointmentID, "invalid_appointment_id", "Invalid appointment id.")
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.FindAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.NotFoundErr("appointment_not_found", "Appointment not found.")
	}

	if !domain.CanAccess(ap, actorID, role) {
		return nil, httperr.ForbiddenErr("forbidden", "Forbidden.")
	}

	return ap, nil
}
