package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/Eesar1/booking-system/internal/audit"
	domain "github.com/Eesar1/booking-system/internal/domain/appointment"
	"github.com/Eesar1/booking-system/internal/httperr"
	"github.com/Eesar1/booking-system/internal/models"
)

type UpdateAppointmentInput struct {
	AppointmentID string
	ActorID       uuid.UUID
	ActorRole     domain.Role
	Patch         domain.UpdatePatch
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies a role-filtered partial update. The whole field set is
// resolved and validated before the single store write, so a failing field
// never leaves a half-applied patch behind.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	id, err := parseID(in.AppointmentID, "invalid_appointment_id", "Invalid appointment id.")
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

	if !domain.CanAccess(ap, in.ActorID, in.ActorRole) {
		return nil, httperr.ForbiddenErr("forbidden", "Forbidden.")
	}

	patch := in.Patch.FilterForRole(in.ActorRole)
	fields := map[string]any{}

	if patch.Status != nil {
		status, err := domain.ParseStatus(*patch.Status)
		if err != nil {
			return nil, err
		}
		if !domain.CanSetStatus(in.ActorRole, status) {
			return nil, httperr.ForbiddenErr(
				"status_not_allowed",
				"Customers can only change status to cancelled.",
			)
		}
		fields["status"] = string(status)
	}

	if patch.Service != nil {
		serviceID, err := parseID(*patch.Service, "invalid_service_id", "Invalid service id.")
		if err != nil {
			return nil, err
		}
		service, err := uc.repo.FindServiceByID(ctx, serviceID)
		if err != nil {
			return nil, err
		}
		if service == nil {
			return nil, httperr.NotFoundErr("service_not_found", "Service not found.")
		}
		fields["service_id"] = serviceID
	}

	if patch.Customer != nil {
		// FilterForRole already strips this for customers; kept as a guard
		// so the rule does not depend on the filter alone.
		if in.ActorRole != domain.RoleAdmin {
			return nil, httperr.ForbiddenErr(
				"customer_change_forbidden",
				"Only admins can change the customer.",
			)
		}
		customerID, err := parseID(*patch.Customer, "invalid_customer_id", "Invalid customer id.")
		if err != nil {
			return nil, err
		}
		customer, err := uc.repo.FindUserByID(ctx, customerID)
		if err != nil {
			return nil, err
		}
		if customer == nil || domain.Role(customer.Role) != domain.RoleCustomer {
			return nil, httperr.NotFoundErr("customer_not_found", "Customer not found.")
		}
		fields["customer_id"] = customerID
	}

	if patch.AppointmentDate != nil {
		date, err := parseDate(*patch.AppointmentDate)
		if err != nil {
			return nil, err
		}
		fields["appointment_date"] = date
	}

	if patch.StartTime != nil {
		fields["start_time"] = *patch.StartTime
	}
	if patch.EndTime != nil {
		fields["end_time"] = *patch.EndTime
	}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}

	if len(fields) == 0 {
		return ap, nil
	}

	updated, err := uc.repo.UpdateAppointmentByID(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &updated.ID,
	})

	return updated, nil
}
