package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/Eesar1/booking-system/internal/audit"
	domain "github.com/Eesar1/booking-system/internal/domain/appointment"
	"github.com/Eesar1/booking-system/internal/httperr"
	"github.com/Eesar1/booking-system/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ActorID   uuid.UUID
	ActorRole domain.Role

	ServiceID  string
	CustomerID string // optional, honored for admins only

	Date      string
	StartTime string
	EndTime   string
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	serviceID, err := parseID(in.ServiceID, "invalid_service_id", "Invalid service id.")
	if err != nil {
		return nil, err
	}

	date, err := parseDate(in.Date)
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

	customerID, err := uc.resolveCustomerForCreate(ctx, in.CustomerID, in.ActorID, in.ActorRole)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		CustomerID:      customerID,
		ServiceID:       service.ID,
		AppointmentDate: date,
		StartTime:       in.StartTime,
		EndTime:         in.EndTime,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	// Re-read to populate customer and service references.
	created, err := uc.repo.FindAppointmentByID(ctx, ap.ID)
	if err != nil || created == nil {
		return ap, nil
	}
	return created, nil
}

// resolveCustomerForCreate decides who the appointment belongs to. Customers
// always book for themselves no matter what they submit. Admins may book on
// behalf of an existing customer, and fall back to their own id when no
// customer is named.
func (uc *CreateAppointment) resolveCustomerForCreate(
	ctx context.Context,
	requestedCustomerID string,
	actorID uuid.UUID,
	role domain.Role,
) (uuid.UUID, error) {

	if role != domain.RoleAdmin || requestedCustomerID == "" {
		return actorID, nil
	}

	customerID, err := parseID(requestedCustomerID, "invalid_customer_id", "Invalid customer id.")
	if err != nil {
		return uuid.Nil, err
	}

	customer, err := uc.repo.FindUserByID(ctx, customerID)
	if err != nil {
		return uuid.Nil, err
	}
	if customer == nil || domain.Role(customer.Role) != domain.RoleCustomer {
		return uuid.Nil, httperr.NotFoundErr("customer_not_found", "Customer not found.")
	}

	return customer.ID, nil
}
