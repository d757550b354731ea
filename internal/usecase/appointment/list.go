package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/Eesar1/booking-system/internal/domain/appointment"
	"github.com/Eesar1/booking-system/internal/httperr"
	"github.com/Eesar1/booking-system/internal/models"
)

type ListAppointmentsInput struct {
	ActorID   uuid.UUID
	ActorRole domain.Role

	Status     string
	ServiceID  string
	CustomerID string // admin only, ignored otherwise
	DateFrom   string
	DateTo     string
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]models.Appointment, error) {

	var filter domain.ListFilter

	// Customers only ever see their own rows.
	if in.ActorRole == domain.RoleCustomer {
		actorID := in.ActorID
		filter.CustomerID = &actorID
	}

	if in.Status != "" {
		status, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}

	if in.ServiceID != "" {
		serviceID, err := parseID(in.ServiceID, "invalid_service_id", "Invalid service id.")
		if err != nil {
			return nil, err
		}
		filter.ServiceID = &serviceID
	}

	if in.CustomerID != "" && in.ActorRole == domain.RoleAdmin {
		customerID, err := parseID(in.CustomerID, "invalid_customer_id", "Invalid customer id.")
		if err != nil {
			return nil, err
		}
		filter.CustomerID = &customerID
	}

	if in.DateFrom != "" {
		from, err := parseDate(in.DateFrom)
		if err != nil {
			return nil, httperr.Validation("invalid_date_from", "Invalid date_from value.")
		}
		filter.DateFrom = &from
	}

	if in.DateTo != "" {
		to, err := parseDate(in.DateTo)
		if err != nil {
			return nil, httperr.Validation("invalid_date_to", "Invalid date_to value.")
		}
		filter.DateTo = &to
	}

	return uc.repo.ListAppointments(ctx, filter)
}
