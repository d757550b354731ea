package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/Eesar1/booking-system/internal/domain/appointment"
	"github.com/Eesar1/booking-system/internal/models"
)

// fakeRepo is an in-memory Repository for use-case tests.
type fakeRepo struct {
	users        map[uuid.UUID]*models.User
	services     map[uuid.UUID]*models.Service
	appointments map[uuid.UUID]*models.Appointment

	updateCalls int
	lastUpdate  map[string]any
	lastFilter  domain.ListFilter
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        map[uuid.UUID]*models.User{},
		services:     map[uuid.UUID]*models.Service{},
		appointments: map[uuid.UUID]*models.Appointment{},
	}
}

func (r *fakeRepo) addUser(role string) *models.User {
	u := &models.User{ID: uuid.New(), Role: role}
	r.users[u.ID] = u
	return u
}

func (r *fakeRepo) addService() *models.Service {
	s := &models.Service{ID: uuid.New(), Name: "General Consultation", IsActive: true}
	r.services[s.ID] = s
	return s
}

func (r *fakeRepo) addAppointment(customerID, serviceID uuid.UUID) *models.Appointment {
	ap := &models.Appointment{
		ID:         uuid.New(),
		CustomerID: customerID,
		ServiceID:  serviceID,
		StartTime:  "9:00 AM",
		EndTime:    "10:00 AM",
		Status:     string(domain.StatusPending),
	}
	r.appointments[ap.ID] = ap
	return ap
}

func (r *fakeRepo) FindUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	return r.users[id], nil
}

func (r *fakeRepo) FindServiceByID(_ context.Context, id uuid.UUID) (*models.Service, error) {
	return r.services[id], nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	r.appointments[ap.ID] = ap
	return nil
}

func (r *fakeRepo) FindAppointmentByID(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	return r.appointments[id], nil
}

func (r *fakeRepo) UpdateAppointmentByID(
	_ context.Context,
	id uuid.UUID,
	fields map[string]any,
) (*models.Appointment, error) {

	r.updateCalls++
	r.lastUpdate = fields

	ap := r.appointments[id]
	if v, ok := fields["status"]; ok {
		ap.Status = v.(string)
	}
	if v, ok := fields["notes"]; ok {
		ap.Notes = v.(string)
	}
	if v, ok := fields["start_time"]; ok {
		ap.StartTime = v.(string)
	}
	if v, ok := fields["end_time"]; ok {
		ap.EndTime = v.(string)
	}
	if v, ok := fields["customer_id"]; ok {
		ap.CustomerID = v.(uuid.UUID)
	}
	if v, ok := fields["service_id"]; ok {
		ap.ServiceID = v.(uuid.UUID)
	}
	if v, ok := fields["appointment_date"]; ok {
		ap.AppointmentDate = v.(time.Time)
	}
	return ap, nil
}

func (r *fakeRepo) ListAppointments(
	_ context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	r.lastFilter = filter

	var out []models.Appointment
	for _, ap := range r.appointments {
		if filter.CustomerID != nil && ap.CustomerID != *filter.CustomerID {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*fakeRepo)(nil)
