package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/Eesar1/booking-system/internal/domain/appointment"
	"github.com/Eesar1/booking-system/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *BookingGormRepository) FindUserByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) FindServiceByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) FindAppointmentByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		First(&ap, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointmentByID(
	ctx context.Context,
	id uuid.UUID,
	fields map[string]any,
) (*models.Appointment, error) {

	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(fields).Error
	if err != nil {
		return nil, err
	}

	return r.FindAppointmentByID(ctx, id)
}

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service")

	if filter.CustomerID != nil {
		q = q.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.ServiceID != nil {
		q = q.Where("service_id = ?", *filter.ServiceID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}
	if filter.DateFrom != nil {
		q = q.Where("appointment_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		q = q.Where("appointment_date <= ?", *filter.DateTo)
	}

	var aps []models.Appointment
	err := q.
		Order("appointment_date ASC, start_time ASC").
		Find(&aps).Error
	if err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
