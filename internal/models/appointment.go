package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	CustomerID uuid.UUID `gorm:"type:uuid;index" json:"customer_id"`
	Customer   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	ServiceID uuid.UUID `gorm:"type:uuid;index" json:"service_id"`
	Service   Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	AppointmentDate time.Time `gorm:"type:date" json:"appointment_date"`

	// Wall-clock labels as submitted by the booking form. Not validated
	// against HH:mm in this layer.
	StartTime string `gorm:"size:20" json:"start_time"`
	EndTime   string `gorm:"size:20" json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
