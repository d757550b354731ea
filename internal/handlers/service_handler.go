package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Eesar1/booking-system/internal/httperr"
	"github.com/Eesar1/booking-system/internal/httpresp"
	"github.com/Eesar1/booking-system/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

var defaultServices = []models.Service{
	{
		Name:            "General Consultation",
		Description:     "Professional consultation with experienced staff",
		DurationMinutes: 30,
		Price:           30,
	},
	{
		Name:            "Skin Care Session",
		Description:     "Refreshing skin treatment for glowing results",
		DurationMinutes: 45,
		Price:           45,
	},
	{
		Name:            "Business Coaching",
		Description:     "One on one growth and strategy guidance",
		DurationMinutes: 60,
		Price:           60,
	},
	{
		Name:            "Salon Services",
		Description:     "Premium hair and beauty services",
		DurationMinutes: 90,
		Price:           75,
	},
}

// ensureDefaultServices seeds the catalog on first read so a fresh install
// has something to book.
func (h *ServiceHandler) ensureDefaultServices() error {
	var count int64
	if err := h.db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	services := make([]models.Service, len(defaultServices))
	copy(services, defaultServices)
	for i := range services {
		services[i].IsActive = true
	}

	return h.db.Create(&services).Error
}

func (h *ServiceHandler) List(c *gin.Context) {
	if err := h.ensureDefaultServices(); err != nil {
		httperr.Internal(c, "failed_to_seed_services", "Failed to fetch services.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Failed to fetch services.")
		return
	}

	httpresp.List(c, services)
}
