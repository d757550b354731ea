package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/Eesar1/booking-system/internal/domain/availability"
	"github.com/Eesar1/booking-system/internal/httperr"
	"github.com/Eesar1/booking-system/internal/middleware"
	"github.com/Eesar1/booking-system/internal/models"
	ucAvailability "github.com/Eesar1/booking-system/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	get    *ucAvailability.GetAvailability
	update *ucAvailability.UpdateAvailability
}

func NewAvailabilityHandler(
	get *ucAvailability.GetAvailability,
	update *ucAvailability.UpdateAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		get:    get,
		update: update,
	}
}

// ======================================================
// RESPONSES
// ======================================================

func availabilityPayload(
	settings *models.AvailabilitySettings,
	slots []string,
	includeID bool,
) gin.H {
	payload := gin.H{
		"start_time":            settings.StartTime,
		"end_time":              settings.EndTime,
		"slot_duration_minutes": settings.SlotDurationMinutes,
		"working_days":          settings.WorkingDays,
		"break_start_time":      settings.BreakStartTime,
		"break_end_time":        settings.BreakEndTime,
		"slots":                 slots,
	}
	if includeID {
		payload["id"] = settings.ID
	}
	return payload
}

// ======================================================
// PUBLIC
// ======================================================

func (h *AvailabilityHandler) GetPublic(c *gin.Context) {
	settings, slots, err := h.get.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "availability_failed", "Failed to fetch availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"availability": availabilityPayload(settings, slots, false),
	})
}

// ======================================================
// ADMIN
// ======================================================

func (h *AvailabilityHandler) GetAdmin(c *gin.Context) {
	settings, slots, err := h.get.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "availability_failed", "Failed to fetch availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"availability": availabilityPayload(settings, slots, true),
	})
}

func (h *AvailabilityHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var patch domain.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	settings, slots, err := h.update.Execute(c.Request.Context(), actorID, patch)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Availability updated successfully.",
		"availability": availabilityPayload(settings, slots, true),
	})
}
