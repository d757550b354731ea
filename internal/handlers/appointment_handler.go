package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/Eesar1/booking-system/internal/domain/appointment"
	"github.com/Eesar1/booking-system/internal/httperr"
	"github.com/Eesar1/booking-system/internal/httpresp"
	"github.com/Eesar1/booking-system/internal/middleware"
	ucAppointment "github.com/Eesar1/booking-system/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create *ucAppointment.CreateAppointment
	get    *ucAppointment.GetAppointment
	list   *ucAppointment.ListAppointments
	update *ucAppointment.UpdateAppointment
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	get *ucAppointment.GetAppointment,
	list *ucAppointment.ListAppointments,
	update *ucAppointment.UpdateAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		create: create,
		get:    get,
		list:   list,
		update: update,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Service         string `json:"service" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	EndTime         string `json:"end_time" binding:"required"`
	CustomerID      string `json:"customer_id"`
	Notes           string `json:"notes"`
}

func actor(c *gin.Context) (uuid.UUID, domain.Role) {
	actorID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	role := domain.Role(c.GetString(middleware.ContextUserRole))
	return actorID, role
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actorID, role := actor(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(
			c,
			"missing_required_fields",
			"Service, appointment_date, start_time, and end_time are required.",
		)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ActorID:    actorID,
		ActorRole:  role,
		ServiceID:  req.Service,
		CustomerID: req.CustomerID,
		Date:       req.AppointmentDate,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Notes:      req.Notes,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment created successfully.",
		"appointment": ap,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	actorID, role := actor(c)

	aps, err := h.list.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		ActorID:    actorID,
		ActorRole:  role,
		Status:     c.Query("status"),
		ServiceID:  c.Query("service"),
		CustomerID: c.Query("customer_id"),
		DateFrom:   c.Query("date_from"),
		DateTo:     c.Query("date_to"),
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	actorID, role := actor(c)

	ap, err := h.get.Execute(c.Request.Context(), c.Param("id"), actorID, role)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": ap})
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	actorID, role := actor(c)

	var patch domain.UpdatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		AppointmentID: c.Param("id"),
		ActorID:       actorID,
		ActorRole:     role,
		Patch:         patch,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment updated successfully.",
		"appointment": ap,
	})
}
