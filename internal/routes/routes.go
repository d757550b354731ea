package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Eesar1/booking-system/internal/audit"
	"github.com/Eesar1/booking-system/internal/cache"
	"github.com/Eesar1/booking-system/internal/config"
	availdomain "github.com/Eesar1/booking-system/internal/domain/availability"
	"github.com/Eesar1/booking-system/internal/handlers"
	infraRepo "github.com/Eesar1/booking-system/internal/infra/repository"
	"github.com/Eesar1/booking-system/internal/middleware"
	ucAppointment "github.com/Eesar1/booking-system/internal/usecase/appointment"
	ucAvailability "github.com/Eesar1/booking-system/internal/usecase/availability"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	settingsStore := infraRepo.NewAvailabilityGormStore(db)

	var slotCache availdomain.SlotCache
	if rdb != nil {
		slotCache = cache.NewSlotCacheRedis(rdb)
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailabilityUC := ucAvailability.NewGetAvailability(settingsStore, slotCache)
	updateAvailabilityUC := ucAvailability.NewUpdateAvailability(
		settingsStore,
		slotCache,
		auditDispatcher,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(bookingRepo, auditDispatcher)
	getAppointmentUC := ucAppointment.NewGetAppointment(bookingRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(bookingRepo)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(
		getAvailabilityUC,
		updateAvailabilityUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		getAppointmentUC,
		listAppointmentsUC,
		updateAppointmentUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/availability", availabilityHandler.GetPublic)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole("admin"))
		{
			admin.GET("/ping", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "Admin access granted."})
			})

			admin.GET("/availability", availabilityHandler.GetAdmin)
			admin.PATCH("/availability", availabilityHandler.Update)
		}
	}
}
