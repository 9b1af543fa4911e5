package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Mmasetshaba28/haircut-booking/internal/audit"
	"github.com/Mmasetshaba28/haircut-booking/internal/auth"
	"github.com/Mmasetshaba28/haircut-booking/internal/cache"
	"github.com/Mmasetshaba28/haircut-booking/internal/config"
	"github.com/Mmasetshaba28/haircut-booking/internal/handlers"
	infraRepo "github.com/Mmasetshaba28/haircut-booking/internal/infra/repository"
	"github.com/Mmasetshaba28/haircut-booking/internal/middleware"
	"github.com/Mmasetshaba28/haircut-booking/internal/timezone"
	ucAppointment "github.com/Mmasetshaba28/haircut-booking/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	issuer := auth.NewIssuer(cfg.JWTSecret)
	serviceCatalog := cache.NewServiceCatalog(rdb, 5*time.Minute)

	loc := timezone.Location(cfg.Timezone)
	now := func() time.Time { return time.Now().In(loc) }

	// ======================================================
	// USE CASES
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(bookingRepo, auditDispatcher, now)
	transitionUC := ucAppointment.NewTransitionAppointment(bookingRepo, auditDispatcher, now)
	deleteUC := ucAppointment.NewDeleteAppointment(bookingRepo, auditDispatcher)
	listUC := ucAppointment.NewListAppointments(bookingRepo)
	slotsUC := ucAppointment.NewGetAvailability(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(bookingRepo, issuer)
	serviceHandler := handlers.NewServiceHandler(bookingRepo, serviceCatalog)
	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		transitionUC,
		deleteUC,
		listUC,
		slotsUC,
		bookingRepo,
		loc,
	)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)
		api.GET("/appointments/available-slots", appointmentHandler.AvailableSlots)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(issuer))
		{
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/my-appointments", appointmentHandler.ListMine)
			secured.GET("/appointments/:id", appointmentHandler.Get)

			secured.PUT("/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/appointments", appointmentHandler.ListAll)
				admin.PUT("/appointments/:id/confirm", appointmentHandler.Confirm)
				admin.PUT("/appointments/:id/complete", appointmentHandler.Complete)
				admin.DELETE("/appointments/:id", appointmentHandler.Delete)
			}
		}
	}
}
