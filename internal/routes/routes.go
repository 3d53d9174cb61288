package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/salonova-app/booking-api/internal/audit"
	"github.com/salonova-app/booking-api/internal/cache"
	"github.com/salonova-app/booking-api/internal/config"
	"github.com/salonova-app/booking-api/internal/handlers"
	"github.com/salonova-app/booking-api/internal/i18n"
	infraRepo "github.com/salonova-app/booking-api/internal/infra/repository"
	"github.com/salonova-app/booking-api/internal/middleware"
	"github.com/salonova-app/booking-api/internal/storage"
	ucAppointment "github.com/salonova-app/booking-api/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	cc *cache.Cache,
	msgs *i18n.Bundle,
	log zerolog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	photoStore := storage.NewPhotoStore(cfg)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(bookingRepo, auditDispatcher)
	confirmUC := ucAppointment.NewConfirmAppointment(bookingRepo, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(bookingRepo, auditDispatcher)
	completeUC := ucAppointment.NewCompleteAppointment(bookingRepo, auditDispatcher)
	rescheduleUC := ucAppointment.NewRescheduleAppointment(bookingRepo, auditDispatcher)
	listUC := ucAppointment.NewListForUser(bookingRepo)
	quoteUC := ucAppointment.NewGetQuote(bookingRepo)
	availUC := ucAppointment.NewGetAvailability(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, msgs)
	meHandler := handlers.NewMeHandler(db, msgs)
	favoriteHandler := handlers.NewFavoriteHandler(db, msgs)

	businessHandler := handlers.NewBusinessHandler(db, cc, msgs)
	catalogHandler := handlers.NewCatalogHandler(db, cc, msgs)
	providerHandler := handlers.NewProviderHandler(db, msgs)
	statsHandler := handlers.NewStatsHandler(db, cc, msgs)

	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		confirmUC,
		cancelUC,
		completeUC,
		rescheduleUC,
		listUC,
		quoteUC,
		availUC,
		msgs,
	)

	adminBusinessHandler := handlers.NewAdminBusinessHandler(db, cc, photoStore, msgs)
	adminCatalogHandler := handlers.NewAdminCatalogHandler(db, cc, msgs)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, msgs)
	testDataHandler := handlers.NewTestDataHandler(db, cc, msgs)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/cities", catalogHandler.ListCities)
		api.GET("/categories", catalogHandler.ListCategories)

		api.GET("/businesses", businessHandler.List)
		api.GET("/businesses/search", businessHandler.Search)
		api.GET("/businesses/recommended", businessHandler.Recommended)
		api.GET("/businesses/recent", businessHandler.Recent)
		api.GET("/businesses/:id", businessHandler.Get)
		api.GET("/businesses/:id/employees", providerHandler.ListByBusiness)
		api.GET("/businesses/:id/availability", appointmentHandler.Availability)

		api.GET("/employees/:id", providerHandler.Get)

		api.GET("/stats/overview", statsHandler.Overview)

		api.POST("/test/data", testDataHandler.Seed)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.GET("/me/favorites", favoriteHandler.List)
			secured.POST("/me/favorites", favoriteHandler.Add)
			secured.DELETE("/me/favorites/:businessId", favoriteHandler.Remove)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.POST("/me/appointments/quote", appointmentHandler.Quote)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole("admin"))
		{
			admin.POST("/businesses", adminBusinessHandler.Create)
			admin.PATCH("/businesses/:id", adminBusinessHandler.Update)
			admin.DELETE("/businesses/:id", adminBusinessHandler.Delete)
			admin.POST("/businesses/:id/photo", adminBusinessHandler.UploadPhoto)
			admin.POST("/businesses/:id/services", adminBusinessHandler.CreateService)
			admin.POST("/businesses/:id/employees", adminBusinessHandler.CreateEmployee)
			admin.POST("/businesses/:id/promotions", adminBusinessHandler.CreatePromotion)
			admin.PUT("/employees/:employeeId/working-hours", adminBusinessHandler.SetWorkingHours)

			admin.POST("/cities", adminCatalogHandler.CreateCity)
			admin.PATCH("/cities/:id", adminCatalogHandler.UpdateCity)
			admin.POST("/categories", adminCatalogHandler.CreateCategory)
			admin.PATCH("/categories/:id", adminCatalogHandler.UpdateCategory)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
