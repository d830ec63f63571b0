package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/config"
	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/handlers"
	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	req := handlers.NewRequestFormHandler()
	reg := handlers.NewRegistrationHandler()
	med := handlers.NewMedicalRecordHandler()
	inv := handlers.NewInventoryHandler()
	ann := handlers.NewAnnouncementHandler(cfg.UploadDir)
	rep := handlers.NewReportHandler()

	e.GET("/health", handlers.Health)
	e.Static("/uploads", cfg.UploadDir)

	// ===== Public =====
	e.POST("/api/auth/login", auth.Login)
	e.POST("/api/requests", req.Create)      // public request form
	e.POST("/api/registrations", reg.Create) // public registration form
	e.GET("/api/announcement", ann.List)

	// ===== Admin back office =====
	authMW := middlewares.RequireAuth(cfg.JWTSecret)
	admin := e.Group("/api", authMW, middlewares.RequireRole("admin", "staff"))

	admin.GET("/requests", req.List)
	admin.GET("/requests/:id", req.Get)
	admin.PATCH("/requests/:id/status", req.UpdateStatus)

	admin.GET("/registrations", reg.List)
	admin.GET("/registrations/:id", reg.Get)
	admin.PUT("/registrations/:id", reg.Update)
	admin.PATCH("/registrations/:id/status", reg.UpdateStatus)

	admin.POST("/medical-records", med.Create)
	admin.GET("/medical-records", med.List)
	admin.GET("/medical-records/:id", med.Get)

	admin.POST("/inventory", inv.Create)
	admin.GET("/inventory", inv.List)
	admin.PUT("/inventory/:id", inv.Update)
	admin.PATCH("/inventory/:id/quantity", inv.ReduceQuantity)
	admin.DELETE("/inventory/:id", inv.Delete)

	admin.GET("/reports/medication", rep.Medication)
	admin.GET("/reports/medication/export", rep.Export)

	admin.POST("/announcement", ann.Create)
	admin.PUT("/announcement/:id", ann.Update)
	admin.DELETE("/announcement/:id", ann.Delete)
}
