package routes

import (
	"dashboard-presensi-backend/internal/handler"
	"dashboard-presensi-backend/internal/middleware"
	"dashboard-presensi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewDashboardRepository(db)
	hdl := handler.NewDashboardHandler(repo)

	api := app.Group("/api/admin", middleware.Auth)

	api.Get("/dashboard/stats", hdl.GetStats)
}
