package routes

import (
	"dashboard-presensi-backend/internal/handler"
	"dashboard-presensi-backend/internal/middleware"
	"dashboard-presensi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPresensiRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewPresensiRepository(db)
	hdl := handler.NewPresensiHandler(repo)

	api := app.Group("/api/admin", middleware.Auth)

	api.Get("/presensi", hdl.GetAll)
	api.Delete("/presensi/:id", hdl.Delete)
}
