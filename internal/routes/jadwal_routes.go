package routes

import (
	"dashboard-presensi-backend/internal/handler"
	"dashboard-presensi-backend/internal/middleware"
	"dashboard-presensi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupJadwalRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewJadwalRepository(db)
	hdl := handler.NewJadwalHandler(repo)

	api := app.Group("/api/admin", middleware.Auth)

	api.Get("/jadwal", hdl.GetAll)
	api.Get("/jadwal/:id", hdl.GetByID)
	api.Post("/jadwal", hdl.Create)
	api.Put("/jadwal/:id", hdl.Update)
	api.Delete("/jadwal/:id", hdl.Delete)
}
