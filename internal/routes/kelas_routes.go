package routes

import (
	"dashboard-presensi-backend/internal/handler"
	"dashboard-presensi-backend/internal/middleware"
	"dashboard-presensi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupKelasRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewKelasRepository(db)
	hdl := handler.NewKelasHandler(repo)

	api := app.Group("/api/admin", middleware.Auth)

	api.Get("/kelas", hdl.GetAll)
	api.Post("/kelas", hdl.Create)
	api.Put("/kelas/:id", hdl.Update)
	api.Delete("/kelas/:id", hdl.Delete)
}
