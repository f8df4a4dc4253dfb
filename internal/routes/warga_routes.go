package routes

import (
	"dashboard-presensi-backend/internal/handler"
	"dashboard-presensi-backend/internal/middleware"
	"dashboard-presensi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupWargaRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewWargaRepository(db)
	hdl := handler.NewWargaHandler(repo)

	api := app.Group("/api/admin", middleware.Auth)

	api.Get("/warga", hdl.GetAll)
	api.Get("/warga/:id", hdl.GetByID)
	api.Post("/warga", hdl.Create)
	api.Put("/warga/:id", hdl.Update)
	api.Delete("/warga/:id", hdl.Delete)
}
