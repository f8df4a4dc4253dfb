package routes

import (
	"dashboard-presensi-backend/internal/handler"
	"dashboard-presensi-backend/internal/middleware"
	"dashboard-presensi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	presensiRepo := repository.NewPresensiRepository(db)
	kelasRepo := repository.NewKelasRepository(db)
	hdl := handler.NewReportHandler(presensiRepo, kelasRepo)

	api := app.Group("/api/admin", middleware.Auth)

	api.Get("/report/rekap", hdl.GetRekap)
	api.Post("/report/rekap/email", hdl.KirimRekapEmail)
}
