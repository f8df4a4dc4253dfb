package routes

import (
	"dashboard-presensi-backend/internal/handler"
	"dashboard-presensi-backend/internal/repository"
	"dashboard-presensi-backend/internal/scan"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupPublikRoutes memasang endpoint kiosk. Tanpa auth: layar presensi
// publik memang diakses tanpa login.
func SetupPublikRoutes(app *fiber.App, db *gorm.DB) {
	wargaRepo := repository.NewWargaRepository(db)
	presensiRepo := repository.NewPresensiRepository(db)
	jadwalRepo := repository.NewJadwalRepository(db)
	kelasRepo := repository.NewKelasRepository(db)

	resolver := scan.NewResolver(jadwalRepo)
	engine := scan.NewEngine(wargaRepo, presensiRepo, resolver)
	hdl := handler.NewScanHandler(engine, resolver, kelasRepo)

	api := app.Group("/api/publik")

	api.Get("/kelas", hdl.GetKelas)
	api.Get("/sesi", hdl.GetSesi)
	api.Get("/jadwal-aktif", hdl.GetJadwalAktif)
	api.Post("/scan", hdl.Scan)
	api.Post("/scan/pilih", hdl.PilihKelas)
}
