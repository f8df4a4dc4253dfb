package main

import (
	"fmt"

	"dashboard-presensi-backend/config"
	"dashboard-presensi-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())   // Kiosk dan dashboard jalan di origin berbeda
	app.Use(logger.New()) // Log request di terminal

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupPublikRoutes(app, config.DB)
	routes.SetupWargaRoutes(app, config.DB)
	routes.SetupKelasRoutes(app, config.DB)
	routes.SetupJadwalRoutes(app, config.DB)
	routes.SetupPresensiRoutes(app, config.DB)
	routes.SetupDashboardRoutes(app, config.DB)
	routes.SetupReportRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
