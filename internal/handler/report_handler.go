package handler

import (
	"fmt"
	"strings"
	"time"

	"dashboard-presensi-backend/config"
	"dashboard-presensi-backend/internal/repository"
	"dashboard-presensi-backend/internal/timeutil"

	"github.com/gofiber/fiber/v2"
	"gopkg.in/gomail.v2"
)

type ReportHandler struct {
	presensiRepo repository.PresensiRepository
	kelasRepo    repository.KelasRepository
}

func NewReportHandler(presensiRepo repository.PresensiRepository, kelasRepo repository.KelasRepository) *ReportHandler {
	return &ReportHandler{presensiRepo: presensiRepo, kelasRepo: kelasRepo}
}

type rekapBaris struct {
	Kelas  string `json:"kelas"`
	Sesi   string `json:"sesi"`
	Jumlah int64  `json:"jumlah"`
}

// GetRekap menghitung presensi per kelas + sesi untuk satu tanggal.
func (h *ReportHandler) GetRekap(c *fiber.Ctx) error {
	tanggal := c.Query("tanggal")
	if tanggal == "" {
		tanggal = timeutil.DateString(time.Now())
	}

	baris, total, err := h.buildRekap(tanggal)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data rekap"})
	}

	return c.JSON(fiber.Map{
		"message": "Rekap berhasil",
		"data": fiber.Map{
			"tanggal": tanggal,
			"total":   total,
			"detail":  baris,
		},
	})
}

type KirimRekapRequest struct {
	Tujuan  string `json:"tujuan" validate:"required,email"`
	Tanggal string `json:"tanggal"`
}

// KirimRekapEmail mengirim rekap harian ke alamat tujuan lewat SMTP.
func (h *ReportHandler) KirimRekapEmail(c *fiber.Ctx) error {
	var req KirimRekapRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tanggal := req.Tanggal
	if tanggal == "" {
		tanggal = timeutil.DateString(time.Now())
	}

	baris, total, err := h.buildRekap(tanggal)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data rekap"})
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Rekap Presensi %s\n\n", tanggal)
	for _, b := range baris {
		fmt.Fprintf(&body, "%-20s %-10s %d\n", b.Kelas, b.Sesi, b.Jumlah)
	}
	fmt.Fprintf(&body, "\nTotal: %d presensi\n", total)

	m := gomail.NewMessage()
	m.SetHeader("From", config.GetEnv("SMTP_FROM", "noreply@dashboard-presensi.local"))
	m.SetHeader("To", req.Tujuan)
	m.SetHeader("Subject", fmt.Sprintf("Rekap Presensi %s", tanggal))
	m.SetBody("text/plain", body.String())

	d := gomail.NewDialer(
		config.GetEnv("SMTP_HOST", "localhost"),
		config.GetEnvAsInt("SMTP_PORT", 587),
		config.GetEnv("SMTP_USER", ""),
		config.GetEnv("SMTP_PASSWORD", ""),
	)

	if err := d.DialAndSend(m); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengirim email rekap"})
	}

	return c.JSON(fiber.Map{"message": "Rekap berhasil dikirim ke " + req.Tujuan})
}

func (h *ReportHandler) buildRekap(tanggal string) ([]rekapBaris, int64, error) {
	rows, err := h.presensiRepo.RekapByTanggal(tanggal)
	if err != nil {
		return nil, 0, err
	}

	// Map id kelas -> nama untuk label rekap
	kelasList, err := h.kelasRepo.GetAll()
	if err != nil {
		return nil, 0, err
	}
	namaKelas := make(map[uint]string, len(kelasList))
	for _, k := range kelasList {
		namaKelas[k.ID] = k.Nama
	}

	var baris []rekapBaris
	var total int64
	for _, row := range rows {
		nama := "Umum"
		if row.KelasID != nil {
			if n, ok := namaKelas[*row.KelasID]; ok {
				nama = n
			}
		}
		baris = append(baris, rekapBaris{Kelas: nama, Sesi: row.Sesi, Jumlah: row.Jumlah})
		total += row.Jumlah
	}
	return baris, total, nil
}
