package handler

import (
	"strconv"
	"time"

	"dashboard-presensi-backend/internal/model"
	"dashboard-presensi-backend/internal/repository"
	"dashboard-presensi-backend/internal/scan"
	"dashboard-presensi-backend/internal/timeutil"

	"github.com/gofiber/fiber/v2"
)

// ScanHandler melayani kiosk presensi publik. Endpoint scan selalu membalas
// 200 dengan Outcome; status sukses/gagal ada di payload karena kiosk yang
// merender, bukan client API biasa.
type ScanHandler struct {
	engine    *scan.Engine
	resolver  *scan.Resolver
	kelasRepo repository.KelasRepository
}

func NewScanHandler(engine *scan.Engine, resolver *scan.Resolver, kelasRepo repository.KelasRepository) *ScanHandler {
	return &ScanHandler{engine: engine, resolver: resolver, kelasRepo: kelasRepo}
}

type ScanRequest struct {
	RFID    string `json:"rfid"`
	Mode    string `json:"mode"` // auto / manual
	Locked  bool   `json:"locked"`
	KelasID *uint  `json:"kelas_id"` // mode manual, nil = umum
	Sesi    string `json:"sesi"`     // mode manual
}

type PilihKelasRequest struct {
	JadwalID uint `json:"jadwal_id"`
}

func (h *ScanHandler) Scan(c *fiber.Ctx) error {
	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	mode := scan.ModeAuto
	if req.Mode == string(scan.ModeManual) {
		mode = scan.ModeManual
	}

	if mode == scan.ModeManual && req.Sesi != "" && !model.ValidSesi(req.Sesi) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Sesi tidak dikenal"})
	}

	outcome := h.engine.SubmitScan(req.RFID, scan.Config{
		Mode:    mode,
		Locked:  req.Locked,
		KelasID: req.KelasID,
		Sesi:    req.Sesi,
	})
	return c.JSON(outcome)
}

// PilihKelas dipanggil kiosk setelah operator memilih salah satu kandidat
// jadwal dari scan yang berstatus pilih_kelas.
func (h *ScanHandler) PilihKelas(c *fiber.Ctx) error {
	var req PilihKelasRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	outcome := h.engine.ResolveChoice(req.JadwalID)
	return c.JSON(outcome)
}

// GetSesi mengembalikan daftar sesi untuk dropdown mode manual umum.
func (h *ScanHandler) GetSesi(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Berhasil mengambil daftar sesi", "data": model.SesiList})
}

// GetKelas mengembalikan kelas aktif untuk dropdown konfigurasi kiosk.
func (h *ScanHandler) GetKelas(c *fiber.Ctx) error {
	list, err := h.kelasRepo.GetAllAktif()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data kelas"})
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil data kelas", "data": list})
}

// GetJadwalAktif mencari jadwal yang sedang berjalan untuk satu kelas
// (kelas_id kosong = jadwal umum). Dipakai mode manual untuk menentukan
// sesi otomatis saat operator memilih kelas.
func (h *ScanHandler) GetJadwalAktif(c *fiber.Ctx) error {
	var kelasID *uint
	if raw := c.Query("kelas_id"); raw != "" && raw != "umum" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "kelas_id tidak valid"})
		}
		v := uint(id)
		kelasID = &v
	}

	now := time.Now()
	jadwal, err := h.resolver.ResolveForKelas(kelasID, timeutil.DayName(now), timeutil.ClockString(now))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil jadwal"})
	}

	if jadwal == nil {
		return c.JSON(fiber.Map{"message": "Tidak ada jadwal aktif saat ini", "data": nil})
	}
	return c.JSON(fiber.Map{"message": "Jadwal aktif ditemukan", "data": jadwal})
}
