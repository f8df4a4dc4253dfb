package handler

import (
	"strconv"

	"dashboard-presensi-backend/internal/model"
	"dashboard-presensi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type JadwalHandler struct {
	repo repository.JadwalRepository
}

func NewJadwalHandler(repo repository.JadwalRepository) *JadwalHandler {
	return &JadwalHandler{repo: repo}
}

type JadwalRequest struct {
	KelasID              *uint  `json:"kelas_id"` // nil = jadwal umum
	Hari                 string `json:"hari" validate:"required,oneof=Senin Selasa Rabu Kamis Jumat Sabtu Minggu"`
	Sesi                 string `json:"sesi" validate:"required,oneof=fajar pagi_1 pagi_2 siang sore maghrib malam"`
	WaktuMulaiPresensi   string `json:"waktu_mulai_presensi" validate:"required,datetime=15:04:05"`
	WaktuSelesaiPresensi string `json:"waktu_selesai_presensi" validate:"required,datetime=15:04:05"`
	Aktif                *bool  `json:"aktif"`
}

func (h *JadwalHandler) GetAll(c *fiber.Ctx) error {
	hari := c.Query("hari")

	var kelasID *uint
	if raw := c.Query("kelas_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "kelas_id tidak valid"})
		}
		v := uint(id)
		kelasID = &v
	}

	list, err := h.repo.GetAll(hari, kelasID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data jadwal"})
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil data jadwal", "data": list})
}

func (h *JadwalHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	jadwal, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jadwal tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil jadwal", "data": jadwal})
}

func (h *JadwalHandler) Create(c *fiber.Ctx) error {
	var req JadwalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Catatan: jendela yang tumpang tindih untuk kombinasi kelas/hari/sesi yang
	// sama tidak ditolak di sini; ambiguitas diselesaikan saat scan.
	jadwal := model.Jadwal{
		KelasID:              req.KelasID,
		Hari:                 req.Hari,
		Sesi:                 req.Sesi,
		WaktuMulaiPresensi:   req.WaktuMulaiPresensi,
		WaktuSelesaiPresensi: req.WaktuSelesaiPresensi,
		Aktif:                true,
	}
	if req.Aktif != nil {
		jadwal.Aktif = *req.Aktif
	}

	if err := h.repo.Create(&jadwal); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat jadwal"})
	}
	return c.JSON(fiber.Map{"message": "Jadwal berhasil dibuat", "data": jadwal})
}

func (h *JadwalHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	jadwal, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jadwal tidak ditemukan"})
	}

	var req JadwalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	jadwal.KelasID = req.KelasID
	jadwal.Hari = req.Hari
	jadwal.Sesi = req.Sesi
	jadwal.WaktuMulaiPresensi = req.WaktuMulaiPresensi
	jadwal.WaktuSelesaiPresensi = req.WaktuSelesaiPresensi
	if req.Aktif != nil {
		jadwal.Aktif = *req.Aktif
	}
	jadwal.Kelas = nil // Jangan ikut menyimpan relasi preload

	if err := h.repo.Update(jadwal); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan jadwal"})
	}
	return c.JSON(fiber.Map{"message": "Jadwal berhasil diupdate", "data": jadwal})
}

func (h *JadwalHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus jadwal"})
	}
	return c.JSON(fiber.Map{"message": "Jadwal berhasil dihapus"})
}
