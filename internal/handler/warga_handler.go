package handler

import (
	"strconv"

	"dashboard-presensi-backend/internal/model"
	"dashboard-presensi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type WargaHandler struct {
	repo repository.WargaRepository
}

func NewWargaHandler(repo repository.WargaRepository) *WargaHandler {
	return &WargaHandler{repo: repo}
}

type WargaRequest struct {
	Nama         string  `json:"nama" validate:"required"`
	JenisKelamin string  `json:"jenis_kelamin" validate:"required,oneof=L P"`
	Kelompok     *string `json:"kelompok"`
	RFID         string  `json:"rfid" validate:"required,numeric"`
	Aktif        *bool   `json:"aktif"`
	KelasIDs     []uint  `json:"kelas_ids"`
}

func (h *WargaHandler) GetAll(c *fiber.Ctx) error {
	search := c.Query("search")

	list, err := h.repo.GetAll(search)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data warga"})
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil data warga", "data": list})
}

func (h *WargaHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	warga, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Warga tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil warga", "data": warga})
}

func (h *WargaHandler) Create(c *fiber.Ctx) error {
	var req WargaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	warga := model.Warga{
		Nama:         req.Nama,
		JenisKelamin: req.JenisKelamin,
		Kelompok:     req.Kelompok,
		RFID:         req.RFID,
		Aktif:        true,
	}
	if req.Aktif != nil {
		warga.Aktif = *req.Aktif
	}

	if err := h.repo.Create(&warga); err != nil {
		// Kemungkinan error: RFID sudah dipakai warga lain (unique)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan warga, RFID mungkin sudah terdaftar"})
	}

	// Simpan keanggotaan kelas (replace penuh, bukan diff)
	if err := h.repo.ReplaceKelas(warga.ID, req.KelasIDs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Warga tersimpan tapi gagal menyimpan kelas"})
	}

	return c.JSON(fiber.Map{"message": "Warga berhasil dibuat", "data": warga})
}

func (h *WargaHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	warga, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Warga tidak ditemukan"})
	}

	var req WargaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	warga.Nama = req.Nama
	warga.JenisKelamin = req.JenisKelamin
	warga.Kelompok = req.Kelompok
	warga.RFID = req.RFID
	if req.Aktif != nil {
		warga.Aktif = *req.Aktif
	}

	if err := h.repo.Update(warga); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan warga"})
	}

	if err := h.repo.ReplaceKelas(warga.ID, req.KelasIDs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Warga tersimpan tapi gagal menyimpan kelas"})
	}

	return c.JSON(fiber.Map{"message": "Warga berhasil diupdate", "data": warga})
}

func (h *WargaHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus warga"})
	}
	return c.JSON(fiber.Map{"message": "Warga berhasil dihapus"})
}
