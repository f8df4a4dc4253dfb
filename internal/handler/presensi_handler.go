package handler

import (
	"strconv"
	"time"

	"dashboard-presensi-backend/internal/repository"
	"dashboard-presensi-backend/internal/timeutil"

	"github.com/gofiber/fiber/v2"
)

type PresensiHandler struct {
	repo repository.PresensiRepository
}

func NewPresensiHandler(repo repository.PresensiRepository) *PresensiHandler {
	return &PresensiHandler{repo: repo}
}

// GetAll untuk tabel admin, difilter tanggal + kelas + sesi + pencarian nama/RFID.
// kelas_id: kosong = semua, "umum" = presensi tanpa kelas, selain itu id kelas.
func (h *PresensiHandler) GetAll(c *fiber.Ctx) error {
	tanggal := c.Query("tanggal")
	if tanggal == "" {
		tanggal = timeutil.DateString(time.Now())
	}
	kelasFilter := c.Query("kelas_id")
	sesi := c.Query("sesi")
	search := c.Query("search")

	list, err := h.repo.GetByFilter(tanggal, kelasFilter, sesi, search)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data presensi"})
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil data presensi", "data": list})
}

func (h *PresensiHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus presensi"})
	}
	return c.JSON(fiber.Map{"message": "Presensi berhasil dihapus"})
}
