package repository

import (
	"dashboard-presensi-backend/internal/model"

	"gorm.io/gorm"
)

// RekapRow adalah satu baris hitungan presensi per kelas + sesi.
type RekapRow struct {
	KelasID *uint  `json:"kelas_id"`
	Sesi    string `json:"sesi"`
	Jumlah  int64  `json:"jumlah"`
}

type SesiCount struct {
	Sesi   string `json:"sesi"`
	Jumlah int64  `json:"jumlah"`
}

type PresensiRepository interface {
	Create(presensi *model.Presensi) error
	FindExisting(wargaID uint, tanggal, sesi string, kelasID *uint) (*model.Presensi, error)
	GetByFilter(tanggal, kelasFilter, sesi, search string) ([]model.Presensi, error)
	Delete(id uint) error
	CountByTanggal(tanggal string) (int64, error)
	CountPerSesi(tanggal string) ([]SesiCount, error)
	RekapByTanggal(tanggal string) ([]RekapRow, error)
}

type presensiRepository struct {
	db *gorm.DB
}

func NewPresensiRepository(db *gorm.DB) PresensiRepository {
	return &presensiRepository{db}
}

func (r *presensiRepository) Create(presensi *model.Presensi) error {
	return r.db.Create(presensi).Error
}

// FindExisting mencari presensi untuk (warga, tanggal, sesi, kelas-atau-NULL).
// Mengembalikan (nil, nil) kalau belum ada; nol baris bukan error di sini.
func (r *presensiRepository) FindExisting(wargaID uint, tanggal, sesi string, kelasID *uint) (*model.Presensi, error) {
	var presensi model.Presensi
	query := r.db.Where("warga_id = ? AND tanggal = ? AND sesi = ?", wargaID, tanggal, sesi)
	if kelasID != nil {
		query = query.Where("kelas_id = ?", *kelasID)
	} else {
		query = query.Where("kelas_id IS NULL")
	}
	err := query.Limit(1).Find(&presensi).Error
	if err != nil {
		return nil, err
	}
	if presensi.ID == 0 {
		return nil, nil
	}
	return &presensi, nil
}

// GetByFilter untuk tabel admin. kelasFilter: "" = semua, "umum" = kelas_id NULL,
// selain itu dianggap id kelas.
func (r *presensiRepository) GetByFilter(tanggal, kelasFilter, sesi, search string) ([]model.Presensi, error) {
	var list []model.Presensi
	query := r.db.Preload("Warga").Preload("Kelas").
		Where("presensis.tanggal = ?", tanggal).
		Order("presensis.created_at desc")

	switch kelasFilter {
	case "":
	case "umum":
		query = query.Where("presensis.kelas_id IS NULL")
	default:
		query = query.Where("presensis.kelas_id = ?", kelasFilter)
	}

	if sesi != "" {
		query = query.Where("presensis.sesi = ?", sesi)
	}

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Joins("JOIN wargas ON wargas.id = presensis.warga_id").
			Where("wargas.nama LIKE ? OR wargas.rfid LIKE ?", pattern, pattern)
	}

	err := query.Find(&list).Error
	return list, err
}

func (r *presensiRepository) Delete(id uint) error {
	return r.db.Delete(&model.Presensi{}, id).Error
}

func (r *presensiRepository) CountByTanggal(tanggal string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Presensi{}).Where("tanggal = ?", tanggal).Count(&count).Error
	return count, err
}

func (r *presensiRepository) CountPerSesi(tanggal string) ([]SesiCount, error) {
	var rows []SesiCount
	err := r.db.Model(&model.Presensi{}).
		Select("sesi, count(*) as jumlah").
		Where("tanggal = ?", tanggal).
		Group("sesi").
		Scan(&rows).Error
	return rows, err
}

func (r *presensiRepository) RekapByTanggal(tanggal string) ([]RekapRow, error) {
	var rows []RekapRow
	err := r.db.Model(&model.Presensi{}).
		Select("kelas_id, sesi, count(*) as jumlah").
		Where("tanggal = ?", tanggal).
		Group("kelas_id").Group("sesi").
		Scan(&rows).Error
	return rows, err
}
