package repository

import (
	"dashboard-presensi-backend/internal/model"

	"gorm.io/gorm"
)

type JadwalRepository interface {
	Create(jadwal *model.Jadwal) error
	GetAll(hari string, kelasID *uint) ([]model.Jadwal, error)
	GetByID(id uint) (*model.Jadwal, error)
	Update(jadwal *model.Jadwal) error
	Delete(id uint) error
	GetAktifByKelasIDs(kelasIDs []uint, hari string) ([]model.Jadwal, error)
	GetAktifByKelas(kelasID *uint, hari string) ([]model.Jadwal, error)
}

type jadwalRepository struct {
	db *gorm.DB
}

func NewJadwalRepository(db *gorm.DB) JadwalRepository {
	return &jadwalRepository{db}
}

func (r *jadwalRepository) Create(jadwal *model.Jadwal) error {
	return r.db.Create(jadwal).Error
}

func (r *jadwalRepository) GetAll(hari string, kelasID *uint) ([]model.Jadwal, error) {
	var list []model.Jadwal
	query := r.db.Preload("Kelas").Order("hari asc").Order("waktu_mulai_presensi asc")
	if hari != "" {
		query = query.Where("hari = ?", hari)
	}
	if kelasID != nil {
		query = query.Where("kelas_id = ?", *kelasID)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *jadwalRepository) GetByID(id uint) (*model.Jadwal, error) {
	var jadwal model.Jadwal
	err := r.db.Preload("Kelas").First(&jadwal, id).Error
	return &jadwal, err
}

func (r *jadwalRepository) Update(jadwal *model.Jadwal) error {
	return r.db.Save(jadwal).Error
}

func (r *jadwalRepository) Delete(id uint) error {
	return r.db.Delete(&model.Jadwal{}, id).Error
}

// GetAktifByKelasIDs mengambil jadwal aktif milik kelas-kelas tersebut pada
// hari tertentu. Preload Kelas penting untuk pesan sukses dan pilihan kelas.
func (r *jadwalRepository) GetAktifByKelasIDs(kelasIDs []uint, hari string) ([]model.Jadwal, error) {
	var list []model.Jadwal
	err := r.db.Preload("Kelas").
		Where("kelas_id IN ? AND hari = ? AND aktif = ?", kelasIDs, hari, true).
		Find(&list).Error
	return list, err
}

// GetAktifByKelas versi satu kelas; kelasID nil berarti jadwal umum (kelas_id NULL).
func (r *jadwalRepository) GetAktifByKelas(kelasID *uint, hari string) ([]model.Jadwal, error) {
	var list []model.Jadwal
	query := r.db.Preload("Kelas").Where("hari = ? AND aktif = ?", hari, true)
	if kelasID != nil {
		query = query.Where("kelas_id = ?", *kelasID)
	} else {
		query = query.Where("kelas_id IS NULL")
	}
	err := query.Find(&list).Error
	return list, err
}
