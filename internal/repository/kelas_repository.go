package repository

import (
	"dashboard-presensi-backend/internal/model"

	"gorm.io/gorm"
)

type KelasRepository interface {
	Create(kelas *model.Kelas) error
	GetAll() ([]model.Kelas, error)
	GetAllAktif() ([]model.Kelas, error)
	GetByID(id uint) (*model.Kelas, error)
	Update(kelas *model.Kelas) error
	Delete(id uint) error
}

type kelasRepository struct {
	db *gorm.DB
}

func NewKelasRepository(db *gorm.DB) KelasRepository {
	return &kelasRepository{db}
}

func (r *kelasRepository) Create(kelas *model.Kelas) error {
	return r.db.Create(kelas).Error
}

func (r *kelasRepository) GetAll() ([]model.Kelas, error) {
	var list []model.Kelas
	err := r.db.Order("nama asc").Find(&list).Error
	return list, err
}

func (r *kelasRepository) GetAllAktif() ([]model.Kelas, error) {
	var list []model.Kelas
	err := r.db.Where("aktif = ?", true).Order("nama asc").Find(&list).Error
	return list, err
}

func (r *kelasRepository) GetByID(id uint) (*model.Kelas, error) {
	var kelas model.Kelas
	err := r.db.First(&kelas, id).Error
	return &kelas, err
}

func (r *kelasRepository) Update(kelas *model.Kelas) error {
	return r.db.Save(kelas).Error
}

func (r *kelasRepository) Delete(id uint) error {
	return r.db.Delete(&model.Kelas{}, id).Error
}
