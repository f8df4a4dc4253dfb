package repository

import (
	"dashboard-presensi-backend/internal/model"

	"gorm.io/gorm"
)

type WargaRepository interface {
	Create(warga *model.Warga) error
	GetAll(search string) ([]model.Warga, error)
	GetByID(id uint) (*model.Warga, error)
	GetByRFID(rfid string) (*model.Warga, error)
	Update(warga *model.Warga) error
	Delete(id uint) error
	GetKelasIDs(wargaID uint) ([]uint, error)
	ReplaceKelas(wargaID uint, kelasIDs []uint) error
}

type wargaRepository struct {
	db *gorm.DB
}

func NewWargaRepository(db *gorm.DB) WargaRepository {
	return &wargaRepository{db}
}

func (r *wargaRepository) Create(warga *model.Warga) error {
	return r.db.Create(warga).Error
}

func (r *wargaRepository) GetAll(search string) ([]model.Warga, error) {
	var list []model.Warga
	query := r.db.Preload("KelasWarga.Kelas").Order("nama asc")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("nama LIKE ? OR rfid LIKE ?", pattern, pattern)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *wargaRepository) GetByID(id uint) (*model.Warga, error) {
	var warga model.Warga
	err := r.db.Preload("KelasWarga.Kelas").First(&warga, id).Error
	return &warga, err
}

func (r *wargaRepository) GetByRFID(rfid string) (*model.Warga, error) {
	var warga model.Warga
	// Gunakan Find + Limit(1) agar GORM tidak mencetak log error "record not found"
	err := r.db.Where("rfid = ?", rfid).Limit(1).Find(&warga).Error
	if err != nil {
		return nil, err
	}
	if warga.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &warga, nil
}

func (r *wargaRepository) Update(warga *model.Warga) error {
	return r.db.Save(warga).Error
}

func (r *wargaRepository) Delete(id uint) error {
	return r.db.Delete(&model.Warga{}, id).Error
}

func (r *wargaRepository) GetKelasIDs(wargaID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.KelasWarga{}).Where("warga_id = ?", wargaID).Pluck("kelas_id", &ids).Error
	return ids, err
}

// ReplaceKelas menulis ulang daftar kelas warga: hapus semua baris lama lalu
// insert daftar baru (bukan diff), sama seperti perilaku form admin.
func (r *wargaRepository) ReplaceKelas(wargaID uint, kelasIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("warga_id = ?", wargaID).Delete(&model.KelasWarga{}).Error; err != nil {
			return err
		}
		if len(kelasIDs) == 0 {
			return nil
		}
		rows := make([]model.KelasWarga, 0, len(kelasIDs))
		for _, kelasID := range kelasIDs {
			rows = append(rows, model.KelasWarga{WargaID: wargaID, KelasID: kelasID})
		}
		return tx.Create(&rows).Error
	})
}
