package repository

import (
	"dashboard-presensi-backend/internal/model"

	"gorm.io/gorm"
)

type DashboardStats struct {
	TotalWarga      int64       `json:"total_warga"`
	TotalKelas      int64       `json:"total_kelas"`
	PresensiHariIni int64       `json:"presensi_hari_ini"`
	PerSesi         []SesiCount `json:"per_sesi"`
}

type DashboardRepository interface {
	GetStats(tanggal string) (*DashboardStats, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

func (r *dashboardRepository) GetStats(tanggal string) (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Warga{}).Where("aktif = ?", true).Count(&stats.TotalWarga).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Kelas{}).Where("aktif = ?", true).Count(&stats.TotalKelas).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Presensi{}).Where("tanggal = ?", tanggal).Count(&stats.PresensiHariIni).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Presensi{}).
		Select("sesi, count(*) as jumlah").
		Where("tanggal = ?", tanggal).
		Group("sesi").
		Scan(&stats.PerSesi).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
