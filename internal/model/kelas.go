package model

import "gorm.io/gorm"

type Kelas struct {
	gorm.Model
	Nama  string `json:"nama"`
	Aktif bool   `json:"aktif"`

	// Relasi
	Jadwal     []Jadwal     `json:"jadwal,omitempty" gorm:"foreignKey:KelasID"`
	KelasWarga []KelasWarga `json:"kelas_warga,omitempty" gorm:"foreignKey:KelasID"`
}

// KelasWarga adalah relasi many-to-many antara Kelas dan Warga.
// Saat warga disimpan dari admin, baris lama dihapus lalu ditulis ulang
// sesuai daftar kelas yang dikirim (replace, bukan diff).
type KelasWarga struct {
	gorm.Model
	WargaID uint `json:"warga_id"`
	KelasID uint `json:"kelas_id"`

	Kelas Kelas `json:"kelas" gorm:"foreignKey:KelasID"`
}
