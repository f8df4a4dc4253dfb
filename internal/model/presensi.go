package model

import "gorm.io/gorm"

type Presensi struct {
	gorm.Model
	WargaID uint   `json:"warga_id"`
	KelasID *uint  `json:"kelas_id"` // nil = presensi umum
	Tanggal string `json:"tanggal"`  // YYYY-MM-DD
	Sesi    string `json:"sesi"`
	Status  string `json:"status"` // hadir/izin/sakit/alpa, kiosk selalu menulis hadir

	// Relasi
	Warga Warga  `json:"warga" gorm:"foreignKey:WargaID"`
	Kelas *Kelas `json:"kelas" gorm:"foreignKey:KelasID"`
}
