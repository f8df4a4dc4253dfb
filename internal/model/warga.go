package model

import "gorm.io/gorm"

type Warga struct {
	gorm.Model
	Nama         string  `json:"nama"`
	JenisKelamin string  `json:"jenis_kelamin"` // L / P
	Kelompok     *string `json:"kelompok"`      // Label bebas, boleh kosong
	RFID         string  `json:"rfid" gorm:"column:rfid;unique;not null"`
	// Default true diisi di handler, bukan tag default GORM: field bool
	// bertag default dilewati saat INSERT kalau nilainya false.
	Aktif bool `json:"aktif"`

	// Relasi
	KelasWarga []KelasWarga `json:"kelas_warga" gorm:"foreignKey:WargaID"`
}
