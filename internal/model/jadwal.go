package model

import "gorm.io/gorm"

// Jadwal adalah jendela presensi berulang untuk kombinasi hari + sesi.
// KelasID nil berarti jadwal umum (berlaku tanpa kelas).
type Jadwal struct {
	gorm.Model
	KelasID              *uint  `json:"kelas_id"`
	Hari                 string `json:"hari"` // Senin..Minggu
	Sesi                 string `json:"sesi"` // fajar, pagi_1, pagi_2, siang, sore, maghrib, malam
	WaktuMulaiPresensi   string `json:"waktu_mulai_presensi"`   // HH:MM:SS
	WaktuSelesaiPresensi string `json:"waktu_selesai_presensi"` // HH:MM:SS
	Aktif                bool   `json:"aktif"`

	// Relasi
	Kelas *Kelas `json:"kelas" gorm:"foreignKey:KelasID"`
}
