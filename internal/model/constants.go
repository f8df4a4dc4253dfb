package model

// Sesi pengajian, tujuh slot waktu per hari.
const (
	SesiFajar   = "fajar"
	SesiPagi1   = "pagi_1"
	SesiPagi2   = "pagi_2"
	SesiSiang   = "siang"
	SesiSore    = "sore"
	SesiMaghrib = "maghrib"
	SesiMalam   = "malam"
)

var SesiList = []string{SesiFajar, SesiPagi1, SesiPagi2, SesiSiang, SesiSore, SesiMaghrib, SesiMalam}

// Status presensi. Kiosk hanya pernah menulis hadir, sisanya diisi admin.
const (
	StatusHadir = "hadir"
	StatusIzin  = "izin"
	StatusSakit = "sakit"
	StatusAlpa  = "alpa"
)

func ValidSesi(sesi string) bool {
	for _, s := range SesiList {
		if s == sesi {
			return true
		}
	}
	return false
}
