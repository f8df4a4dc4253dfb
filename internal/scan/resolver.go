package scan

import (
	"dashboard-presensi-backend/internal/model"
	"dashboard-presensi-backend/internal/repository"
	"dashboard-presensi-backend/internal/timeutil"
)

// Resolver mencari jadwal yang jendela presensinya sedang terbuka.
type Resolver struct {
	jadwalRepo repository.JadwalRepository
}

func NewResolver(jadwalRepo repository.JadwalRepository) *Resolver {
	return &Resolver{jadwalRepo: jadwalRepo}
}

// ResolveActive mengembalikan jadwal aktif milik kelas-kelas tersebut pada
// hari itu yang jendelanya memuat jam sekarang (mulai <= jam <= selesai,
// perbandingan string HH:MM:SS). Hasil kosong bukan error.
func (r *Resolver) ResolveActive(kelasIDs []uint, hari, jam string) ([]model.Jadwal, error) {
	jadwals, err := r.jadwalRepo.GetAktifByKelasIDs(kelasIDs, hari)
	if err != nil {
		return nil, err
	}
	return filterByJam(jadwals, jam), nil
}

// ResolveForKelas mengembalikan jadwal pertama yang sedang aktif untuk satu
// kelas (nil = jadwal umum). Dipakai mode manual untuk menentukan sesi;
// kalau ada jendela yang tumpang tindih, yang pertama yang dipakai.
func (r *Resolver) ResolveForKelas(kelasID *uint, hari, jam string) (*model.Jadwal, error) {
	jadwals, err := r.jadwalRepo.GetAktifByKelas(kelasID, hari)
	if err != nil {
		return nil, err
	}
	active := filterByJam(jadwals, jam)
	if len(active) == 0 {
		return nil, nil
	}
	return &active[0], nil
}

func filterByJam(jadwals []model.Jadwal, jam string) []model.Jadwal {
	var active []model.Jadwal
	for _, j := range jadwals {
		if timeutil.IsTimeInRange(j.WaktuMulaiPresensi, j.WaktuSelesaiPresensi, jam) {
			active = append(active, j)
		}
	}
	return active
}
