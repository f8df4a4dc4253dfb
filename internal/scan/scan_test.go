package scan

import (
	"testing"
	"time"

	"dashboard-presensi-backend/internal/model"
	"dashboard-presensi-backend/internal/repository"
	"dashboard-presensi-backend/internal/timeutil"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Jam tetap untuk semua test: 06:30 pagi.
var jamTest = time.Date(2026, 8, 31, 6, 30, 0, 0, time.Local)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Warga{},
		&model.Kelas{},
		&model.KelasWarga{},
		&model.Jadwal{},
		&model.Presensi{},
	))
	return db
}

func newTestEngine(db *gorm.DB) *Engine {
	resolver := NewResolver(repository.NewJadwalRepository(db))
	engine := NewEngine(
		repository.NewWargaRepository(db),
		repository.NewPresensiRepository(db),
		resolver,
	)
	engine.Now = func() time.Time { return jamTest }
	return engine
}

func seedWarga(t *testing.T, db *gorm.DB, nama, rfid string, aktif bool) *model.Warga {
	t.Helper()
	warga := &model.Warga{Nama: nama, JenisKelamin: "L", RFID: rfid, Aktif: aktif}
	require.NoError(t, db.Create(warga).Error)
	return warga
}

// seedKelasDenganJadwal membuat kelas + jadwal fajar pada hari jamTest
// dengan jendela mulai-selesai, lalu mendaftarkan warga ke kelas itu.
func seedKelasDenganJadwal(t *testing.T, db *gorm.DB, warga *model.Warga, nama, mulai, selesai string) *model.Kelas {
	t.Helper()
	kelas := &model.Kelas{Nama: nama, Aktif: true}
	require.NoError(t, db.Create(kelas).Error)

	jadwal := &model.Jadwal{
		KelasID:              &kelas.ID,
		Hari:                 timeutil.DayName(jamTest),
		Sesi:                 model.SesiFajar,
		WaktuMulaiPresensi:   mulai,
		WaktuSelesaiPresensi: selesai,
		Aktif:                true,
	}
	require.NoError(t, db.Create(jadwal).Error)

	require.NoError(t, db.Create(&model.KelasWarga{WargaID: warga.ID, KelasID: kelas.ID}).Error)
	return kelas
}

func countPresensi(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&model.Presensi{}).Count(&count).Error)
	return count
}
