package scan

import (
	"testing"

	"dashboard-presensi-backend/internal/model"
	"dashboard-presensi-backend/internal/repository"
	"dashboard-presensi-backend/internal/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveActiveBatasJendela(t *testing.T) {
	db := newTestDB(t)
	warga := seedWarga(t, db, "Budi", "0001111111", true)
	kelas := seedKelasDenganJadwal(t, db, warga, "Kelas Fajar", "06:00:00", "07:00:00")
	resolver := NewResolver(repository.NewJadwalRepository(db))

	hari := timeutil.DayName(jamTest)

	// Batas jendela inklusif dua sisi
	for _, jam := range []string{"06:00:00", "06:30:00", "07:00:00"} {
		active, err := resolver.ResolveActive([]uint{kelas.ID}, hari, jam)
		require.NoError(t, err)
		assert.Len(t, active, 1, "jam %s harus masuk jendela", jam)
	}

	for _, jam := range []string{"05:59:59", "07:00:01"} {
		active, err := resolver.ResolveActive([]uint{kelas.ID}, hari, jam)
		require.NoError(t, err)
		assert.Empty(t, active, "jam %s harus di luar jendela", jam)
	}
}

func TestResolveActiveHariBerbeda(t *testing.T) {
	db := newTestDB(t)
	warga := seedWarga(t, db, "Budi", "0001111111", true)
	kelas := seedKelasDenganJadwal(t, db, warga, "Kelas Fajar", "06:00:00", "07:00:00")
	resolver := NewResolver(repository.NewJadwalRepository(db))

	active, err := resolver.ResolveActive([]uint{kelas.ID}, timeutil.DayName(jamTest.AddDate(0, 0, 1)), "06:30:00")
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestResolveActiveJadwalNonAktif(t *testing.T) {
	db := newTestDB(t)
	warga := seedWarga(t, db, "Budi", "0001111111", true)
	kelas := seedKelasDenganJadwal(t, db, warga, "Kelas Fajar", "06:00:00", "07:00:00")
	require.NoError(t, db.Model(&model.Jadwal{}).Where("kelas_id = ?", kelas.ID).Update("aktif", false).Error)
	resolver := NewResolver(repository.NewJadwalRepository(db))

	active, err := resolver.ResolveActive([]uint{kelas.ID}, timeutil.DayName(jamTest), "06:30:00")
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestResolveForKelasUmum(t *testing.T) {
	db := newTestDB(t)
	jadwal := &model.Jadwal{
		KelasID:              nil, // jadwal umum
		Hari:                 timeutil.DayName(jamTest),
		Sesi:                 model.SesiPagi1,
		WaktuMulaiPresensi:   "06:00:00",
		WaktuSelesaiPresensi: "07:00:00",
		Aktif:                true,
	}
	require.NoError(t, db.Create(jadwal).Error)
	resolver := NewResolver(repository.NewJadwalRepository(db))

	found, err := resolver.ResolveForKelas(nil, timeutil.DayName(jamTest), "06:30:00")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, model.SesiPagi1, found.Sesi)
	assert.Nil(t, found.KelasID)

	// Di luar jendela tidak ada hasil, dan itu bukan error
	none, err := resolver.ResolveForKelas(nil, timeutil.DayName(jamTest), "08:00:00")
	require.NoError(t, err)
	assert.Nil(t, none)
}
