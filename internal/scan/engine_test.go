package scan

import (
	"testing"

	"dashboard-presensi-backend/internal/model"
	"dashboard-presensi-backend/internal/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitScanKodeKosong(t *testing.T) {
	engine := newTestEngine(newTestDB(t))

	outcome := engine.SubmitScan("", Config{Mode: ModeAuto})
	assert.Equal(t, StatusIdle, outcome.Status)
}

func TestSubmitScanManualBelumDikunci(t *testing.T) {
	db := newTestDB(t)
	seedWarga(t, db, "Budi", "0001111111", true)
	engine := newTestEngine(db)

	outcome := engine.SubmitScan("0001111111", Config{Mode: ModeManual, Locked: false})
	assert.Equal(t, StatusIdle, outcome.Status)
	assert.EqualValues(t, 0, countPresensi(t, db))
}

func TestSubmitScanRFIDTidakTerdaftar(t *testing.T) {
	db := newTestDB(t)
	engine := newTestEngine(db)

	outcome := engine.SubmitScan("9999999999", Config{Mode: ModeAuto})
	assert.Equal(t, StatusError, outcome.Status)
	assert.Equal(t, "RFID tidak terdaftar.", outcome.Message)
	assert.Empty(t, outcome.WargaNama)
	assert.EqualValues(t, 0, countPresensi(t, db))
}

func TestSubmitScanWargaTidakAktif(t *testing.T) {
	db := newTestDB(t)
	seedWarga(t, db, "Budi", "0001111111", false)
	engine := newTestEngine(db)

	outcome := engine.SubmitScan("0001111111", Config{Mode: ModeAuto})
	assert.Equal(t, StatusError, outcome.Status)
	assert.Equal(t, "Warga Budi tidak aktif.", outcome.Message)
	assert.Equal(t, "Budi", outcome.WargaNama)
}

func TestSubmitScanTanpaKelas(t *testing.T) {
	db := newTestDB(t)
	seedWarga(t, db, "Budi", "0001111111", true)
	engine := newTestEngine(db)

	outcome := engine.SubmitScan("0001111111", Config{Mode: ModeAuto})
	assert.Equal(t, StatusError, outcome.Status)
	assert.Equal(t, "Tidak terdaftar di kelas manapun.", outcome.Message)
	assert.EqualValues(t, 0, countPresensi(t, db))
}

func TestSubmitScanTanpaJadwalAktif(t *testing.T) {
	db := newTestDB(t)
	warga := seedWarga(t, db, "Budi", "0001111111", true)
	// Jendela sudah lewat saat jamTest (06:30)
	seedKelasDenganJadwal(t, db, warga, "Kelas Subuh", "04:30:00", "05:30:00")
	engine := newTestEngine(db)

	outcome := engine.SubmitScan("0001111111", Config{Mode: ModeAuto})
	assert.Equal(t, StatusError, outcome.Status)
	assert.Equal(t, "Tidak terdapat jadwal pengajian saat ini.", outcome.Message)
	assert.EqualValues(t, 0, countPresensi(t, db))
}

func TestSubmitScanSatuJadwal(t *testing.T) {
	db := newTestDB(t)
	warga := seedWarga(t, db, "Alex", "0001234567", true)
	kelas := seedKelasDenganJadwal(t, db, warga, "Fajar Group", "06:00:00", "07:00:00")
	engine := newTestEngine(db)

	outcome := engine.SubmitScan("0001234567", Config{Mode: ModeAuto})
	assert.Equal(t, StatusSuccess, outcome.Status)
	assert.Equal(t, "Presensi Berhasil: Fajar Group", outcome.Message)
	assert.Equal(t, "Alex", outcome.WargaNama)

	var presensi model.Presensi
	require.NoError(t, db.First(&presensi).Error)
	assert.Equal(t, warga.ID, presensi.WargaID)
	require.NotNil(t, presensi.KelasID)
	assert.Equal(t, kelas.ID, *presensi.KelasID)
	assert.Equal(t, timeutil.DateString(jamTest), presensi.Tanggal)
	assert.Equal(t, model.SesiFajar, presensi.Sesi)
	assert.Equal(t, model.StatusHadir, presensi.Status)
}

func TestSubmitScanIdempoten(t *testing.T) {
	db := newTestDB(t)
	warga := seedWarga(t, db, "Alex", "0001234567", true)
	seedKelasDenganJadwal(t, db, warga, "Fajar Group", "06:00:00", "07:00:00")
	engine := newTestEngine(db)

	pertama := engine.SubmitScan("0001234567", Config{Mode: ModeAuto})
	assert.Equal(t, StatusSuccess, pertama.Status)

	// Scan ulang kartu yang sama tetap sukses, bukan error, dan tidak
	// menambah record
	kedua := engine.SubmitScan("0001234567", Config{Mode: ModeAuto})
	assert.Equal(t, StatusSuccess, kedua.Status)
	assert.Equal(t, "Sudah presensi: Fajar Group - fajar", kedua.Message)
	assert.EqualValues(t, 1, countPresensi(t, db))
}

func TestSubmitScanDuaJadwalMenungguPilihan(t *testing.T) {
	db := newTestDB(t)
	warga := seedWarga(t, db, "Alex", "0001234567", true)
	seedKelasDenganJadwal(t, db, warga, "Kelas A", "06:00:00", "07:00:00")
	kelasB := seedKelasDenganJadwal(t, db, warga, "Kelas B", "06:00:00", "08:00:00")
	engine := newTestEngine(db)

	outcome := engine.SubmitScan("0001234567", Config{Mode: ModeAuto})
	assert.Equal(t, StatusPilihKelas, outcome.Status)
	assert.Equal(t, "Alex", outcome.WargaNama)
	require.Len(t, outcome.Jadwal, 2)
	assert.EqualValues(t, 0, countPresensi(t, db))

	// Operator memilih Kelas B
	var pilihan *model.Jadwal
	for i := range outcome.Jadwal {
		if outcome.Jadwal[i].Kelas != nil && outcome.Jadwal[i].Kelas.Nama == "Kelas B" {
			pilihan = &outcome.Jadwal[i]
		}
	}
	require.NotNil(t, pilihan)

	hasil := engine.ResolveChoice(pilihan.ID)
	assert.Equal(t, StatusSuccess, hasil.Status)
	assert.Equal(t, "Presensi Berhasil: Kelas B", hasil.Message)

	var presensi model.Presensi
	require.NoError(t, db.First(&presensi).Error)
	require.NotNil(t, presensi.KelasID)
	assert.Equal(t, kelasB.ID, *presensi.KelasID)
	assert.EqualValues(t, 1, countPresensi(t, db))

	// State pending sudah dibersihkan
	ulang := engine.ResolveChoice(pilihan.ID)
	assert.Equal(t, StatusError, ulang.Status)
}

func TestResolveChoiceTanpaPending(t *testing.T) {
	engine := newTestEngine(newTestDB(t))

	outcome := engine.ResolveChoice(1)
	assert.Equal(t, StatusError, outcome.Status)
}

func TestResolveChoiceJadwalDiluarKandidat(t *testing.T) {
	db := newTestDB(t)
	warga := seedWarga(t, db, "Alex", "0001234567", true)
	seedKelasDenganJadwal(t, db, warga, "Kelas A", "06:00:00", "07:00:00")
	seedKelasDenganJadwal(t, db, warga, "Kelas B", "06:00:00", "08:00:00")
	engine := newTestEngine(db)

	outcome := engine.SubmitScan("0001234567", Config{Mode: ModeAuto})
	require.Equal(t, StatusPilihKelas, outcome.Status)

	hasil := engine.ResolveChoice(99999)
	assert.Equal(t, StatusError, hasil.Status)
	assert.EqualValues(t, 0, countPresensi(t, db))
}

func TestManualUmumTanpaSesi(t *testing.T) {
	db := newTestDB(t)
	seedWarga(t, db, "Budi", "0001111111", true)
	engine := newTestEngine(db)

	outcome := engine.SubmitScan("0001111111", Config{Mode: ModeManual, Locked: true})
	assert.Equal(t, StatusError, outcome.Status)
	assert.Equal(t, "Sesi belum dipilih/tersedia.", outcome.Message)
	assert.EqualValues(t, 0, countPresensi(t, db))
}

func TestManualUmum(t *testing.T) {
	db := newTestDB(t)
	warga := seedWarga(t, db, "Budi", "0001111111", true)
	engine := newTestEngine(db)

	cfg := Config{Mode: ModeManual, Locked: true, Sesi: model.SesiMaghrib}
	outcome := engine.SubmitScan("0001111111", cfg)
	assert.Equal(t, StatusSuccess, outcome.Status)
	assert.Equal(t, "Presensi Berhasil!", outcome.Message)

	var presensi model.Presensi
	require.NoError(t, db.First(&presensi).Error)
	assert.Equal(t, warga.ID, presensi.WargaID)
	assert.Nil(t, presensi.KelasID)
	assert.Equal(t, model.SesiMaghrib, presensi.Sesi)

	// Scan kedua mengenali duplikat pada kelas NULL
	kedua := engine.SubmitScan("0001111111", cfg)
	assert.Equal(t, StatusSuccess, kedua.Status)
	assert.Equal(t, "Anda sudah presensi (maghrib)", kedua.Message)
	assert.EqualValues(t, 1, countPresensi(t, db))
}

func TestManualKelasSpesifik(t *testing.T) {
	db := newTestDB(t)
	warga := seedWarga(t, db, "Budi", "0001111111", true)
	kelas := seedKelasDenganJadwal(t, db, warga, "Kelas Fajar", "06:00:00", "07:00:00")
	engine := newTestEngine(db)

	outcome := engine.SubmitScan("0001111111", Config{
		Mode:    ModeManual,
		Locked:  true,
		KelasID: &kelas.ID,
		Sesi:    model.SesiFajar,
	})
	assert.Equal(t, StatusSuccess, outcome.Status)

	var presensi model.Presensi
	require.NoError(t, db.First(&presensi).Error)
	require.NotNil(t, presensi.KelasID)
	assert.Equal(t, kelas.ID, *presensi.KelasID)
	assert.Equal(t, warga.ID, presensi.WargaID)
}

// Presensi umum dan presensi kelas untuk sesi yang sama adalah record berbeda.
func TestDuplikatUmumTidakMenutupKelas(t *testing.T) {
	db := newTestDB(t)
	warga := seedWarga(t, db, "Budi", "0001111111", true)
	kelas := seedKelasDenganJadwal(t, db, warga, "Kelas Fajar", "06:00:00", "07:00:00")
	engine := newTestEngine(db)

	umum := engine.SubmitScan("0001111111", Config{Mode: ModeManual, Locked: true, Sesi: model.SesiFajar})
	require.Equal(t, StatusSuccess, umum.Status)

	spesifik := engine.SubmitScan("0001111111", Config{Mode: ModeManual, Locked: true, KelasID: &kelas.ID, Sesi: model.SesiFajar})
	require.Equal(t, StatusSuccess, spesifik.Status)
	assert.Equal(t, "Presensi Berhasil!", spesifik.Message)

	assert.EqualValues(t, 2, countPresensi(t, db))
}
