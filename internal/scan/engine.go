package scan

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"dashboard-presensi-backend/internal/model"
	"dashboard-presensi-backend/internal/repository"
	"dashboard-presensi-backend/internal/timeutil"

	"gorm.io/gorm"
)

type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeManual Mode = "manual"
)

type Status string

const (
	StatusIdle       Status = "idle"
	StatusLoading    Status = "loading"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
	StatusPilihKelas Status = "pilih_kelas"
)

// Config adalah pengaturan kiosk saat scan masuk. Mode manual memakai
// KelasID (nil = umum) dan Sesi yang sudah dikunci operator.
type Config struct {
	Mode    Mode   `json:"mode"`
	Locked  bool   `json:"locked"`
	KelasID *uint  `json:"kelas_id"`
	Sesi    string `json:"sesi"`
}

// Outcome adalah hasil satu siklus scan, siap dirender kiosk.
// Saat status pilih_kelas, Jadwal berisi kandidat yang harus dipilih operator.
type Outcome struct {
	Status    Status         `json:"status"`
	Message   string         `json:"message"`
	WargaNama string         `json:"warga_nama,omitempty"`
	Jadwal    []model.Jadwal `json:"jadwal,omitempty"`
}

// Engine memproses scan RFID menjadi presensi: cari warga, tentukan jadwal,
// cek duplikat, lalu simpan. Kalau ada lebih dari satu jadwal aktif, keputusan
// diserahkan ke operator lewat ResolveChoice.
//
// Satu Engine per proses. State pending hanya hidup selama satu siklus
// scan -> pilih kelas, dan commit diserialkan lewat mutex.
type Engine struct {
	wargaRepo    repository.WargaRepository
	presensiRepo repository.PresensiRepository
	resolver     *Resolver

	// Now bisa diganti di test untuk mengunci jam.
	Now func() time.Time

	mu           sync.Mutex
	pendingWarga *model.Warga
	candidates   []model.Jadwal
}

func NewEngine(wargaRepo repository.WargaRepository, presensiRepo repository.PresensiRepository, resolver *Resolver) *Engine {
	return &Engine{
		wargaRepo:    wargaRepo,
		presensiRepo: presensiRepo,
		resolver:     resolver,
		Now:          time.Now,
	}
}

// SubmitScan memproses satu kode RFID. Kode kosong atau mode manual yang
// belum dikunci di-skip (kiosk belum siap menerima scan).
func (e *Engine) SubmitScan(code string, cfg Config) Outcome {
	if code == "" {
		return Outcome{Status: StatusIdle}
	}
	if cfg.Mode == ModeManual && !cfg.Locked {
		return Outcome{Status: StatusIdle}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Scan baru membatalkan pilihan kelas yang masih menggantung
	e.clearPending()

	// 1. Cari warga berdasarkan RFID
	warga, err := e.wargaRepo.GetByRFID(code)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return Outcome{Status: StatusError, Message: "RFID tidak terdaftar."}
		}
		return Outcome{Status: StatusError, Message: err.Error()}
	}

	if !warga.Aktif {
		return Outcome{
			Status:    StatusError,
			Message:   fmt.Sprintf("Warga %s tidak aktif.", warga.Nama),
			WargaNama: warga.Nama,
		}
	}

	if cfg.Mode == ModeManual {
		return e.processManual(warga, cfg)
	}
	return e.processAuto(warga)
}

// processAuto menentukan kelas dari keanggotaan warga dan jadwal yang sedang aktif.
func (e *Engine) processAuto(warga *model.Warga) Outcome {
	// 2. Cari kelas warga
	kelasIDs, err := e.wargaRepo.GetKelasIDs(warga.ID)
	if err != nil {
		return Outcome{Status: StatusError, Message: err.Error(), WargaNama: warga.Nama}
	}
	if len(kelasIDs) == 0 {
		return Outcome{Status: StatusError, Message: "Tidak terdaftar di kelas manapun.", WargaNama: warga.Nama}
	}

	// 3. Cari jadwal aktif untuk kelas-kelas itu
	now := e.Now()
	jadwals, err := e.resolver.ResolveActive(kelasIDs, timeutil.DayName(now), timeutil.ClockString(now))
	if err != nil {
		return Outcome{Status: StatusError, Message: err.Error(), WargaNama: warga.Nama}
	}
	if len(jadwals) == 0 {
		return Outcome{Status: StatusError, Message: "Tidak terdapat jadwal pengajian saat ini.", WargaNama: warga.Nama}
	}

	// 4. Satu jadwal langsung commit, lebih dari satu serahkan ke operator
	if len(jadwals) == 1 {
		return e.commit(warga, &jadwals[0])
	}

	e.pendingWarga = warga
	e.candidates = jadwals
	return Outcome{
		Status:    StatusPilihKelas,
		Message:   "Pilih Kelas",
		WargaNama: warga.Nama,
		Jadwal:    jadwals,
	}
}

// processManual memakai kelas + sesi yang sudah dikunci di konfigurasi kiosk.
func (e *Engine) processManual(warga *model.Warga, cfg Config) Outcome {
	if cfg.Sesi == "" {
		return Outcome{Status: StatusError, Message: "Sesi belum dipilih/tersedia.", WargaNama: warga.Nama}
	}

	jadwal := &model.Jadwal{KelasID: cfg.KelasID, Sesi: cfg.Sesi}
	return e.commit(warga, jadwal)
}

// ResolveChoice menyelesaikan scan yang menunggu pilihan kelas. Hanya valid
// selama ada warga pending; state pending dibersihkan apa pun hasilnya.
func (e *Engine) ResolveChoice(jadwalID uint) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pendingWarga == nil {
		return Outcome{Status: StatusError, Message: "Tidak ada scan yang menunggu pilihan kelas."}
	}

	warga := e.pendingWarga
	var chosen *model.Jadwal
	for i := range e.candidates {
		if e.candidates[i].ID == jadwalID {
			chosen = &e.candidates[i]
			break
		}
	}
	e.clearPending()

	if chosen == nil {
		return Outcome{Status: StatusError, Message: "Jadwal tidak termasuk pilihan yang tersedia.", WargaNama: warga.Nama}
	}
	return e.commit(warga, chosen)
}

// commit adalah langkah bersama semua jalur: cek presensi yang sudah ada,
// kalau belum ada simpan record baru berstatus hadir. Scan ulang kartu yang
// sudah tercatat dianggap sukses, bukan error.
func (e *Engine) commit(warga *model.Warga, jadwal *model.Jadwal) Outcome {
	today := timeutil.DateString(e.Now())

	existing, err := e.presensiRepo.FindExisting(warga.ID, today, jadwal.Sesi, jadwal.KelasID)
	if err != nil {
		return Outcome{Status: StatusError, Message: err.Error(), WargaNama: warga.Nama}
	}
	if existing != nil {
		if jadwal.Kelas != nil {
			return Outcome{
				Status:    StatusSuccess,
				Message:   fmt.Sprintf("Sudah presensi: %s - %s", jadwal.Kelas.Nama, sesiLabel(jadwal.Sesi)),
				WargaNama: warga.Nama,
			}
		}
		return Outcome{
			Status:    StatusSuccess,
			Message:   fmt.Sprintf("Anda sudah presensi (%s)", jadwal.Sesi),
			WargaNama: warga.Nama,
		}
	}

	presensi := model.Presensi{
		WargaID: warga.ID,
		KelasID: jadwal.KelasID,
		Tanggal: today,
		Sesi:    jadwal.Sesi,
		Status:  model.StatusHadir,
	}
	if err := e.presensiRepo.Create(&presensi); err != nil {
		return Outcome{Status: StatusError, Message: err.Error(), WargaNama: warga.Nama}
	}

	if jadwal.Kelas != nil {
		return Outcome{
			Status:    StatusSuccess,
			Message:   fmt.Sprintf("Presensi Berhasil: %s", jadwal.Kelas.Nama),
			WargaNama: warga.Nama,
		}
	}
	return Outcome{Status: StatusSuccess, Message: "Presensi Berhasil!", WargaNama: warga.Nama}
}

func (e *Engine) clearPending() {
	e.pendingWarga = nil
	e.candidates = nil
}

func sesiLabel(sesi string) string {
	return strings.ReplaceAll(sesi, "_", " ")
}
