package scan

import "time"

// ReaderConfig mengatur framing keluaran pemindai RFID mode keyboard:
// Length digit per kartu, Timeout jeda maksimum antar ketukan sebelum
// buffer dianggap basi dan dikosongkan.
type ReaderConfig struct {
	Length  int
	Timeout time.Duration
}

// Reader mengubah aliran tombol keyboard menjadi kode kartu utuh.
// Digit ditumpuk sampai Length; Enter dengan panjang pas mengirim kode ke
// channel Codes, selain itu buffer di-reset diam-diam. Tombol non-digit
// juga me-reset, jadi ketikan nyasar tidak ikut terbaca sebagai kartu.
type Reader struct {
	cfg     ReaderConfig
	buf     []rune
	lastKey time.Time
	codes   chan string

	// now bisa diganti di test
	now func() time.Time
}

func NewReader(cfg ReaderConfig) *Reader {
	if cfg.Length <= 0 {
		cfg.Length = 10
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 200 * time.Millisecond
	}
	return &Reader{
		cfg:   cfg,
		codes: make(chan string, 8),
		now:   time.Now,
	}
}

// Key memproses satu tombol. Pemanggil diharapkan satu goroutine saja,
// sama seperti event loop keyboard.
func (r *Reader) Key(key rune) {
	now := r.now()

	// Jeda terlalu lama antar tombol berarti scan lama sudah basi
	if len(r.buf) > 0 && now.Sub(r.lastKey) > r.cfg.Timeout {
		r.Reset()
	}
	r.lastKey = now

	if key == '\n' || key == '\r' {
		if len(r.buf) == r.cfg.Length {
			select {
			case r.codes <- string(r.buf):
			default:
				// Konsumen macet; buang kode daripada memblokir pembaca
			}
		}
		r.Reset()
		return
	}

	if key < '0' || key > '9' {
		r.Reset()
		return
	}

	if len(r.buf) < r.cfg.Length {
		r.buf = append(r.buf, key)
	}
}

// Codes adalah channel kode kartu yang sudah utuh.
func (r *Reader) Codes() <-chan string {
	return r.codes
}

func (r *Reader) Reset() {
	r.buf = r.buf[:0]
}
