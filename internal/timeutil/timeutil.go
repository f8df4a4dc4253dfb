package timeutil

import "time"

// Nama hari Indonesia, index mengikuti time.Weekday (Minggu = 0).
var Days = []string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

// DayName mengembalikan nama hari Indonesia untuk waktu t.
func DayName(t time.Time) string {
	return Days[int(t.Weekday())]
}

// DateString memformat tanggal sebagai YYYY-MM-DD.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// ClockString memformat jam sebagai HH:MM:SS.
func ClockString(t time.Time) string {
	return t.Format("15:04:05")
}

// IsTimeInRange mengecek start <= now <= end dengan perbandingan string.
// Valid karena format HH:MM:SS selalu fixed-width dan zero-padded.
// Konsekuensinya jendela yang melewati tengah malam (end < start) tidak
// pernah match; perilaku ini dipertahankan apa adanya.
func IsTimeInRange(start, end, now string) bool {
	return now >= start && now <= end
}
