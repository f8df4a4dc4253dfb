package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayName(t *testing.T) {
	// 4 Januari 2026 adalah hari Minggu
	minggu := time.Date(2026, 1, 4, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "Minggu", DayName(minggu))
	assert.Equal(t, "Senin", DayName(minggu.AddDate(0, 0, 1)))
	assert.Equal(t, "Sabtu", DayName(minggu.AddDate(0, 0, 6)))
}

func TestIsTimeInRange(t *testing.T) {
	assert.True(t, IsTimeInRange("06:00:00", "07:00:00", "06:30:00"))

	// Batas jendela inklusif dua sisi
	assert.True(t, IsTimeInRange("06:00:00", "07:00:00", "06:00:00"))
	assert.True(t, IsTimeInRange("06:00:00", "07:00:00", "07:00:00"))

	assert.False(t, IsTimeInRange("06:00:00", "07:00:00", "05:59:59"))
	assert.False(t, IsTimeInRange("06:00:00", "07:00:00", "07:00:01"))
}

func TestIsTimeInRangeLewatTengahMalam(t *testing.T) {
	// Jendela yang melewati tengah malam tidak pernah match (perilaku yang
	// dipertahankan, bukan diperbaiki)
	assert.False(t, IsTimeInRange("23:00:00", "01:00:00", "23:30:00"))
	assert.False(t, IsTimeInRange("23:00:00", "01:00:00", "00:30:00"))
}

func TestFormatters(t *testing.T) {
	at := time.Date(2026, 8, 31, 6, 5, 9, 0, time.UTC)
	assert.Equal(t, "2026-08-31", DateString(at))
	assert.Equal(t, "06:05:09", ClockString(at))
}
