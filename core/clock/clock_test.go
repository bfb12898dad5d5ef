package clock

import (
	"testing"
	"time"
)

func TestToday(t *testing.T) {
	lima, err := time.LoadLocation("America/Lima")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// 02:00 UTC on the 15th is still the 14th in Lima (UTC-5).
	at := time.Date(2026, 3, 15, 2, 0, 0, 0, time.UTC)

	if got := Today(at, nil); got.Day() != 15 {
		t.Errorf("Today(utc) day = %d, want 15", got.Day())
	}
	if got := Today(at, lima); got.Day() != 14 {
		t.Errorf("Today(lima) day = %d, want 14", got.Day())
	}
}

func TestFixed(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Fixed{At: at}
	if !c.Now().Equal(at) {
		t.Fatalf("Fixed.Now() = %v, want %v", c.Now(), at)
	}
}
