package timecodec

import (
	"math"
	"testing"
	"time"
)

func TestCocoaSecondsRoundTrip(t *testing.T) {
	// Sweep a few decades around "now" in coarse steps plus some awkward values.
	samples := []float64{0, 1, -1, 86400, 978307200, 700000000, 700000000.5}
	for s := float64(0); s < 800000000; s += 9999137 {
		samples = append(samples, s)
	}

	for _, s := range samples {
		got := ToCocoaSeconds(FromCocoaSeconds(s))
		if math.Abs(got-s) > 1e-6 {
			t.Fatalf("round trip of %v gave %v", s, got)
		}
	}
}

func TestFromCocoaSecondsOrigin(t *testing.T) {
	got := FromCocoaSeconds(0).UTC()
	want := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLocalDateKey(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 2024-03-05 00:30 in ICT is still 2024-03-04 in UTC; the key must follow
	// the wall clock of the given time, not UTC.
	at := time.Date(2024, 3, 5, 0, 30, 0, 0, loc)
	if got := LocalDateKey(at.Local()); got != at.Local().Format("2006-01-02") {
		t.Fatalf("unexpected key %q", got)
	}

	if got := LocalDateKey(time.Date(2024, 1, 9, 12, 0, 0, 0, time.Local)); got != "2024-01-09" {
		t.Fatalf("expected zero-padded 2024-01-09, got %q", got)
	}
}

func TestWindowStartSeconds(t *testing.T) {
	got := FromCocoaSeconds(WindowStartSeconds(7)).UTC()

	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Fatalf("window start is not midnight UTC: %v", got)
	}

	days := time.Now().UTC().Sub(got).Hours() / 24
	if days < 7 || days > 8 {
		t.Fatalf("window start %v is not 7 days back", got)
	}
}
