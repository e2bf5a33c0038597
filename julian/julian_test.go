package julian

import (
	"math"
	"testing"
	"time"
)

func TestFromYearAndDayOfYear(t *testing.T) {
	d, err := FromYearAndDayOfYear(2000, 1.5) // Jan 1, 2000, 12:00 UTC = J2000.0
	if err != nil {
		t.Fatalf("FromYearAndDayOfYear: %v", err)
	}
	if diff := math.Abs(d.JD() - 2451545.0); diff > 1e-6 {
		t.Errorf("JD = %v, want 2451545.0 (diff %v)", d.JD(), diff)
	}
}

func TestFromYearAndDayOfYearRange(t *testing.T) {
	if _, err := FromYearAndDayOfYear(1899, 1.0); err == nil {
		t.Error("year 1899 should be rejected")
	}
	if _, err := FromYearAndDayOfYear(2101, 1.0); err == nil {
		t.Error("year 2101 should be rejected")
	}
	if _, err := FromYearAndDayOfYear(2000, 0.5); err == nil {
		t.Error("day-of-year 0.5 should be rejected")
	}
	if _, err := FromYearAndDayOfYear(2000, 367.0); err == nil {
		t.Error("day-of-year 367.0 should be rejected")
	}
}

func TestFromTimeRoundTrip(t *testing.T) {
	want := time.Date(2018, 7, 15, 18, 1, 20, 0, time.UTC)
	d := FromTime(want)
	got := d.ToTime()
	if diff := got.Sub(want); diff > time.Millisecond || diff < -time.Millisecond {
		t.Errorf("round trip: got %s, want %s (diff %s)", got, want, diff)
	}
}

// TestToGMST_J2000 checks Greenwich Mean Sidereal Time at the J2000.0 epoch
// against the well-known reference value of 18h41m50.54841s.
func TestToGMST_J2000(t *testing.T) {
	d, err := FromYearAndDayOfYear(2000, 1.5)
	if err != nil {
		t.Fatalf("FromYearAndDayOfYear: %v", err)
	}

	wantHours := 18.0 + 41.0/60.0 + 50.54841/3600.0
	wantRad := wantHours * 15.0 * (math.Pi / 180.0)

	got := d.ToGMST()
	if diff := math.Abs(got - wantRad); diff > 1e-3 {
		t.Errorf("ToGMST(J2000) = %v rad, want %v rad (diff %v)", got, wantRad, diff)
	}
}

func TestToLMST_ZeroLongitudeMatchesGMST(t *testing.T) {
	d := FromTime(time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC))
	if diff := math.Abs(d.ToLMST(0) - d.ToGMST()); diff > 1e-12 {
		t.Errorf("ToLMST(0) = %v, want ToGMST() = %v", d.ToLMST(0), d.ToGMST())
	}
}

func TestDiff(t *testing.T) {
	a := FromTime(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	b := FromTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if got := a.Diff(b); got != 24*time.Hour {
		t.Errorf("Diff = %s, want 24h", got)
	}
}
