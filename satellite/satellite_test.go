package satellite

import (
	"math"
	"testing"
	"time"

	"github.com/anupshinde/orbittle/site"
)

// ISS TLE (representative, may be outdated -- we just need valid propagation)
const (
	issName  = "ISS (ZARYA)"
	issLine1 = "1 25544U 98067A   24001.00000000  .00016717  00000-0  10270-3 0  9005"
	issLine2 = "2 25544  51.6400 208.9163 0006703 247.1970 112.8444 15.49560830999999"
)

func TestNewSat(t *testing.T) {
	sat, err := NewSat(issName, issLine1, issLine2)
	if err != nil {
		t.Fatal(err)
	}
	if sat.Name != issName {
		t.Errorf("name: got %q want %q", sat.Name, issName)
	}
	if sat.Orbit == nil {
		t.Fatal("orbit not built")
	}
}

func TestSubPoint(t *testing.T) {
	sat, err := NewSat(issName, issLine1, issLine2)
	if err != nil {
		t.Fatal(err)
	}
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	lat, lon, err := sat.SubPoint(t0)
	if err != nil {
		t.Fatal(err)
	}

	// ISS orbit: inclination ~51.6 deg, so lat should be within [-52, 52].
	if lat < -52 || lat > 52 {
		t.Errorf("latitude out of ISS range: %f", lat)
	}
	if lon < 0 || lon >= 360 {
		t.Errorf("longitude out of range: %f", lon)
	}
}

func TestSubPoint_DifferentTimes(t *testing.T) {
	sat, err := NewSat(issName, issLine1, issLine2)
	if err != nil {
		t.Fatal(err)
	}
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := time.Date(2024, 1, 1, 0, 30, 0, 0, time.UTC)

	lat0, lon0, err := sat.SubPoint(t0)
	if err != nil {
		t.Fatal(err)
	}
	lat1, lon1, err := sat.SubPoint(t1)
	if err != nil {
		t.Fatal(err)
	}

	if lat0 == lat1 && lon0 == lon1 {
		t.Error("position unchanged after 30 minutes")
	}
	if math.IsNaN(lat0) || math.IsNaN(lon0) || math.IsNaN(lat1) || math.IsNaN(lon1) {
		t.Error("got NaN coordinates")
	}
}

func TestFindEvents_Basic(t *testing.T) {
	sat, err := NewSat(issName, issLine1, issLine2)
	if err != nil {
		t.Fatal(err)
	}
	observer := site.New("NYC", 40.7128, -74.0060, 0.0)
	start := sat.Orbit.Epoch.ToTime()
	end := start.Add(24 * time.Hour)

	events, err := FindEvents(sat, observer, start, end, 0.0)
	if err != nil {
		t.Fatal(err)
	}

	// ISS orbits ~15.5 times/day; not all passes visible from one location.
	if len(events) < 3 {
		t.Errorf("got %d events in 24h, want at least 3 (one pass)", len(events))
	}
	t.Logf("found %d events in 24 hours", len(events))

	for i := 1; i < len(events); i++ {
		if events[i].Time.Before(events[i-1].Time) {
			t.Errorf("events not sorted: event %d at %s before event %d at %s",
				i, events[i].Time, i-1, events[i-1].Time)
			break
		}
	}
}

func TestFindEvents_PassStructure(t *testing.T) {
	sat, err := NewSat(issName, issLine1, issLine2)
	if err != nil {
		t.Fatal(err)
	}
	observer := site.New("NYC", 40.7128, -74.0060, 0.0)
	start := sat.Orbit.Epoch.ToTime()
	end := start.Add(24 * time.Hour)

	events, err := FindEvents(sat, observer, start, end, 0.0)
	if err != nil {
		t.Fatal(err)
	}

	i := 0
	passes := 0
	for i < len(events) {
		if events[i].Kind != Rise {
			t.Errorf("expected Rise at index %d, got kind=%d", i, events[i].Kind)
			break
		}
		if i+2 >= len(events) {
			break // incomplete pass at end of window
		}
		if events[i+1].Kind != Culmination {
			t.Errorf("expected Culmination at index %d, got kind=%d", i+1, events[i+1].Kind)
			break
		}
		if events[i+2].Kind != Set {
			t.Errorf("expected Set at index %d, got kind=%d", i+2, events[i+2].Kind)
			break
		}

		if events[i+1].Elevation < events[i].Elevation {
			t.Errorf("pass %d: culmination elev %.2f < rise elev %.2f",
				passes, events[i+1].Elevation, events[i].Elevation)
		}
		if !events[i].Time.Before(events[i+1].Time) || !events[i+1].Time.Before(events[i+2].Time) {
			t.Errorf("pass %d: times not ordered: rise=%s culm=%s set=%s",
				passes, events[i].Time, events[i+1].Time, events[i+2].Time)
		}

		passes++
		i += 3
	}
	t.Logf("verified %d complete passes", passes)
	if passes == 0 {
		t.Error("no complete passes found")
	}
}

func TestFindEvents_MinElevation(t *testing.T) {
	sat, err := NewSat(issName, issLine1, issLine2)
	if err != nil {
		t.Fatal(err)
	}
	observer := site.New("NYC", 40.7128, -74.0060, 0.0)
	start := sat.Orbit.Epoch.ToTime()
	end := start.Add(24 * time.Hour)

	allEvents, err := FindEvents(sat, observer, start, end, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	highEvents, err := FindEvents(sat, observer, start, end, 30.0)
	if err != nil {
		t.Fatal(err)
	}

	if len(highEvents) > len(allEvents) {
		t.Errorf("30 deg threshold gave %d events > %d events at 0 deg",
			len(highEvents), len(allEvents))
	}
	t.Logf("events at 0: %d, at 30: %d", len(allEvents), len(highEvents))
}

func TestFindEvents_CulminationElevation(t *testing.T) {
	sat, err := NewSat(issName, issLine1, issLine2)
	if err != nil {
		t.Fatal(err)
	}
	observer := site.New("NYC", 40.7128, -74.0060, 0.0)
	start := sat.Orbit.Epoch.ToTime()
	end := start.Add(48 * time.Hour)

	events, err := FindEvents(sat, observer, start, end, 0.0)
	if err != nil {
		t.Fatal(err)
	}

	for i, e := range events {
		if e.Kind == Culmination {
			if e.Elevation <= 0 {
				t.Errorf("event %d: culmination elev = %.2f, should be positive", i, e.Elevation)
			}
			if e.Elevation > 90 {
				t.Errorf("event %d: culmination elev = %.2f, should be <= 90", i, e.Elevation)
			}
		}
	}
}

func TestFindEvents_ShortRange(t *testing.T) {
	sat, err := NewSat(issName, issLine1, issLine2)
	if err != nil {
		t.Fatal(err)
	}
	observer := site.New("NYC", 40.7128, -74.0060, 0.0)
	start := sat.Orbit.Epoch.ToTime()
	end := start.Add(time.Hour)

	events, err := FindEvents(sat, observer, start, end, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(events); i++ {
		if events[i].Time.Before(events[i-1].Time) {
			t.Errorf("events not sorted in short range")
			break
		}
	}
	t.Logf("found %d events in 1 hour", len(events))
}

func TestJdToTime(t *testing.T) {
	// J2000.0 = 2451545.0 = 2000-01-01 12:00:00 UTC
	got := jdToTime(2451545.0)
	want := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("J2000: got %s, want %s", got, want)
	}

	// J2000 + 0.5 days = 2000-01-02 00:00:00.
	got = jdToTime(2451545.5)
	want = time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("J2000+0.5: got %s, want %s", got, want)
	}
}
