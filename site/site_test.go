package site

import (
	"math"
	"testing"

	"github.com/anupshinde/orbittle/orbit"
	"github.com/anupshinde/orbittle/tle"
)

const (
	terraLine1 = "1 25994U 99068A   18196.75093423 -.00000025  00000-0  45345-5 0  9993"
	terraLine2 = "2 25994  98.2051 271.2050 0001021  68.8940 291.2371 14.57112414987988"
)

func TestNew(t *testing.T) {
	s := New("Boulder", 40.0, -105.3, 1.6)
	if s.Name != "Boulder" {
		t.Errorf("Name = %q, want Boulder", s.Name)
	}
	if diff := math.Abs(s.Geo.LatDeg() - 40.0); diff > 1e-9 {
		t.Errorf("LatDeg = %v, want 40.0", s.Geo.LatDeg())
	}
}

func TestLookAngle_ReturnsPlausibleGeometry(t *testing.T) {
	tl, err := tle.Parse("TERRA", terraLine1, terraLine2)
	if err != nil {
		t.Fatalf("tle.Parse: %v", err)
	}
	o, err := orbit.New(tl)
	if err != nil {
		t.Fatalf("orbit.New: %v", err)
	}

	observer := New("Boulder", 40.0, -105.3, 1.6)
	topo, err := observer.LookAngle(o, 0)
	if err != nil {
		t.Fatalf("LookAngle: %v", err)
	}

	if topo.RangeKm <= 0 {
		t.Errorf("RangeKm = %v, want positive", topo.RangeKm)
	}
	if topo.ElevationDeg() < -90 || topo.ElevationDeg() > 90 {
		t.Errorf("ElevationDeg = %v, out of range", topo.ElevationDeg())
	}
	if topo.AzimuthDeg() < 0 || topo.AzimuthDeg() >= 360 {
		t.Errorf("AzimuthDeg = %v, out of [0,360)", topo.AzimuthDeg())
	}
}

func TestLookAngle_RangeStaysPlausible(t *testing.T) {
	tl, err := tle.Parse("TERRA", terraLine1, terraLine2)
	if err != nil {
		t.Fatal(err)
	}
	o, err := orbit.New(tl)
	if err != nil {
		t.Fatal(err)
	}
	observer := New("Boulder", 40.0, -105.3, 1.6)

	// Sample across a wide spread of times; range should never collapse to
	// zero or explode to an obviously wrong magnitude for a LEO pass.
	for _, tsince := range []float64{0, 30, 60, 120, 500} {
		topo, err := observer.LookAngle(o, tsince)
		if err != nil {
			t.Fatalf("LookAngle(%v): %v", tsince, err)
		}
		if topo.RangeKm < 100 || topo.RangeKm > 20000 {
			t.Errorf("LookAngle(%v).RangeKm = %v, want within [100, 20000] km for a LEO target", tsince, topo.RangeKm)
		}
	}
}
