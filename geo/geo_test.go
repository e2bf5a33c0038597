package geo

import (
	"math"
	"testing"
	"time"

	"github.com/anupshinde/orbittle/julian"
	"github.com/anupshinde/orbittle/vector"
)

func TestGeodeticToECI_RoundTripsThroughECIToGeodetic(t *testing.T) {
	date := julian.FromTime(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	g := NewGeodeticDeg(37.5, -122.3, 0.05)

	eci := GeodeticToECI(g, date)
	back := ECIToGeodetic(eci.Position, date)

	if diff := math.Abs(back.LatDeg() - g.LatDeg()); diff > 1e-6 {
		t.Errorf("lat round trip: got %v, want %v (diff %v)", back.LatDeg(), g.LatDeg(), diff)
	}
	lonDiff := math.Mod(back.LonDeg()-g.LonDeg()+540, 360) - 180
	if math.Abs(lonDiff) > 1e-6 {
		t.Errorf("lon round trip: got %v, want %v (diff %v)", back.LonDeg(), g.LonDeg(), lonDiff)
	}
	if diff := math.Abs(back.AltKm - g.AltKm); diff > 1e-6 {
		t.Errorf("alt round trip: got %v, want %v (diff %v)", back.AltKm, g.AltKm, diff)
	}
}

// TestLookAngle_SubsatelliteZenith places a target directly above a site's
// zenith (same geodetic lat/lon, higher altitude) and checks the resulting
// elevation is close to 90 degrees.
func TestLookAngle_SubsatelliteZenith(t *testing.T) {
	date := julian.FromTime(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

	siteGeo := NewGeodeticDeg(10.0, 20.0, 0.0)
	siteECI := GeodeticToECI(siteGeo, date)

	targetGeo := NewGeodeticDeg(10.0, 20.0, 700.0) // 700 km straight up
	targetECI := GeodeticToECI(targetGeo, date)

	topo := LookAngle(siteGeo, siteECI, targetECI)

	if diff := math.Abs(topo.ElevationDeg() - 90.0); diff > 0.5 {
		t.Errorf("ElevationDeg = %v, want close to 90 for a target directly overhead", topo.ElevationDeg())
	}
	if diff := math.Abs(topo.RangeKm - 700.0); diff > 1.0 {
		t.Errorf("RangeKm = %v, want close to 700", topo.RangeKm)
	}
}

func TestLookAngle_Horizon(t *testing.T) {
	date := julian.FromTime(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	siteGeo := NewGeodeticDeg(0.0, 0.0, 0.0)
	siteECI := GeodeticToECI(siteGeo, date)

	// A point on the opposite side of the Earth should be below the horizon.
	farSide := NewGeodeticDeg(0.0, 180.0, 0.0)
	farECI := GeodeticToECI(farSide, date)

	topo := LookAngle(siteGeo, siteECI, farECI)
	if topo.ElevationDeg() > 0 {
		t.Errorf("ElevationDeg = %v, want negative for a target on the far side of the Earth", topo.ElevationDeg())
	}
}

func TestECI_ZeroVelocityOnNonRotatingVector(t *testing.T) {
	// Sanity check that Vec3 zero values behave as expected in ECI.
	eci := ECI{Position: vector.New(1, 2, 3)}
	if eci.Velocity.Magnitude() != 0 {
		t.Errorf("zero-value ECI.Velocity magnitude = %v, want 0", eci.Velocity.Magnitude())
	}
}
