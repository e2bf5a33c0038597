package norad

import (
	"errors"
	"math"
	"testing"

	"github.com/anupshinde/orbittle/constants"
	"github.com/anupshinde/orbittle/julian"
)

// terraElements mirrors the TERRA TLE's recovered mean elements (see
// orbit_test.go for the full TLE-to-Elements path); it is reproduced here
// directly so this package's tests don't need to import tle/orbit.
func terraElements() Elements {
	epoch, _ := julian.FromYearAndDayOfYear(2018, 196.75093423)
	return Elements{
		Inclination:   98.2051 * constants.RadsPerDegree,
		Eccentricity:  0.0001021,
		ArgPerigee:    68.8940 * constants.RadsPerDegree,
		MeanAnomaly:   291.2371 * constants.RadsPerDegree,
		RAAN:          271.2050 * constants.RadsPerDegree,
		SemiMajorAxis: 1.1075, // Earth radii, ~7070 km; recovered roughly by hand for this orbit
		MeanMotion:    14.57112414 * constants.TwoPi / constants.MinPerDay,
		BStar:         4.5345e-6,
		Epoch:         epoch,
		SatName:       "TERRA",
	}
}

func TestSGP4Position_Sanity(t *testing.T) {
	s := NewSGP4(terraElements())

	eci, err := s.Position(0)
	if err != nil {
		t.Fatalf("Position(0): %v", err)
	}

	r := eci.Position.Magnitude()
	if r < 6800 || r > 7500 {
		t.Errorf("|r| = %v km, want a ~700 km altitude LEO range (6800-7500 km)", r)
	}

	v := eci.Velocity.Magnitude()
	if v < 6.5 || v > 8.5 {
		t.Errorf("|v| = %v km/s, want ~7.5 km/s for a low Earth orbit", v)
	}
}

func TestSGP4Position_Continuity(t *testing.T) {
	s := NewSGP4(terraElements())

	a, err := s.Position(1000)
	if err != nil {
		t.Fatalf("Position(1000): %v", err)
	}
	b, err := s.Position(1000.01)
	if err != nil {
		t.Fatalf("Position(1000.01): %v", err)
	}

	step := b.Position.Sub(a.Position).Magnitude()
	if step > 10.0 {
		t.Errorf("position jumped %v km over a 0.01 minute step, want a small continuous change", step)
	}
}

func TestFinalPosition_Hyperbolic(t *testing.T) {
	c := newCommon(terraElements())
	_, err := c.finalPosition(0, 0, 1.5, 1.1, 0, 0, 0.05, 0)
	if !errors.Is(err, ErrOrbitHyperbolic) {
		t.Errorf("finalPosition with e=1.5: err = %v, want ErrOrbitHyperbolic", err)
	}
}

func TestFinalPosition_Decayed(t *testing.T) {
	e := terraElements()
	e.SemiMajorAxis = 0.5 // well inside the Earth once scaled to km
	c := newCommon(e)

	_, err := c.finalPosition(e.Inclination, e.ArgPerigee, e.Eccentricity, 0.5, e.MeanAnomaly, e.RAAN, e.MeanMotion, 0)
	var decayErr *DecayError
	if !errors.As(err, &decayErr) {
		t.Fatalf("finalPosition with a=0.5 Earth radii: err = %v, want *DecayError", err)
	}
	if !errors.Is(err, ErrOrbitDecayed) {
		t.Errorf("DecayError does not unwrap to ErrOrbitDecayed")
	}
	if decayErr.SatName != "TERRA" {
		t.Errorf("DecayError.SatName = %q, want TERRA", decayErr.SatName)
	}
	wantAt := e.Epoch.ToTime()
	if decayErr.At != wantAt {
		t.Errorf("DecayError.At = %s, want %s (tsince=0)", decayErr.At, wantAt)
	}
}

func TestSGP4Position_MatchesExplicitZero(t *testing.T) {
	s := NewSGP4(terraElements())
	a, err := s.Position(0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Position(0.0)
	if err != nil {
		t.Fatal(err)
	}
	if a.Position != b.Position {
		t.Error("Position(0) is not deterministic")
	}
}

func TestSDP4Position_GeostationaryRadius(t *testing.T) {
	// Geostationary-class elements (period ~24h) select the deep-space path
	// in the orbit package; exercised here directly to confirm the mutex
	// guarded Position call still returns a usable state.
	e := terraElements()
	e.MeanMotion = constants.TwoPi / (23.934 * 60.0) // one sidereal day, rad/min
	e.SemiMajorAxis = 6.6107                         // ~42164 km in Earth radii
	e.Eccentricity = 0.0002
	e.Inclination = 0.01

	sd := NewSDP4(e)
	eci, err := sd.Position(0)
	if err != nil {
		t.Fatalf("SDP4 Position(0): %v", err)
	}

	r := eci.Position.Magnitude()
	if math.Abs(r-42164) > 3000 {
		t.Errorf("|r| = %v km, want close to the geostationary radius (~42164 km)", r)
	}
}
