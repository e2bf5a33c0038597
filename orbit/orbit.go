// Package orbit ties a parsed TLE to a NORAD propagator: it recovers the
// Brouwer mean motion and semimajor axis the TLE's mean elements imply,
// selects SGP4 or SDP4 by orbital period, and exposes the satellite's
// derived orbital geometry (period, perigee/apogee, regime).
package orbit

import (
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/anupshinde/orbittle/constants"
	"github.com/anupshinde/orbittle/geo"
	"github.com/anupshinde/orbittle/julian"
	"github.com/anupshinde/orbittle/norad"
	"github.com/anupshinde/orbittle/tle"
)

// deepSpaceThresholdMin is the period, in minutes, at or above which a satellite
// is propagated with the deep-space (SDP4) model instead of SGP4.
const deepSpaceThresholdMin = 225.0

// Propagator evaluates a satellite's ECI state at a time offset from its
// orbit's epoch. *norad.SGP4 and *norad.SDP4 both implement it.
type Propagator interface {
	Position(tsince float64) (geo.ECI, error)
}

// Regime classifies an orbit by altitude band and shape.
type Regime string

// Orbital regimes, classified from the recovered semimajor axis and
// eccentricity the way operators commonly group satellites by use case
// rather than by strict physical boundaries.
const (
	RegimeLEO     Regime = "LEO"  // perigee and apogee both below ~2000 km
	RegimeMEO     Regime = "MEO"  // between LEO and the geostationary belt
	RegimeGEO     Regime = "GEO"  // period within 5 minutes of one sidereal day, low eccentricity
	RegimeHEO     Regime = "HEO"  // highly eccentric (Molniya-class, eccentricity >= 0.25)
	RegimeUnknown Regime = "UNKNOWN"
)

// Orbit holds a TLE's recovered orbital elements and the propagator
// selected to evolve them forward from epoch.
type Orbit struct {
	TLE   *tle.TLE
	Epoch julian.Date

	Inclination  float64 // rad
	Eccentricity float64
	RAAN         float64 // rad
	ArgPerigee   float64 // rad
	MeanAnomaly  float64 // rad
	BStar        float64

	// Recovered from the TLE's mean elements via Brouwer theory, not read
	// directly off the TLE.
	SemiMajor  float64 // Earth radii
	SemiMinor  float64 // Earth radii
	MeanMotion float64 // rad/min
	PerigeeKm  float64
	ApogeeKm   float64

	Period time.Duration
	Regime Regime

	model Propagator
}

// New builds an Orbit from a parsed TLE: it recovers the mean motion and
// semimajor axis, computes period/perigee/apogee/regime, and constructs
// whichever NORAD propagator the recovered period calls for.
func New(t *tle.TLE) (*Orbit, error) {
	epoch, err := t.EpochJulian()
	if err != nil {
		return nil, errors.Wrap(err, "orbit: epoch")
	}

	o := &Orbit{
		TLE:          t,
		Epoch:        epoch,
		Inclination:  t.InclinationRad(),
		Eccentricity: t.Eccentricity,
		RAAN:         t.RAANRad(),
		ArgPerigee:   t.ArgPerigeeRad(),
		MeanAnomaly:  t.MeanAnomalyRad(),
		BStar:        t.BStar,
	}

	o.recoverMeanElements(t.MeanMotion)
	o.classify()

	elements := norad.Elements{
		Inclination:   o.Inclination,
		Eccentricity:  o.Eccentricity,
		ArgPerigee:    o.ArgPerigee,
		MeanAnomaly:   o.MeanAnomaly,
		RAAN:          o.RAAN,
		SemiMajorAxis: o.SemiMajor,
		MeanMotion:    o.MeanMotion,
		BStar:         o.BStar,
		Epoch:         o.Epoch,
		SatName:       t.Name,
	}

	if o.Period.Minutes() >= deepSpaceThresholdMin {
		o.model = norad.NewSDP4(elements)
	} else {
		o.model = norad.NewSGP4(elements)
	}

	return o, nil
}

// recoverMeanElements applies the Brouwer mean motion/semimajor axis
// recovery that undoes the J2 secular drag already folded into a TLE's
// published mean motion, per Spacetrack Report #3.
func (o *Orbit) recoverMeanElements(tleMeanMotionRevDay float64) {
	rpmin := tleMeanMotionRevDay * constants.TwoPi / constants.MinPerDay

	a1 := math.Pow(constants.Xke/rpmin, 2.0/3.0)
	cosi := math.Cos(o.Inclination)
	temp := 1.5 * constants.Ck2 * (3.0*cosi*cosi - 1.0) / math.Pow(1.0-o.Eccentricity*o.Eccentricity, 1.5)
	delta1 := temp / (a1 * a1)
	a0 := a1 * (1.0 - delta1*(1.0/3.0+delta1*(1.0+134.0/81.0*delta1)))

	delta0 := temp / (a0 * a0)

	o.MeanMotion = rpmin / (1.0 + delta0)
	o.SemiMajor = a0 / (1.0 - delta0)
	o.SemiMinor = o.SemiMajor * math.Sqrt(1.0-o.Eccentricity*o.Eccentricity)
	o.PerigeeKm = constants.Xkmper * (o.SemiMajor*(1.0-o.Eccentricity) - constants.Ae)
	o.ApogeeKm = constants.Xkmper * (o.SemiMajor*(1.0+o.Eccentricity) - constants.Ae)

	if o.MeanMotion == 0.0 {
		o.Period = 0
		return
	}
	o.Period = time.Duration((constants.TwoPi/o.MeanMotion)*60.0*float64(time.Second))
}

// classify assigns a Regime from the recovered orbital geometry. GEO is
// checked first since a near-geosynchronous period is the more specific
// signal; HEO next since high eccentricity dominates the LEO/MEO altitude
// read; everything else falls to altitude bands.
func (o *Orbit) classify() {
	periodMin := o.Period.Minutes()

	switch {
	case math.Abs(periodMin-constants.SiderealDayMin) <= 5.0 && o.Eccentricity < 0.05:
		o.Regime = RegimeGEO
	case o.Eccentricity >= 0.25:
		o.Regime = RegimeHEO
	case o.ApogeeKm < 2000.0:
		o.Regime = RegimeLEO
	case o.ApogeeKm < 35786.0:
		o.Regime = RegimeMEO
	default:
		o.Regime = RegimeUnknown
	}
}

// PositionAtMinutes returns the satellite's ECI position/velocity (km,
// km/s) tsince minutes past the TLE epoch.
func (o *Orbit) PositionAtMinutes(tsince float64) (geo.ECI, error) {
	return o.model.Position(tsince)
}

// PositionAtTime returns the satellite's ECI position/velocity at utc,
// which may be before or after the TLE epoch.
func (o *Orbit) PositionAtTime(utc time.Time) (geo.ECI, error) {
	tsince := utc.Sub(o.Epoch.ToTime()).Minutes()
	return o.PositionAtMinutes(tsince)
}
