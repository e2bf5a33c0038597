// Package satellite is the top-level facade: a named orbit plus the
// higher-level queries built on it (sub-satellite point, visibility
// windows) that a caller shouldn't have to assemble from orbit/site/geo
// themselves.
package satellite

import (
	"log/slog"
	"time"

	"github.com/anupshinde/orbittle/geo"
	"github.com/anupshinde/orbittle/julian"
	"github.com/anupshinde/orbittle/orbit"
	"github.com/anupshinde/orbittle/search"
	"github.com/anupshinde/orbittle/site"
	"github.com/anupshinde/orbittle/tle"
)

var log = slog.Default()

// SetLogger overrides the package-level logger used for orbit-selection and
// decay diagnostics. Propagation itself never logs.
func SetLogger(l *slog.Logger) { log = l }

// Sat is a named satellite ready for propagation.
type Sat struct {
	Name  string
	Orbit *orbit.Orbit
}

// NewSat parses a TLE and builds the orbit (selecting SGP4 or SDP4 by
// recovered period).
func NewSat(name, line1, line2 string) (Sat, error) {
	t, err := tle.Parse(name, line1, line2)
	if err != nil {
		return Sat{}, err
	}

	o, err := orbit.New(t)
	if err != nil {
		return Sat{}, err
	}

	log.Debug("orbit selected", "satellite", name, "regime", o.Regime, "period_min", o.Period.Minutes())

	return Sat{Name: name, Orbit: o}, nil
}

// SubPoint returns the sub-satellite geographic point (degrees) at t.
func (s Sat) SubPoint(t time.Time) (latDeg, lonDeg float64, err error) {
	eci, err := s.Orbit.PositionAtTime(t)
	if err != nil {
		return 0, 0, err
	}
	g := geo.ECIToGeodetic(eci.Position, eci.Date)
	return g.LatDeg(), g.LonDeg(), nil
}

// Event kinds returned by FindEvents.
const (
	Rise        = 0 // Satellite rises above the elevation threshold.
	Culmination = 1 // Satellite reaches maximum elevation during a pass.
	Set         = 2 // Satellite sets below the elevation threshold.
)

// PassEvent is a rise, culmination, or set marker produced while scanning a
// look-angle series over a time window.
type PassEvent struct {
	Time      time.Time
	Kind      int
	Elevation float64 // degrees
}

// FindEvents finds satellite rise, culmination, and set events as seen from
// a ground site between start and end.
//
// Reuses the package's generic discrete/extremum search unchanged: only the
// elevation function below is domain-specific.
func FindEvents(s Sat, observer site.Site, start, end time.Time, minElevationDeg float64) ([]PassEvent, error) {
	const stepDays = 1.0 / 1440.0 // 1 minute; LEO passes run minutes, not hours

	startJD := julian.FromTime(start).JD()
	endJD := julian.FromTime(end).JD()

	elevFunc := elevationFunc(s, observer)

	discreteFunc := func(jd float64) int {
		if elevFunc(jd) >= minElevationDeg {
			return 1
		}
		return 0
	}

	transitions, err := search.FindDiscrete(startJD, endJD, stepDays, discreteFunc, 0)
	if err != nil {
		return nil, err
	}

	var events []PassEvent
	for i := 0; i < len(transitions); i++ {
		e := transitions[i]
		if e.NewValue != 1 {
			continue
		}

		riseT := e.T
		events = append(events, PassEvent{Time: jdToTime(riseT), Kind: Rise, Elevation: elevFunc(riseT)})

		setT := endJD
		if i+1 < len(transitions) && transitions[i+1].NewValue == 0 {
			setT = transitions[i+1].T
			i++

			maxima, err := search.FindMaxima(riseT, setT, stepDays, elevFunc, 0)
			if err == nil && len(maxima) > 0 {
				best := maxima[0]
				for _, m := range maxima[1:] {
					if m.Value > best.Value {
						best = m
					}
				}
				events = append(events, PassEvent{Time: jdToTime(best.T), Kind: Culmination, Elevation: best.Value})
			}

			events = append(events, PassEvent{Time: jdToTime(setT), Kind: Set, Elevation: elevFunc(setT)})
		}
	}

	return events, nil
}

// elevationFunc returns the satellite's elevation in degrees as seen from
// observer at a Julian date. Propagation errors (decay, hyperbolic orbit)
// are reported as an elevation far below any threshold so the search loop
// treats them as "not visible" rather than aborting a whole-window scan.
func elevationFunc(s Sat, observer site.Site) func(float64) float64 {
	return func(jd float64) float64 {
		t := jdToTime(jd)
		tsince := t.Sub(s.Orbit.Epoch.ToTime()).Minutes()

		topo, err := observer.LookAngle(s.Orbit, tsince)
		if err != nil {
			log.Warn("propagation failed during pass search", "satellite", s.Name, "error", err)
			return -999.0
		}
		return topo.ElevationDeg()
	}
}

// jdToTime converts a Julian day number to a UTC time.Time.
func jdToTime(jd float64) time.Time {
	z := jd + 0.5
	day := int64(z)
	frac := z - float64(day)

	var a int64
	if day < 2299161 {
		a = day
	} else {
		alpha := int64((float64(day) - 1867216.25) / 36524.25)
		a = day + 1 + alpha - alpha/4
	}

	b := a + 1524
	c := int64((float64(b) - 122.1) / 365.25)
	d := int64(365.25 * float64(c))
	e := int64((float64(b) - float64(d)) / 30.6001)

	dayOfMonth := b - d - int64(30.6001*float64(e))
	var month int64
	if e < 14 {
		month = e - 1
	} else {
		month = e - 13
	}
	var year int64
	if month > 2 {
		year = c - 4716
	} else {
		year = c - 4715
	}

	secTotal := frac * 86400.0
	hour := int(secTotal / 3600.0)
	secTotal -= float64(hour) * 3600.0
	minute := int(secTotal / 60.0)
	second := secTotal - float64(minute)*60.0
	nsec := int((second - float64(int(second))) * 1e9)

	return time.Date(int(year), time.Month(month), int(dayOfMonth), hour, minute, int(second), nsec, time.UTC)
}
