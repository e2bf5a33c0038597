// Package site represents a fixed ground observer and computes its
// look angle to an orbiting satellite.
package site

import (
	"github.com/anupshinde/orbittle/geo"
	"github.com/anupshinde/orbittle/julian"
	"github.com/anupshinde/orbittle/orbit"
)

// Site is a fixed point on the Earth's surface.
type Site struct {
	Name string
	Geo  geo.Geodetic
}

// New builds a Site at the given latitude/longitude (degrees) and altitude
// (km).
func New(name string, latDeg, lonDeg, altKm float64) Site {
	return Site{Name: name, Geo: geo.NewGeodeticDeg(latDeg, lonDeg, altKm)}
}

// ECI returns the site's own ECI state at date, treating it as co-rotating
// with the Earth.
func (s Site) ECI(date julian.Date) geo.ECI {
	return geo.GeodeticToECI(s.Geo, date)
}

// LookAngle returns the topocentric azimuth/elevation/range/range-rate from
// s to o at the given number of minutes past o's TLE epoch.
func (s Site) LookAngle(o *orbit.Orbit, tsince float64) (geo.Topocentric, error) {
	target, err := o.PositionAtMinutes(tsince)
	if err != nil {
		return geo.Topocentric{}, err
	}
	return geo.LookAngle(s.Geo, s.ECI(target.Date), target), nil
}
