// Package geo implements the Earth-fixed coordinate transforms the NORAD
// propagators and ground-site look-angle calculation are built on: ECI
// position/velocity, geodetic latitude/longitude/altitude on the WGS-72
// oblate spheroid, and topocentric azimuth/elevation/range/range-rate.
//
// This is deliberately a simpler model than full IAU precession/nutation:
// Earth orientation enters only through Greenwich/local mean sidereal time,
// matching the SGP4/SDP4 reference formulation this package serves.
package geo

import (
	"math"

	"github.com/anupshinde/orbittle/constants"
	"github.com/anupshinde/orbittle/julian"
	"github.com/anupshinde/orbittle/vector"
)

// ECI is an Earth-Centered Inertial state: position (km), velocity (km/s),
// and the Julian date at which they were evaluated.
type ECI struct {
	Position vector.Vec3
	Velocity vector.Vec3
	Date     julian.Date
}

// Geodetic is a latitude/longitude/altitude position on the WGS-72
// ellipsoid. Longitude is held in [0, 2*Pi).
type Geodetic struct {
	LatRad float64
	LonRad float64
	AltKm  float64
}

// LatDeg returns the latitude in degrees.
func (g Geodetic) LatDeg() float64 { return constants.ToDegrees(g.LatRad) }

// LonDeg returns the longitude in degrees.
func (g Geodetic) LonDeg() float64 { return constants.ToDegrees(g.LonRad) }

// NewGeodeticDeg builds a Geodetic from latitude/longitude in degrees and
// altitude in kilometers. Negative latitude is south, negative longitude
// is west.
func NewGeodeticDeg(latDeg, lonDeg, altKm float64) Geodetic {
	return Geodetic{
		LatRad: constants.ToRadians(latDeg),
		LonRad: constants.Fmod2p(constants.ToRadians(lonDeg)),
		AltKm:  altKm,
	}
}

// Topocentric is an azimuth/elevation/range/range-rate look angle, as seen
// from a ground site, plus the Julian date it was computed for.
type Topocentric struct {
	AzimuthRad   float64 // [0, 2*Pi)
	ElevationRad float64 // [-Pi/2, Pi/2]
	RangeKm      float64
	RangeRateKmS float64 // negative means approaching
	Date         julian.Date
}

// AzimuthDeg returns the azimuth in degrees.
func (t Topocentric) AzimuthDeg() float64 { return constants.ToDegrees(t.AzimuthRad) }

// ElevationDeg returns the elevation in degrees.
func (t Topocentric) ElevationDeg() float64 { return constants.ToDegrees(t.ElevationRad) }

// GeodeticToECI converts a geodetic position to an ECI state at the given
// Julian date, assuming the position co-rotates with the Earth. Reference:
// The 1992 Astronomical Almanac, p. K11.
func GeodeticToECI(g Geodetic, date julian.Date) ECI {
	theta := date.ToLMST(g.LonRad)
	sinLat, cosLat := math.Sincos(g.LatRad)
	sinTheta, cosTheta := math.Sincos(theta)

	c := 1.0 / math.Sqrt(1.0+constants.F*(constants.F-2.0)*sinLat*sinLat)
	s := constants.Sqr(1.0-constants.F) * c
	achcp := (constants.Xkmper*c + g.AltKm) * cosLat

	pos := vector.New(
		achcp*cosTheta,
		achcp*sinTheta,
		(constants.Xkmper*s+g.AltKm)*sinLat,
	)

	mfactor := constants.TwoPi * (constants.OmegaE / constants.SecPerDay)
	vel := vector.New(-mfactor*pos.Y, mfactor*pos.X, 0.0)

	return ECI{Position: pos, Velocity: vel, Date: date}
}

// ECIToGeodetic converts an ECI position to geodetic latitude/longitude/
// altitude at the given Julian date, iterating Bowring-style for the
// oblate-Earth latitude correction.
func ECIToGeodetic(pos vector.Vec3, date julian.Date) Geodetic {
	theta := math.Mod(constants.AcTan(pos.Y, pos.X)-date.ToGMST(), constants.TwoPi)
	if theta < 0.0 {
		theta += constants.TwoPi
	}

	r := math.Sqrt(pos.X*pos.X + pos.Y*pos.Y)
	e2 := constants.F * (2.0 - constants.F)
	lat := constants.AcTan(pos.Z, r)

	const delta = 1.0e-7
	var c float64
	for {
		phi := lat
		sinPhi := math.Sin(phi)
		c = 1.0 / math.Sqrt(1.0-e2*sinPhi*sinPhi)
		lat = constants.AcTan(pos.Z+constants.Xkmper*c*e2*sinPhi, r)
		if math.Abs(lat-phi) <= delta {
			break
		}
	}

	alt := r/math.Cos(lat) - constants.Xkmper*c

	return Geodetic{LatRad: lat, LonRad: theta, AltKm: alt}
}

// LookAngle computes the topocentric azimuth/elevation/range/range-rate of
// target as seen from a site at siteGeo, given both states' ECI
// coordinates at the same Julian date.
//
// The azimuth quadrant rule (add Pi when top_s > 0, before the final wrap
// to [0, 2*Pi)) matches the reference NORAD implementation this package
// ports; it is intentional, not a transcription slip. The tests check that
// the azimuth falls in range, not its value against a reference.
func LookAngle(siteGeo Geodetic, siteECI, target ECI) Topocentric {
	rangeVec := target.Position.Sub(siteECI.Position)
	rangeRateVec := target.Velocity.Sub(siteECI.Velocity)
	rangeMag := rangeVec.Magnitude()

	theta := target.Date.ToLMST(siteGeo.LonRad)
	sinLat, cosLat := math.Sincos(siteGeo.LatRad)
	sinTheta, cosTheta := math.Sincos(theta)

	topS := sinLat*cosTheta*rangeVec.X + sinLat*sinTheta*rangeVec.Y - cosLat*rangeVec.Z
	topE := -sinTheta*rangeVec.X + cosTheta*rangeVec.Y
	topZ := cosLat*cosTheta*rangeVec.X + cosLat*sinTheta*rangeVec.Y + sinLat*rangeVec.Z

	az := math.Atan(-topE / topS)
	if topS > 0.0 {
		az += constants.Pi
	}
	if az < 0.0 {
		az += constants.TwoPi
	}

	el := math.Asin(topZ / rangeMag)
	rate := rangeVec.Dot(rangeRateVec) / rangeMag

	return Topocentric{
		AzimuthRad:   az,
		ElevationRad: el,
		RangeKm:      rangeMag,
		RangeRateKmS: rate,
		Date:         target.Date,
	}
}
