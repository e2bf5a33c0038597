// Package julian implements the Julian date system the NORAD propagators
// are defined against: a day that begins at noon, plus Greenwich and local
// mean sidereal time derived from it.
//
// Reference dates:
//
//	1990-01-01 00:00 UTC = 2447892.5
//	1990-01-01 12:00 UTC = 2447893.0
//	2000-01-01 00:00 UTC = 2451544.5
//	2001-01-01 00:00 UTC = 2451910.5
//
// References: "Astronomical Formulae for Calculators", Jean Meeus, 4th ed.;
// "Satellite Communications", Dennis Roddy, 2nd ed.; "Spacecraft Attitude
// Determination and Control", James R. Wertz.
package julian

import (
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/anupshinde/orbittle/constants"
)

// Epoch reference points used throughout the propagator.
const (
	EpochJan0_12h1900 = 2415020.0 // Dec 31.5 1899 = Dec 31 1899 12h UTC
	EpochJan1_00h1900 = 2415020.5 // Jan 1.0 1900  = Jan 1 1900 00h UTC
	EpochJan1_12h1900 = 2415021.0 // Jan 1.5 1900  = Jan 1 1900 12h UTC
	EpochJan1_12h2000 = 2451545.0 // Jan 1.5 2000  = Jan 1 2000 12h UTC
)

// ErrYearRange is returned when a year outside [1900, 2100] is supplied.
var ErrYearRange = errors.New("julian: year must be in [1900, 2100]")

// ErrDayOfYearRange is returned when a day-of-year outside [1, 367) is
// supplied.
var ErrDayOfYearRange = errors.New("julian: day-of-year must be in [1, 367)")

// Date is a Julian date, cached alongside the calendar year and
// fractional day-of-year it was constructed from.
type Date struct {
	jd  float64
	year int
	doy  float64 // 1.0 = Jan 1 00h, 1.5 = Jan 1 12h, etc.
}

// JD returns the scalar Julian day number.
func (d Date) JD() float64 { return d.jd }

// FromJan0_12h1900 returns days elapsed since 1899-12-31T12:00 UTC.
func (d Date) FromJan0_12h1900() float64 { return d.jd - EpochJan0_12h1900 }

// FromJan1_00h1900 returns days elapsed since 1900-01-01T00:00 UTC.
func (d Date) FromJan1_00h1900() float64 { return d.jd - EpochJan1_00h1900 }

// FromJan1_12h1900 returns days elapsed since 1900-01-01T12:00 UTC.
func (d Date) FromJan1_12h1900() float64 { return d.jd - EpochJan1_12h1900 }

// FromJan1_12h2000 returns days elapsed since 2000-01-01T12:00 UTC (J2000).
func (d Date) FromJan1_12h2000() float64 { return d.jd - EpochJan1_12h2000 }

// FromTime builds a Date from a UTC time.Time.
func FromTime(utc time.Time) Date {
	utc = utc.UTC()
	h, m, s := utc.Clock()
	doy := float64(utc.YearDay()) +
		(float64(h)+(float64(m)+(float64(s)+float64(utc.Nanosecond())/1e9)/60.0)/60.0)/24.0

	d, err := FromYearAndDayOfYear(utc.Year(), doy)
	if err != nil {
		// utc.Year()/YearDay() can only fall outside the supported range for
		// times far outside any realistic TLE epoch; callers constructing a
		// Date from a live clock never hit this.
		panic(err)
	}
	return d
}

// FromYearAndDayOfYear builds a Date from a calendar year and a
// fractional day-of-year (1.0 = Jan 1 00h, 1.5 = Jan 1 12h, 2.0 = Jan 2 00h).
func FromYearAndDayOfYear(year int, doy float64) (Date, error) {
	if year < 1900 || year > 2100 {
		return Date{}, errors.Wrapf(ErrYearRange, "got %d", year)
	}
	if doy < 1.0 || doy >= 367.0 {
		return Date{}, errors.Wrapf(ErrDayOfYearRange, "got %v", doy)
	}

	// Meeus, "Astronomical Formulae for Calculators", pp. 23-25.
	y := year - 1
	a := y / 100
	b := 2 - a + a/4

	newYears := math.Floor(365.25*float64(y)) + math.Floor(30.6001*14) + 1720994.5 + float64(b)

	return Date{
		jd:   newYears + doy,
		year: year,
		doy:  doy,
	}, nil
}

// Diff returns the elapsed time between d and other (d - other).
func (d Date) Diff(other Date) time.Duration {
	return time.Duration((d.jd - other.jd) * 24 * float64(time.Hour))
}

// ToGMST computes Greenwich Mean Sidereal Time: the angle, in radians,
// measured eastward from the vernal equinox to the prime meridian.
//
// References: The 1992 Astronomical Almanac, p. B6; Explanatory Supplement
// to the Astronomical Almanac, p. 50; T.S. Kelso, "Orbital Coordinate
// Systems, Part III", Satellite Times, Nov/Dec 1995.
func (d Date) ToGMST() float64 {
	ut := math.Mod(d.jd+0.5, 1.0)
	tu := (d.FromJan1_12h2000() - ut) / 36525.0

	gmst := 24110.54841 + tu*(8640184.812866+tu*(0.093104-tu*6.2e-06))
	gmst = math.Mod(gmst+constants.SecPerDay*constants.OmegaE*ut, constants.SecPerDay)
	if gmst < 0.0 {
		gmst += constants.SecPerDay
	}

	return constants.TwoPi * (gmst / constants.SecPerDay)
}

// ToLMST computes Local Mean Sidereal Time at the given longitude (radians,
// measured east from Greenwich).
func (d Date) ToLMST(lon float64) float64 {
	lmst := math.Mod(d.ToGMST()+lon, constants.TwoPi)
	if lmst < 0.0 {
		lmst += constants.TwoPi
	}
	return lmst
}

// ToTime returns the UTC time.Time corresponding to d.
func (d Date) ToTime() time.Time {
	jan1 := time.Date(d.year, time.January, 1, 0, 0, 0, 0, time.UTC)
	offset := time.Duration((d.doy - 1.0) * 24 * float64(time.Hour))
	return jan1.Add(offset)
}
