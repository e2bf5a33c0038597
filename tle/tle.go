// Package tle decodes NORAD Two-Line Element sets: the fixed-column text
// format that carries a satellite's mean orbital elements at a single
// epoch.
//
// Reference: Dr. T.S. Kelso / celestrak.com.
//
//	Line 0: AAAAAAAAAAAAAAAAAAAAAAAA                     (name, <=24 chars)
//	Line 1: 1 NNNNNU NNNNNAAA NNNNN.NNNNNNNN +.NNNNNNNN +NNNNN-N +NNNNN-N N NNNNN
//	Line 2: 2 NNNNN NNN.NNNN NNN.NNNN NNNNNNN NNN.NNNN NNN.NNNN NN.NNNNNNNNNNNNNN
//
// Reading is permissive: the checksum in column 69 of each data line is not
// verified. ValidateChecksum and IsValidFormat exist only to mirror the
// reference format description; neither is on the parse path.
package tle

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/anupshinde/orbittle/constants"
	"github.com/anupshinde/orbittle/julian"
)

// Column offsets, zero-based, per the NORAD/Celestrak TLE format description.
const (
	lineDataLen = 69
	lineNameLen = 24

	col1SatNum        = 2
	len1SatNum        = 5
	col1Classification = 7
	col1IntlDesc      = 9
	len1IntlDesc      = 8 // launch year (2) + launch number (3) + piece (3)
	col1EpochYear     = 18
	len1EpochYear     = 2
	col1EpochDay      = 20
	len1EpochDay      = 12
	col1MeanMotionDt  = 33
	len1MeanMotionDt  = 9 // digits following the sign column
	col1MeanMotionDt2 = 44
	len1MeanMotionDt2 = 8
	col1BStar         = 53
	len1BStar         = 8
	col1EphemType     = 62
	col1ElementSetNo  = 64
	len1ElementSetNo  = 4

	col2Inclination = 8
	len2Inclination = 8
	col2Raan        = 17
	len2Raan        = 8
	col2Eccentricity = 26
	len2Eccentricity = 7
	col2ArgPerigee  = 34
	len2ArgPerigee  = 8
	col2MeanAnomaly = 43
	len2MeanAnomaly = 8
	col2MeanMotion  = 52
	len2MeanMotion  = 11
	col2RevAtEpoch  = 63
	len2RevAtEpoch  = 5
)

// Sentinel errors. Wrap with errors.Wrap at the call site for field context.
var (
	ErrInputRange    = errors.New("tle: field out of range")
	ErrMalformed     = errors.New("tle: malformed field")
	ErrUnimplemented = errors.New("tle: not implemented")
)

// TLE is a single parsed two-line element set, immutable once returned by
// Parse.
type TLE struct {
	Name string

	Line1 string
	Line2 string

	NoradNumber       string
	Classification    byte // 'U' unclassified, 'C' classified, 'S' secret
	IntlDesignator    string
	ElementSetNumber  string
	EphemerisType     byte
	RevolutionAtEpoch string

	EpochYear int     // two-digit year as read, before the 1900/2000 split
	EpochDay  float64 // fractional day of year

	InclinationDeg float64
	RAANDeg        float64
	Eccentricity   float64
	ArgPerigeeDeg  float64
	MeanAnomalyDeg float64
	MeanMotion     float64 // revs/day
	MeanMotionDt   float64 // first derivative, revs/day^2
	MeanMotionDt2  float64 // second derivative, revs/day^3 (implied decimal)
	BStar          float64 // drag term, 1/Earth-radii
}

// Parse decodes a three-line TLE (name, line 1, line 2). The name has
// surrounding whitespace stripped and is cut to 24 characters; the two data
// lines have only trailing whitespace stripped before column extraction, so
// leading whitespace shifts their columns.
func Parse(name, line1, line2 string) (*TLE, error) {
	name = strings.TrimSpace(name)
	if len(name) > lineNameLen {
		name = name[:lineNameLen]
	}
	line1 = strings.TrimRight(line1, " \t\r\n")
	line2 = strings.TrimRight(line2, " \t\r\n")

	if len(line1) < lineDataLen {
		return nil, errors.Wrapf(ErrMalformed, "line 1 too short (%d chars)", len(line1))
	}
	if len(line2) < lineDataLen {
		return nil, errors.Wrapf(ErrMalformed, "line 2 too short (%d chars)", len(line2))
	}

	t := &TLE{Name: name, Line1: line1, Line2: line2}

	t.NoradNumber = strings.TrimSpace(field(line1, col1SatNum, len1SatNum))
	t.Classification = line1[col1Classification]
	t.IntlDesignator = strings.TrimSpace(field(line1, col1IntlDesc, len1IntlDesc))
	t.ElementSetNumber = strings.TrimSpace(field(line1, col1ElementSetNo, len1ElementSetNo))
	t.EphemerisType = line1[col1EphemType]

	var err error
	if t.EpochYear, err = strconv.Atoi(strings.TrimSpace(field(line1, col1EpochYear, len1EpochYear))); err != nil {
		return nil, errors.Wrap(err, "parsing epoch year")
	}
	if t.EpochDay, err = strconv.ParseFloat(strings.TrimSpace(field(line1, col1EpochDay, len1EpochDay)), 64); err != nil {
		return nil, errors.Wrap(err, "parsing epoch day")
	}

	mmdtStr := meanMotionDtString(line1)
	if t.MeanMotionDt, err = strconv.ParseFloat(mmdtStr, 64); err != nil {
		return nil, errors.Wrap(err, "parsing mean motion first derivative")
	}

	if t.MeanMotionDt2, err = parseExp(field(line1, col1MeanMotionDt2, len1MeanMotionDt2)); err != nil {
		return nil, errors.Wrap(err, "parsing mean motion second derivative")
	}
	if t.BStar, err = parseExp(field(line1, col1BStar, len1BStar)); err != nil {
		return nil, errors.Wrap(err, "parsing BSTAR")
	}

	if t.InclinationDeg, err = strconv.ParseFloat(strings.TrimSpace(field(line2, col2Inclination, len2Inclination)), 64); err != nil {
		return nil, errors.Wrap(err, "parsing inclination")
	}
	if t.RAANDeg, err = strconv.ParseFloat(strings.TrimSpace(field(line2, col2Raan, len2Raan)), 64); err != nil {
		return nil, errors.Wrap(err, "parsing RAAN")
	}
	if t.Eccentricity, err = strconv.ParseFloat("0."+strings.TrimSpace(field(line2, col2Eccentricity, len2Eccentricity)), 64); err != nil {
		return nil, errors.Wrap(err, "parsing eccentricity")
	}
	if t.ArgPerigeeDeg, err = strconv.ParseFloat(strings.TrimSpace(field(line2, col2ArgPerigee, len2ArgPerigee)), 64); err != nil {
		return nil, errors.Wrap(err, "parsing argument of perigee")
	}
	if t.MeanAnomalyDeg, err = strconv.ParseFloat(strings.TrimSpace(field(line2, col2MeanAnomaly, len2MeanAnomaly)), 64); err != nil {
		return nil, errors.Wrap(err, "parsing mean anomaly")
	}
	if t.MeanMotion, err = strconv.ParseFloat(strings.TrimSpace(field(line2, col2MeanMotion, len2MeanMotion)), 64); err != nil {
		return nil, errors.Wrap(err, "parsing mean motion")
	}
	t.RevolutionAtEpoch = strings.TrimSpace(field(line2, col2RevAtEpoch, len2RevAtEpoch))

	return t, nil
}

// field extracts a fixed-width substring, tolerating lines shorter than
// col+length by clamping to what is actually present.
func field(line string, col, length int) string {
	if col >= len(line) {
		return ""
	}
	end := col + length
	if end > len(line) {
		end = len(line)
	}
	return line[col:end]
}

// meanMotionDtString reconstructs the first derivative of mean motion. The
// sign lives in its own column; the digits (with an embedded decimal point)
// follow immediately after.
func meanMotionDtString(line1 string) string {
	sign := "0"
	if field(line1, col1MeanMotionDt, 1) == "-" {
		sign = "-0"
	}
	return sign + strings.TrimSpace(field(line1, col1MeanMotionDt+1, len1MeanMotionDt))
}

// parseExp decodes TLE exponential notation: an implied decimal point
// before the mantissa, and a one-digit signed power-of-ten exponent.
//
//	" 12345-3" =  0.00012345
//	"-23429-5" = -0.0000023429
//	" 40436+1" =  4.0436
//
// The sign column always occupies s[0]; a space there means positive.
func parseExp(s string) (float64, error) {
	if len(s) < 7 {
		return 0, errors.Wrapf(ErrMalformed, "exponential field too short: %q", s)
	}
	sign := ""
	if s[0] == '-' {
		sign = "-"
	}
	mantissa := s[1:6]
	exponent := strings.TrimSpace(s[6:])

	return strconv.ParseFloat(sign+"0."+mantissa+"e"+exponent, 64)
}

// EpochYearFull returns the four-digit epoch year: values below 57 are
// 2000+y, otherwise 1900+y (NORAD's rollover convention).
func (t *TLE) EpochYearFull() int {
	if t.EpochYear < 57 {
		return 2000 + t.EpochYear
	}
	return 1900 + t.EpochYear
}

// EpochJulian returns the Julian date of the TLE epoch.
func (t *TLE) EpochJulian() (julian.Date, error) {
	d, err := julian.FromYearAndDayOfYear(t.EpochYearFull(), t.EpochDay)
	if err != nil {
		return julian.Date{}, errors.Wrap(err, "tle epoch")
	}
	return d, nil
}

// InclinationRad returns the inclination in radians.
func (t *TLE) InclinationRad() float64 { return constants.ToRadians(t.InclinationDeg) }

// RAANRad returns the right ascension of the ascending node in radians.
func (t *TLE) RAANRad() float64 { return constants.ToRadians(t.RAANDeg) }

// ArgPerigeeRad returns the argument of perigee in radians.
func (t *TLE) ArgPerigeeRad() float64 { return constants.ToRadians(t.ArgPerigeeDeg) }

// MeanAnomalyRad returns the mean anomaly in radians.
func (t *TLE) MeanAnomalyRad() float64 { return constants.ToRadians(t.MeanAnomalyDeg) }

// Age returns the elapsed time between the TLE epoch and asOf. A TLE
// "predicted" into the future yields a negative Age.
func (t *TLE) Age(asOf time.Time) (time.Duration, error) {
	epoch, err := t.EpochJulian()
	if err != nil {
		return 0, err
	}
	return asOf.Sub(epoch.ToTime()), nil
}

// IsStale reports whether asOf is more than maxAge past the TLE epoch.
// Mean elements drift from the true orbit over time; this is advisory only
// and never blocks propagation.
func (t *TLE) IsStale(asOf time.Time, maxAge time.Duration) (bool, error) {
	age, err := t.Age(asOf)
	if err != nil {
		return false, err
	}
	return age > maxAge, nil
}

// IsValidFormat is not implemented by this port; NORAD format validation is
// not on the propagation path. See the package doc comment.
func IsValidFormat(_ string, _ int) (bool, error) {
	return false, ErrUnimplemented
}

// ValidateChecksum is not implemented by this port; TLE reading is
// permissive and never verifies the modulo-10 checksum. See the package
// doc comment.
func ValidateChecksum(_ string) (bool, error) {
	return false, ErrUnimplemented
}
