// Package norad implements the NORAD SGP4 (near-Earth) and SDP4
// (deep-space) analytical orbit propagators. Both share a common
// time-independent initialization and a common final Kepler-solve stage;
// they differ only in how they evolve mean anomaly, argument of perigee,
// right ascension of the ascending node, eccentricity, semimajor axis, and
// mean motion forward from epoch to the requested time.
package norad

import (
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/anupshinde/orbittle/constants"
	"github.com/anupshinde/orbittle/geo"
	"github.com/anupshinde/orbittle/julian"
	"github.com/anupshinde/orbittle/vector"
)

// ErrOrbitHyperbolic is returned from FinalPosition when the evolved
// eccentricity describes a hyperbolic (non-periodic) orbit — invalid
// satellite data, not a transient condition.
var ErrOrbitHyperbolic = errors.New("norad: eccentricity squared exceeds 1 (hyperbolic orbit)")

// ErrOrbitDecayed is the sentinel wrapped by DecayError.
var ErrOrbitDecayed = errors.New("norad: orbit decayed below Earth's surface")

// DecayError reports that a propagation step produced a sub-surface
// altitude: the satellite has reentered, or the TLE has been propagated
// far past where it remains valid.
type DecayError struct {
	SatName string
	At      time.Time
}

func (e *DecayError) Error() string {
	return errors.Wrapf(ErrOrbitDecayed, "%s at %s", e.SatName, e.At.Format(time.RFC3339)).Error()
}

func (e *DecayError) Unwrap() error { return ErrOrbitDecayed }

// Elements is the subset of an orbit's recovered/raw elements the
// propagators need. The orbit package builds one of these from a parsed
// TLE plus the Brouwer-recovered mean motion and semimajor axis.
type Elements struct {
	Inclination   float64 // rad
	Eccentricity  float64
	ArgPerigee    float64 // rad
	MeanAnomaly   float64 // rad
	RAAN          float64 // rad
	SemiMajorAxis float64 // Earth radii
	MeanMotion    float64 // rad/min (recovered/Brouwer)
	BStar         float64
	Epoch         julian.Date
	SatName       string
}

// common holds the quantities NoradBase precomputes once per orbit,
// independent of propagation time.
type common struct {
	elements Elements

	cosio, sinio float64
	theta2       float64
	x3thm1       float64
	eosq         float64
	betao2       float64
	betao        float64

	aodp  float64
	xnodp float64

	s4     float64
	qoms24 float64

	tsi   float64
	eta   float64
	etasq float64
	eeta  float64

	coef  float64
	coef1 float64

	c1, c2, c3, c4 float64

	x1mth2 float64

	xmdot  float64
	omgdot float64
	xnodot float64
	xnodcf float64
	t2cof  float64
	xlcof  float64
	aycof  float64
	x7thm1 float64
}

// newCommon performs NoradBase's one-time initialization.
func newCommon(e Elements) *common {
	c := &common{elements: e}

	c.cosio = math.Cos(e.Inclination)
	c.sinio = math.Sin(e.Inclination)
	c.theta2 = c.cosio * c.cosio
	c.x3thm1 = 3.0*c.theta2 - 1.0
	c.eosq = e.Eccentricity * e.Eccentricity
	c.betao2 = 1.0 - c.eosq
	c.betao = math.Sqrt(c.betao2)

	c.aodp = e.SemiMajorAxis
	c.xnodp = e.MeanMotion

	perigee := constants.Xkmper * (c.aodp*(1.0-e.Eccentricity) - constants.Ae)

	c.s4 = constants.S
	c.qoms24 = constants.Qoms2t
	if perigee < 156.0 {
		s4 := perigee - 78.0
		if perigee <= 98.0 {
			s4 = 20.0
		}
		c.qoms24 = math.Pow((120.0-s4)*constants.Ae/constants.Xkmper, 4.0)
		c.s4 = s4/constants.Xkmper + constants.Ae
	}

	pinvsq := 1.0 / (c.aodp * c.aodp * c.betao2 * c.betao2)

	c.tsi = 1.0 / (c.aodp - c.s4)
	c.eta = c.aodp * e.Eccentricity * c.tsi
	c.etasq = c.eta * c.eta
	c.eeta = e.Eccentricity * c.eta

	psisq := math.Abs(1.0 - c.etasq)

	c.coef = c.qoms24 * math.Pow(c.tsi, 4.0)
	c.coef1 = c.coef / math.Pow(psisq, 3.5)

	c2 := c.coef1 * c.xnodp *
		(c.aodp*(1.0+1.5*c.etasq+c.eeta*(4.0+c.etasq)) +
			0.75*constants.Ck2*c.tsi/psisq*c.x3thm1*
				(0.8+3.0*c.etasq*(8.0+c.etasq)))
	c.c2 = c2
	c.c1 = e.BStar * c2

	a3ovk2 := -constants.Xj3 / constants.Ck2 * math.Pow(constants.Ae, 3.0)

	c.c3 = c.coef * c.tsi * a3ovk2 * c.xnodp * constants.Ae * c.sinio / e.Eccentricity
	c.x1mth2 = 1.0 - c.theta2
	c.c4 = 2.0 * c.xnodp * c.coef1 * c.aodp * c.betao2 *
		(c.eta*(2.0+0.5*c.etasq) +
			e.Eccentricity*(0.5+2.0*c.etasq) -
			2.0*constants.Ck2*c.tsi/(c.aodp*psisq)*
				(-3.0*c.x3thm1*(1.0-2.0*c.eeta+c.etasq*(1.5-0.5*c.eeta))+
					0.75*c.x1mth2*(2.0*c.etasq-c.eeta*(1.0+c.etasq))*math.Cos(2.0*e.ArgPerigee)))

	theta4 := c.theta2 * c.theta2
	temp1 := 3.0 * constants.Ck2 * pinvsq * c.xnodp
	temp2 := temp1 * constants.Ck2 * pinvsq
	temp3 := 1.25 * constants.Ck4 * pinvsq * pinvsq * c.xnodp

	c.xmdot = c.xnodp + 0.5*temp1*c.betao*c.x3thm1 +
		0.0625*temp2*c.betao*(13.0-78.0*c.theta2+137.0*theta4)

	x1m5th := 1.0 - 5.0*c.theta2

	c.omgdot = -0.5*temp1*x1m5th + 0.0625*temp2*(7.0-114.0*c.theta2+395.0*theta4) +
		temp3*(3.0-36.0*c.theta2+49.0*theta4)

	xhdot1 := -temp1 * c.cosio

	c.xnodot = xhdot1 + (0.5*temp2*(4.0-19.0*c.theta2)+2.0*temp3*(3.0-7.0*c.theta2))*c.cosio
	c.xnodcf = 3.5 * c.betao2 * xhdot1 * c.c1
	c.t2cof = 1.5 * c.c1
	c.xlcof = 0.125 * a3ovk2 * c.sinio * (3.0 + 5.0*c.cosio) / (1.0 + c.cosio)
	c.aycof = 0.25 * a3ovk2 * c.sinio
	c.x7thm1 = 7.0*c.theta2 - 1.0

	return c
}

// finalPosition solves Kepler's equation for the evolved elements and
// assembles the ECI position/velocity. Shared by SGP4 and SDP4.
func (c *common) finalPosition(incl, omega, e, a, xl, xnode, xn, tsince float64) (geo.ECI, error) {
	if e*e > 1.0 {
		return geo.ECI{}, ErrOrbitHyperbolic
	}

	beta := math.Sqrt(1.0 - e*e)

	// Long period periodics.
	axn := e * math.Cos(omega)
	temp := 1.0 / (a * beta * beta)
	xll := temp * c.xlcof * axn
	aynl := temp * c.aycof
	xlt := xl + xll
	ayn := e*math.Sin(omega) + aynl

	// Solve Kepler's equation.
	capu := constants.Fmod2p(xlt - xnode)
	epw := capu
	var sinepw, cosepw, temp3, temp4, temp5, temp6 float64

	for i := 0; i < 10; i++ {
		sinepw = math.Sin(epw)
		cosepw = math.Cos(epw)
		temp3 = axn * sinepw
		temp4 = ayn * cosepw
		temp5 = axn * cosepw
		temp6 = ayn * sinepw

		next := (capu-temp4+temp3-epw)/(1.0-temp5-temp6) + epw
		if math.Abs(next-epw) <= 1.0e-06 {
			epw = next
			break
		}
		epw = next
	}

	// Short period preliminary quantities.
	ecose := temp5 + temp6
	esine := temp3 - temp4
	elsq := axn*axn + ayn*ayn
	temp = 1.0 - elsq
	pl := a * temp
	r := a * (1.0 - ecose)
	temp1 := 1.0 / r
	rdot := constants.Xke * math.Sqrt(a) * esine * temp1
	rfdot := constants.Xke * math.Sqrt(pl) * temp1
	temp2 := a * temp1
	betal := math.Sqrt(temp)
	temp3b := 1.0 / (1.0 + betal)
	cosu := temp2 * (cosepw - axn + ayn*esine*temp3b)
	sinu := temp2 * (sinepw - ayn - axn*esine*temp3b)
	u := constants.AcTan(sinu, cosu)
	sin2u := 2.0 * sinu * cosu
	cos2u := 2.0*cosu*cosu - 1.0

	temp = 1.0 / pl
	temp1 = constants.Ck2 * temp
	temp2 = temp1 * temp

	// Update for short periodics.
	rk := r*(1.0-1.5*temp2*betal*c.x3thm1) + 0.5*temp1*c.x1mth2*cos2u
	uk := u - 0.25*temp2*c.x7thm1*sin2u
	xnodek := xnode + 1.5*temp2*c.cosio*sin2u
	xinck := incl + 1.5*temp2*c.cosio*c.sinio*cos2u
	rdotk := rdot - xn*temp1*c.x1mth2*sin2u
	rfdotk := rfdot + xn*temp1*(c.x1mth2*cos2u+1.5*c.x3thm1)

	// Orientation vectors.
	sinuk, cosuk := math.Sincos(uk)
	sinik, cosik := math.Sincos(xinck)
	sinnok, cosnok := math.Sincos(xnodek)
	xmx := -sinnok * cosik
	xmy := cosnok * cosik
	ux := xmx*sinuk + cosnok*cosuk
	uy := xmy*sinuk + sinnok*cosuk
	uz := sinik * sinuk
	vx := xmx*cosuk - cosnok*sinuk
	vy := xmy*cosuk - sinnok*sinuk
	vz := sinik * cosuk

	// rk/rdotk/rfdotk above are in Earth radii and Earth-radii-per-minute;
	// geo.ECI is documented in km and km/s, so rescale before returning,
	// matching the Orbit class's PositionEciByMpe step in the reference.
	const radiusAe = constants.Xkmper / constants.Ae
	const velScale = radiusAe * (constants.MinPerDay / constants.SecPerDay)

	pos := vector.New(rk*ux, rk*uy, rk*uz).Scale(radiusAe)

	gmt := c.elements.Epoch.ToTime().Add(time.Duration(tsince * float64(time.Minute)))

	if pos.Magnitude() < constants.Xkmper {
		return geo.ECI{}, &DecayError{SatName: c.elements.SatName, At: gmt}
	}

	vel := vector.New(
		rdotk*ux+rfdotk*vx,
		rdotk*uy+rfdotk*vy,
		rdotk*uz+rfdotk*vz,
	).Scale(velScale)

	return geo.ECI{Position: pos, Velocity: vel, Date: julian.FromTime(gmt)}, nil
}
