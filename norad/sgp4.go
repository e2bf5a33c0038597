package norad

import (
	"math"

	"github.com/anupshinde/orbittle/constants"
	"github.com/anupshinde/orbittle/geo"
)

// SGP4 propagates a near-Earth orbit (period < 225 minutes): secular drag
// plus periodic terms, without the lunisolar deep-space corrections SDP4
// adds.
type SGP4 struct {
	c *common

	c5     float64
	omgcof float64
	xmcof  float64
	delmo  float64
	sinmo  float64

	isimp               bool
	d2, d3, d4          float64
	t3cof, t4cof, t5cof float64
}

// NewSGP4 builds an SGP4 propagator from the given orbital elements,
// performing all time-independent precomputation up front.
func NewSGP4(e Elements) *SGP4 {
	c := newCommon(e)
	s := &SGP4{c: c}

	s.c5 = 2.0 * c.coef1 * c.aodp * c.betao2 * (1.0 + 2.75*(c.etasq+c.eeta) + c.eeta*c.etasq)
	s.omgcof = e.BStar * c.c3 * math.Cos(e.ArgPerigee)
	s.xmcof = -2.0 / 3.0 * c.coef * e.BStar / c.eeta
	s.delmo = math.Pow(1.0+c.eta*math.Cos(e.MeanAnomaly), 3.0)
	s.sinmo = math.Sin(e.MeanAnomaly)

	s.isimp = c.aodp*(1.0-e.Eccentricity)/constants.Ae < 220.0/constants.Xkmper+constants.Ae

	if !s.isimp {
		s.d2 = 4.0 * c.aodp * c.tsi * c.c1 * c.c1
		temp := s.d2 * c.tsi * c.c1 / 3.0
		s.d3 = (17.0*c.aodp + c.s4) * temp
		s.d4 = 0.5 * temp * c.aodp * c.tsi * (221.0*c.aodp + 31.0*c.s4) * c.c1

		s.t3cof = s.d2 + 2.0*c.c1*c.c1
		s.t4cof = 0.25 * (3.0*s.d3 + c.c1*(12.0*s.d2+10.0*c.c1*c.c1))
		s.t5cof = 0.2 * (3.0*s.d4 + 12.0*c.c1*s.d3 + 6.0*s.d2*s.d2 + 15.0*c.c1*c.c1*(2.0*s.d2+c.c1*c.c1))
	}

	return s
}

// Position propagates to tsince minutes past the TLE epoch.
func (s *SGP4) Position(tsince float64) (geo.ECI, error) {
	c := s.c
	e := c.elements

	xmdf := e.MeanAnomaly + c.xmdot*tsince
	omgadf := e.ArgPerigee + c.omgdot*tsince
	xnoddf := e.RAAN + c.xnodot*tsince
	tsq := tsince * tsince
	xnode := xnoddf + c.xnodcf*tsq
	tempa := 1.0 - c.c1*tsince
	tempe := e.BStar * c.c4 * tsince
	templ := c.t2cof * tsq

	xmp := xmdf
	omega := omgadf

	if !s.isimp {
		delomg := s.omgcof * tsince
		delm := s.xmcof * (math.Pow(1.0+c.eta*math.Cos(xmdf), 3.0) - s.delmo)
		temp := delomg + delm
		xmp = xmdf + temp
		omega = omgadf - temp

		tcube := tsq * tsince
		tfour := tcube * tsince
		tempa -= s.d2*tsq + s.d3*tcube + s.d4*tfour
		tempe += e.BStar * s.c5 * (math.Sin(xmp) - s.sinmo)
		templ += s.t3cof*tcube + tfour*(s.t4cof+tsince*s.t5cof)
	}

	a := c.aodp * tempa * tempa
	ecc := e.Eccentricity - tempe
	xl := xmp + omega + xnode + c.xnodp*templ
	n := constants.Xke / math.Pow(a, 1.5)

	return c.finalPosition(e.Inclination, omgadf, ecc, a, xl, xnode, n, tsince)
}
