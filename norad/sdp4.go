package norad

import (
	"math"
	"sync"

	"github.com/anupshinde/orbittle/constants"
	"github.com/anupshinde/orbittle/geo"
)

// Deep-space lunisolar perturbation constants (NORAD Spacetrack Report #3).
const (
	dpZns  = 1.19459e-5
	dpZes  = 0.01675
	dpZnl  = 1.5835218e-4
	dpZel  = 0.05490
	dpThdt = 4.3752691e-3
)

// SDP4 propagates a deep-space orbit (period >= 225 minutes): SGP4's secular
// drag and periodic terms plus lunisolar gravitational perturbations, with
// a resonance integrator for orbits locked to the 12-hour or 24-hour
// geopotential terms (the Molniya and geostationary belts).
type SDP4 struct {
	c *common

	// mu serializes Position calls: the resonance integrator (atime, xli,
	// xni) is mutable state anchored to the last call's tsince, not a pure
	// function of tsince alone.
	mu sync.Mutex

	thgr   float64
	xqncl  float64
	omegaq float64
	zmol   float64
	zmos   float64

	sse, ssi, ssl, ssg, ssh  float64
	se2, si2, sl2            float64
	sgh2, sh2                float64
	se3, si3, sl3            float64
	sgh3, sh3, sl4, sgh4     float64
	ee2, e3                  float64
	xi2, xi3                 float64
	xl2, xl3, xl4            float64
	xgh2, xgh3, xgh4         float64
	xh2, xh3                 float64

	resonant, synchronous bool

	del1, del2, del3 float64
	xlamo            float64

	d2201, d2211 float64
	d3210, d3222 float64
	d4410, d4422 float64
	d5220, d5232 float64
	d5421, d5433 float64

	xfact               float64
	xli, xni            float64
	atime               float64
	stepp, stepn, step2 float64
}

// NewSDP4 builds an SDP4 propagator from the given orbital elements,
// performing the deep-space initialization (lunisolar secular rates and,
// where the mean motion falls in the 12h/24h resonance band, the
// resonance-integrator coefficients) up front.
func NewSDP4(e Elements) *SDP4 {
	c := newCommon(e)
	s := &SDP4{c: c}

	sinarg, cosarg := math.Sincos(e.ArgPerigee)

	s.thgr = e.Epoch.ToGMST()

	eq := e.Eccentricity
	aqnv := 1.0 / e.SemiMajorAxis
	s.xqncl = e.Inclination

	xmao := e.MeanAnomaly
	xpidot := c.omgdot + c.xnodot
	sinq, cosq := math.Sincos(e.RAAN)
	s.omegaq = e.ArgPerigee

	day := e.Epoch.FromJan0_12h1900()

	xnodce := 4.5236020 - 9.2422029e-4*day
	stem, ctem := math.Sincos(xnodce)
	zcosil := 0.91375164 - 0.03568096*ctem
	zsinil := math.Sqrt(1.0 - zcosil*zcosil)
	zsinhl := 0.089683511 * stem / zsinil
	zcoshl := math.Sqrt(1.0 - zsinhl*zsinhl)
	cTerm := 4.7199672 + 0.22997150*day
	gam := 5.8351514 + 0.0019443680*day

	s.zmol = constants.Fmod2p(cTerm - gam)

	zx := 0.39785416 * stem / zsinil
	zy := zcoshl*ctem + 0.91744867*zsinhl*stem
	zx = constants.AcTan(zx, zy) + gam - xnodce

	zcosgl := math.Cos(zx)
	zsingl := math.Sin(zx)

	s.zmos = constants.Fmod2p(6.2565837 + 0.017201977*day)

	const (
		zcosis = 0.91744867
		zsinis = 0.39785416
		zsings = -0.98088458
		zcosgs = 0.1945905
		c1ss   = 2.9864797e-6
		c1l    = 4.7968065e-7
	)

	zcosg := zcosgs
	zsing := zsings
	zcosi := zcosis
	zsini := zsinis
	zcosh := cosq
	zsinh := sinq
	cc := c1ss
	zn := dpZns
	ze := dpZes
	xnoi := 1.0 / e.MeanMotion

	var se, si, sl, sgh, sh float64
	eosq := constants.Sqr(e.Eccentricity)

	// Apply the solar terms on the first pass, then the lunar terms on the
	// second, accumulating both into the combined secular rates below.
	for i := 1; i <= 2; i++ {
		a1 := zcosg*zcosh + zsing*zcosi*zsinh
		a3 := -zsing*zcosh + zcosg*zcosi*zsinh
		a7 := -zcosg*zsinh + zsing*zcosi*zcosh
		a8 := zsing * zsini
		a9 := zsing*zsinh + zcosg*zcosi*zcosh
		a10 := zcosg * zsini
		a2 := c.cosio*a7 + c.sinio*a8
		a4 := c.cosio*a9 + c.sinio*a10
		a5 := -c.sinio*a7 + c.cosio*a8
		a6 := -c.sinio*a9 + c.cosio*a10
		x1 := a1*cosarg + a2*sinarg
		x2 := a3*cosarg + a4*sinarg
		x3 := -a1*sinarg + a2*cosarg
		x4 := -a3*sinarg + a4*cosarg
		x5 := a5 * sinarg
		x6 := a6 * sinarg
		x7 := a5 * cosarg
		x8 := a6 * cosarg
		z31 := 12.0*x1*x1 - 3.0*x3*x3
		z32 := 24.0*x1*x1 - 6.0*x3*x4
		z33 := 12.0*x2*x2 - 3.0*x4*x4
		z1 := 3.0*(a1*a1+a2*a2) + z31*eosq
		z2 := 6.0*(a1*a3+a2*a4) + z32*eosq
		z3 := 3.0*(a3*a3+a4*a4) + z33*eosq
		z11 := -6.0*a1*a5 + eosq*(-24.0*x1*x7-6.0*x3*x5)
		z12 := -6.0*(a1*a6+a3*a5) + eosq*(-24.0*(x2*x7+x1*x8)-6.0*(x3*x6+x4*x5))
		z13 := -6.0*a3*a6 + eosq*(-24.0*x2*x8-6.0*x4*x6)
		z21 := 6.0*a2*a5 + eosq*(24.0*x1*x5-6.0*x3*x7)
		z22 := 6.0*(a4*a5+a2*a6) + eosq*(24.0*(x2*x5+x1*x6)-6.0*(x4*x7+x3*x8))
		z23 := 6.0*a4*a6 + eosq*(24.0*x2*x6-6.0*x4*x8)
		z1 = z1 + z1 + c.betao2*z31
		z2 = z2 + z2 + c.betao2*z32
		z3 = z3 + z3 + c.betao2*z33
		s3 := cc * xnoi
		s2 := -0.5 * s3 / c.betao
		s4v := s3 * c.betao
		s1 := -15.0 * eq * s4v
		s5 := x1*x3 + x2*x4
		s6 := x2*x3 + x1*x4
		s7 := x2*x4 - x1*x3
		se = s1 * zn * s5
		si = s2 * zn * (z11 + z13)
		sl = -zn * s3 * (z1 + z3 - 14.0 - 6.0*eosq)
		sgh = s4v * zn * (z31 + z33 - 6.0)

		if e.Inclination < 5.2359877e-2 {
			sh = 0.0
		} else {
			sh = -zn * s2 * (z21 + z23)
		}

		s.ee2 = 2.0 * s1 * s6
		s.e3 = 2.0 * s1 * s7
		s.xi2 = 2.0 * s2 * z12
		s.xi3 = 2.0 * s2 * (z13 - z11)
		s.xl2 = -2.0 * s3 * z2
		s.xl3 = -2.0 * s3 * (z3 - z1)
		s.xl4 = -2.0 * s3 * (-21.0 - 9.0*eosq) * ze
		s.xgh2 = 2.0 * s4v * z32
		s.xgh3 = 2.0 * s4v * (z33 - z31)
		s.xgh4 = -18.0 * s4v * ze
		s.xh2 = -2.0 * s2 * z22
		s.xh3 = -2.0 * s2 * (z23 - z21)

		if i == 1 {
			s.sse = se
			s.ssi = si
			s.ssl = sl
			s.ssh = sh / c.sinio
			s.ssg = sgh - c.cosio*s.ssh
			s.se2 = s.ee2
			s.si2 = s.xi2
			s.sl2 = s.xl2
			s.sgh2 = s.xgh2
			s.sh2 = s.xh2
			s.se3 = s.e3
			s.si3 = s.xi3
			s.sl3 = s.xl3
			s.sgh3 = s.xgh3
			s.sh3 = s.xh3
			s.sl4 = s.xl4
			s.sgh4 = s.xgh4

			zcosg = zcosgl
			zsing = zsingl
			zcosi = zcosil
			zsini = zsinil
			zcosh = zcoshl*cosq + zsinhl*sinq
			zsinh = sinq*zcoshl - cosq*zsinhl
			zn = dpZnl
			cc = c1l
			ze = dpZel
		}
	}

	s.sse += se
	s.ssi += si
	s.ssl += sl
	s.ssg += sgh - c.cosio/c.sinio*sh
	s.ssh += sh / c.sinio

	// Geopotential resonance initialization: determine whether the orbit is
	// 12-hour or 24-hour resonant (mean motion is in radians/minute).
	var bfact float64

	switch {
	case e.MeanMotion >= 0.0034906585 && e.MeanMotion <= 0.0052359877:
		// Clarke-belt: 24-hour (geostationary/geosynchronous) resonance.
		s.resonant = true
		s.synchronous = true

		g200 := 1.0 + eosq*(-2.5+0.8125*eosq)
		g310 := 1.0 + 2.0*eosq
		g300 := 1.0 + eosq*(-6.0+6.60937*eosq)
		f220 := 0.75 * (1.0 + c.cosio) * (1.0 + c.cosio)
		f311 := 0.9375*c.sinio*c.sinio*(1.0+3*c.cosio) - 0.75*(1.0+c.cosio)
		f330 := 1.0 + c.cosio
		f330 = 1.875 * f330 * f330 * f330

		const (
			q22 = 1.7891679e-06
			q33 = 2.2123015e-07
			q31 = 2.1460748e-06
		)

		s.del1 = 3.0 * c.xnodp * c.xnodp * aqnv * aqnv
		s.del2 = 2.0 * s.del1 * f220 * g200 * q22
		s.del3 = 3.0 * s.del1 * f330 * g300 * q33 * aqnv
		s.del1 = s.del1 * f311 * g310 * q31 * aqnv
		s.xlamo = xmao + e.RAAN + e.ArgPerigee - s.thgr
		bfact = c.xmdot + xpidot - dpThdt
		bfact += s.ssl + s.ssg + s.ssh

	case e.MeanMotion >= 8.26e-3 && e.MeanMotion <= 9.24e-3 && eq >= 0.5:
		// 12-hour (Molniya-class) resonance.
		s.resonant = true

		eoc := eq * eosq
		g201 := -0.306 - (eq-0.64)*0.440

		var g211, g310, g322, g410, g422, g520 float64
		if eq <= 0.65 {
			g211 = 3.616 - 13.247*eq + 16.290*eosq
			g310 = -19.302 + 117.390*eq - 228.419*eosq + 156.591*eoc
			g322 = -18.9068 + 109.7927*eq - 214.6334*eosq + 146.5816*eoc
			g410 = -41.122 + 242.694*eq - 471.094*eosq + 313.953*eoc
			g422 = -146.407 + 841.880*eq - 1629.014*eosq + 1083.435*eoc
			g520 = -532.114 + 3017.977*eq - 5740.0*eosq + 3708.276*eoc
		} else {
			g211 = -72.099 + 331.819*eq - 508.738*eosq + 266.724*eoc
			g310 = -346.844 + 1582.851*eq - 2415.925*eosq + 1246.113*eoc
			g322 = -342.585 + 1554.908*eq - 2366.899*eosq + 1215.972*eoc
			g410 = -1052.797 + 4758.686*eq - 7193.992*eosq + 3651.957*eoc
			g422 = -3581.69 + 16178.11*eq - 24462.77*eosq + 12422.52*eoc

			if eq <= 0.715 {
				g520 = 1464.74 - 4664.75*eq + 3763.64*eosq
			} else {
				g520 = -5149.66 + 29936.92*eq - 54087.36*eosq + 31324.56*eoc
			}
		}

		var g533, g521, g532 float64
		if eq < 0.7 {
			g533 = -919.2277 + 4988.61*eq - 9064.77*eosq + 5542.21*eoc
			g521 = -822.71072 + 4568.6173*eq - 8491.4146*eosq + 5337.524*eoc
			g532 = -853.666 + 4690.25*eq - 8624.77*eosq + 5341.4*eoc
		} else {
			g533 = -37995.78 + 161616.52*eq - 229838.2*eosq + 109377.94*eoc
			g521 = -51752.104 + 218913.95*eq - 309468.16*eosq + 146349.42*eoc
			g532 = -40023.88 + 170470.89*eq - 242699.48*eosq + 115605.82*eoc
		}

		sini2 := c.sinio * c.sinio
		cosi2 := c.cosio * c.cosio

		f220 := 0.75 * (1.0 + 2.0*c.cosio + cosi2)
		f221 := 1.5 * sini2
		f321 := 1.875 * c.sinio * (1.0 - 2.0*c.cosio - 3.0*cosi2)
		f322 := -1.875 * c.sinio * (1.0 + 2.0*c.cosio - 3.0*cosi2)
		f441 := 35.0 * sini2 * f220
		f442 := 39.3750 * sini2 * sini2
		f522 := 9.84375 * c.sinio * (sini2*(1.0-2.0*c.cosio-5.0*cosi2) + 0.33333333*(-2.0+4.0*c.cosio+6.0*cosi2))
		f523 := c.sinio * (4.92187512*sini2*(-2.0-4.0*c.cosio+10.0*cosi2) + 6.56250012*(1.0+2.0*c.cosio-3.0*cosi2))
		f542 := 29.53125 * c.sinio * (2.0 - 8.0*c.cosio + cosi2*(-12.0+8.0*c.cosio+10.0*cosi2))
		f543 := 29.53125 * c.sinio * (-2.0 - 8.0*c.cosio + cosi2*(12.0+8.0*c.cosio-10.0*cosi2))
		xno2 := c.xnodp * c.xnodp
		ainv2 := aqnv * aqnv
		temp1 := 3.0 * xno2 * ainv2

		const (
			root22 = 1.7891679e-6
			root32 = 3.7393792e-7
			root44 = 7.3636953e-9
			root52 = 1.1428639e-7
			root54 = 2.1765803e-9
		)

		temp := temp1 * root22

		s.d2201 = temp * f220 * g201
		s.d2211 = temp * f221 * g211
		temp1 = temp1 * aqnv
		temp = temp1 * root32
		s.d3210 = temp * f321 * g310
		s.d3222 = temp * f322 * g322
		temp1 = temp1 * aqnv
		temp = 2.0 * temp1 * root44
		s.d4410 = temp * f441 * g410
		s.d4422 = temp * f442 * g422
		temp1 = temp1 * aqnv
		temp = temp1 * root52
		s.d5220 = temp * f522 * g520
		s.d5232 = temp * f523 * g532
		temp = 2.0 * temp1 * root54
		s.d5421 = temp * f542 * g521
		s.d5433 = temp * f543 * g533
		s.xlamo = xmao + e.RAAN + e.RAAN - s.thgr - s.thgr
		bfact = c.xmdot + c.xnodot + c.xnodot - dpThdt - dpThdt
		bfact += s.ssl + s.ssh + s.ssh
	}

	if s.resonant || s.synchronous {
		s.xfact = bfact - c.xnodp

		s.xli = s.xlamo
		s.xni = c.xnodp
		s.atime = 0.0
		s.stepp = 720.0
		s.stepn = -720.0
		s.step2 = 259200.0
	}

	return s
}

// deepCalcDotTerms evaluates the resonance-lobe rates at the integrator's
// current state (xli, atime).
func (s *SDP4) deepCalcDotTerms() (xndot, xnddt, xldot float64) {
	if s.synchronous {
		const (
			fasx2 = 0.13130908
			fasx4 = 2.8843198
			fasx6 = 0.37448087
		)

		xndot = s.del1*math.Sin(s.xli-fasx2) +
			s.del2*math.Sin(2.0*(s.xli-fasx4)) +
			s.del3*math.Sin(3.0*(s.xli-fasx6))
		xnddt = s.del1*math.Cos(s.xli-fasx2) +
			2.0*s.del2*math.Cos(2.0*(s.xli-fasx4)) +
			3.0*s.del3*math.Cos(3.0*(s.xli-fasx6))
	} else {
		const (
			g54 = 4.4108898
			g52 = 1.0508330
			g44 = 1.8014998
			g22 = 5.7686396
			g32 = 0.95240898
		)

		xomi := s.omegaq + s.c.omgdot*s.atime
		x2omi := xomi + xomi
		x2li := s.xli + s.xli

		xndot = s.d2201*math.Sin(x2omi+s.xli-g22) +
			s.d2211*math.Sin(s.xli-g22) +
			s.d3210*math.Sin(xomi+s.xli-g32) +
			s.d3222*math.Sin(-xomi+s.xli-g32) +
			s.d4410*math.Sin(x2omi+x2li-g44) +
			s.d4422*math.Sin(x2li-g44) +
			s.d5220*math.Sin(xomi+s.xli-g52) +
			s.d5232*math.Sin(-xomi+s.xli-g52) +
			s.d5421*math.Sin(xomi+x2li-g54) +
			s.d5433*math.Sin(-xomi+x2li-g54)

		xnddt = s.d2201*math.Cos(x2omi+s.xli-g22) +
			s.d2211*math.Cos(s.xli-g22) +
			s.d3210*math.Cos(xomi+s.xli-g32) +
			s.d3222*math.Cos(-xomi+s.xli-g32) +
			s.d5220*math.Cos(xomi+s.xli-g52) +
			s.d5232*math.Cos(-xomi+s.xli-g52) +
			2.0*(s.d4410*math.Cos(x2omi+x2li-g44)+
				s.d4422*math.Cos(x2li-g44)+
				s.d5421*math.Cos(xomi+x2li-g54)+
				s.d5433*math.Cos(-xomi+x2li-g54))
	}

	xldot = s.xni + s.xfact
	xnddt *= xldot

	return xndot, xnddt, xldot
}

// deepCalcIntegrator advances the resonance integrator state by delta
// minutes using a single Euler-ish step of the current rates.
func (s *SDP4) deepCalcIntegrator(delta float64) (xndot, xnddt, xldot float64) {
	xndot, xnddt, xldot = s.deepCalcDotTerms()

	s.xli += xldot*delta + xndot*s.step2
	s.xni += xndot*delta + xnddt*s.step2
	s.atime += delta

	return xndot, xnddt, xldot
}

// deepSecular applies the lunisolar secular rates, and for resonant orbits
// advances the step integrator from the epoch (or its last stopping point)
// up to tsince.
func (s *SDP4) deepSecular(xmdf, omgadf, xnode, emm, xincc, xnn, tsince float64) (float64, float64, float64, float64, float64, float64, float64) {
	xmdf += s.ssl * tsince
	omgadf += s.ssg * tsince
	xnode += s.ssh * tsince
	emm = s.c.elements.Eccentricity + s.sse*tsince
	xincc = s.c.elements.Inclination + s.ssi*tsince

	if xincc < 0.0 {
		xincc = -xincc
		xnode += constants.Pi
		omgadf -= constants.Pi
	}

	if !s.resonant {
		return xmdf, omgadf, xnode, emm, xincc, xnn, tsince
	}

	var xndot, xnddt, xldot, delt float64

	for {
		if s.atime == 0.0 ||
			(tsince >= 0.0 && s.atime < 0.0) ||
			(tsince < 0.0 && s.atime >= 0.0) {
			if tsince < 0 {
				delt = s.stepn
			} else {
				delt = s.stepp
			}

			s.atime = 0.0
			s.xni = s.c.xnodp
			s.xli = s.xlamo
			break
		}

		if math.Abs(tsince) < math.Abs(s.atime) {
			delt = s.stepp
			if tsince >= 0.0 {
				delt = s.stepn
			}
			xndot, xnddt, xldot = s.deepCalcIntegrator(delt)
		} else {
			delt = s.stepn
			if tsince > 0.0 {
				delt = s.stepp
			}
			break
		}
	}

	for math.Abs(tsince-s.atime) >= s.stepp {
		xndot, xnddt, xldot = s.deepCalcIntegrator(delt)
	}

	ft := tsince - s.atime
	xndot, xnddt, xldot = s.deepCalcDotTerms()

	xnn = s.xni + xndot*ft + xnddt*ft*ft*0.5
	xl := s.xli + xldot*ft + xndot*ft*ft*0.5
	temp := -xnode + s.thgr + tsince*dpThdt

	xmdf = xl - omgadf + temp
	if !s.synchronous {
		xmdf = xl + temp + temp
	}

	return xmdf, omgadf, xnode, emm, xincc, xnn, tsince
}

// deepPeriodics applies the lunar-solar periodic corrections, switching to
// the Lyddane-modified form for low-inclination orbits (epoch inclination
// below 0.2 rad) to avoid the small-sin(i) singularity in the direct form.
func (s *SDP4) deepPeriodics(e, xincc, omgadf, xnode, xmam, tsince float64) (float64, float64, float64, float64, float64) {
	sinis, cosis := math.Sincos(xincc)

	zm := s.zmos + dpZns*tsince
	zf := zm + 2.0*dpZes*math.Sin(zm)
	sinzf := math.Sin(zf)
	f2 := 0.5*sinzf*sinzf - 0.25
	f3 := -0.5 * sinzf * math.Cos(zf)
	ses := s.se2*f2 + s.se3*f3
	sis := s.si2*f2 + s.si3*f3
	sls := s.sl2*f2 + s.sl3*f3 + s.sl4*sinzf

	sghs := s.sgh2*f2 + s.sgh3*f3 + s.sgh4*sinzf
	shs := s.sh2*f2 + s.sh3*f3

	zm = s.zmol + dpZnl*tsince
	zf = zm + 2.0*dpZel*math.Sin(zm)
	sinzf = math.Sin(zf)
	f2 = 0.5*sinzf*sinzf - 0.25
	f3 = -0.5 * sinzf * math.Cos(zf)

	sel := s.ee2*f2 + s.e3*f3
	sil := s.xi2*f2 + s.xi3*f3
	sll := s.xl2*f2 + s.xl3*f3 + s.xl4*sinzf

	sghl := s.xgh2*f2 + s.xgh3*f3 + s.xgh4*sinzf
	// The lunar contribution to the node periodic term, used directly here.
	sh1 := s.xh2*f2 + s.xh3*f3

	pe := ses + sel
	pinc := sis + sil
	pl := sls + sll

	pgh := sghs + sghl
	ph := shs + sh1

	xincc += pinc
	e += pe

	if s.xqncl >= 0.2 {
		ph /= s.c.sinio
		pgh -= s.c.cosio * ph
		omgadf += pgh
		xnode += ph
		xmam += pl
	} else {
		sinok, cosok := math.Sincos(xnode)
		alfdp := sinis * sinok
		betdp := sinis * cosok
		dalf := ph*cosok + pinc*cosis*sinok
		dbet := -ph*sinok + pinc*cosis*cosok

		alfdp += dalf
		betdp += dbet

		xls := xmam + omgadf + cosis*xnode
		dls := pl + pgh - pinc*xnode*sinis

		xls += dls
		xnode = constants.AcTan(alfdp, betdp)
		xmam += pl
		omgadf = xls - xmam - math.Cos(xincc)*xnode
	}

	return e, xincc, omgadf, xnode, xmam
}

// Position propagates to tsince minutes past the TLE epoch.
func (s *SDP4) Position(tsince float64) (geo.ECI, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	xn := c.xnodp
	em := 0.0
	xinc := 0.0

	xmdf, omgadf, xnode, em, xinc, xn, tsince = s.deepSecular(xmdf, omgadf, xnode, em, xinc, xn, tsince)

	a := math.Pow(constants.Xke/xn, 2.0/3.0) * constants.Sqr(tempa)
	ecc := em - tempe
	xmam := xmdf + c.xnodp*templ

	ecc, xinc, omgadf, xnode, xmam = s.deepPeriodics(ecc, xinc, omgadf, xnode, xmam, tsince)

	xl := xmam + omgadf + xnode
	n := constants.Xke / math.Pow(a, 1.5)

	return c.finalPosition(xinc, omgadf, ecc, a, xl, xnode, n, tsince)
}
