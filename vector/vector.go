// Package vector provides the small 3-D value types the propagator and
// coordinate transforms are built on. Position and velocity are plain
// (x, y, z) triples; call sites that also need a magnitude or a range-rate
// scalar carry it alongside in a Vec3Mag rather than smuggling it into a
// fourth vector component.
package vector

import "math"

// Vec3 is an ordered (x, y, z) triple. It carries no implicit units; callers
// track whether a given Vec3 is in kilometers, Earth radii, km/s, etc.
type Vec3 struct {
	X, Y, Z float64
}

// New returns a Vec3 with the given components.
func New(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns v + u.
func (v Vec3) Add(u Vec3) Vec3 { return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z} }

// Sub returns v - u.
func (v Vec3) Sub(u Vec3) Vec3 { return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z} }

// Scale returns v scaled by factor.
func (v Vec3) Scale(factor float64) Vec3 { return Vec3{v.X * factor, v.Y * factor, v.Z * factor} }

// Dot returns the scalar dot product of v and u.
func (v Vec3) Dot(u Vec3) float64 { return v.X*u.X + v.Y*u.Y + v.Z*u.Z }

// Magnitude returns |v|.
func (v Vec3) Magnitude() float64 { return math.Sqrt(v.Dot(v)) }

// RotateZ rotates v by angle radians about the Z axis.
func (v Vec3) RotateZ(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// Vec3Mag pairs a Vec3 with a scalar the caller has computed alongside it —
// a range magnitude, a range rate, whatever the call site means by "w" in
// the classic four-component NORAD vector. Keeping it a distinct type
// avoids every caller of Vec3 needing to know which meaning the fourth slot
// has at any given point in the pipeline.
type Vec3Mag struct {
	V   Vec3
	Mag float64
}

// NewMag builds a Vec3Mag holding v and the caller-supplied mag as is; use
// Range to have Mag computed as |v|.
func NewMag(v Vec3, mag float64) Vec3Mag { return Vec3Mag{V: v, Mag: mag} }

// Range returns a Vec3Mag whose Mag is the Euclidean magnitude of v.
func Range(v Vec3) Vec3Mag { return Vec3Mag{V: v, Mag: v.Magnitude()} }
