package pymap3d

import "math"

// Angle is an angular quantity with an explicit unit at the call site.
// It is stored in radians; construct one with Deg or Rad and read it back
// with Degrees or Radians. Passing a bare float64 where an angle is needed
// does not compile, which removes the classic silent degree/radian bug.
type Angle float64

// Deg returns an Angle from a value in degrees.
func Deg(d float64) Angle {
	return Angle(d * math.Pi / 180.0)
}

// Rad returns an Angle from a value in radians.
func Rad(r float64) Angle {
	return Angle(r)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 180.0 / math.Pi
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return float64(a)
}
