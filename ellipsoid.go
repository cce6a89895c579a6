package pymap3d

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter reports a malformed ellipsoid definition. It is the
// only error this package produces; every transform always returns a full
// result for finite inputs.
var ErrInvalidParameter = errors.New("invalid ellipsoid parameter")

// Ellipsoid is a reference model of the Earth's shape: a semi-major axis in
// meters and a dimensionless flattening. The zero value is not usable;
// construct one with NewEllipsoid or use a named preset. Values are
// immutable once constructed.
type Ellipsoid struct {
	a float64
	f float64
}

// NewEllipsoid constructs an ellipsoid from a semi-major axis a (meters)
// and flattening f. It returns ErrInvalidParameter unless a > 0 and
// 0 <= f < 1.
func NewEllipsoid(a, f float64) (Ellipsoid, error) {
	if !(a > 0) {
		return Ellipsoid{}, fmt.Errorf("%w: semimajor axis must be positive, got %g", ErrInvalidParameter, a)
	}
	if !(f >= 0 && f < 1) {
		return Ellipsoid{}, fmt.Errorf("%w: flattening must be in [0,1), got %g", ErrInvalidParameter, f)
	}
	return Ellipsoid{a: a, f: f}, nil
}

func mustEllipsoid(a, f float64) Ellipsoid {
	ell, err := NewEllipsoid(a, f)
	if err != nil {
		panic(err)
	}
	return ell
}

// Named reference ellipsoids. WGS84 is the conventional default.
var (
	WGS84      = mustEllipsoid(6378137.0, 1.0/298.257223563)
	WGS72      = mustEllipsoid(6378135.0, 1.0/298.26)
	GRS80      = mustEllipsoid(6378137.0, 1.0/298.257222101)
	Clarke1866 = mustEllipsoid(6378206.4, 1.0/294.978698214)
)

// LookupEllipsoid returns the preset ellipsoid for a lowercase model name
// ("wgs84", "wgs72", "grs80", "clarke1866"). The boolean reports whether
// the name is known.
func LookupEllipsoid(name string) (Ellipsoid, bool) {
	switch name {
	case "wgs84":
		return WGS84, true
	case "wgs72":
		return WGS72, true
	case "grs80":
		return GRS80, true
	case "clarke1866":
		return Clarke1866, true
	}
	return Ellipsoid{}, false
}

// SemimajorAxis returns a in meters.
func (e Ellipsoid) SemimajorAxis() float64 {
	return e.a
}

// Flattening returns f.
func (e Ellipsoid) Flattening() float64 {
	return e.f
}

// SemiminorAxis returns b = a(1-f) in meters.
func (e Ellipsoid) SemiminorAxis() float64 {
	return e.a * (1 - e.f)
}

// EccentricitySquared returns the first eccentricity squared, f(2-f).
func (e Ellipsoid) EccentricitySquared() float64 {
	return e.f * (2 - e.f)
}

// MeanRadius returns the mean radius (2a+b)/3 in meters, used by the
// spherical great-circle utilities Vreckon and VDist.
func (e Ellipsoid) MeanRadius() float64 {
	return (2*e.a + e.SemiminorAxis()) / 3
}
