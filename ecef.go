package pymap3d

import "math"

// Convergence criteria for the iterative ECEF->geodetic solution. Bowring's
// iteration gains roughly three digits per pass, so the cap is generous.
const (
	geodeticTolerance = 1e-12 // radians
	geodeticMaxIter   = 10
)

// Geodetic2ECEF converts a geodetic position (latitude, longitude, height
// above the ellipsoid in meters) to ECEF coordinates in meters.
//
// Closed form via the prime-vertical radius of curvature
// N = a / sqrt(1 - e^2 sin^2(lat)). Always succeeds for finite inputs;
// non-finite inputs propagate.
func Geodetic2ECEF(lat, lon Angle, alt float64, ell Ellipsoid) (x, y, z float64) {
	sinLat := math.Sin(lat.Radians())
	cosLat := math.Cos(lat.Radians())

	e2 := ell.EccentricitySquared()
	n := ell.SemimajorAxis() / math.Sqrt(1-e2*sinLat*sinLat)

	x = (n + alt) * cosLat * math.Cos(lon.Radians())
	y = (n + alt) * cosLat * math.Sin(lon.Radians())
	z = (n*(1-e2) + alt) * sinLat
	return x, y, z
}

// ECEF2Geodetic converts ECEF coordinates (meters) to a geodetic position
// using the iterative Bowring method, converging to double-precision
// round-off in a handful of iterations for terrestrial and orbital points.
//
// On the exact polar axis (x = y = 0) longitude is mathematically
// undefined; this returns lon = 0 with lat = ±90° and the height measured
// from the semi-minor axis.
func ECEF2Geodetic(x, y, z float64, ell Ellipsoid) (lat, lon Angle, alt float64) {
	a := ell.SemimajorAxis()
	e2 := ell.EccentricitySquared()

	p := math.Hypot(x, y)
	if p == 0 {
		lat = Rad(math.Copysign(math.Pi/2, z))
		return lat, Rad(0), math.Abs(z) - ell.SemiminorAxis()
	}

	lon = Rad(math.Atan2(y, x))

	// Bowring's initial estimate, then fixed-point iteration on latitude.
	phi := math.Atan2(z, p*(1-e2))
	for i := 0; i < geodeticMaxIter; i++ {
		sinPhi := math.Sin(phi)
		n := a / math.Sqrt(1-e2*sinPhi*sinPhi)
		next := math.Atan2(z+e2*n*sinPhi, p)
		if math.Abs(next-phi) <= geodeticTolerance {
			phi = next
			break
		}
		phi = next
	}

	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	n := a / math.Sqrt(1-e2*sinPhi*sinPhi)

	// Near the poles p/cos(lat) loses all precision; switch to the
	// z-based height there.
	if math.Abs(cosPhi) > 1e-10 {
		alt = p/cosPhi - n
	} else {
		alt = math.Abs(z)/math.Abs(sinPhi) - n*(1-e2)
	}

	return Rad(phi), lon, alt
}
