package pymap3d

import "math"

// Auxiliary latitude conversions, after Snyder, "Map Projections - A
// Working Manual", USGS Professional Paper 1395, pp. 13-18.

// Geodetic2Geocentric converts geodetic latitude to geocentric latitude on
// the given ellipsoid. At the poles tan(lat) overflows to infinity and the
// result collapses back to ±90° as expected.
func Geodetic2Geocentric(lat Angle, ell Ellipsoid) Angle {
	return Rad(math.Atan((1 - ell.EccentricitySquared()) * math.Tan(lat.Radians())))
}

// Geocentric2Geodetic converts geocentric latitude to geodetic latitude on
// the given ellipsoid. Inverse of Geodetic2Geocentric.
func Geocentric2Geodetic(lat Angle, ell Ellipsoid) Angle {
	return Rad(math.Atan(math.Tan(lat.Radians()) / (1 - ell.EccentricitySquared())))
}

// poleTolerance bounds how close a geodetic latitude must be to ±90° for
// the isometric latitude to be treated as infinite.
const poleTolerance = 1e-9 // radians

// Geodetic2Isometric converts geodetic latitude to isometric latitude on
// the given ellipsoid. Isometric latitude is proportional to the spacing of
// parallels on an ellipsoidal Mercator projection; it is unbounded, and the
// poles map to ±Inf.
func Geodetic2Isometric(lat Angle, ell Ellipsoid) Angle {
	phi := lat.Radians()
	e := math.Sqrt(ell.EccentricitySquared())

	if math.Abs(phi-math.Pi/2) <= poleTolerance {
		return Rad(math.Inf(1))
	}
	if math.Abs(phi+math.Pi/2) <= poleTolerance {
		return Rad(math.Inf(-1))
	}
	return Rad(math.Asinh(math.Tan(phi)) - e*math.Atanh(e*math.Sin(phi)))
}

// Isometric2Geodetic converts isometric latitude to geodetic latitude on
// the given ellipsoid. Inverse of Geodetic2Isometric, via the conformal
// latitude.
func Isometric2Geodetic(lat Angle, ell Ellipsoid) Angle {
	conformal := Rad(2*math.Atan(math.Exp(lat.Radians())) - math.Pi/2)
	return Conformal2Geodetic(conformal, ell)
}

// Geodetic2Conformal converts geodetic latitude to conformal latitude on
// the given ellipsoid. At the north pole the intermediate ratio overflows
// to +Inf and the result collapses to +90° through atan.
func Geodetic2Conformal(lat Angle, ell Ellipsoid) Angle {
	phi := lat.Radians()
	e := math.Sqrt(ell.EccentricitySquared())
	sinPhi := math.Sin(phi)

	f1 := 1 - e*sinPhi
	f2 := 1 + e*sinPhi
	f3 := 1 - sinPhi
	f4 := 1 + sinPhi

	return Rad(2*math.Atan(math.Sqrt((f4/f3)*math.Pow(f1/f2, e))) - math.Pi/2)
}

// Conformal2Geodetic converts conformal latitude to geodetic latitude on
// the given ellipsoid, using Snyder's trigonometric series in the first
// eccentricity squared.
func Conformal2Geodetic(lat Angle, ell Ellipsoid) Angle {
	chi := lat.Radians()
	e2 := ell.EccentricitySquared()
	e4 := e2 * e2
	e6 := e4 * e2
	e8 := e4 * e4

	f1 := e2/2 + 5*e4/24 + e6/12 + 13*e8/360
	f2 := 7*e4/48 + 29*e6/240 + 811*e8/11520
	f3 := 7*e6/120 + 81*e8/1120
	f4 := 4279 * e8 / 161280

	return Rad(chi +
		f1*math.Sin(2*chi) +
		f2*math.Sin(4*chi) +
		f3*math.Sin(6*chi) +
		f4*math.Sin(8*chi))
}
