package pymap3d

import "math"

// ENU2AER converts east-north-up offsets (meters) to azimuth, elevation,
// and slant range. Azimuth is measured clockwise from north and normalized
// to [0, 360°); elevation is measured from the horizon, positive up.
//
// Straight up or down (zero horizontal range) leaves azimuth undefined;
// this returns 0° there rather than NaN so composite paths always see a
// finite azimuth.
func ENU2AER(e, n, u float64) (az, el Angle, rng float64) {
	r := math.Hypot(e, n)
	rng = math.Hypot(r, u)
	el = Rad(math.Atan2(u, r))

	if r == 0 {
		return Rad(0), el, rng
	}

	azRad := math.Mod(math.Atan2(e, n), 2*math.Pi)
	if azRad < 0 {
		azRad += 2 * math.Pi
	}
	return Rad(azRad), el, rng
}

// AER2ENU converts azimuth, elevation, and slant range (meters) to
// east-north-up offsets.
func AER2ENU(az, el Angle, rng float64) (e, n, u float64) {
	cosEl := math.Cos(el.Radians())
	e = rng * cosEl * math.Sin(az.Radians())
	n = rng * cosEl * math.Cos(az.Radians())
	u = rng * math.Sin(el.Radians())
	return e, n, u
}

// ECEF2AER computes azimuth, elevation, and slant range from a local origin
// to an ECEF point.
func ECEF2AER(x, y, z float64, lat0, lon0 Angle, alt0 float64, ell Ellipsoid) (az, el Angle, rng float64) {
	e, n, u := ECEF2ENU(x, y, z, lat0, lon0, alt0, ell)
	return ENU2AER(e, n, u)
}

// AER2ECEF converts azimuth, elevation, and slant range observed from a
// local origin to the target's ECEF coordinates.
func AER2ECEF(az, el Angle, rng float64, lat0, lon0 Angle, alt0 float64, ell Ellipsoid) (x, y, z float64) {
	e, n, u := AER2ENU(az, el, rng)
	return ENU2ECEF(e, n, u, lat0, lon0, alt0, ell)
}

// Geodetic2AER computes azimuth, elevation, and slant range from a local
// origin to a geodetic target.
func Geodetic2AER(lat, lon Angle, alt float64, lat0, lon0 Angle, alt0 float64, ell Ellipsoid) (az, el Angle, rng float64) {
	e, n, u := Geodetic2ENU(lat, lon, alt, lat0, lon0, alt0, ell)
	return ENU2AER(e, n, u)
}

// AER2Geodetic converts azimuth, elevation, and slant range observed from a
// local origin to the target's geodetic position.
func AER2Geodetic(az, el Angle, rng float64, lat0, lon0 Angle, alt0 float64, ell Ellipsoid) (lat, lon Angle, alt float64) {
	x, y, z := AER2ECEF(az, el, rng, lat0, lon0, alt0, ell)
	return ECEF2Geodetic(x, y, z, ell)
}
