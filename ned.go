package pymap3d

// NED is ENU with the horizontal axes swapped and up negated (d = -u).
// Every NED entry point goes through the ENU implementation via that
// permutation so both frames share a single rounding path.

// ECEF2NED converts an ECEF point (meters) to north-east-down offsets from
// a local origin.
func ECEF2NED(x, y, z float64, lat0, lon0 Angle, alt0 float64, ell Ellipsoid) (n, e, d float64) {
	e, n, u := ECEF2ENU(x, y, z, lat0, lon0, alt0, ell)
	return n, e, -u
}

// NED2ECEF converts north-east-down offsets from a local origin to an ECEF
// point in meters.
func NED2ECEF(n, e, d float64, lat0, lon0 Angle, alt0 float64, ell Ellipsoid) (x, y, z float64) {
	return ENU2ECEF(e, n, -d, lat0, lon0, alt0, ell)
}

// ECEF2NEDv rotates a free ECEF vector into the NED frame at (lat0, lon0).
// Rotation only, no translation; see ECEF2ENUv.
func ECEF2NEDv(u, v, w float64, lat0, lon0 Angle) (n, e, d float64) {
	e, n, up := ECEF2ENUv(u, v, w, lat0, lon0)
	return n, e, -up
}

// NED2ECEFv rotates a free NED vector into the ECEF frame. Rotation only.
func NED2ECEFv(n, e, d float64, lat0, lon0 Angle) (u, v, w float64) {
	return ENU2ECEFv(e, n, -d, lat0, lon0)
}

// Geodetic2NED converts a geodetic position to north-east-down offsets from
// a local origin.
func Geodetic2NED(lat, lon Angle, alt float64, lat0, lon0 Angle, alt0 float64, ell Ellipsoid) (n, e, d float64) {
	e, n, u := Geodetic2ENU(lat, lon, alt, lat0, lon0, alt0, ell)
	return n, e, -u
}

// NED2Geodetic converts north-east-down offsets from a local origin to a
// geodetic position.
func NED2Geodetic(n, e, d float64, lat0, lon0 Angle, alt0 float64, ell Ellipsoid) (lat, lon Angle, alt float64) {
	return ENU2Geodetic(e, n, -d, lat0, lon0, alt0, ell)
}

// NED2AER converts north-east-down offsets to azimuth, elevation, and
// slant range.
func NED2AER(n, e, d float64) (az, el Angle, rng float64) {
	return ENU2AER(e, n, -d)
}

// AER2NED converts azimuth, elevation, and slant range to north-east-down
// offsets.
func AER2NED(az, el Angle, rng float64) (n, e, d float64) {
	e, n, u := AER2ENU(az, el, rng)
	return n, e, -u
}
