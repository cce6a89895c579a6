package pymap3d

import "math"

// uvw2enu rotates an ECEF-frame offset (u,v,w) into the east-north-up frame
// anchored at geodetic (lat0, lon0). Rotation only, no translation.
//
// The rows of the direction-cosine matrix are
//
//	east:  (-sin lon,          cos lon,         0      )
//	north: (-sin lat cos lon, -sin lat sin lon, cos lat)
//	up:    ( cos lat cos lon,  cos lat sin lon, sin lat)
func uvw2enu(u, v, w float64, lat0, lon0 Angle) (e, n, up float64) {
	sinLat := math.Sin(lat0.Radians())
	cosLat := math.Cos(lat0.Radians())
	sinLon := math.Sin(lon0.Radians())
	cosLon := math.Cos(lon0.Radians())

	t := cosLon*u + sinLon*v
	e = -sinLon*u + cosLon*v
	n = -sinLat*t + cosLat*w
	up = cosLat*t + sinLat*w
	return e, n, up
}

// enu2uvw is the inverse of uvw2enu: the matrix is orthonormal, so the
// inverse rotation is its transpose.
func enu2uvw(e, n, up float64, lat0, lon0 Angle) (u, v, w float64) {
	sinLat := math.Sin(lat0.Radians())
	cosLat := math.Cos(lat0.Radians())
	sinLon := math.Sin(lon0.Radians())
	cosLon := math.Cos(lon0.Radians())

	t := cosLat*up - sinLat*n
	w = sinLat*up + cosLat*n
	u = cosLon*t - sinLon*e
	v = sinLon*t + cosLon*e
	return u, v, w
}

// ECEF2ENU converts an ECEF point (meters) to east-north-up offsets from a
// local origin given as geodetic (lat0, lon0, alt0).
func ECEF2ENU(x, y, z float64, lat0, lon0 Angle, alt0 float64, ell Ellipsoid) (e, n, u float64) {
	x0, y0, z0 := Geodetic2ECEF(lat0, lon0, alt0, ell)
	return uvw2enu(x-x0, y-y0, z-z0, lat0, lon0)
}

// ENU2ECEF converts east-north-up offsets from a local origin back to an
// ECEF point in meters.
func ENU2ECEF(e, n, u float64, lat0, lon0 Angle, alt0 float64, ell Ellipsoid) (x, y, z float64) {
	x0, y0, z0 := Geodetic2ECEF(lat0, lon0, alt0, ell)
	dx, dy, dz := enu2uvw(e, n, u, lat0, lon0)
	return x0 + dx, y0 + dy, z0 + dz
}

// ECEF2ENUv rotates a free ECEF vector (a velocity or displacement) into
// the ENU frame at (lat0, lon0). Unlike ECEF2ENU it never translates: free
// vectors have no position.
func ECEF2ENUv(u, v, w float64, lat0, lon0 Angle) (e, n, up float64) {
	return uvw2enu(u, v, w, lat0, lon0)
}

// ENU2ECEFv rotates a free ENU vector into the ECEF frame. Rotation only;
// see ECEF2ENUv.
func ENU2ECEFv(e, n, up float64, lat0, lon0 Angle) (u, v, w float64) {
	return enu2uvw(e, n, up, lat0, lon0)
}

// Geodetic2ENU converts a geodetic position to east-north-up offsets from a
// local origin.
func Geodetic2ENU(lat, lon Angle, alt float64, lat0, lon0 Angle, alt0 float64, ell Ellipsoid) (e, n, u float64) {
	x, y, z := Geodetic2ECEF(lat, lon, alt, ell)
	return ECEF2ENU(x, y, z, lat0, lon0, alt0, ell)
}

// ENU2Geodetic converts east-north-up offsets from a local origin to a
// geodetic position.
func ENU2Geodetic(e, n, u float64, lat0, lon0 Angle, alt0 float64, ell Ellipsoid) (lat, lon Angle, alt float64) {
	x, y, z := ENU2ECEF(e, n, u, lat0, lon0, alt0, ell)
	return ECEF2Geodetic(x, y, z, ell)
}
