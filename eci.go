package pymap3d

import (
	"math"
	"time"
)

// j2000 is the Julian Date of the J2000.0 epoch (January 1, 2000, 12:00:00 TT).
const j2000 = 2451545.0

// JulianDate converts a time.Time (UTC) to Julian Date.
// Uses the standard astronomical algorithm valid for dates after March 1, 4801 BC.
func JulianDate(t time.Time) float64 {
	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())
	h := float64(t.Hour())
	min := float64(t.Minute())
	s := float64(t.Second()) + float64(t.Nanosecond())/1e9

	// Adjust year/month for Jan/Feb (treat as months 13/14 of previous year).
	if m <= 2 {
		y -= 1
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	jd := math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + d + b - 1524.5
	jd += (h + min/60.0 + s/3600.0) / 24.0

	return jd
}

// GMST returns Greenwich Mean Sidereal Time for a given UTC time.
// Uses the IAU-82 model as described in Vallado "Fundamentals of Astrodynamics".
//
// Formula (Vallado Eq 3-47):
//
//	θ_GMST = 67310.54841 + (876600h + 8640184.812866)*T + 0.093104*T² - 6.2e-6*T³
//
// where T is Julian centuries of UT1 from J2000.0, result is in seconds of time.
func GMST(t time.Time) Angle {
	t = t.UTC()
	jd := JulianDate(t)
	tUT1 := (jd - j2000) / 36525.0

	// GMST in seconds of time.
	// 876600h = 876600 * 3600 = 3155760000 seconds.
	gmstSec := 67310.54841 +
		(3155760000.0+8640184.812866)*tUT1 +
		0.093104*tUT1*tUT1 -
		6.2e-6*tUT1*tUT1*tUT1

	// Normalize to [0, 86400) seconds, then convert to radians.
	gmstSec = math.Mod(gmstSec, 86400.0)
	if gmstSec < 0 {
		gmstSec += 86400.0
	}
	return Rad(gmstSec / 86400.0 * 2.0 * math.Pi)
}

// r3 rotates (x, y, z) about the z-axis by theta.
func r3(x, y, z float64, theta Angle) (float64, float64, float64) {
	cosT := math.Cos(theta.Radians())
	sinT := math.Sin(theta.Radians())
	return x*cosT + y*sinT, -x*sinT + y*cosT, z
}

// ECI2ECEF rotates an Earth-Centered-Inertial position (meters) into the
// ECEF frame at the given UTC epoch, using the GMST rotation only.
//
// Polar motion, nutation, and precession are not modeled; against a full
// IAU transformation chain this introduces errors on the order of tens of
// meters, the same simplification used for satellite visualization work.
func ECI2ECEF(x, y, z float64, t time.Time) (float64, float64, float64) {
	return r3(x, y, z, GMST(t))
}

// ECEF2ECI rotates an ECEF position (meters) into the ECI frame at the
// given UTC epoch. Inverse of ECI2ECEF; same modeling limitations.
func ECEF2ECI(x, y, z float64, t time.Time) (float64, float64, float64) {
	return r3(x, y, z, -GMST(t))
}

// ECI2Geodetic converts an ECI position at the given epoch to a geodetic
// position.
func ECI2Geodetic(x, y, z float64, t time.Time, ell Ellipsoid) (lat, lon Angle, alt float64) {
	xe, ye, ze := ECI2ECEF(x, y, z, t)
	return ECEF2Geodetic(xe, ye, ze, ell)
}

// Geodetic2ECI converts a geodetic position to ECI coordinates at the
// given epoch.
func Geodetic2ECI(lat, lon Angle, alt float64, t time.Time, ell Ellipsoid) (x, y, z float64) {
	xe, ye, ze := Geodetic2ECEF(lat, lon, alt, ell)
	return ECEF2ECI(xe, ye, ze, t)
}

// ECI2AER computes azimuth, elevation, and slant range from a local origin
// to an ECI position at the given epoch.
func ECI2AER(x, y, z float64, t time.Time, lat0, lon0 Angle, alt0 float64, ell Ellipsoid) (az, el Angle, rng float64) {
	xe, ye, ze := ECI2ECEF(x, y, z, t)
	return ECEF2AER(xe, ye, ze, lat0, lon0, alt0, ell)
}

// AER2ECI converts azimuth, elevation, and slant range observed from a
// local origin to ECI coordinates at the given epoch.
func AER2ECI(az, el Angle, rng float64, lat0, lon0 Angle, alt0 float64, t time.Time, ell Ellipsoid) (x, y, z float64) {
	xe, ye, ze := AER2ECEF(az, el, rng, lat0, lon0, alt0, ell)
	return ECEF2ECI(xe, ye, ze, t)
}
