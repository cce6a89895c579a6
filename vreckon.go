package pymap3d

import "math"

// Vreckon and VDist solve the direct and inverse great-circle problems on a
// sphere of the ellipsoid's mean radius. Against a true ellipsoidal geodesic
// the result carries a systematic error up to roughly 0.5% of the distance.

// Vreckon returns the point reached by traveling rng meters from
// (lat, lon) along the initial bearing az, on a sphere of radius
// ell.MeanRadius(). The returned longitude is wrapped to [-180°, 180°).
func Vreckon(lat, lon Angle, rng float64, az Angle, ell Ellipsoid) (lat2, lon2 Angle) {
	delta := rng / ell.MeanRadius()

	sinPhi1 := math.Sin(lat.Radians())
	cosPhi1 := math.Cos(lat.Radians())
	sinDelta := math.Sin(delta)
	cosDelta := math.Cos(delta)

	sinPhi2 := sinPhi1*cosDelta + cosPhi1*sinDelta*math.Cos(az.Radians())
	phi2 := math.Asin(sinPhi2)

	lam2 := lon.Radians() + math.Atan2(
		math.Sin(az.Radians())*sinDelta*cosPhi1,
		cosDelta-sinPhi1*sinPhi2,
	)
	lam2 = math.Mod(lam2+3*math.Pi, 2*math.Pi) - math.Pi

	return Rad(phi2), Rad(lam2)
}

// VDist returns the great-circle distance in meters and the initial bearing
// from (lat1, lon1) to (lat2, lon2), on a sphere of radius
// ell.MeanRadius(). Distance uses the haversine form, which stays accurate
// for nearby points; the bearing is normalized to [0, 360°).
func VDist(lat1, lon1, lat2, lon2 Angle, ell Ellipsoid) (rng float64, az Angle) {
	phi1 := lat1.Radians()
	phi2 := lat2.Radians()
	dPhi := phi2 - phi1
	dLam := lon2.Radians() - lon1.Radians()

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLam/2)*math.Sin(dLam/2)
	rng = 2 * ell.MeanRadius() * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	azRad := math.Atan2(
		math.Sin(dLam)*math.Cos(phi2),
		math.Cos(phi1)*math.Sin(phi2)-math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLam),
	)
	azRad = math.Mod(azRad, 2*math.Pi)
	if azRad < 0 {
		azRad += 2 * math.Pi
	}
	return rng, Rad(azRad)
}
