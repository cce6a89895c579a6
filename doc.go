// Package pymap3d converts positions between geodetic, ECEF, local
// tangent-plane (ENU/NED), topocentric (azimuth-elevation-range), and
// Earth-Centered-Inertial coordinate representations.
//
// All transforms are pure functions over value inputs: no shared state, no
// I/O, safe to call from any number of goroutines. The reference ellipsoid
// is threaded explicitly through every geodetic call; WGS84 is provided as
// the conventional default but nothing in this package assumes it.
//
// Angular parameters and results use the Angle type, constructed with Deg
// or Rad, so degree/radian mix-ups cannot compile. Non-finite inputs
// propagate to non-finite outputs rather than raising errors; the only
// error path in the package is ellipsoid construction.
package pymap3d
