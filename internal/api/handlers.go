package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/zhufengGNSS/pymap3d"
	"github.com/zhufengGNSS/pymap3d/internal/config"
	"github.com/zhufengGNSS/pymap3d/internal/metrics"
)

// The conversion endpoints are a thin boundary over the pymap3d package.
// All angular query parameters and results are degrees, distances are
// meters, and epochs are RFC 3339 timestamps; the degree/radian conversion
// happens exactly once, here.

func registerConvertRoutes(mux *http.ServeMux, ells *config.EllipsoidSet) {
	mux.HandleFunc("GET /api/v1/geodetic2ecef", geodetic2ecefHandler(ells))
	mux.HandleFunc("GET /api/v1/ecef2geodetic", ecef2geodeticHandler(ells))
	mux.HandleFunc("GET /api/v1/geodetic2aer", geodetic2aerHandler(ells))
	mux.HandleFunc("GET /api/v1/aer2geodetic", aer2geodeticHandler(ells))
	mux.HandleFunc("GET /api/v1/ecef2aer", ecef2aerHandler(ells))
	mux.HandleFunc("GET /api/v1/aer2ecef", aer2ecefHandler(ells))
	mux.HandleFunc("GET /api/v1/eci2ecef", eci2ecefHandler)
	mux.HandleFunc("GET /api/v1/ecef2eci", ecef2eciHandler)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeBadRequest(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// queryReader accumulates the first parse error across a handler's
// parameters so each handler validates in one pass.
type queryReader struct {
	q   url.Values
	err error
}

func (qr *queryReader) float(name string) float64 {
	if qr.err != nil {
		return 0
	}
	raw := qr.q.Get(name)
	if raw == "" {
		qr.err = fmt.Errorf("missing required parameter %q", name)
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		qr.err = fmt.Errorf("parameter %q: invalid number %q", name, raw)
		return 0
	}
	return v
}

func (qr *queryReader) angle(name string) pymap3d.Angle {
	return pymap3d.Deg(qr.float(name))
}

func (qr *queryReader) epoch() time.Time {
	if qr.err != nil {
		return time.Time{}
	}
	raw := qr.q.Get("time")
	if raw == "" {
		qr.err = fmt.Errorf("missing required parameter %q (RFC 3339)", "time")
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		qr.err = fmt.Errorf("parameter %q: %v", "time", err)
		return time.Time{}
	}
	return t
}

func (qr *queryReader) ellipsoid(ells *config.EllipsoidSet) pymap3d.Ellipsoid {
	if qr.err != nil {
		return pymap3d.WGS84
	}
	name := qr.q.Get("ellipsoid")
	ell, ok := ells.ByName(name)
	if !ok {
		qr.err = fmt.Errorf("unknown ellipsoid %q (known: %s)", name, strings.Join(ells.Names(), ", "))
		return pymap3d.WGS84
	}
	return ell
}

func geodetic2ecefHandler(ells *config.EllipsoidSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qr := &queryReader{q: r.URL.Query()}
		lat := qr.angle("lat")
		lon := qr.angle("lon")
		alt := qr.float("alt")
		ell := qr.ellipsoid(ells)
		if qr.err != nil {
			writeBadRequest(w, qr.err)
			return
		}

		x, y, z := pymap3d.Geodetic2ECEF(lat, lon, alt, ell)
		metrics.IncConversion("geodetic2ecef")
		writeJSON(w, map[string]float64{"x": x, "y": y, "z": z})
	}
}

func ecef2geodeticHandler(ells *config.EllipsoidSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qr := &queryReader{q: r.URL.Query()}
		x := qr.float("x")
		y := qr.float("y")
		z := qr.float("z")
		ell := qr.ellipsoid(ells)
		if qr.err != nil {
			writeBadRequest(w, qr.err)
			return
		}

		lat, lon, alt := pymap3d.ECEF2Geodetic(x, y, z, ell)
		metrics.IncConversion("ecef2geodetic")
		writeJSON(w, map[string]float64{"lat": lat.Degrees(), "lon": lon.Degrees(), "alt": alt})
	}
}

func geodetic2aerHandler(ells *config.EllipsoidSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qr := &queryReader{q: r.URL.Query()}
		lat := qr.angle("lat")
		lon := qr.angle("lon")
		alt := qr.float("alt")
		lat0 := qr.angle("lat0")
		lon0 := qr.angle("lon0")
		alt0 := qr.float("alt0")
		ell := qr.ellipsoid(ells)
		if qr.err != nil {
			writeBadRequest(w, qr.err)
			return
		}

		az, el, rng := pymap3d.Geodetic2AER(lat, lon, alt, lat0, lon0, alt0, ell)
		metrics.IncConversion("geodetic2aer")
		writeJSON(w, map[string]float64{"az": az.Degrees(), "el": el.Degrees(), "range": rng})
	}
}

func aer2geodeticHandler(ells *config.EllipsoidSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qr := &queryReader{q: r.URL.Query()}
		az := qr.angle("az")
		el := qr.angle("el")
		rng := qr.float("range")
		lat0 := qr.angle("lat0")
		lon0 := qr.angle("lon0")
		alt0 := qr.float("alt0")
		ell := qr.ellipsoid(ells)
		if qr.err != nil {
			writeBadRequest(w, qr.err)
			return
		}

		lat, lon, alt := pymap3d.AER2Geodetic(az, el, rng, lat0, lon0, alt0, ell)
		metrics.IncConversion("aer2geodetic")
		writeJSON(w, map[string]float64{"lat": lat.Degrees(), "lon": lon.Degrees(), "alt": alt})
	}
}

func ecef2aerHandler(ells *config.EllipsoidSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qr := &queryReader{q: r.URL.Query()}
		x := qr.float("x")
		y := qr.float("y")
		z := qr.float("z")
		lat0 := qr.angle("lat0")
		lon0 := qr.angle("lon0")
		alt0 := qr.float("alt0")
		ell := qr.ellipsoid(ells)
		if qr.err != nil {
			writeBadRequest(w, qr.err)
			return
		}

		az, el, rng := pymap3d.ECEF2AER(x, y, z, lat0, lon0, alt0, ell)
		metrics.IncConversion("ecef2aer")
		writeJSON(w, map[string]float64{"az": az.Degrees(), "el": el.Degrees(), "range": rng})
	}
}

func aer2ecefHandler(ells *config.EllipsoidSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qr := &queryReader{q: r.URL.Query()}
		az := qr.angle("az")
		el := qr.angle("el")
		rng := qr.float("range")
		lat0 := qr.angle("lat0")
		lon0 := qr.angle("lon0")
		alt0 := qr.float("alt0")
		ell := qr.ellipsoid(ells)
		if qr.err != nil {
			writeBadRequest(w, qr.err)
			return
		}

		x, y, z := pymap3d.AER2ECEF(az, el, rng, lat0, lon0, alt0, ell)
		metrics.IncConversion("aer2ecef")
		writeJSON(w, map[string]float64{"x": x, "y": y, "z": z})
	}
}

func eci2ecefHandler(w http.ResponseWriter, r *http.Request) {
	qr := &queryReader{q: r.URL.Query()}
	x := qr.float("x")
	y := qr.float("y")
	z := qr.float("z")
	t := qr.epoch()
	if qr.err != nil {
		writeBadRequest(w, qr.err)
		return
	}

	xe, ye, ze := pymap3d.ECI2ECEF(x, y, z, t)
	metrics.IncConversion("eci2ecef")
	writeJSON(w, map[string]float64{"x": xe, "y": ye, "z": ze})
}

func ecef2eciHandler(w http.ResponseWriter, r *http.Request) {
	qr := &queryReader{q: r.URL.Query()}
	x := qr.float("x")
	y := qr.float("y")
	z := qr.float("z")
	t := qr.epoch()
	if qr.err != nil {
		writeBadRequest(w, qr.err)
		return
	}

	xi, yi, zi := pymap3d.ECEF2ECI(x, y, z, t)
	metrics.IncConversion("ecef2eci")
	writeJSON(w, map[string]float64{"x": xi, "y": yi, "z": zi})
}
