package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/zhufengGNSS/pymap3d/internal/auth"
	"github.com/zhufengGNSS/pymap3d/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func testEllipsoids(t *testing.T) *config.EllipsoidSet {
	t.Helper()
	cfg := &config.Config{}
	ells, err := cfg.ResolveEllipsoids()
	if err != nil {
		t.Fatalf("ResolveEllipsoids: %v", err)
	}
	return ells
}

func testMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	registerConvertRoutes(mux, testEllipsoids(t))
	return mux
}

func getJSON(t *testing.T, mux *http.ServeMux, url string, wantStatus int) map[string]float64 {
	t.Helper()
	req := httptest.NewRequest("GET", url, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != wantStatus {
		t.Fatalf("GET %s: status = %d, want %d, body %s", url, w.Code, wantStatus, w.Body.String())
	}
	if wantStatus != http.StatusOK {
		return nil
	}

	var resp map[string]float64
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("GET %s: decode response: %v", url, err)
	}
	return resp
}

func TestGeodetic2ECEFEndpoint(t *testing.T) {
	mux := testMux(t)

	resp := getJSON(t, mux, "/api/v1/geodetic2ecef?lat=42&lon=-82&alt=200", http.StatusOK)

	want := map[string]float64{
		"x": 660675.2518247330,
		"y": -4700948.6831622670,
		"z": 4245737.6622223860,
	}
	for k, w := range want {
		if math.Abs(resp[k]-w) > 1e-4 {
			t.Errorf("%s = %.7f, want %.7f", k, resp[k], w)
		}
	}
}

func TestECEF2GeodeticEndpoint(t *testing.T) {
	mux := testMux(t)

	resp := getJSON(t, mux,
		"/api/v1/ecef2geodetic?x=660675.2518247330&y=-4700948.6831622670&z=4245737.6622223860",
		http.StatusOK)

	if math.Abs(resp["lat"]-42) > 1e-9 {
		t.Errorf("lat = %.12f, want 42", resp["lat"])
	}
	if math.Abs(resp["lon"]-(-82)) > 1e-9 {
		t.Errorf("lon = %.12f, want -82", resp["lon"])
	}
	if math.Abs(resp["alt"]-200) > 1e-4 {
		t.Errorf("alt = %.6f, want 200", resp["alt"])
	}
}

func TestAER2ECEFEndpoint(t *testing.T) {
	mux := testMux(t)

	resp := getJSON(t, mux,
		"/api/v1/aer2ecef?az=33&el=70&range=1000&lat0=42&lon0=-82&alt0=200",
		http.StatusOK)

	want := map[string]float64{
		"x": 660930.1927610816,
		"y": -4701424.2229570110,
		"z": 4246579.6046328810,
	}
	for k, w := range want {
		if math.Abs(resp[k]-w) > 1e-4 {
			t.Errorf("%s = %.7f, want %.7f", k, resp[k], w)
		}
	}
}

func TestGeodeticAERRoundTripEndpoints(t *testing.T) {
	mux := testMux(t)

	aer := getJSON(t, mux,
		"/api/v1/geodetic2aer?lat=42.0025819743&lon=-81.9977519601&alt=1139.7018&lat0=42&lon0=-82&alt0=200",
		http.StatusOK)

	if math.Abs(aer["az"]-33) > 1e-3 {
		t.Errorf("az = %.6f, want 33", aer["az"])
	}
	if math.Abs(aer["el"]-70) > 1e-3 {
		t.Errorf("el = %.6f, want 70", aer["el"])
	}
	if math.Abs(aer["range"]-1000) > 0.1 {
		t.Errorf("range = %.4f, want 1000", aer["range"])
	}
}

func TestECIEndpointsRoundTrip(t *testing.T) {
	mux := testMux(t)
	const epoch = "2004-04-06T07:51:28Z"

	eci := getJSON(t, mux,
		"/api/v1/ecef2eci?x=660675.2518&y=-4700948.6832&z=4245737.6622&time="+epoch,
		http.StatusOK)

	back := getJSON(t, mux,
		"/api/v1/eci2ecef?time="+epoch+
			"&x="+formatFloat(eci["x"])+
			"&y="+formatFloat(eci["y"])+
			"&z="+formatFloat(eci["z"]),
		http.StatusOK)

	if math.Abs(back["x"]-660675.2518) > 1e-3 {
		t.Errorf("x = %.6f, want 660675.2518", back["x"])
	}
	if math.Abs(back["y"]-(-4700948.6832)) > 1e-3 {
		t.Errorf("y = %.6f, want -4700948.6832", back["y"])
	}
	if math.Abs(back["z"]-4245737.6622) > 1e-3 {
		t.Errorf("z = %.6f, want 4245737.6622", back["z"])
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func TestEllipsoidParameter(t *testing.T) {
	mux := testMux(t)

	wgs84 := getJSON(t, mux, "/api/v1/geodetic2ecef?lat=45&lon=0&alt=0", http.StatusOK)
	grs80 := getJSON(t, mux, "/api/v1/geodetic2ecef?lat=45&lon=0&alt=0&ellipsoid=grs80", http.StatusOK)

	// WGS-84 and GRS-80 differ only in the last digits of the flattening;
	// results must be close but not identical.
	if math.Abs(wgs84["z"]-grs80["z"]) > 0.01 {
		t.Errorf("z differs too much between models: %.6f vs %.6f", wgs84["z"], grs80["z"])
	}
	if wgs84["z"] == grs80["z"] {
		t.Error("expected distinct results for wgs84 and grs80 models")
	}
}

func TestConvertEndpointErrors(t *testing.T) {
	mux := testMux(t)

	tests := []struct {
		name string
		url  string
	}{
		{"missing lat", "/api/v1/geodetic2ecef?lon=-82&alt=200"},
		{"missing alt", "/api/v1/geodetic2ecef?lat=42&lon=-82"},
		{"unparsable number", "/api/v1/geodetic2ecef?lat=abc&lon=-82&alt=200"},
		{"unknown ellipsoid", "/api/v1/geodetic2ecef?lat=42&lon=-82&alt=200&ellipsoid=bessel"},
		{"missing origin", "/api/v1/aer2geodetic?az=33&el=70&range=1000"},
		{"missing time", "/api/v1/eci2ecef?x=1&y=2&z=3"},
		{"malformed time", "/api/v1/eci2ecef?x=1&y=2&z=3&time=yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.url, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusBadRequest, w.Body.String())
			}
			var resp map[string]any
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if resp["error"] == nil {
				t.Error("expected error field in response")
			}
		})
	}
}

func TestServerProbesAndAuth(t *testing.T) {
	srv := NewServer(":0", testLogger(),
		auth.Config{Enabled: true, Token: "secret"},
		testEllipsoids(t), false)
	handler := srv.HTTPServer().Handler

	tests := []struct {
		name       string
		url        string
		token      string
		wantStatus int
	}{
		{"healthz is public", "/healthz", "", http.StatusOK},
		{"readyz is public", "/readyz", "", http.StatusOK},
		{"metrics is public", "/metrics", "", http.StatusOK},
		{"conversion requires token", "/api/v1/geodetic2ecef?lat=42&lon=-82&alt=200", "", http.StatusUnauthorized},
		{"conversion with bad token", "/api/v1/geodetic2ecef?lat=42&lon=-82&alt=200", "wrong", http.StatusUnauthorized},
		{"conversion with token", "/api/v1/geodetic2ecef?lat=42&lon=-82&alt=200", "secret", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
