package pymap3d

import (
	"math"
	"testing"
)

func TestGeodetic2Geocentric(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		want float64
	}{
		{"equator", 0, 0},
		{"45 degrees", 45, 44.8075767840},
		{"minus 45 degrees", -45, -44.8075767840},
		{"north pole", 90, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Geodetic2Geocentric(Deg(tt.lat), WGS84)
			if math.Abs(got.Degrees()-tt.want) > 1e-9 {
				t.Errorf("Geodetic2Geocentric(%g) = %.12f, want %.10f", tt.lat, got.Degrees(), tt.want)
			}
		})
	}
}

func TestGeocentricRoundTrip(t *testing.T) {
	for _, lat := range []float64{-89, -60, -30, -1, 0, 1, 30, 45, 60, 89} {
		gc := Geodetic2Geocentric(Deg(lat), WGS84)
		back := Geocentric2Geodetic(gc, WGS84)

		if math.Abs(back.Degrees()-lat) > 1e-9 {
			t.Errorf("lat %g: round trip gave %.12f", lat, back.Degrees())
		}
	}
}

func TestGeodetic2Isometric(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		want float64
	}{
		{"equator", 0, 0},
		{"30 degrees", 30, 31.2810367762},
		{"45 degrees", 45, 50.2274658167},
		{"60 degrees", 60, 75.1233992260},
		{"minus 45 degrees", -45, -50.2274658167},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Geodetic2Isometric(Deg(tt.lat), WGS84)
			if math.Abs(got.Degrees()-tt.want) > 1e-8 {
				t.Errorf("Geodetic2Isometric(%g) = %.12f, want %.10f", tt.lat, got.Degrees(), tt.want)
			}
		})
	}
}

func TestGeodetic2IsometricPoles(t *testing.T) {
	if got := Geodetic2Isometric(Deg(90), WGS84); !math.IsInf(got.Radians(), 1) {
		t.Errorf("Geodetic2Isometric(90) = %v, want +Inf", got.Radians())
	}
	if got := Geodetic2Isometric(Deg(-90), WGS84); !math.IsInf(got.Radians(), -1) {
		t.Errorf("Geodetic2Isometric(-90) = %v, want -Inf", got.Radians())
	}
}

func TestIsometricRoundTrip(t *testing.T) {
	for _, lat := range []float64{-89, -60, -30, -1, 0, 1, 30, 45, 60, 89} {
		iso := Geodetic2Isometric(Deg(lat), WGS84)
		back := Isometric2Geodetic(iso, WGS84)

		if math.Abs(back.Degrees()-lat) > 1e-9 {
			t.Errorf("lat %g: round trip gave %.12f", lat, back.Degrees())
		}
	}
}

func TestGeodetic2Conformal(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		want float64
	}{
		{"equator", 0, 0},
		{"30 degrees", 30, 29.8336820425},
		{"45 degrees", 45, 44.8076840561},
		{"60 degrees", 60, 59.8332161584},
		{"minus 60 degrees", -60, -59.8332161584},
		{"north pole", 90, 90},
		{"south pole", -90, -90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Geodetic2Conformal(Deg(tt.lat), WGS84)
			if math.Abs(got.Degrees()-tt.want) > 1e-8 {
				t.Errorf("Geodetic2Conformal(%g) = %.12f, want %.10f", tt.lat, got.Degrees(), tt.want)
			}
		})
	}
}

func TestConformalRoundTrip(t *testing.T) {
	for _, lat := range []float64{-89.9, -60, -30, -1, 0, 1, 30, 45, 60, 89.9} {
		conf := Geodetic2Conformal(Deg(lat), WGS84)
		back := Conformal2Geodetic(conf, WGS84)

		if math.Abs(back.Degrees()-lat) > 1e-9 {
			t.Errorf("lat %g: round trip gave %.12f", lat, back.Degrees())
		}
	}
}

func TestAuxiliaryLatitudesOnSphere(t *testing.T) {
	// On a sphere (zero flattening) conformal latitude collapses to the
	// geodetic latitude and the isometric latitude to asinh(tan(lat)).
	sphere, err := NewEllipsoid(6371000, 0)
	if err != nil {
		t.Fatalf("NewEllipsoid: %v", err)
	}

	if got := Geodetic2Conformal(Deg(37.5), sphere); math.Abs(got.Degrees()-37.5) > 1e-9 {
		t.Errorf("spherical conformal latitude = %.15f, want 37.5", got.Degrees())
	}

	want := math.Asinh(math.Tan(Deg(37.5).Radians()))
	if got := Geodetic2Isometric(Deg(37.5), sphere); math.Abs(got.Radians()-want) > 1e-12 {
		t.Errorf("spherical isometric latitude = %.15f, want %.15f", got.Radians(), want)
	}
}

func TestGeocentricOnSphere(t *testing.T) {
	// On a sphere (zero flattening) geodetic and geocentric latitude coincide.
	sphere, err := NewEllipsoid(6371000, 0)
	if err != nil {
		t.Fatalf("NewEllipsoid: %v", err)
	}

	got := Geodetic2Geocentric(Deg(37.5), sphere)
	if math.Abs(got.Degrees()-37.5) > 1e-12 {
		t.Errorf("spherical geocentric latitude = %.15f, want 37.5", got.Degrees())
	}
}
