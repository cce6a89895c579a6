package pymap3d

import (
	"errors"
	"math"
	"testing"
)

func TestNewEllipsoidValidation(t *testing.T) {
	tests := []struct {
		name    string
		a, f    float64
		wantErr bool
	}{
		{"WGS84 parameters", 6378137.0, 1.0 / 298.257223563, false},
		{"sphere (zero flattening)", 6371000.0, 0, false},
		{"zero semimajor axis", 0, 0.003, true},
		{"negative semimajor axis", -6378137.0, 0.003, true},
		{"NaN semimajor axis", math.NaN(), 0.003, true},
		{"negative flattening", 6378137.0, -0.1, true},
		{"flattening of one", 6378137.0, 1.0, true},
		{"flattening above one", 6378137.0, 1.5, true},
		{"NaN flattening", 6378137.0, math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEllipsoid(tt.a, tt.f)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewEllipsoid(%g, %g) error = %v, wantErr %v", tt.a, tt.f, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("error %v is not ErrInvalidParameter", err)
			}
		})
	}
}

func TestWGS84DerivedConstants(t *testing.T) {
	if got := WGS84.SemiminorAxis(); math.Abs(got-6356752.314245179) > 1e-6 {
		t.Errorf("SemiminorAxis = %.9f, want 6356752.314245179", got)
	}
	if got := WGS84.EccentricitySquared(); math.Abs(got-0.0066943799901413165) > 1e-15 {
		t.Errorf("EccentricitySquared = %.18f, want 0.0066943799901413165", got)
	}
	if got := WGS84.MeanRadius(); math.Abs(got-6371008.771415059) > 1e-6 {
		t.Errorf("MeanRadius = %.9f, want 6371008.771415059", got)
	}
}

func TestLookupEllipsoid(t *testing.T) {
	for _, name := range []string{"wgs84", "wgs72", "grs80", "clarke1866"} {
		ell, ok := LookupEllipsoid(name)
		if !ok {
			t.Errorf("LookupEllipsoid(%q) not found", name)
		}
		if ell.SemimajorAxis() <= 0 {
			t.Errorf("LookupEllipsoid(%q) returned zero-value ellipsoid", name)
		}
	}

	if _, ok := LookupEllipsoid("bessel"); ok {
		t.Error("LookupEllipsoid should not know 'bessel'")
	}
}
