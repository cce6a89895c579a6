// Package config handles geoconvd configuration loading and ellipsoid
// model resolution.
package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/zhufengGNSS/pymap3d"
)

// EllipsoidDef defines a custom reference ellipsoid in the config file.
// Parameters are validated through pymap3d.NewEllipsoid when resolved.
type EllipsoidDef struct {
	Name          string  `yaml:"name"`
	SemimajorAxis float64 `yaml:"semimajor_axis"`
	Flattening    float64 `yaml:"flattening"`
}

// Config is the root geoconvd configuration file structure. Every field is
// optional; missing values fall back to the defaults applied by the server
// entry point, and environment variables override the file.
type Config struct {
	Addr             string         `yaml:"addr,omitempty"`
	TrustProxy       bool           `yaml:"trust_proxy,omitempty"`
	AuthEnabled      bool           `yaml:"auth_enabled,omitempty"`
	AuthToken        string         `yaml:"auth_token,omitempty"`
	DefaultEllipsoid string         `yaml:"default_ellipsoid,omitempty"`
	Ellipsoids       []EllipsoidDef `yaml:"ellipsoids,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// EllipsoidSet resolves ellipsoid names for the conversion endpoints:
// the built-in presets plus any custom definitions from the config file,
// with a default model for requests that name none.
type EllipsoidSet struct {
	byName      map[string]pymap3d.Ellipsoid
	defaultName string
}

// presetNames are the built-in models exposed by name.
var presetNames = []string{"wgs84", "wgs72", "grs80", "clarke1866"}

// ResolveEllipsoids builds the ellipsoid lookup table from the
// configuration. Custom definitions are validated here, at startup, so a
// malformed ellipsoid can never reach a conversion call.
func (c *Config) ResolveEllipsoids() (*EllipsoidSet, error) {
	set := &EllipsoidSet{byName: make(map[string]pymap3d.Ellipsoid)}

	for _, name := range presetNames {
		ell, ok := pymap3d.LookupEllipsoid(name)
		if !ok {
			return nil, fmt.Errorf("unknown preset ellipsoid %q", name)
		}
		set.byName[name] = ell
	}

	for _, def := range c.Ellipsoids {
		if def.Name == "" {
			return nil, fmt.Errorf("custom ellipsoid with empty name")
		}
		ell, err := pymap3d.NewEllipsoid(def.SemimajorAxis, def.Flattening)
		if err != nil {
			return nil, fmt.Errorf("custom ellipsoid %q: %w", def.Name, err)
		}
		set.byName[def.Name] = ell
	}

	set.defaultName = c.DefaultEllipsoid
	if set.defaultName == "" {
		set.defaultName = "wgs84"
	}
	if _, ok := set.byName[set.defaultName]; !ok {
		return nil, fmt.Errorf("default ellipsoid %q is not defined", set.defaultName)
	}

	return set, nil
}

// Default returns the configured default ellipsoid.
func (s *EllipsoidSet) Default() pymap3d.Ellipsoid {
	return s.byName[s.defaultName]
}

// ByName returns the ellipsoid for a model name; the empty string selects
// the default.
func (s *EllipsoidSet) ByName(name string) (pymap3d.Ellipsoid, bool) {
	if name == "" {
		return s.Default(), true
	}
	ell, ok := s.byName[name]
	return ell, ok
}

// Names returns the known model names, for error messages.
func (s *EllipsoidSet) Names() []string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
