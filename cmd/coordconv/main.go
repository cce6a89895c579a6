package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/zhufengGNSS/pymap3d"
)

// coordconv converts coordinate triples in CSV form, one record per line,
// reading stdin and writing stdout. Angles are degrees unless --radians.
type Options struct {
	Mode      string   `short:"m" long:"mode" description:"Conversion to apply" required:"true" choice:"geodetic2ecef" choice:"ecef2geodetic" choice:"geodetic2aer" choice:"aer2geodetic" choice:"ecef2aer" choice:"aer2ecef" choice:"eci2ecef" choice:"ecef2eci"`
	Ellipsoid string   `long:"ellipsoid" description:"Reference ellipsoid model" default:"wgs84"`
	Radians   bool     `long:"radians" description:"Angles are radians instead of degrees"`
	Lat0      *float64 `long:"lat0" description:"Observer latitude (required for AER modes)"`
	Lon0      *float64 `long:"lon0" description:"Observer longitude (required for AER modes)"`
	Alt0      *float64 `long:"alt0" description:"Observer altitude in meters (required for AER modes)"`
	Epoch     string   `short:"t" long:"time" description:"Epoch as RFC 3339 (required for ECI modes)"`
}

// converter maps one input triple to one output triple.
type converter func(a, b, c float64) (float64, float64, float64)

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	convert, err := buildConverter(&opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reader := csv.NewReader(os.Stdin)
	reader.FieldsPerRecord = 3
	writer := csv.NewWriter(os.Stdout)

	recordNum := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv errors carry their own line and column position.
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		recordNum++

		var in [3]float64
		for i, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: record %d: invalid number %q\n", recordNum, field)
				os.Exit(1)
			}
			in[i] = v
		}

		a, b, c := convert(in[0], in[1], in[2])
		out := []string{
			strconv.FormatFloat(a, 'f', -1, 64),
			strconv.FormatFloat(b, 'f', -1, 64),
			strconv.FormatFloat(c, 'f', -1, 64),
		}
		if err := writer.Write(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

func buildConverter(opts *Options) (converter, error) {
	inAngle := func(v float64) pymap3d.Angle {
		if opts.Radians {
			return pymap3d.Rad(v)
		}
		return pymap3d.Deg(v)
	}
	outAngle := func(a pymap3d.Angle) float64 {
		if opts.Radians {
			return a.Radians()
		}
		return a.Degrees()
	}

	ell, ok := pymap3d.LookupEllipsoid(opts.Ellipsoid)
	if !ok {
		return nil, fmt.Errorf("unknown ellipsoid %q", opts.Ellipsoid)
	}

	needsOrigin := func() (lat0, lon0 pymap3d.Angle, alt0 float64, err error) {
		if opts.Lat0 == nil || opts.Lon0 == nil || opts.Alt0 == nil {
			return 0, 0, 0, fmt.Errorf("--lat0, --lon0 and --alt0 are required for mode %s", opts.Mode)
		}
		return inAngle(*opts.Lat0), inAngle(*opts.Lon0), *opts.Alt0, nil
	}

	needsEpoch := func() (time.Time, error) {
		if opts.Epoch == "" {
			return time.Time{}, fmt.Errorf("--time is required for mode %s", opts.Mode)
		}
		t, err := time.Parse(time.RFC3339, opts.Epoch)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --time: %v", err)
		}
		return t, nil
	}

	switch opts.Mode {
	case "geodetic2ecef":
		return func(lat, lon, alt float64) (float64, float64, float64) {
			return pymap3d.Geodetic2ECEF(inAngle(lat), inAngle(lon), alt, ell)
		}, nil

	case "ecef2geodetic":
		return func(x, y, z float64) (float64, float64, float64) {
			lat, lon, alt := pymap3d.ECEF2Geodetic(x, y, z, ell)
			return outAngle(lat), outAngle(lon), alt
		}, nil

	case "geodetic2aer":
		lat0, lon0, alt0, err := needsOrigin()
		if err != nil {
			return nil, err
		}
		return func(lat, lon, alt float64) (float64, float64, float64) {
			az, el, rng := pymap3d.Geodetic2AER(inAngle(lat), inAngle(lon), alt, lat0, lon0, alt0, ell)
			return outAngle(az), outAngle(el), rng
		}, nil

	case "aer2geodetic":
		lat0, lon0, alt0, err := needsOrigin()
		if err != nil {
			return nil, err
		}
		return func(az, el, rng float64) (float64, float64, float64) {
			lat, lon, alt := pymap3d.AER2Geodetic(inAngle(az), inAngle(el), rng, lat0, lon0, alt0, ell)
			return outAngle(lat), outAngle(lon), alt
		}, nil

	case "ecef2aer":
		lat0, lon0, alt0, err := needsOrigin()
		if err != nil {
			return nil, err
		}
		return func(x, y, z float64) (float64, float64, float64) {
			az, el, rng := pymap3d.ECEF2AER(x, y, z, lat0, lon0, alt0, ell)
			return outAngle(az), outAngle(el), rng
		}, nil

	case "aer2ecef":
		lat0, lon0, alt0, err := needsOrigin()
		if err != nil {
			return nil, err
		}
		return func(az, el, rng float64) (float64, float64, float64) {
			return pymap3d.AER2ECEF(inAngle(az), inAngle(el), rng, lat0, lon0, alt0, ell)
		}, nil

	case "eci2ecef":
		t, err := needsEpoch()
		if err != nil {
			return nil, err
		}
		return func(x, y, z float64) (float64, float64, float64) {
			return pymap3d.ECI2ECEF(x, y, z, t)
		}, nil

	case "ecef2eci":
		t, err := needsEpoch()
		if err != nil {
			return nil, err
		}
		return func(x, y, z float64) (float64, float64, float64) {
			return pymap3d.ECEF2ECI(x, y, z, t)
		}, nil
	}

	return nil, fmt.Errorf("unknown mode %q", opts.Mode)
}
