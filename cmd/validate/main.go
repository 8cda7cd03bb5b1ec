// Command validate performs end-to-end integrity checks on a converted
// artifact: it re-reads the source CSV and the NetCDF output and verifies
// row counts, per-variable unit attributes, and coverage extents.
//
// Usage:
//
//	go run ./cmd/validate -csv data/buoy_2023.csv -nc out/buoy_2023.nc
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"

	"github.com/couchcryptid/marine-obs-etl/internal/adapter/csvfile"
	"github.com/couchcryptid/marine-obs-etl/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	csvPath := flag.String("csv", "", "path to the source CSV file")
	ncPath := flag.String("nc", "", "path to the converted NetCDF artifact")
	flag.Parse()

	if *csvPath == "" || *ncPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*csvPath, *ncPath); code != 0 {
		os.Exit(code)
	}
}

func run(csvPath, ncPath string) int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	table, err := csvfile.NewReader(logger).Extract(context.Background(), csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read source: %v\n", err)
		return 1
	}

	nc, err := netcdf.Open(ncPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open artifact: %v\n", err)
		return 1
	}
	defer nc.Close()

	phases := []*phase{
		checkAlignment(nc, table),
		checkUnits(nc),
		checkExtents(nc, table),
	}

	code := 0
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS %s\n", p.name)
			continue
		}
		code = 1
		fmt.Printf("FAIL %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("  %s\n", e)
		}
	}
	return code
}

// checkAlignment verifies the time coordinate and every data variable hold
// exactly one sample per source row.
func checkAlignment(nc api.Group, table domain.ColumnTable) *phase {
	p := &phase{name: "alignment"}

	tv, err := nc.GetVariable(domain.TimeName)
	if err != nil {
		p.errorf("time coordinate: %v", err)
		return p
	}
	times, ok := tv.Values.([]int64)
	if !ok {
		p.errorf("time coordinate is %T, want []int64", tv.Values)
		return p
	}
	if len(times) != table.Rows {
		p.errorf("time has %d steps, source has %d rows", len(times), table.Rows)
	}

	for _, f := range domain.Schema {
		v, err := nc.GetVariable(f.Name)
		if err != nil {
			p.errorf("%s: %v", f.Name, err)
			continue
		}
		if n := valueCount(v.Values); n != table.Rows {
			p.errorf("%s has %d samples, source has %d rows", f.Name, n, table.Rows)
		}
	}
	return p
}

// checkUnits verifies every variable in the artifact carries a non-empty
// units attribute.
func checkUnits(nc api.Group) *phase {
	p := &phase{name: "units"}

	names := append([]string{domain.TimeName}, variableNames()...)
	for _, name := range names {
		v, err := nc.GetVariable(name)
		if err != nil {
			p.errorf("%s: %v", name, err)
			continue
		}
		unit, has := v.Attributes.Get("units")
		if !has {
			p.errorf("%s: no units attribute", name)
			continue
		}
		if s, ok := unit.(string); !ok || s == "" {
			p.errorf("%s: empty units attribute", name)
		}
	}
	return p
}

// checkExtents recomputes the latitude extents from the source and compares
// them with the artifact's global attributes.
func checkExtents(nc api.Group, table domain.ColumnTable) *phase {
	p := &phase{name: "extents"}

	wantMin, wantMax := math.NaN(), math.NaN()
	for _, v := range table.Columns["latitude"] {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(wantMin) || v < wantMin {
			wantMin = v
		}
		if math.IsNaN(wantMax) || v > wantMax {
			wantMax = v
		}
	}

	compareExtent(p, nc, "geospatial_lat_min", wantMin)
	compareExtent(p, nc, "geospatial_lat_max", wantMax)
	return p
}

func compareExtent(p *phase, nc api.Group, attr string, want float64) {
	got, has := nc.Attributes().Get(attr)
	if !has {
		p.errorf("missing global attribute %s", attr)
		return
	}
	gf, ok := got.(float64)
	if !ok {
		p.errorf("%s is %T, want float64", attr, got)
		return
	}
	if math.IsNaN(want) && math.IsNaN(gf) {
		return
	}
	if gf != want {
		p.errorf("%s = %v, source says %v", attr, gf, want)
	}
}

func valueCount(values any) int {
	switch v := values.(type) {
	case []float64:
		return len(v)
	case []int32:
		return len(v)
	case []int64:
		return len(v)
	default:
		return -1
	}
}

func variableNames() []string {
	names := make([]string, len(domain.Schema))
	for i, f := range domain.Schema {
		names[i] = f.Name
	}
	return names
}
