package domain

import (
	"fmt"
	"math"
	"time"
)

// ComputeExtents derives the dataset-level coverage attributes from the
// latitude and longitude variables and the time coordinate, and stamps
// date_created from the package clock.
//
// The reductions skip NaN samples. When a variable holds no valid sample at
// all (or the file has zero rows) the corresponding extents are NaN: a
// dataset with no usable positions is still writable, by contract.
func ComputeExtents(ds *Dataset) error {
	lat, err := floatValues(ds, "latitude")
	if err != nil {
		return err
	}
	lon, err := floatValues(ds, "longitude")
	if err != nil {
		return err
	}

	latMin, latMax := nanMinMax(lat)
	lonMin, lonMax := nanMinMax(lon)
	ds.Global.Set("geospatial_lat_min", latMin)
	ds.Global.Set("geospatial_lat_max", latMax)
	ds.Global.Set("geospatial_lon_min", lonMin)
	ds.Global.Set("geospatial_lon_max", lonMax)

	if len(ds.Time) == 0 {
		ds.Global.Set("time_coverage_start", math.NaN())
		ds.Global.Set("time_coverage_end", math.NaN())
	} else {
		start, end := ds.Time[0], ds.Time[0]
		for _, t := range ds.Time[1:] {
			if t < start {
				start = t
			}
			if t > end {
				end = t
			}
		}
		ds.Global.Set("time_coverage_start", start)
		ds.Global.Set("time_coverage_end", end)
	}

	ds.Global.Set("date_created", clock.Now().UTC().Format(time.DateOnly))
	return nil
}

func floatValues(ds *Dataset, name string) ([]float64, error) {
	v := ds.Var(name)
	if v == nil {
		return nil, fmt.Errorf("extents over %s: variable %q not present", ds.SourcePath, name)
	}
	vals, ok := v.Values.([]float64)
	if !ok {
		return nil, fmt.Errorf("extents over %s: variable %q is not float64", ds.SourcePath, name)
	}
	return vals, nil
}

// nanMinMax returns the minimum and maximum of the non-NaN samples, or
// (NaN, NaN) when there are none.
func nanMinMax(vals []float64) (float64, float64) {
	lo, hi := math.NaN(), math.NaN()
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(lo) || v < lo {
			lo = v
		}
		if math.IsNaN(hi) || v > hi {
			hi = v
		}
	}
	return lo, hi
}
