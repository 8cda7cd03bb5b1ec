// Command genfixture generates sample eleven-column telemetry CSV files for
// local testing. The generator is seeded, so fixtures are reproducible.
//
// Usage:
//
//	go run ./cmd/genfixture -out data/fixtures/buoy_sample.csv -rows 500
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output CSV path")
	rows := flag.Int("rows", 100, "number of observation rows")
	seed := flag.Int64("seed", 1, "random seed")
	start := flag.Int64("start", 1700000000, "first timestamp, seconds since epoch")
	missing := flag.Float64("missing", 0.02, "fraction of data cells left empty (missing)")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	defer f.Close()

	rng := rand.New(rand.NewSource(*seed))
	w := csv.NewWriter(f)

	// Drift a plausible mid-Pacific buoy track with minute cadence.
	lat, lon := 34.5, -120.2
	for i := 0; i < *rows; i++ {
		lat += (rng.Float64() - 0.5) * 0.01
		lon += (rng.Float64() - 0.5) * 0.01
		temp := 15 + rng.Float64()*8
		record := []string{
			strconv.FormatInt(*start+int64(i)*60, 10),
			cell(rng, *missing, lat, 4),
			cell(rng, *missing, lon, 4),
			cell(rng, *missing, rng.Float64()*20, 1),
			cell(rng, *missing, rng.Float64()*360, 0),
			cell(rng, *missing, temp, 1),
			cell(rng, *missing, 50+rng.Float64()*40, 0),
			cell(rng, *missing, temp-rng.Float64()*6, 1),
			cell(rng, *missing, 1005+rng.Float64()*20, 1),
			cell(rng, *missing, rng.Float64()*0.4-0.2, 2),
			cell(rng, *missing, 1006+rng.Float64()*20, 1),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", *out, err)
	}

	log.Printf("%s: %d rows", *out, *rows)
	return nil
}

// cell formats a value with the given precision, or returns an empty
// (missing) cell with probability p.
func cell(rng *rand.Rand, p, v float64, prec int) string {
	if rng.Float64() < p {
		return ""
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
