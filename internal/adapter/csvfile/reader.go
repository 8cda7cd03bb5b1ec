// Package csvfile parses headerless eleven-column telemetry files into
// column-oriented tables.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/marine-obs-etl/internal/domain"
)

// Reader reads delimited telemetry files. It implements pipeline.Extractor.
type Reader struct {
	logger *slog.Logger
}

// NewReader creates a telemetry file reader.
func NewReader(logger *slog.Logger) *Reader {
	return &Reader{logger: logger}
}

// Extract loads the whole file at path into a column table. The source has
// no header row; fields are assigned positionally from the schema. A row
// with the wrong column count or a cell that fails numeric coercion aborts
// the whole file with a FormatError naming the offending row and column.
func (r *Reader) Extract(ctx context.Context, path string) (domain.ColumnTable, error) {
	if err := ctx.Err(); err != nil {
		return domain.ColumnTable{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.ColumnTable{}, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	table := domain.ColumnTable{
		Path:    path,
		Columns: make(map[string][]float64, len(domain.Schema)),
	}
	for _, field := range domain.Schema {
		table.Columns[field.Name] = nil
	}

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = domain.ColumnCount

	for row := 1; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.ColumnTable{}, &domain.FormatError{
				Path: path,
				Row:  row,
				Msg:  fmt.Sprintf("expected %d columns", domain.ColumnCount),
				Err:  err,
			}
		}

		ts, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
		if err != nil {
			return domain.ColumnTable{}, &domain.FormatError{
				Path:   path,
				Row:    row,
				Column: "timestamp",
				Msg:    fmt.Sprintf("bad timestamp %q", record[0]),
				Err:    err,
			}
		}
		table.Timestamps = append(table.Timestamps, ts)

		for i, field := range domain.Schema {
			v, err := parseCell(record[i+1])
			if err != nil {
				return domain.ColumnTable{}, &domain.FormatError{
					Path:   path,
					Row:    row,
					Column: field.Name,
					Msg:    fmt.Sprintf("bad value %q", record[i+1]),
					Err:    err,
				}
			}
			table.Columns[field.Name] = append(table.Columns[field.Name], v)
		}
		table.Rows++
	}

	r.logger.Debug("parsed input file", "path", path, "rows", table.Rows)
	return table, nil
}

// parseCell coerces one cell to float64. Empty cells and the "NaN" token
// are missing values, carried through as IEEE NaN to keep row alignment.
func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
