// Package netcdf persists datasets as NetCDF (classic CDF) artifacts.
package netcdf

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/batchatco/go-native-netcdf/netcdf/api"
	"github.com/batchatco/go-native-netcdf/netcdf/cdf"
	"github.com/batchatco/go-native-netcdf/netcdf/util"

	"github.com/couchcryptid/marine-obs-etl/internal/domain"
)

// Writer persists fully annotated datasets. It implements pipeline.Loader.
type Writer struct {
	logger *slog.Logger
}

// NewWriter creates a NetCDF artifact writer.
func NewWriter(logger *slog.Logger) *Writer {
	return &Writer{logger: logger}
}

// Load writes the dataset to path. The artifact is written to a temporary
// sibling and renamed into place on success, so a failed write never leaves
// a half-written file mistaken for a complete one. Failures are reported as
// a PersistenceError naming the output path.
func (w *Writer) Load(ctx context.Context, ds *domain.Dataset, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := w.write(ds, tmp); err != nil {
		os.Remove(tmp)
		return &domain.PersistenceError{Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &domain.PersistenceError{Path: path, Err: err}
	}

	w.logger.Debug("wrote artifact", "path", path, "rows", len(ds.Time))
	return nil
}

func (w *Writer) write(ds *domain.Dataset, path string) error {
	cw, err := cdf.OpenWriter(path)
	if err != nil {
		return err
	}

	timeAttrs, err := attrMap(ds.TimeAttrs)
	if err != nil {
		cw.Close()
		return err
	}
	if err := cw.AddVar(domain.TimeName, api.Variable{
		Values:     ds.Time,
		Dimensions: []string{domain.TimeName},
		Attributes: timeAttrs,
	}); err != nil {
		cw.Close()
		return fmt.Errorf("add variable %q: %w", domain.TimeName, err)
	}

	for i := range ds.Vars {
		v := &ds.Vars[i]
		attrs, err := attrMap(v.Attrs)
		if err != nil {
			cw.Close()
			return err
		}
		if err := cw.AddVar(v.Name, api.Variable{
			Values:     v.Values,
			Dimensions: []string{domain.TimeName},
			Attributes: attrs,
		}); err != nil {
			cw.Close()
			return fmt.Errorf("add variable %q: %w", v.Name, err)
		}
	}

	global, err := attrMap(ds.Global)
	if err != nil {
		cw.Close()
		return err
	}
	if err := cw.AddGlobalAttrs(global); err != nil {
		cw.Close()
		return fmt.Errorf("add global attributes: %w", err)
	}

	return cw.Close()
}

func attrMap(a *domain.Attributes) (api.AttributeMap, error) {
	om, err := util.NewOrderedMap(a.Keys(), a.Map())
	if err != nil {
		return nil, fmt.Errorf("build attribute map: %w", err)
	}
	return om, nil
}
