package domain

import (
	"fmt"
	"math"
)

// BuildDataset assembles the labeled dataset from a parsed column table.
// The time coordinate is the timestamp column as-is (order and duplicates
// preserved); the ten data variables are stored with the kind the schema
// declares under the given numeric policy.
func BuildDataset(table ColumnTable, policy NumericPolicy) (*Dataset, error) {
	ds := &Dataset{
		SourcePath: table.Path,
		Time:       table.Timestamps,
		TimeAttrs:  NewAttributes(),
		Vars:       make([]Variable, 0, len(Schema)),
		Global:     NewAttributes(),
	}

	for _, f := range Schema {
		col, ok := table.Columns[f.Name]
		if !ok {
			return nil, fmt.Errorf("build %s: parsed table missing column %q", table.Path, f.Name)
		}
		if len(col) != len(table.Timestamps) {
			return nil, fmt.Errorf("build %s: column %q has %d rows, expected %d",
				table.Path, f.Name, len(col), len(table.Timestamps))
		}

		values, err := storeColumn(table.Path, f, col, policy)
		if err != nil {
			return nil, err
		}
		ds.Vars = append(ds.Vars, Variable{Name: f.Name, Values: values, Attrs: NewAttributes()})
	}

	if err := ds.CheckAligned(); err != nil {
		return nil, fmt.Errorf("build %s: %w", table.Path, err)
	}
	return ds, nil
}

// storeColumn converts a parsed float column into the field's declared
// storage kind. An integer-typed field cannot represent a missing (NaN)
// sample, so NaN there is a format error rather than a silent zero.
func storeColumn(path string, f Field, col []float64, policy NumericPolicy) (any, error) {
	switch f.Kinds.For(policy) {
	case Int32:
		out := make([]int32, len(col))
		for i, v := range col {
			if math.IsNaN(v) {
				return nil, &FormatError{
					Path:   path,
					Row:    i + 1,
					Column: f.Name,
					Msg:    "missing value in integer-typed column",
				}
			}
			out[i] = int32(v)
		}
		return out, nil
	default:
		out := make([]float64, len(col))
		copy(out, col)
		return out, nil
	}
}
