package domain

import "fmt"

// ColumnTable is the column-oriented result of parsing one source file.
// Data columns are keyed by schema field name and hold float64 values
// regardless of the eventual storage kind; the builder applies the numeric
// policy. Every column has exactly Rows entries.
type ColumnTable struct {
	Path       string
	Rows       int
	Timestamps []int64
	Columns    map[string][]float64
}

// Attributes is an insertion-ordered attribute map. NetCDF attribute order
// is visible in the artifact, so order must be deterministic. Set replaces
// an existing value in place, keeping its original position.
type Attributes struct {
	keys []string
	vals map[string]any
}

func NewAttributes() *Attributes {
	return &Attributes{vals: make(map[string]any)}
}

func (a *Attributes) Set(name string, value any) {
	if _, ok := a.vals[name]; !ok {
		a.keys = append(a.keys, name)
	}
	a.vals[name] = value
}

func (a *Attributes) Get(name string) (any, bool) {
	v, ok := a.vals[name]
	return v, ok
}

// Keys returns attribute names in insertion order.
func (a *Attributes) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Map returns a copy of the name-to-value mapping.
func (a *Attributes) Map() map[string]any {
	out := make(map[string]any, len(a.vals))
	for k, v := range a.vals {
		out[k] = v
	}
	return out
}

func (a *Attributes) Len() int { return len(a.keys) }

// Variable is one data variable aligned to the time coordinate.
// Values is []float64 or []int32 depending on the schema kind.
type Variable struct {
	Name   string
	Values any
	Attrs  *Attributes
}

// Len returns the number of samples in the variable.
func (v *Variable) Len() int {
	switch vals := v.Values.(type) {
	case []float64:
		return len(vals)
	case []int32:
		return len(vals)
	default:
		return 0
	}
}

// Dataset is the in-memory labeled dataset for one source file: a time
// coordinate, ten data variables aligned to it, and global attributes.
// A Dataset is built fresh per input file, fully populated in one pass,
// handed once to the writer, and discarded.
type Dataset struct {
	SourcePath string
	Time       []int64
	TimeAttrs  *Attributes
	Vars       []Variable
	Global     *Attributes
}

// Var returns the named data variable, or nil if absent.
func (d *Dataset) Var(name string) *Variable {
	for i := range d.Vars {
		if d.Vars[i].Name == name {
			return &d.Vars[i]
		}
	}
	return nil
}

// CheckAligned verifies the structural invariant that every data variable
// has the same length as the time coordinate.
func (d *Dataset) CheckAligned() error {
	for i := range d.Vars {
		if n := d.Vars[i].Len(); n != len(d.Time) {
			return fmt.Errorf("variable %q has %d samples, time coordinate has %d",
				d.Vars[i].Name, n, len(d.Time))
		}
	}
	return nil
}
