package domain

import "fmt"

// FormatError reports a source file that does not conform to the fixed
// eleven-column layout, or a cell that fails numeric coercion. It is fatal
// for that file only.
type FormatError struct {
	Path   string
	Row    int    // 1-based source row, 0 when not tied to a row
	Column string // variable name, "" when not tied to a column
	Msg    string
	Err    error
}

func (e *FormatError) Error() string {
	s := fmt.Sprintf("format error in %s", e.Path)
	if e.Row > 0 {
		s += fmt.Sprintf(" row %d", e.Row)
	}
	if e.Column != "" {
		s += fmt.Sprintf(" column %q", e.Column)
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *FormatError) Unwrap() error { return e.Err }

// LookupError reports a variable name with no entry in a metadata lookup
// table. For the fixed schema this is a programming defect and must never
// occur at runtime; annotation fails fast rather than skipping silently.
type LookupError struct {
	Variable string
	Table    string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no %s entry for variable %q", e.Table, e.Variable)
}

// PersistenceError reports a failure creating or finalizing an output
// artifact. The artifact at Path is either fully written or absent.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
