package record

import "fmt"

// RowArityError reports a row whose field count does not match the schema.
type RowArityError struct {
	Expected int
	Actual   int
}

func (e *RowArityError) Error() string {
	return fmt.Sprintf(
		"row and schema fields mismatch: schema has %d columns, row has %d fields",
		e.Expected,
		e.Actual,
	)
}

// FieldFormatError wraps a codec failure with the position it occurred at.
// Column is the zero-based column index.
type FieldFormatError struct {
	Field  string
	Column int
	Err    error
}

func (e *FieldFormatError) Error() string {
	return fmt.Sprintf("field %q (column %d): %v", e.Field, e.Column, e.Err)
}

func (e *FieldFormatError) Unwrap() error {
	return e.Err
}
