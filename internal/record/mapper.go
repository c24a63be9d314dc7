package record

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fkleon/lsetwatch-csv/internal/escape"
	"github.com/fkleon/lsetwatch-csv/internal/locale"
	"github.com/fkleon/lsetwatch-csv/internal/psv"
)

// Mapper converts between raw field rows and typed records according to a
// schema. It holds no mutable state and is safe for concurrent use.
type Mapper struct {
	schema Schema
	locale locale.Locale
}

func NewMapper(schema Schema, loc locale.Locale) *Mapper {
	return &Mapper{
		schema: schema,
		locale: loc,
	}
}

func (m *Mapper) Schema() Schema {
	return m.schema
}

// DecodeRecord applies the per-column codec to each raw field. An empty
// field decodes to nil for date, decimal, integer and timestamp columns,
// since the reference application leaves unset optional values blank.
func (m *Mapper) DecodeRecord(row []string) (*Record, error) {
	if len(row) != len(m.schema) {
		return nil, &RowArityError{Expected: len(m.schema), Actual: len(row)}
	}

	values := make([]any, len(row))
	for i, col := range m.schema {
		value, err := m.decodeField(col.Kind, row[i])
		if err != nil {
			return nil, &FieldFormatError{Field: col.Name, Column: i, Err: err}
		}
		values[i] = value
	}

	return New(m.schema.Fields(), values), nil
}

// EncodeRecord renders each typed value back into its raw field form. Nil
// values encode to the empty field.
func (m *Mapper) EncodeRecord(r *Record) ([]string, error) {
	if r.Len() != len(m.schema) {
		return nil, &RowArityError{Expected: len(m.schema), Actual: r.Len()}
	}

	row := make([]string, len(m.schema))
	values := r.Values()
	for i, col := range m.schema {
		field, err := m.encodeField(col.Kind, values[i])
		if err != nil {
			return nil, &FieldFormatError{Field: col.Name, Column: i, Err: err}
		}
		row[i] = field
	}

	return row, nil
}

func (m *Mapper) decodeField(kind Kind, raw string) (any, error) {
	switch kind {
	case KindString:
		return raw, nil
	case KindEscaped:
		return escape.Decode(raw)
	case KindList:
		return psv.Decode(raw)
	case KindDate:
		if raw == "" {
			return nil, nil
		}
		return m.locale.ParseDate(raw)
	case KindDecimal:
		if raw == "" {
			return nil, nil
		}
		return m.locale.ParseDecimal(raw)
	case KindInteger:
		if raw == "" {
			return nil, nil
		}
		return strconv.Atoi(raw)
	case KindTimestamp:
		if raw == "" {
			return nil, nil
		}
		secs, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		return time.Unix(secs, 0).UTC(), nil
	}
	return nil, fmt.Errorf("unknown field kind: %v", kind)
}

func (m *Mapper) encodeField(kind Kind, value any) (string, error) {
	if value == nil {
		return "", nil
	}

	switch kind {
	case KindString:
		s, ok := value.(string)
		if !ok {
			return "", fmt.Errorf("expected string, got %T", value)
		}
		return s, nil
	case KindEscaped:
		s, ok := value.(string)
		if !ok {
			return "", fmt.Errorf("expected string, got %T", value)
		}
		return escape.Encode(s), nil
	case KindList:
		items, ok := value.([]string)
		if !ok {
			return "", fmt.Errorf("expected []string, got %T", value)
		}
		return psv.Encode(items), nil
	case KindDate:
		d, ok := value.(time.Time)
		if !ok {
			return "", fmt.Errorf("expected time.Time, got %T", value)
		}
		return m.locale.FormatDate(d), nil
	case KindDecimal:
		n, ok := value.(float64)
		if !ok {
			return "", fmt.Errorf("expected float64, got %T", value)
		}
		return m.locale.FormatDecimal(n), nil
	case KindInteger:
		n, ok := value.(int)
		if !ok {
			return "", fmt.Errorf("expected int, got %T", value)
		}
		return strconv.Itoa(n), nil
	case KindTimestamp:
		t, ok := value.(time.Time)
		if !ok {
			return "", fmt.Errorf("expected time.Time, got %T", value)
		}
		return strconv.FormatInt(t.Unix(), 10), nil
	}
	return "", fmt.Errorf("unknown field kind: %v", kind)
}
