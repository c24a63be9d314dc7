package record

// Record is a row after per-field decoding into typed values.
// Field order is significant and matches the schema column order, so the
// names and values are kept in parallel slices rather than a map.
type Record struct {
	fields []string
	values []any
}

func New(fields []string, values []any) *Record {
	return &Record{
		fields: fields,
		values: values,
	}
}

func (r *Record) Len() int {
	return len(r.fields)
}

func (r *Record) Fields() []string {
	return r.fields
}

func (r *Record) Values() []any {
	return r.values
}

// Value returns the value for the named field.
func (r *Record) Value(name string) (any, bool) {
	for i, field := range r.fields {
		if field == name {
			return r.values[i], true
		}
	}
	return nil, false
}

func (r *Record) Map() map[string]any {
	m := make(map[string]any)
	for i, field := range r.fields {
		m[field] = r.values[i]
	}
	return m
}
