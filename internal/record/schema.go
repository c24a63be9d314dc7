package record

import "fmt"

// Kind selects the codec applied to a column. The set is closed; the
// mapper dispatches on it with an explicit switch.
type Kind int

const (
	// KindString is passed through verbatim.
	KindString Kind = iota
	// KindEscaped is run through the bell-escape codec.
	KindEscaped
	// KindList is a pipe-separated list of escaped elements.
	KindList
	// KindDate is formatted per the locale date pattern.
	KindDate
	// KindDecimal is formatted per the locale separators.
	KindDecimal
	// KindInteger is a plain base-10 integer.
	KindInteger
	// KindTimestamp is Unix seconds, carried as a UTC time.Time.
	KindTimestamp
)

var kindNames = map[Kind]string{
	KindString:    "string",
	KindEscaped:   "escaped",
	KindList:      "list",
	KindDate:      "date",
	KindDecimal:   "decimal",
	KindInteger:   "integer",
	KindTimestamp: "timestamp",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a kind name as used in schema config files.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown field kind: %q", name)
}

// Column declares one schema position: its field name and codec kind.
type Column struct {
	Name string
	Kind Kind
}

// Schema is the ordered column list for a file. Row fields correspond 1:1
// to schema columns by position.
type Schema []Column

// Fields returns the column names in schema order.
func (s Schema) Fields() []string {
	fields := make([]string, len(s))
	for i, col := range s {
		fields[i] = col.Name
	}
	return fields
}
