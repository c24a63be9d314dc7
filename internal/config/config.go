package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/fkleon/lsetwatch-csv/internal/locale"
	"github.com/fkleon/lsetwatch-csv/internal/record"
)

type Logger struct {
	Level string `yaml:"level"`
}

type Global struct {
	Logger Logger `yaml:"logger"`
}

type Locale struct {
	DatePattern      string `yaml:"date_pattern"`
	GroupSeparator   string `yaml:"group_separator"`
	DecimalSeparator string `yaml:"decimal_separator"`
}

type Column struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

type File struct {
	Charset string   `yaml:"charset"`
	Locale  Locale   `yaml:"locale"`
	Schema  []Column `yaml:"schema"`
}

// Profile describes one Lsetwatch installation's file settings: charset,
// locale, and optionally a custom column schema.
type Profile struct {
	Global Global `yaml:"global"`
	File   File   `yaml:"file"`
}

func NewProfileFromFile(fpath string) (*Profile, error) {
	bs, err := os.ReadFile(fpath)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := yaml.Unmarshal(bs, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// ToLocale builds the codec locale from its config form. Unset values
// fall back to the documented defaults.
func ToLocale(c Locale) (locale.Locale, error) {
	l := locale.Default()

	if c.DatePattern != "" {
		l.DatePattern = c.DatePattern
	}
	if c.GroupSeparator != "" {
		r, err := singleRune(c.GroupSeparator)
		if err != nil {
			return locale.Locale{}, fmt.Errorf("group_separator: %w", err)
		}
		l.GroupSeparator = r
	}
	if c.DecimalSeparator != "" {
		r, err := singleRune(c.DecimalSeparator)
		if err != nil {
			return locale.Locale{}, fmt.Errorf("decimal_separator: %w", err)
		}
		l.DecimalSeparator = r
	}

	return l, nil
}

// ToSchema builds the record schema from its config form.
func ToSchema(cols []Column) (record.Schema, error) {
	schema := make(record.Schema, len(cols))
	for i, col := range cols {
		kind, err := record.ParseKind(col.Kind)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Name, err)
		}
		schema[i] = record.Column{Name: col.Name, Kind: kind}
	}
	return schema, nil
}

// SchemaToColumns is the inverse of ToSchema, used to print schemas.
func SchemaToColumns(schema record.Schema) []Column {
	cols := make([]Column, len(schema))
	for i, col := range schema {
		cols[i] = Column{Name: col.Name, Kind: col.Kind.String()}
	}
	return cols
}

func singleRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("expected a single character, got %q", s)
	}
	return r, nil
}
