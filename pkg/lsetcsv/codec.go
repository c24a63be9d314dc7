// Package lsetcsv round-trips Lsetwatch collection records between typed
// in-memory values and the application's semicolon-delimited file format.
//
// A Codec combines the physical dialect (semicolon fields, CRLF lines, no
// quoting), the bell-escape and pipe-list codecs, locale-dependent date
// and decimal formats, and the configured character encoding. All methods
// are pure functions over their inputs and safe for concurrent use.
package lsetcsv

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"github.com/fkleon/lsetwatch-csv/internal/charset"
	"github.com/fkleon/lsetwatch-csv/internal/dialect"
	"github.com/fkleon/lsetwatch-csv/internal/locale"
	"github.com/fkleon/lsetwatch-csv/internal/record"
)

type Option func(*Codec)

func WithSchema(schema record.Schema) Option {
	return func(c *Codec) {
		c.schema = schema
	}
}

func WithLocale(loc locale.Locale) Option {
	return func(c *Codec) {
		c.locale = loc
	}
}

// WithCharset selects the file character encoding by name, e.g. "utf-8"
// or "windows-1252". It is required: the format carries no encoding
// marker, so the codec never guesses.
func WithCharset(name string) Option {
	return func(c *Codec) {
		c.charsetName = name
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Codec) {
		c.logger = logger
	}
}

type Codec struct {
	schema      record.Schema
	locale      locale.Locale
	charsetName string
	encoding    encoding.Encoding
	mapper      *record.Mapper
	logger      *zap.Logger
}

func New(opts ...Option) (*Codec, error) {
	c := Codec{
		locale: locale.Default(),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&c)
	}

	if len(c.schema) == 0 {
		return nil, fmt.Errorf("schema is required")
	}

	enc, err := charset.Lookup(c.charsetName)
	if err != nil {
		return nil, err
	}
	c.encoding = enc

	c.mapper = record.NewMapper(c.schema, c.locale)

	return &c, nil
}

// RowError wraps a mapper failure with the 1-based row it occurred on.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// DecodeFile decodes a complete file into records. The first malformed
// row aborts the decode; the returned error reports its row number. The
// caller that prefers skip-and-continue semantics should use NewReader
// instead.
func (c *Codec) DecodeFile(data []byte) ([]*record.Record, error) {
	text, err := c.encoding.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s input: %w", c.charsetName, err)
	}

	var records []*record.Record

	lines := strings.Split(string(text), "\n")
	for i, line := range lines {
		// a terminator on the final line leaves one empty trailing piece
		if i == len(lines)-1 && strings.TrimSuffix(line, "\r") == "" {
			break
		}

		rec, err := c.mapper.DecodeRecord(dialect.Split(line))
		if err != nil {
			return nil, &RowError{Row: i + 1, Err: err}
		}
		records = append(records, rec)
	}

	c.logger.Debug("decoded file",
		zap.Int("rows", len(records)),
		zap.String("charset", c.charsetName),
	)

	return records, nil
}

// EncodeFile encodes records into the raw file bytes, every line
// CRLF-terminated, in the configured character encoding.
func (c *Codec) EncodeFile(records []*record.Record) ([]byte, error) {
	var b strings.Builder

	for i, rec := range records {
		row, err := c.mapper.EncodeRecord(rec)
		if err != nil {
			return nil, &RowError{Row: i + 1, Err: err}
		}
		b.WriteString(dialect.Join(row))
	}

	data, err := c.encoding.NewEncoder().Bytes([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("encoding %s output: %w", c.charsetName, err)
	}

	c.logger.Debug("encoded file",
		zap.Int("rows", len(records)),
		zap.String("charset", c.charsetName),
	)

	return data, nil
}

// Schema returns the codec's column layout.
func (c *Codec) Schema() record.Schema {
	return c.schema
}
