package lsetcsv

import (
	"bufio"
	"io"

	"golang.org/x/text/transform"

	"github.com/fkleon/lsetwatch-csv/internal/dialect"
	"github.com/fkleon/lsetwatch-csv/internal/record"
)

// Reader decodes records one at a time from a stream, so a caller can
// skip malformed rows instead of aborting on the first one.
type Reader struct {
	codec *Codec
	r     *bufio.Reader
	row   int
	done  bool
}

// NewReader wraps r, transcoding from the configured charset as it reads.
// Lines are read without a length limit; a row is only bounded by memory,
// matching DecodeFile.
func (c *Codec) NewReader(r io.Reader) *Reader {
	decoded := transform.NewReader(r, c.encoding.NewDecoder())
	return &Reader{
		codec: c,
		r:     bufio.NewReader(decoded),
	}
}

// Next returns the next record, or io.EOF when the stream is exhausted.
// A malformed row is returned as a RowError; the reader stays usable and
// the following Next call moves on to the next line. A stream read
// failure is also returned as a RowError, but it is terminal: the
// underlying data is gone, so every later call returns io.EOF.
func (r *Reader) Next() (*record.Record, error) {
	if r.done {
		return nil, io.EOF
	}

	line, err := r.r.ReadString('\n')
	if err != nil {
		r.done = true
		if err != io.EOF {
			return nil, &RowError{Row: r.row + 1, Err: err}
		}
		if line == "" {
			return nil, io.EOF
		}
		// final line without terminator still decodes
	}
	r.row++

	rec, err := r.codec.mapper.DecodeRecord(dialect.Split(line))
	if err != nil {
		return nil, &RowError{Row: r.row, Err: err}
	}
	return rec, nil
}

// Row returns the 1-based number of the most recently read line.
func (r *Reader) Row() int {
	return r.row
}

// WriteAll encodes records to w in the configured charset. The transcoder
// is closed on every path so partial state is never dropped silently.
func (c *Codec) WriteAll(w io.Writer, records []*record.Record) error {
	encoded := transform.NewWriter(w, c.encoding.NewEncoder())

	for i, rec := range records {
		row, err := c.mapper.EncodeRecord(rec)
		if err != nil {
			encoded.Close()
			return &RowError{Row: i + 1, Err: err}
		}
		if _, err := io.WriteString(encoded, dialect.Join(row)); err != nil {
			encoded.Close()
			return err
		}
	}

	return encoded.Close()
}
