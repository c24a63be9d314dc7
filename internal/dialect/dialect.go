// Package dialect defines the physical framing of Lsetwatch CSV files:
// semicolon-delimited fields, CRLF line terminators, and no quoting of any
// kind. Fields containing reserved characters must be escaped before they
// reach this layer (see the escape package).
package dialect

import "strings"

const (
	// Delimiter separates fields within a line.
	Delimiter = ";"

	// Terminator ends every written line. Readers tolerate its absence
	// on the final line.
	Terminator = "\r\n"
)

// Split breaks one raw line into its fields. A trailing terminator is
// stripped if present. A line ending in the delimiter yields a trailing
// empty field rather than dropping it.
func Split(line string) []string {
	// trimming LF then CR covers "\r\n", a bare "\n", and the bare "\r"
	// left over when a caller splits file content on "\n"
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return strings.Split(line, Delimiter)
}

// Join assembles fields into a raw line, always appending the terminator.
func Join(fields []string) string {
	return strings.Join(fields, Delimiter) + Terminator
}
