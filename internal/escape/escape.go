// Package escape implements the bell-escaped string encoding used by
// Lsetwatch CSV files.
//
// The file format uses no quoting, so any character that would break the
// physical framing (the semicolon delimiter and the CRLF terminator) is
// replaced with a two-character sequence introduced by the BEL control
// character. BEL itself is escaped to keep the scheme unambiguous.
//
// Encode and Decode are pure functions over in-memory strings and are safe
// for concurrent use.
package escape

import (
	"fmt"
	"strings"
)

// Marker introduces every escape sequence.
const Marker = '\a'

// Each reserved character maps to exactly one printable stand-in, none of
// which is itself reserved. The tables are exact inverses of each other.
var (
	encodeTable = map[rune]rune{
		';':    's',
		'\r':   'r',
		'\n':   'n',
		Marker: 'a',
	}

	decodeTable = map[rune]rune{
		's': ';',
		'r': '\r',
		'n': '\n',
		'a': Marker,
	}
)

// Error reports a malformed escape sequence found during Decode.
type Error struct {
	Sequence string
	Offset   int
}

func (e *Error) Error() string {
	return fmt.Sprintf("escape: unrecognized escape sequence %q at offset %d", e.Sequence, e.Offset)
}

// Encode replaces every reserved character in raw with its escape sequence.
// Encoding already-encoded text escapes the markers again, so Encode is
// deliberately not idempotent.
func Encode(raw string) string {
	if !strings.ContainsAny(raw, ";\r\n\a") {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw) + 2)
	for _, r := range raw {
		if mapped, ok := encodeTable[r]; ok {
			b.WriteRune(Marker)
			b.WriteRune(mapped)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Decode is the exact left inverse of Encode. The marker plus the following
// character form the atomic escape unit; a marker followed by anything
// outside the mapped set, or a marker at the end of input, is malformed.
func Decode(escaped string) (string, error) {
	if !strings.ContainsRune(escaped, Marker) {
		return escaped, nil
	}

	var b strings.Builder
	b.Grow(len(escaped))

	runes := []rune(escaped)
	for i := 0; i < len(runes); i++ {
		if runes[i] != Marker {
			b.WriteRune(runes[i])
			continue
		}

		if i+1 >= len(runes) {
			return "", &Error{Sequence: string(Marker), Offset: i}
		}

		orig, ok := decodeTable[runes[i+1]]
		if !ok {
			return "", &Error{Sequence: string(runes[i : i+2]), Offset: i}
		}

		b.WriteRune(orig)
		i++
	}

	return b.String(), nil
}
