// Package charset resolves the configured file encoding to a text
// transformer. The reference application writes either UTF-8 or a
// single-byte Western codepage depending on its settings, and the file
// itself carries no marker, so the encoding is a required explicit
// parameter with no default.
package charset

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8,
	"utf8":         unicode.UTF8,
	"windows-1250": charmap.Windows1250,
	"cp1250":       charmap.Windows1250,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
}

// Lookup resolves a charset name to its encoding. Names are
// case-insensitive.
func Lookup(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, fmt.Errorf("charset is required")
	}

	enc, ok := encodings[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported charset: %q", name)
	}
	return enc, nil
}

// Names returns the supported charset names, for error messages and docs.
func Names() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	return names
}
