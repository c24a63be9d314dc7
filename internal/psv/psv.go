// Package psv implements the pipe-separated list encoding used for
// multi-value Lsetwatch CSV fields such as tags and document paths.
package psv

import (
	"strings"

	"github.com/fkleon/lsetwatch-csv/internal/escape"
)

// Separator joins list elements within a single field.
const Separator = "|"

// Encode escapes each element and joins them with the pipe separator.
// An empty list encodes to an empty field.
//
// The separator itself is NOT escaped inside elements. This matches the
// reference application, which writes literal pipes through unchanged and
// cannot distinguish them from separators on read. Faithful round-tripping
// of its files requires reproducing that ambiguity, so do not "fix" this
// by adding the pipe to the escape set.
func Encode(items []string) string {
	if len(items) == 0 {
		return ""
	}

	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = escape.Encode(item)
	}
	return strings.Join(parts, Separator)
}

// Decode splits the field on every pipe and unescapes each piece. An empty
// field decodes to a nil list. Elements that contained literal pipes when
// encoded come back split apart; see Encode.
func Decode(field string) ([]string, error) {
	if field == "" {
		return nil, nil
	}

	parts := strings.Split(field, Separator)
	items := make([]string, len(parts))
	for i, part := range parts {
		item, err := escape.Decode(part)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}
