// Package locale formats and parses the date and decimal fields of
// Lsetwatch CSV files.
//
// The reference application writes dates and numbers according to its
// configured locale, and nothing in the file identifies which one was
// used. Correct round-tripping therefore depends on the caller supplying
// the same configuration the file was written with; there is no
// auto-detection and no fallback parsing.
package locale

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Defaults match an English-locale Lsetwatch installation.
const (
	DefaultDatePattern      = "dd/MM/yyyy"
	DefaultGroupSeparator   = ','
	DefaultDecimalSeparator = '.'
)

// Locale is an immutable date/decimal format configuration. Construct it
// once and thread it through every encode/decode call; it is never mutated
// and safe to share across goroutines.
type Locale struct {
	DatePattern      string
	GroupSeparator   rune
	DecimalSeparator rune
}

// Default returns the documented default configuration: dd/MM/yyyy dates,
// comma grouping, period decimal point.
func Default() Locale {
	return Locale{
		DatePattern:      DefaultDatePattern,
		GroupSeparator:   DefaultGroupSeparator,
		DecimalSeparator: DefaultDecimalSeparator,
	}
}

// FormatError reports text that does not match the configured pattern, or
// a value that cannot be represented under it.
type FormatError struct {
	Value   string
	Pattern string
	Err     error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("locale: %q does not match pattern %q: %v", e.Value, e.Pattern, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// layoutReplacer translates Lsetwatch date patterns into Go reference
// layouts. Longer tokens first so "yyyy" is not consumed as two "yy".
var layoutReplacer = strings.NewReplacer(
	"yyyy", "2006",
	"yy", "06",
	"MM", "01",
	"M", "1",
	"dd", "02",
	"d", "2",
)

func (l Locale) layout() string {
	return layoutReplacer.Replace(l.DatePattern)
}

// ParseDate parses text according to the configured date pattern. The
// result is a civil date carried as midnight UTC.
func (l Locale) ParseDate(text string) (time.Time, error) {
	t, err := time.Parse(l.layout(), text)
	if err != nil {
		return time.Time{}, &FormatError{Value: text, Pattern: l.DatePattern, Err: err}
	}
	return t, nil
}

// FormatDate renders d according to the configured date pattern.
func (l Locale) FormatDate(d time.Time) string {
	return d.Format(l.layout())
}

// ParseDecimal parses text according to the configured separators. Group
// separators may appear anywhere in the integer part; their placement is
// not validated.
func (l Locale) ParseDecimal(text string) (float64, error) {
	pattern := l.patternDescription()

	if text == "" {
		return 0, &FormatError{Value: text, Pattern: pattern, Err: fmt.Errorf("empty number")}
	}

	normalized := strings.ReplaceAll(text, string(l.GroupSeparator), "")
	if l.DecimalSeparator != '.' {
		if strings.ContainsRune(normalized, '.') {
			return 0, &FormatError{Value: text, Pattern: pattern, Err: fmt.Errorf("unexpected character %q", '.')}
		}
		normalized = strings.ReplaceAll(normalized, string(l.DecimalSeparator), ".")
	}

	f, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, &FormatError{Value: text, Pattern: pattern, Err: err}
	}
	return f, nil
}

// FormatDecimal renders n with the configured separators, grouping the
// integer part in threes.
func (l Locale) FormatDecimal(n float64) string {
	text := strconv.FormatFloat(n, 'f', -1, 64)

	sign := ""
	if strings.HasPrefix(text, "-") {
		sign = "-"
		text = text[1:]
	}

	intPart := text
	fracPart := ""
	if i := strings.IndexByte(text, '.'); i >= 0 {
		intPart = text[:i]
		fracPart = text[i+1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune(l.GroupSeparator)
		}
		b.WriteRune(digit)
	}
	if fracPart != "" {
		b.WriteRune(l.DecimalSeparator)
		b.WriteString(fracPart)
	}
	return b.String()
}

func (l Locale) patternDescription() string {
	return fmt.Sprintf("#%c###%c##", l.GroupSeparator, l.DecimalSeparator)
}
