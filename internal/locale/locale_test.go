package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	l := Default()

	t.Run("default pattern", func(t *testing.T) {
		d, err := l.ParseDate("31/12/2023")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("german pattern", func(t *testing.T) {
		de := Locale{DatePattern: "dd.MM.yyyy", GroupSeparator: '.', DecimalSeparator: ','}
		d, err := de.ParseDate("24.12.2021")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2021, time.December, 24, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("mismatched text fails", func(t *testing.T) {
		_, err := l.ParseDate("2023-12-31")
		assert.Error(t, err)

		var fmtErr *FormatError
		assert.ErrorAs(t, err, &fmtErr)
		assert.Equal(t, "2023-12-31", fmtErr.Value)
	})

	t.Run("impossible date fails", func(t *testing.T) {
		_, err := l.ParseDate("31/02/2023")
		assert.Error(t, err)
	})
}

func TestFormatDate(t *testing.T) {
	l := Default()
	d := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "31/12/2023", l.FormatDate(d))
}

func TestDateRoundTrip(t *testing.T) {
	l := Default()
	dates := []time.Time{
		time.Date(2021, time.December, 24, 0, 0, 0, 0, time.UTC),
		time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	for _, d := range dates {
		got, err := l.ParseDate(l.FormatDate(d))
		assert.NoError(t, err)
		assert.Equal(t, d, got)
	}
}

func TestParseDecimal(t *testing.T) {
	l := Default()

	t.Run("default separators", func(t *testing.T) {
		n, err := l.ParseDecimal("1,234.56")
		assert.NoError(t, err)
		assert.Equal(t, 1234.56, n)
	})

	t.Run("no grouping", func(t *testing.T) {
		n, err := l.ParseDecimal("99.99")
		assert.NoError(t, err)
		assert.Equal(t, 99.99, n)
	})

	t.Run("german separators", func(t *testing.T) {
		de := Locale{DatePattern: "dd.MM.yyyy", GroupSeparator: '.', DecimalSeparator: ','}
		n, err := de.ParseDecimal("1.234,56")
		assert.NoError(t, err)
		assert.Equal(t, 1234.56, n)
	})

	t.Run("negative", func(t *testing.T) {
		n, err := l.ParseDecimal("-12.50")
		assert.NoError(t, err)
		assert.Equal(t, -12.50, n)
	})

	t.Run("garbage fails", func(t *testing.T) {
		_, err := l.ParseDecimal("EUR 12.00")
		assert.Error(t, err)

		var fmtErr *FormatError
		assert.ErrorAs(t, err, &fmtErr)
	})

	t.Run("wrong decimal point fails under german config", func(t *testing.T) {
		de := Locale{DatePattern: "dd.MM.yyyy", GroupSeparator: ' ', DecimalSeparator: ','}
		_, err := de.ParseDecimal("12.34")
		assert.Error(t, err)
	})

	t.Run("empty fails", func(t *testing.T) {
		_, err := l.ParseDecimal("")
		assert.Error(t, err)
	})
}

func TestFormatDecimal(t *testing.T) {
	l := Default()

	assert.Equal(t, "1,234.56", l.FormatDecimal(1234.56))
	assert.Equal(t, "0.5", l.FormatDecimal(0.5))
	assert.Equal(t, "42", l.FormatDecimal(42))
	assert.Equal(t, "-1,000,000", l.FormatDecimal(-1000000))

	de := Locale{DatePattern: "dd.MM.yyyy", GroupSeparator: '.', DecimalSeparator: ','}
	assert.Equal(t, "1.234,56", de.FormatDecimal(1234.56))
}

func TestDecimalRoundTrip(t *testing.T) {
	l := Default()
	numbers := []float64{0, 0.01, 1234.56, -99999.99, 123456789.5}

	for _, n := range numbers {
		got, err := l.ParseDecimal(l.FormatDecimal(n))
		assert.NoError(t, err)
		assert.InDelta(t, n, got, 1e-9)
	}
}
