package escape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	t.Run("plain text passes through", func(t *testing.T) {
		assert.Equal(t, "Millennium Falcon", Encode("Millennium Falcon"))
	})

	t.Run("delimiter is escaped", func(t *testing.T) {
		assert.Equal(t, "a\asb", Encode("a;b"))
	})

	t.Run("terminator characters are escaped", func(t *testing.T) {
		assert.Equal(t, "line1\ar\anline2", Encode("line1\r\nline2"))
	})

	t.Run("marker is escaped", func(t *testing.T) {
		assert.Equal(t, "\aa", Encode("\a"))
	})

	t.Run("pipe is not reserved", func(t *testing.T) {
		assert.Equal(t, "a|b", Encode("a|b"))
	})

	t.Run("double encoding escapes the marker again", func(t *testing.T) {
		once := Encode("a;b")
		twice := Encode(once)
		assert.Equal(t, "a\aasb", twice)
	})
}

func TestDecode(t *testing.T) {
	t.Run("plain text passes through", func(t *testing.T) {
		got, err := Decode("Millennium Falcon")
		assert.NoError(t, err)
		assert.Equal(t, "Millennium Falcon", got)
	})

	t.Run("all sequences decode", func(t *testing.T) {
		got, err := Decode("\as\ar\an\aa")
		assert.NoError(t, err)
		assert.Equal(t, ";\r\n\a", got)
	})

	t.Run("unrecognized sequence is an error", func(t *testing.T) {
		_, err := Decode("bad\axvalue")
		assert.Error(t, err)

		var escErr *Error
		assert.ErrorAs(t, err, &escErr)
		assert.Equal(t, "\ax", escErr.Sequence)
		assert.Equal(t, 3, escErr.Offset)
	})

	t.Run("trailing marker is an error", func(t *testing.T) {
		_, err := Decode("oops\a")
		assert.Error(t, err)
	})
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"a;b;c",
		"semi;colon and\r\nnewline",
		"bell \a inside",
		";\r\n\a;;",
		"unicode: café; straße",
	}

	for _, in := range inputs {
		got, err := Decode(Encode(in))
		assert.NoError(t, err)
		assert.Equal(t, in, got)
	}
}
