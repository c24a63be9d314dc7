package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkleon/lsetwatch-csv/internal/locale"
)

func testSchema() Schema {
	return Schema{
		{Name: "number", Kind: KindString},
		{Name: "notes", Kind: KindEscaped},
		{Name: "mytags", Kind: KindList},
		{Name: "purc_date", Kind: KindDate},
		{Name: "purc_price", Kind: KindDecimal},
		{Name: "purc_items", Kind: KindInteger},
		{Name: "last_edit", Kind: KindTimestamp},
	}
}

func TestDecodeRecord(t *testing.T) {
	m := NewMapper(testSchema(), locale.Default())

	t.Run("all kinds decode", func(t *testing.T) {
		rec, err := m.DecodeRecord([]string{
			"10179",
			"one\as two",
			"ucs|star wars",
			"24/12/2021",
			"1,299.99",
			"2",
			"1700000000",
		})
		require.NoError(t, err)
		require.Equal(t, 7, rec.Len())

		assert.Equal(t, "10179", rec.Values()[0])
		assert.Equal(t, "one; two", rec.Values()[1])
		assert.Equal(t, []string{"ucs", "star wars"}, rec.Values()[2])
		assert.Equal(t, time.Date(2021, time.December, 24, 0, 0, 0, 0, time.UTC), rec.Values()[3])
		assert.Equal(t, 1299.99, rec.Values()[4])
		assert.Equal(t, 2, rec.Values()[5])
		assert.Equal(t, time.Unix(1700000000, 0).UTC(), rec.Values()[6])
	})

	t.Run("empty optional fields decode to nil", func(t *testing.T) {
		rec, err := m.DecodeRecord([]string{"10179", "", "", "", "", "", ""})
		require.NoError(t, err)

		assert.Equal(t, "", rec.Values()[1])
		assert.Empty(t, rec.Values()[2])
		assert.Nil(t, rec.Values()[3])
		assert.Nil(t, rec.Values()[4])
		assert.Nil(t, rec.Values()[5])
		assert.Nil(t, rec.Values()[6])
	})

	t.Run("arity mismatch", func(t *testing.T) {
		short := Schema{
			{Name: "a", Kind: KindString},
			{Name: "b", Kind: KindString},
			{Name: "c", Kind: KindString},
			{Name: "d", Kind: KindString},
		}
		sm := NewMapper(short, locale.Default())

		_, err := sm.DecodeRecord([]string{"1", "2", "3"})
		require.Error(t, err)

		var arityErr *RowArityError
		require.ErrorAs(t, err, &arityErr)
		assert.Equal(t, 4, arityErr.Expected)
		assert.Equal(t, 3, arityErr.Actual)
	})

	t.Run("field failure carries name and column", func(t *testing.T) {
		_, err := m.DecodeRecord([]string{"10179", "", "", "not-a-date", "", "", ""})
		require.Error(t, err)

		var fieldErr *FieldFormatError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "purc_date", fieldErr.Field)
		assert.Equal(t, 3, fieldErr.Column)

		var fmtErr *locale.FormatError
		assert.ErrorAs(t, err, &fmtErr)
	})
}

func TestEncodeRecord(t *testing.T) {
	m := NewMapper(testSchema(), locale.Default())

	t.Run("all kinds encode", func(t *testing.T) {
		rec := New(m.Schema().Fields(), []any{
			"10179",
			"one;two",
			[]string{"ucs", "star wars"},
			time.Date(2021, time.December, 24, 0, 0, 0, 0, time.UTC),
			1299.99,
			2,
			time.Unix(1700000000, 0).UTC(),
		})

		row, err := m.EncodeRecord(rec)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"10179",
			"one\astwo",
			"ucs|star wars",
			"24/12/2021",
			"1,299.99",
			"2",
			"1700000000",
		}, row)
	})

	t.Run("nil values encode to empty fields", func(t *testing.T) {
		rec := New(m.Schema().Fields(), []any{"10179", nil, nil, nil, nil, nil, nil})
		row, err := m.EncodeRecord(rec)
		require.NoError(t, err)
		assert.Equal(t, []string{"10179", "", "", "", "", "", ""}, row)
	})

	t.Run("wrong value type fails with context", func(t *testing.T) {
		rec := New(m.Schema().Fields(), []any{"10179", "", nil, "24/12/2021", nil, nil, nil})
		_, err := m.EncodeRecord(rec)
		require.Error(t, err)

		var fieldErr *FieldFormatError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "purc_date", fieldErr.Field)
	})
}

func TestRecordRoundTrip(t *testing.T) {
	m := NewMapper(testSchema(), locale.Default())

	row := []string{
		"75192",
		"shelf \an top",
		"ucs|sealed",
		"01/06/2023",
		"849.99",
		"1",
		"1685577600",
	}

	rec, err := m.DecodeRecord(row)
	require.NoError(t, err)

	got, err := m.EncodeRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, row, got)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("decimal")
	assert.NoError(t, err)
	assert.Equal(t, KindDecimal, k)

	_, err = ParseKind("uuid")
	assert.Error(t, err)
}
