package valueobject

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarDate(t *testing.T) {
	t.Run("parses canonical form as calendar components", func(t *testing.T) {
		d, err := ParseCalendarDate("2023-01-15")

		require.NoError(t, err)
		assert.Equal(t, 2023, d.Year())
		assert.Equal(t, time.January, d.Month())
		assert.Equal(t, 15, d.Day())
	})

	t.Run("anchors to UTC noon, never midnight", func(t *testing.T) {
		d, err := ParseCalendarDate("2023-06-01")

		require.NoError(t, err)
		u := d.Time().UTC()
		assert.Equal(t, 12, u.Hour())
		assert.Equal(t, 0, u.Minute())
		assert.Equal(t, time.UTC, d.Time().Location())
	})

	t.Run("empty input yields zero date", func(t *testing.T) {
		d, err := ParseCalendarDate("")

		require.NoError(t, err)
		assert.True(t, d.IsZero())
		assert.Equal(t, "", d.String())
	})

	t.Run("accepts flexible layouts", func(t *testing.T) {
		for _, input := range []string{"2023/01/15", "01/15/2023", "Jan 15, 2023", "2023-01-15T08:30:00Z"} {
			d, err := ParseCalendarDate(input)

			require.NoError(t, err, "input %q", input)
			assert.Equal(t, "2023-01-15", d.String(), "input %q", input)
		}
	})

	t.Run("rejects unparseable input", func(t *testing.T) {
		_, err := ParseCalendarDate("not-a-date!")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not-a-date!")
	})

	t.Run("rejects malformed canonical-length input", func(t *testing.T) {
		_, err := ParseCalendarDate("2023-13-45")

		assert.Error(t, err)
	})

	t.Run("round trips every valid storage string", func(t *testing.T) {
		for _, s := range []string{"2000-01-01", "2023-09-15", "2024-02-29", "1999-12-31"} {
			d, err := ParseCalendarDate(s)

			require.NoError(t, err)
			assert.Equal(t, s, d.String())
		}
	})
}

func TestCalendarDateOf(t *testing.T) {
	t.Run("takes the local calendar day of the instant", func(t *testing.T) {
		loc := time.FixedZone("UTC-8", -8*3600)
		// 23:30 local on Jan 15 is already Jan 16 in UTC; the calendar day
		// the user saw must win.
		instant := time.Date(2023, 1, 15, 23, 30, 0, 0, loc)

		d := CalendarDateOf(instant)

		assert.Equal(t, "2023-01-15", d.String())
	})

	t.Run("zero instant yields zero date", func(t *testing.T) {
		assert.True(t, CalendarDateOf(time.Time{}).IsZero())
	})
}

func TestCalendarDateAddMonths(t *testing.T) {
	t.Run("adds calendar months keeping day of month", func(t *testing.T) {
		d := MustParseCalendarDate("2023-01-15")

		assert.Equal(t, "2024-01-15", d.AddMonths(12).String())
		assert.Equal(t, "2023-09-15", d.AddMonths(8).String())
	})

	t.Run("clamps to last day of shorter target month", func(t *testing.T) {
		d := MustParseCalendarDate("2023-01-31")

		assert.Equal(t, "2023-02-28", d.AddMonths(1).String())
		assert.Equal(t, "2024-02-29", MustParseCalendarDate("2024-01-31").AddMonths(1).String())
		assert.Equal(t, "2023-04-30", MustParseCalendarDate("2023-03-31").AddMonths(1).String())
	})

	t.Run("crosses year boundaries in both directions", func(t *testing.T) {
		d := MustParseCalendarDate("2023-11-10")

		assert.Equal(t, "2024-03-10", d.AddMonths(4).String())
		assert.Equal(t, "2022-12-10", d.AddMonths(-11).String())
	})
}

func TestCalendarDateWholeMonthsSince(t *testing.T) {
	base := MustParseCalendarDate("2023-01-15")

	assert.Equal(t, 0, MustParseCalendarDate("2023-02-14").WholeMonthsSince(base))
	assert.Equal(t, 1, MustParseCalendarDate("2023-02-15").WholeMonthsSince(base))
	assert.Equal(t, 11, MustParseCalendarDate("2024-01-14").WholeMonthsSince(base))
	assert.Equal(t, 12, MustParseCalendarDate("2024-01-15").WholeMonthsSince(base))
}

func TestCalendarDateComparisons(t *testing.T) {
	a := MustParseCalendarDate("2023-01-15")
	b := MustParseCalendarDate("2023-06-01")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(MustParseCalendarDate("2023-01-15")))
}

func TestCalendarDateJSON(t *testing.T) {
	t.Run("marshals as storage string", func(t *testing.T) {
		data, err := json.Marshal(MustParseCalendarDate("2023-09-01"))

		require.NoError(t, err)
		assert.Equal(t, `"2023-09-01"`, string(data))
	})

	t.Run("marshals zero date as null", func(t *testing.T) {
		data, err := json.Marshal(CalendarDate{})

		require.NoError(t, err)
		assert.Equal(t, "null", string(data))
	})

	t.Run("unmarshals string and null", func(t *testing.T) {
		var d CalendarDate
		require.NoError(t, json.Unmarshal([]byte(`"2023-09-01"`), &d))
		assert.Equal(t, "2023-09-01", d.String())

		require.NoError(t, json.Unmarshal([]byte("null"), &d))
		assert.True(t, d.IsZero())
	})
}

func TestCalendarDateSQL(t *testing.T) {
	t.Run("persists as canonical string and NULL when unset", func(t *testing.T) {
		v, err := MustParseCalendarDate("2023-09-01").Value()
		require.NoError(t, err)
		assert.Equal(t, "2023-09-01", v)

		v, err = CalendarDate{}.Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("scans time, string, bytes and nil", func(t *testing.T) {
		var d CalendarDate

		require.NoError(t, d.Scan(time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, "2023-09-01", d.String())

		require.NoError(t, d.Scan("2023-09-02"))
		assert.Equal(t, "2023-09-02", d.String())

		require.NoError(t, d.Scan([]byte("2023-09-03")))
		assert.Equal(t, "2023-09-03", d.String())

		require.NoError(t, d.Scan(nil))
		assert.True(t, d.IsZero())
	})
}
