package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthKey(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "zero padded month",
			in:   time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC),
			want: "2024-03",
		},
		{
			name: "december",
			in:   time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			want: "2024-12",
		},
		{
			name: "non utc instant converted first",
			in:   time.Date(2024, 1, 1, 0, 30, 0, 0, time.FixedZone("CET", 3600)),
			want: "2023-12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthKey(tt.in))
		})
	}
}

func TestStartOfMonth(t *testing.T) {
	a := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)

	// любые два момента одного месяца дают одну и ту же границу
	assert.Equal(t, StartOfMonth(a), StartOfMonth(b))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(b))

	// секунда через границу месяца дает другой результат
	c := b.Add(time.Second)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(c))
	assert.NotEqual(t, StartOfMonth(b), StartOfMonth(c))
}

func TestStartOfYear(t *testing.T) {
	in := time.Date(2024, 7, 14, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), StartOfYear(in))
}

func TestParseMonthRange(t *testing.T) {
	t.Run("regular month", func(t *testing.T) {
		start, end, err := ParseMonthRange("2024-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("december rolls to next year", func(t *testing.T) {
		start, end, err := ParseMonthRange("2024-12")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("invalid tokens", func(t *testing.T) {
		invalid := []string{
			"",
			"2024-13",
			"2024-00",
			"2024-1",
			"abcd-ef",
			"202401",
			"2024/01",
			"2024-+1",
			"2024-01-05",
		}
		for _, token := range invalid {
			_, _, err := ParseMonthRange(token)
			assert.ErrorIs(t, err, ErrInvalidMonthFormat, "token %q", token)
		}
	})
}

func TestParseInstant(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		got := ParseInstant("2024-03-15T12:00:00Z")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC), *got)
	})

	t.Run("rfc3339 with offset normalized to utc", func(t *testing.T) {
		got := ParseInstant("2024-03-15T12:00:00+03:00")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), *got)
	})

	t.Run("date only", func(t *testing.T) {
		got := ParseInstant("2024-03-15")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("garbage yields nil not error", func(t *testing.T) {
		assert.Nil(t, ParseInstant("not-a-date"))
		assert.Nil(t, ParseInstant(""))
	})
}
