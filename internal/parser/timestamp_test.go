package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/murmur/internal/errors"
)

// Saturday 9 March 2024, 22:15 local time
var refNow = time.Date(2024, 3, 9, 22, 15, 30, 0, time.Local)

func TestParseSinceKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"now", refNow},
		{"NOW", refNow},
		{"  now  ", refNow},
		{"today", time.Date(2024, 3, 9, 0, 0, 0, 0, time.Local)},
		{"yesterday", time.Date(2024, 3, 8, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSinceAt(tt.input, refNow)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestParseSincePeriods(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"this hour", time.Date(2024, 3, 9, 22, 0, 0, 0, time.Local)},
		{"last hour", time.Date(2024, 3, 9, 21, 0, 0, 0, time.Local)},
		{"this day", time.Date(2024, 3, 9, 0, 0, 0, 0, time.Local)},
		{"previous day", time.Date(2024, 3, 8, 0, 0, 0, 0, time.Local)},
		{"this week", time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local)},
		{"last week", time.Date(2024, 2, 26, 0, 0, 0, 0, time.Local)},
		{"current month", time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)},
		{"last month", time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)},
		{"this year", time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)},
		{"Last Year", time.Date(2023, 1, 1, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSinceAt(tt.input, refNow)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestParseSinceWeekStartsMonday(t *testing.T) {
	sunday := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	got, err := ParseSinceAt("this week", sunday)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, got.Weekday())
	assert.Equal(t, 4, got.Day())
}

func TestParseSinceNaturalLanguage(t *testing.T) {
	got, err := ParseSinceAt("2 hours ago", refNow)
	require.NoError(t, err)
	assert.WithinDuration(t, refNow.Add(-2*time.Hour), got, time.Minute)
}

func TestParseSinceInvalid(t *testing.T) {
	for _, input := range []string{"", "   ", "xyzzy plugh"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseSinceAt(input, refNow)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidTimestamp)

			var perr *TimeParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, "timestamp", perr.Field)
		})
	}
}

func TestParseSinceUsesWallClock(t *testing.T) {
	got, err := ParseSince("now")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), got, time.Second)
}
