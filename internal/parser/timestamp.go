// Package parser turns natural language time expressions into times for
// filtering stored confessions.
package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// periodRegex matches period expressions like "this week", "last month".
var periodRegex = regexp.MustCompile(`(?i)^(this|current|last|previous)\s+(hour|day|week|month|year)$`)

// ParseSince parses the lower bound of a `list --since` filter.
func ParseSince(input string) (time.Time, error) {
	return ParseSinceAt(input, time.Now())
}

// ParseSinceAt parses input relative to now.
func ParseSinceAt(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, NewTimestampError(input)
	}

	lower := strings.ToLower(input)
	switch lower {
	case "now":
		return now, nil
	case "today":
		return startOfDay(now), nil
	case "yesterday":
		return startOfDay(now).AddDate(0, 0, -1), nil
	}

	// Period expressions first
	if match := periodRegex.FindStringSubmatch(input); match != nil {
		return periodStart(strings.ToLower(match[1]), strings.ToLower(match[2]), now), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return time.Time{}, NewTimestampError(input)
	}
	return result.Time, nil
}

// periodStart returns the start of the named period containing now, or of
// the one before it for "last" and "previous".
func periodStart(modifier, period string, now time.Time) time.Time {
	previous := modifier == "last" || modifier == "previous"
	var t time.Time

	switch period {
	case "hour":
		t = time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location())
		if previous {
			t = t.Add(-time.Hour)
		}

	case "day":
		t = startOfDay(now)
		if previous {
			t = t.AddDate(0, 0, -1)
		}

	case "week":
		// Weeks start on Monday
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		t = time.Date(now.Year(), now.Month(), now.Day()-weekday+1, 0, 0, 0, 0, now.Location())
		if previous {
			t = t.AddDate(0, 0, -7)
		}

	case "month":
		t = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		if previous {
			t = t.AddDate(0, -1, 0)
		}

	case "year":
		t = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		if previous {
			t = t.AddDate(-1, 0, 0)
		}

	default:
		t = now
	}

	return t
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
