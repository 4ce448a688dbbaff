package dateparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var reference = time.Date(2024, time.June, 15, 13, 30, 0, 0, time.UTC)

func TestResolveEmptyInputIsToday(t *testing.T) {
	assert.Equal(t, "2024-06-15", Resolve("", reference))
	assert.Equal(t, "2024-06-15", Resolve("   ", reference))
}

func TestResolveRelativeTerms(t *testing.T) {
	cases := map[string]string{
		"today":           "2024-06-15",
		"idag":            "2024-06-15",
		"IDAG":            "2024-06-15",
		"yesterday":       "2024-06-14",
		"igår":            "2024-06-14",
		"last week":       "2024-06-08",
		"senaste veckan":  "2024-06-08",
		"förra veckan":    "2024-06-08",
		"this week":       "2024-06-08",
		"this month":      "2024-06-01",
		"denna månad":     "2024-06-01",
		"last month":      "2024-06-01",
		"senaste månaden": "2024-06-01",
		"förra månaden":   "2024-05-01",
		"previous month":  "2024-05-01",
		"this year":       "2024-01-01",
		"i år":            "2024-01-01",
		"hela året":       "2024-01-01",
	}
	for input, want := range cases {
		assert.Equal(t, want, Resolve(input, reference), "input %q", input)
	}
}

func TestResolveLiteralDates(t *testing.T) {
	assert.Equal(t, "2024-03-15", Resolve("2024-03-15", reference))
	assert.Equal(t, "2024-03-15", Resolve("15/03/2024", reference))
	assert.Equal(t, "2024-03-15", Resolve("15-03-2024", reference))
	assert.Equal(t, "2024-03-15", Resolve("20240315", reference))
	assert.Equal(t, "2024-03-15", Resolve("  2024-03-15  ", reference))
}

func TestResolveIsoDateRoundTrips(t *testing.T) {
	for _, d := range []string{"2020-01-01", "2023-12-31", "2024-02-29", "2024-06-15"} {
		assert.Equal(t, d, Resolve(d, reference))
	}
}

func TestResolveSwedishMonthNames(t *testing.T) {
	assert.Equal(t, "2024-01-01", Resolve("januari", reference))
	assert.Equal(t, "2024-05-01", Resolve("maj", reference))
	assert.Equal(t, "2024-12-01", Resolve("december", reference))
	// Substring match inside a longer phrase.
	assert.Equal(t, "2024-03-01", Resolve("körjournal för mars", reference))
}

func TestResolveFallbackPassesThrough(t *testing.T) {
	assert.Equal(t, "next tuesday", Resolve("next tuesday", reference))
	assert.Equal(t, "garbage", Resolve("  garbage  ", reference))
}

func TestResolveYearBoundaries(t *testing.T) {
	newYear := time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "2023-12-31", Resolve("igår", newYear))
	assert.Equal(t, "2023-12-25", Resolve("last week", newYear))
	assert.Equal(t, "2023-12-01", Resolve("förra månaden", newYear))
}
