// Package dateparse turns free-form date expressions into ISO calendar dates.
// It accepts literal dates in a handful of layouts plus Swedish and English
// relative terms, and never fails: anything it cannot make sense of passes
// through trimmed, leaving the failure to the downstream range query.
package dateparse

import (
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// layouts tried in order against literal input.
var layouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"20060102",
}

// swedishMonths is checked in calendar order, first substring match wins.
var swedishMonths = []struct {
	name  string
	month time.Month
}{
	{"januari", time.January},
	{"februari", time.February},
	{"mars", time.March},
	{"april", time.April},
	{"maj", time.May},
	{"juni", time.June},
	{"juli", time.July},
	{"augusti", time.August},
	{"september", time.September},
	{"oktober", time.October},
	{"november", time.November},
	{"december", time.December},
}

// Resolve maps input to a YYYY-MM-DD date relative to today. Empty or
// whitespace-only input resolves to today.
func Resolve(input string, today time.Time) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return today.Format(isoDate)
	}

	low := strings.ToLower(trimmed)
	switch low {
	case "idag", "today":
		return today.Format(isoDate)
	case "igår", "yesterday":
		return today.AddDate(0, 0, -1).Format(isoDate)
	case "senaste veckan", "last week", "förra veckan", "denna vecka", "this week":
		return today.AddDate(0, 0, -7).Format(isoDate)
	case "senaste månaden", "last month", "denna månad", "this month", "denna månaden":
		return firstOfMonth(today).Format(isoDate)
	case "förra månaden", "previous month":
		return firstOfMonth(firstOfMonth(today).AddDate(0, 0, -1)).Format(isoDate)
	case "i år", "this year", "året", "hela året":
		return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location()).Format(isoDate)
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(isoDate)
		}
	}

	for _, m := range swedishMonths {
		if strings.Contains(low, m.name) {
			return time.Date(today.Year(), m.month, 1, 0, 0, 0, 0, today.Location()).Format(isoDate)
		}
	}

	return trimmed
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
