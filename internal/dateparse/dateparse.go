// Package dateparse interprets localized calendar phrases such as
// "29 mai 2025" or "07. apr 2019" as dates. Nordea credit-card exports spell
// the month out in Norwegian; statement layouts occasionally switch to
// English, so both tables ship.
package dateparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultLocale matches the Nordic statement exports.
const DefaultLocale = "nb"

// months maps a locale to its lowercase month names and standard
// abbreviations.
var months = map[string]map[string]time.Month{
	"nb": {
		"jan": time.January, "januar": time.January,
		"feb": time.February, "februar": time.February,
		"mar": time.March, "mars": time.March,
		"apr": time.April, "april": time.April,
		"mai": time.May,
		"jun": time.June, "juni": time.June,
		"jul": time.July, "juli": time.July,
		"aug": time.August, "august": time.August,
		"sep": time.September, "september": time.September,
		"okt": time.October, "oktober": time.October,
		"nov": time.November, "november": time.November,
		"des": time.December, "desember": time.December,
	},
	"en": {
		"jan": time.January, "january": time.January,
		"feb": time.February, "february": time.February,
		"mar": time.March, "march": time.March,
		"apr": time.April, "april": time.April,
		"may": time.May,
		"jun": time.June, "june": time.June,
		"jul": time.July, "july": time.July,
		"aug": time.August, "august": time.August,
		"sep": time.September, "september": time.September,
		"oct": time.October, "october": time.October,
		"nov": time.November, "november": time.November,
		"dec": time.December, "december": time.December,
	},
}

// Locales returns the supported locale codes.
func Locales() []string {
	return []string{"nb", "en"}
}

// Parse interprets a "day month year" phrase in the given locale. The day
// may carry a trailing dot ("07."), the month name may be abbreviated and is
// case-insensitive.
func Parse(text, locale string) (time.Time, error) {
	table, ok := months[locale]
	if !ok {
		return time.Time{}, fmt.Errorf("unsupported locale %q", locale)
	}

	fields := strings.Fields(text)
	if len(fields) != 3 {
		return time.Time{}, fmt.Errorf("expected day, month and year in %q", text)
	}

	day, err := strconv.Atoi(strings.TrimSuffix(fields[0], "."))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing day %q: %w", fields[0], err)
	}

	name := strings.ToLower(strings.TrimSuffix(fields[1], "."))
	month, ok := table[name]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown month %q", fields[1])
	}

	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing year %q: %w", fields[2], err)
	}

	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day %d out of range", day)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		// time.Date normalizes Feb 30 and friends; reject instead.
		return time.Time{}, fmt.Errorf("day %d does not exist in %s %d", day, name, year)
	}
	return t, nil
}
