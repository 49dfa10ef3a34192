package importer

import (
	"strconv"
	"strings"
	"time"
)

// Explicit layouts tried in priority order. Day-first layouts come
// before month-first, so an ambiguous cell like 03/04/2024 resolves as
// 3 April. Priority decides, not cross-validation.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"01/02/2006",
	"02-01-2006",
	"2-1-2006",
	"01-02-2006",
	"2006/01/02",
	"02.01.2006",
}

// Spreadsheet serial day 0. Using Dec 30 instead of Dec 31 absorbs the
// inherited Lotus leap-year bug (serial 60 = the fictitious 1900-02-29).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// NormalizeDate converts a spreadsheet date cell into "2006-01-02".
// Accepts ISO strings, slash/dash/dot dates (two-digit years get 2000
// added), and raw spreadsheet serial numbers. Returns "" when nothing
// parses; a bad date never fails an import row, it just imports empty.
func NormalizeDate(cell string) string {
	s := strings.TrimSpace(cell)
	if s == "" {
		return ""
	}

	// strip a time-of-day suffix if present
	if i := strings.IndexAny(s, " T"); i > 0 && strings.ContainsAny(s[:i], "-/.") {
		s = s[:i]
	}

	s = expandTwoDigitYear(s)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}

	// spreadsheet serial number (integer or fractional day)
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 && serial < 200000 {
		t := serialEpoch.AddDate(0, 0, int(serial))
		return t.Format("2006-01-02")
	}

	return ""
}

// expandTwoDigitYear rewrites a trailing two-digit year to 20xx, so
// 05/08/24 parses as 2024 rather than Go's 69/99 pivot rule. Year-first
// cells like 2024-08-05 carry the day in the last component and pass
// through untouched.
func expandTwoDigitYear(s string) string {
	for _, sep := range []string{"/", "-", "."} {
		parts := strings.Split(s, sep)
		if len(parts) != 3 {
			continue
		}
		if len(parts[0]) == 4 {
			return s
		}
		last := parts[2]
		if len(last) == 2 {
			if _, err := strconv.Atoi(last); err == nil {
				parts[2] = "20" + last
				return strings.Join(parts, sep)
			}
		}
		return s
	}
	return s
}

// ParseISODate parses a normalized "2006-01-02" string. Callers use it
// after NormalizeDate when they need a time.Time.
func ParseISODate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
