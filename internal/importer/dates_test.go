package importer

import (
	"testing"
	"time"
)

func TestNormalizeDate_ExplicitFormats(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ISO", "2024-08-17", "2024-08-17"},
		{"ISOLowDay", "2024-08-05", "2024-08-05"},
		{"DayFirstSlash", "17/08/2024", "2024-08-17"},
		{"DayFirstSingleDigit", "5/8/2024", "2024-08-05"},
		{"DayFirstDash", "17-08-2024", "2024-08-17"},
		{"Dotted", "17.08.2024", "2024-08-17"},
		{"SlashISO", "2024/08/17", "2024-08-17"},
		{"SlashISOLowDay", "2024/08/05", "2024-08-05"},
		{"TwoDigitYear", "17/08/24", "2024-08-17"},
		{"TwoDigitYearDash", "5-8-24", "2024-08-05"},
		{"WithTimeSuffix", "2024-08-17 00:00:00", "2024-08-17"},
		{"WithTimeSuffixLowDay", "2024-08-05 07:30:00", "2024-08-05"},
		{"Whitespace", "  17/08/2024  ", "2024-08-17"},
		{"Empty", "", ""},
		{"Garbage", "besok", ""},
		{"NotADate", "kelas 7A", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDate(tt.in); got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Ambiguous DD/MM vs MM/DD cells resolve by priority order: the
// day-first layout is tried first and wins whenever it is calendar-valid.
func TestNormalizeDate_AmbiguousPriority(t *testing.T) {
	// 03/04/2024 could be 3 April or March 4; day-first wins.
	if got := NormalizeDate("03/04/2024"); got != "2024-04-03" {
		t.Errorf("expected day-first resolution 2024-04-03, got %q", got)
	}
	// 25/12/2024 is only valid day-first.
	if got := NormalizeDate("25/12/2024"); got != "2024-12-25" {
		t.Errorf("expected 2024-12-25, got %q", got)
	}
	// 12/25/2024 is only valid month-first, so the fallback layout applies.
	if got := NormalizeDate("12/25/2024"); got != "2024-12-25" {
		t.Errorf("expected 2024-12-25, got %q", got)
	}
}

func TestNormalizeDate_SerialNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"45522", "2024-08-18"},   // plain serial
		{"45522.5", "2024-08-18"}, // fractional day ignored
		{"1", "1899-12-31"},
		{"60", "1900-02-28"}, // the fictitious 1900-02-29 lands on the 28th via the Dec 30 epoch
		{"61", "1900-03-01"},
	}

	for _, tt := range tests {
		if got := NormalizeDate(tt.in); got != tt.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Round trip: any supported explicit format, once normalized, re-parses
// to the same calendar date.
func TestNormalizeDate_RoundTrip(t *testing.T) {
	inputs := map[string]time.Time{
		"2024-02-29": time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		"29/02/2024": time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		"01/01/25":   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		"31-12-2023": time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	for in, want := range inputs {
		normalized := NormalizeDate(in)
		got, ok := ParseISODate(normalized)
		if !ok {
			t.Errorf("NormalizeDate(%q) = %q does not re-parse", in, normalized)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("round trip of %q: got %v, want %v", in, got, want)
		}
	}
}

func TestParseISODate_Invalid(t *testing.T) {
	if _, ok := ParseISODate(""); ok {
		t.Error("empty string should not parse")
	}
	if _, ok := ParseISODate("2024-13-01"); ok {
		t.Error("month 13 should not parse")
	}
}
