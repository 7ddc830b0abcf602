package timezone

import (
	"testing"
	"time"
)

func TestParseISO(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"seconds", "2024-01-01T10:00:00", time.Date(2024, 1, 1, 10, 0, 0, 0, loc)},
		{"minutes", "2024-01-01T10:30", time.Date(2024, 1, 1, 10, 30, 0, 0, loc)},
		{"space separator", "2024-01-01 10:00:00", time.Date(2024, 1, 1, 10, 0, 0, 0, loc)},
		{"bare date", "2024-01-01", time.Date(2024, 1, 1, 0, 0, 0, 0, loc)},
		{"fraction", "2024-01-01T10:00:00.250000", time.Date(2024, 1, 1, 10, 0, 0, 250000000, loc)},
		{"utc offset", "2024-01-01T13:00:00Z", time.Date(2024, 1, 1, 10, 0, 0, 0, loc)},
		{"numeric offset", "2024-01-01T12:00:00-01:00", time.Date(2024, 1, 1, 10, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISO(tt.input, loc)
			if err != nil {
				t.Fatalf("ParseISO(%q) error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseISO(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got.Location() != loc {
				t.Errorf("ParseISO(%q) location = %v, want %v", tt.input, got.Location(), loc)
			}
		})
	}
}

func TestParseISO_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "tomorrow", "2024-13-01", "01/02/2024", "2024-01-01T25:00"} {
		if _, err := ParseISO(input, time.UTC); err != ErrInvalidISODate {
			t.Errorf("ParseISO(%q) error = %v, want ErrInvalidISODate", input, err)
		}
	}
}

func TestFormatISO(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), "2024-01-01T10:00:00"},
		{time.Date(2024, 1, 1, 10, 0, 0, 1500, time.UTC), "2024-01-01T10:00:00.000001"},
		{time.Date(2024, 1, 1, 10, 0, 0, 999, time.UTC), "2024-01-01T10:00:00"},
	}

	for _, tt := range tests {
		if got := FormatISO(tt.in, time.UTC); got != tt.want {
			t.Errorf("FormatISO(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatISO_ConvertsToLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	in := time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC)

	if got := FormatISO(in, loc); got != "2024-01-01T10:00:00" {
		t.Errorf("FormatISO = %q, want 2024-01-01T10:00:00", got)
	}
}

func TestLocation_FallsBackToUTC(t *testing.T) {
	if got := Location("Not/AZone"); got != time.UTC {
		t.Errorf("Location(invalid) = %v, want UTC", got)
	}
	if IsValid("") {
		t.Error("IsValid(\"\") = true")
	}
}
