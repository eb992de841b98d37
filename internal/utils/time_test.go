package utils

import "testing"

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2024-03-15"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, bad := range []string{"", "2024-3-15", "15-03-2024", "2024-13-01", "not-a-date"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("expected error parsing %q", bad)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if !IsValidDate("2024-02-29") {
		t.Error("expected leap day to be valid")
	}
	if IsValidDate("2023-02-29") {
		t.Error("expected non-leap Feb 29 to be invalid")
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		date string
		n    int
		want string
	}{
		{"2024-01-01", 5, "2024-01-06"},
		{"2024-01-30", 5, "2024-02-04"},
		{"2024-12-30", 3, "2025-01-02"},
		{"2024-03-01", -1, "2024-02-29"},
		{"2024-01-15", 0, "2024-01-15"},
	}
	for _, tt := range tests {
		if got := AddDays(tt.date, tt.n); got != tt.want {
			t.Errorf("AddDays(%q, %d) = %q, want %q", tt.date, tt.n, got, tt.want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2024-01-01", "2024-01-01", 0},
		{"2024-01-01", "2024-01-29", 28},
		{"2024-01-29", "2024-01-01", -28},
		{"2024-02-28", "2024-03-01", 2},
	}
	for _, tt := range tests {
		if got := DaysBetween(tt.a, tt.b); got != tt.want {
			t.Errorf("DaysBetween(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLoadLocation(t *testing.T) {
	for _, tz := range []string{"", "Local"} {
		loc, err := LoadLocation(tz)
		if err != nil || loc == nil {
			t.Errorf("expected local location for %q, got %v, %v", tz, loc, err)
		}
	}

	if _, err := LoadLocation("UTC"); err != nil {
		t.Errorf("unexpected error for UTC: %v", err)
	}
	if _, err := LoadLocation("Not/AZone"); err == nil {
		t.Error("expected error for unknown timezone")
	}
}

func TestTodayInTimezone(t *testing.T) {
	today, err := TodayInTimezone("UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !IsValidDate(today) {
		t.Errorf("expected a valid date string, got %q", today)
	}

	if _, err := TodayInTimezone("Not/AZone"); err == nil {
		t.Error("expected error for unknown timezone")
	}
}
