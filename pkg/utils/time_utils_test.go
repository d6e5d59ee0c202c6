package utils

import "testing"

func TestInclusiveDayCount(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2024-01-10", "2024-01-14", 5},
		{"2024-01-10", "2024-01-10", 1},
		{"2024-01-10", "2024-01-11", 2},
		{"2024-02-28", "2024-03-01", 3}, // leap year
		{"2024-01-14", "2024-01-10", 0},
	}

	for _, tc := range cases {
		start, err := ParseDateOnly(tc.start)
		if err != nil {
			t.Fatalf("parse %s: %v", tc.start, err)
		}
		end, err := ParseDateOnly(tc.end)
		if err != nil {
			t.Fatalf("parse %s: %v", tc.end, err)
		}
		if got := InclusiveDayCount(start, end); got != tc.want {
			t.Errorf("InclusiveDayCount(%s, %s) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestAddDaysCrossesMonthBoundary(t *testing.T) {
	start, err := ParseDateOnly("2024-01-30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := FormatDateOnly(AddDays(start, 3)); got != "2024-02-02" {
		t.Errorf("AddDays landed on %s, want 2024-02-02", got)
	}
}

func TestParseDateOnlyRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "10-01-2024", "Jan 10 2024", "2024/01/10"} {
		if _, err := ParseDateOnly(in); err == nil {
			t.Errorf("ParseDateOnly(%q) accepted invalid input", in)
		}
	}
}
