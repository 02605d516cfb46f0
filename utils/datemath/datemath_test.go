package datemath

import "testing"

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		month, year, want int
	}{
		{1, 2025, 31},
		{2, 2025, 28},
		{2, 2024, 29}, // leap year
		{2, 2000, 29}, // divisible by 400
		{2, 1900, 28}, // divisible by 100 but not 400
		{4, 2025, 30},
		{12, 2025, 31},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.month, c.year); got != c.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", c.month, c.year, got, c.want)
		}
	}
}

func TestFirstWeekday(t *testing.T) {
	// January 1, 2025 was a Wednesday; June 1, 2025 a Sunday.
	if got := FirstWeekday(1, 2025); got != 3 {
		t.Errorf("FirstWeekday(1, 2025) = %d, want 3", got)
	}
	if got := FirstWeekday(6, 2025); got != 0 {
		t.Errorf("FirstWeekday(6, 2025) = %d, want 0", got)
	}
}

func TestWeekday(t *testing.T) {
	// July 4, 2025 was a Friday.
	if got := Weekday(7, 4, 2025); got != 5 {
		t.Errorf("Weekday(7, 4, 2025) = %d, want 5", got)
	}
}

func TestWeekBucket(t *testing.T) {
	cases := []struct{ day, want int }{
		{1, 1}, {7, 1}, {8, 2}, {14, 2}, {15, 3}, {21, 3}, {22, 4}, {28, 4}, {29, 5}, {31, 5},
	}
	for _, c := range cases {
		if got := WeekBucket(c.day); got != c.want {
			t.Errorf("WeekBucket(%d) = %d, want %d", c.day, got, c.want)
		}
	}
}
