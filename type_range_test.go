package finbook

import (
	"testing"
	"time"
)

func TestRangePeriodsClipping(t *testing.T) {
	// Mid-January to mid-March: three monthly buckets, first and last clipped.
	r := NewRange(NewDate(2025, time.January, 15), NewDate(2025, time.March, 10))

	var got []Range
	for b := range r.Periods(Monthly) {
		got = append(got, b)
	}

	want := []Range{
		{NewDate(2025, time.January, 15), NewDate(2025, time.January, 31)},
		{NewDate(2025, time.February, 1), NewDate(2025, time.February, 28)},
		{NewDate(2025, time.March, 1), NewDate(2025, time.March, 10)},
	}
	if len(got) != len(want) {
		t.Fatalf("Periods yielded %d buckets, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRangeIdentifier(t *testing.T) {
	tests := []struct {
		r    Range
		want string
	}{
		{MonthRange(2025, time.January), "2025-January"},
		{YearRange(2025), "2025"},
		{NewRange(NewDate(2025, 1, 6), NewDate(2025, 1, 12)), "2025-W02"},
		{NewRange(NewDate(2025, 1, 1), NewDate(2025, 3, 31)), "2025-Q1"},
		{NewRange(NewDate(2025, 1, 2), NewDate(2025, 1, 2)), "2025-01-02"},
		{NewRange(NewDate(2025, 1, 2), NewDate(2025, 2, 3)), "2025-01-02_2025-02-03"},
	}
	for _, tt := range tests {
		if got := tt.r.Identifier(); got != tt.want {
			t.Errorf("Identifier(%v) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestRangeContains(t *testing.T) {
	r := MonthRange(2025, time.August)
	if !r.Contains(NewDate(2025, time.August, 1)) || !r.Contains(NewDate(2025, time.August, 31)) {
		t.Error("range must include its boundaries")
	}
	if r.Contains(NewDate(2025, time.July, 31)) || r.Contains(NewDate(2025, time.September, 1)) {
		t.Error("range must exclude dates outside its boundaries")
	}
}
