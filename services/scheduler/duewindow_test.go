package scheduler

import (
	"testing"
	"time"
)

func TestIsDueWindowBoundaries(t *testing.T) {
	dueAt := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"exactly due", dueAt, true},
		{"lower boundary inclusive", dueAt.Add(-2 * time.Minute), true},
		{"upper boundary inclusive", dueAt.Add(2 * time.Minute), true},
		{"just before window", dueAt.Add(-2*time.Minute - time.Millisecond), false},
		{"just after window", dueAt.Add(2*time.Minute + time.Millisecond), false},
		{"inside window early", dueAt.Add(-90 * time.Second), true},
		{"inside window late", dueAt.Add(90 * time.Second), true},
		{"long past due", dueAt.Add(time.Hour), false},
		{"far in the future", dueAt.Add(-time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDue(tc.now, dueAt); got != tc.want {
				t.Errorf("IsDue(%v, %v) = %v, want %v", tc.now, dueAt, got, tc.want)
			}
		})
	}
}
