package utils

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{name: "non-positive limit", input: "Lion leads", limit: 0, expect: ""},
		{name: "fits", input: "Lion", limit: 10, expect: "Lion"},
		{name: "cut with ellipsis", input: "The Autonomous Leader", limit: 7, expect: "The Aut..."},
		{name: "multi-line prompt", input: "[Task]\n  Write\ta narrative\n", limit: 40, expect: "[Task] Write a narrative"},
		{name: "counts runes", input: "🦁 Lion", limit: 3, expect: "🦁 L..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
