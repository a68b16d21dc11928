package money_test

import (
	"testing"

	"intent-engine/pkg/money"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"100", 100, true},
		{"₪1,299.90", 1299.90, true},
		{"1.299,90", 1299.90, true},
		{"12,5", 12.5, true},
		{"1,299", 1299, true},
		{"0,250", 0.25, true},
		{"1.000.000", 1000000, true},
		{"$45", 45, true},
		{"45 ש\"ח", 45, true},
		{"99.99 NIS", 99.99, true},
		{"", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := money.Parse(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Parse(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFind(t *testing.T) {
	got := money.Find("orders over ₪250 and under 1,000.50 dollars")
	if len(got) != 2 {
		t.Fatalf("Find() returned %d matches, want 2: %+v", len(got), got)
	}
	if got[0].Value != 250 || got[1].Value != 1000.50 {
		t.Errorf("Find() values = %v, %v", got[0].Value, got[1].Value)
	}
	if !money.HasCurrency(got[0].Raw) {
		t.Errorf("expected currency in %q", got[0].Raw)
	}
}
