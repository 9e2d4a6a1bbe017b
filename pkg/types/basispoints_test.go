package types

import "testing"

func TestFromPercent(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want BasisPoints
	}{
		{name: "whole percent", pct: 35, want: 3500},
		{name: "half percent", pct: 0.5, want: 50},
		{name: "hundred percent", pct: 100, want: WholeShare},
		{name: "rounds up", pct: 1.006, want: 101},
		{name: "rounds down", pct: 1.004, want: 100},
		{name: "negative", pct: -2.5, want: -250},
		{name: "zero", pct: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromPercent(tt.pct); got != tt.want {
				t.Fatalf("FromPercent(%v) = %d, want %d", tt.pct, got, tt.want)
			}
		})
	}
}

func TestBasisPointsPercent(t *testing.T) {
	if got := BasisPoints(250).Percent(); got != 2.5 {
		t.Fatalf("expected 2.5, got %v", got)
	}
	if got := BasisPoints(-50).Percent(); got != -0.5 {
		t.Fatalf("expected -0.5, got %v", got)
	}
}

func TestBasisPointsString(t *testing.T) {
	tests := []struct {
		bps  BasisPoints
		want string
	}{
		{3500, "35.00%"},
		{50, "0.50%"},
		{-250, "-2.50%"},
		{WholeShare, "100.00%"},
	}
	for _, tt := range tests {
		if got := tt.bps.String(); got != tt.want {
			t.Fatalf("BasisPoints(%d).String() = %q, want %q", tt.bps, got, tt.want)
		}
	}
}
