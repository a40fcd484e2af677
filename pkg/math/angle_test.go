package math

import "testing"

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{360, 0},
		{370, 10},
		{-10, 350},
		{-720, 0},
		{359.5, 359.5},
	}

	for _, tt := range tests {
		if got := WrapDegrees(tt.in); got != tt.want {
			t.Errorf("WrapDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestShortestArc(t *testing.T) {
	tests := []struct {
		from, to, want float32
	}{
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
		{90, 90, 0},
		{190, 170, -20},
	}

	for _, tt := range tests {
		if got := ShortestArc(tt.from, tt.to); got != tt.want {
			t.Errorf("ShortestArc(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(1.2, 0, 1) != 1 || Clamp(-0.2, 0, 1) != 0 || Clamp(0.4, 0, 1) != 0.4 {
		t.Error("Clamp out of range")
	}
}
