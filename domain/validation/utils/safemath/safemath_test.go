package safemath

import (
	"math"
	"testing"
)

func TestAddSaturate(t *testing.T) {
	tests := []struct {
		a, b     uint64
		expected uint64
	}{
		{0, 0, 0},
		{100_000, 100_000, 200_000},
		{math.MaxUint64, 0, math.MaxUint64},
		{math.MaxUint64, 1, math.MaxUint64},
		{math.MaxUint64 - 1, 1, math.MaxUint64},
	}
	for _, test := range tests {
		if result := AddSaturate(test.a, test.b); result != test.expected {
			t.Fatalf("AddSaturate(%d, %d): expected %d, got %d", test.a, test.b, test.expected, result)
		}
	}
}

func TestMulSaturate(t *testing.T) {
	tests := []struct {
		a, b     uint64
		expected uint64
	}{
		{0, math.MaxUint64, 0},
		{100_000, 3, 300_000},
		{math.MaxUint64, 2, math.MaxUint64},
		{1 << 32, 1 << 32, math.MaxUint64},
	}
	for _, test := range tests {
		if result := MulSaturate(test.a, test.b); result != test.expected {
			t.Fatalf("MulSaturate(%d, %d): expected %d, got %d", test.a, test.b, test.expected, result)
		}
	}
}

func TestSubFloor(t *testing.T) {
	if result := SubFloor(5, 7); result != 0 {
		t.Fatalf("SubFloor(5, 7): expected 0, got %d", result)
	}
	if result := SubFloor(7, 5); result != 2 {
		t.Fatalf("SubFloor(7, 5): expected 2, got %d", result)
	}
}
