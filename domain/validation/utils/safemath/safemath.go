package safemath

import "math/bits"

// AddSaturate adds two uint64 values and returns math.MaxUint64 on overflow.
func AddSaturate(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return ^uint64(0)
	}
	return sum
}

// MulSaturate multiplies two uint64 values and returns math.MaxUint64 on overflow.
func MulSaturate(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return ^uint64(0)
	}
	return lo
}

// SubFloor subtracts b from a and returns 0 instead of wrapping around.
func SubFloor(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
