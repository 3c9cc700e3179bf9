package cbor

import (
	"github.com/x448/float16"
)

// Float64 returns the exact double-precision value of f.
//
// Subnormals and infinities convert exactly. NaN inputs yield a quiet NaN
// that keeps the sign and payload bits of f.
func (f Float16) Float64() float64 {
	return float64(float16.Frombits(uint16(f)).Float32())
}

// NewFloat16 narrows f to half precision. It reports false if f cannot be
// represented exactly.
func NewFloat16(f float32) (Float16, bool) {
	if float16.PrecisionFromfloat32(f) != float16.PrecisionExact {
		return 0, false
	}
	return Float16(float16.Fromfloat32(f).Bits()), true
}
