package cbor

import (
	"bytes"
	"math"
)

// Equal reports whether a and b are structurally equal.
//
// Floating-point values are equal only if they have the same width and the
// same bits, so NaN equals an identical NaN and 0.0 does not equal -0.0.
// Lists and maps compare element-wise in order.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case Slice:
		bv, ok := b.(Slice)
		return ok && bytes.Equal(av, bv)
	case List:
		bv, ok := b.(List)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Map:
		bv, ok := b.(Map)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i].Key, bv[i].Key) || !Equal(av[i].Value, bv[i].Value) {
				return false
			}
		}
		return true
	case *Tag:
		bv, ok := b.(*Tag)
		if !ok || av == nil || bv == nil {
			return ok && av == bv
		}
		return av.ID == bv.ID && Equal(av.Value, bv.Value)
	case Float32:
		bv, ok := b.(Float32)
		return ok && math.Float32bits(float32(av)) == math.Float32bits(float32(bv))
	case Float64:
		bv, ok := b.(Float64)
		return ok && math.Float64bits(float64(av)) == math.Float64bits(float64(bv))
	default:
		// Uint, NegInt, String, Bool, Nil, Undefined, Simple, Float16
		return a == b
	}
}
