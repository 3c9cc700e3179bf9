package testing

import (
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cbordump/cbordump/encoding/cbor"
)

// T provides the testing interface for capturing failures with testing assert
// utilities.
type T interface {
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Helper()
}

// floats compare by bits so NaN matches an identical NaN and 0.0 does not
// match -0.0
var valueOptions = cmp.Options{
	cmp.Comparer(func(a, b cbor.Float32) bool {
		return math.Float32bits(float32(a)) == math.Float32bits(float32(b))
	}),
	cmp.Comparer(func(a, b cbor.Float64) bool {
		return math.Float64bits(float64(a)) == math.Float64bits(float64(b))
	}),
	cmpopts.EquateEmpty(),
}

// ValueEqual compares two CBOR values structurally. Map pairs compare in
// order and a nil byte string equals an empty one. Returns an error holding
// the diff if the values are not equal.
func ValueEqual(expect, actual cbor.Value) error {
	if diff := cmp.Diff(expect, actual, valueOptions); len(diff) != 0 {
		return fmt.Errorf("value mismatch (-expect +actual):\n%s", diff)
	}

	return nil
}

// AssertValueEqual compares two CBOR values. Emits a testing error, and
// returns false if the values are not equal.
func AssertValueEqual(t T, expect, actual cbor.Value) bool {
	t.Helper()

	if err := ValueEqual(expect, actual); err != nil {
		t.Errorf("expect values to be equal, %v", err)
		return false
	}

	return true
}
