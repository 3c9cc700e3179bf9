package cbor

import (
	"math"
	"math/big"
)

// Value describes a CBOR data item.
//
// The following structures implement Value:
//   - Uint
//   - NegInt
//   - Slice
//   - String
//   - List
//   - Map
//   - Tag
//   - Bool
//   - Nil
//   - Undefined
//   - Simple
//   - Float16
//   - Float32
//   - Float64
type Value interface {
	MajorType() MajorType

	len() int
	encode(p []byte) int
}

var (
	_ Value = Uint(0)
	_ Value = NegInt(0)
	_ Value = Slice(nil)
	_ Value = String("")
	_ Value = List(nil)
	_ Value = Map(nil)
	_ Value = (*Tag)(nil)
	_ Value = Bool(false)
	_ Value = Nil{}
	_ Value = Undefined{}
	_ Value = Simple(0)
	_ Value = Float16(0)
	_ Value = Float32(0)
	_ Value = Float64(0)
)

// Uint describes a CBOR uint (major type 0).
type Uint uint64

// MajorType returns MajorTypeUint.
func (Uint) MajorType() MajorType { return MajorTypeUint }

// Int64 returns i as an int64, or ErrIntegerOverflow if it exceeds
// math.MaxInt64.
func (i Uint) Int64() (int64, error) {
	if uint64(i) > math.MaxInt64 {
		return 0, ErrIntegerOverflow
	}
	return int64(i), nil
}

// NegInt describes a CBOR negative int (major type 1).
//
// The underlying value is the encoded argument n and the integer it
// represents is -1-n. This covers the whole range [-2^64, -1] without
// overflow: NegInt(0) is -1 and NegInt(math.MaxUint64) is -2^64.
type NegInt uint64

// MajorType returns MajorTypeNegInt.
func (NegInt) MajorType() MajorType { return MajorTypeNegInt }

// Int64 returns the represented integer, or ErrIntegerOverflow if it is less
// than math.MinInt64.
func (i NegInt) Int64() (int64, error) {
	if uint64(i) > math.MaxInt64 {
		return 0, ErrIntegerOverflow
	}
	return -1 - int64(i), nil
}

// BigInt returns the represented integer.
func (i NegInt) BigInt() *big.Int {
	n := new(big.Int).SetUint64(uint64(i))
	return n.Neg(n.Add(n, big.NewInt(1)))
}

// Int returns the Value for a signed integer, a Uint for i >= 0 and a NegInt
// otherwise.
func Int(i int64) Value {
	if i >= 0 {
		return Uint(i)
	}
	return NegInt(-1 - i)
}

// Slice describes a CBOR byte slice (major type 2).
type Slice []byte

// MajorType returns MajorTypeSlice.
func (Slice) MajorType() MajorType { return MajorTypeSlice }

// String describes a CBOR text string (major type 3).
type String string

// MajorType returns MajorTypeString.
func (String) MajorType() MajorType { return MajorTypeString }

// List describes a CBOR list (major type 4).
type List []Value

// MajorType returns MajorTypeList.
func (List) MajorType() MajorType { return MajorTypeList }

// MapEntry is a single key/value pair of a Map.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map describes a CBOR map (major type 5).
//
// Pairs are kept in decode order. CBOR does not require keys to be unique and
// neither does Map: duplicate keys are preserved as separate entries.
type Map []MapEntry

// MajorType returns MajorTypeMap.
func (Map) MajorType() MajorType { return MajorTypeMap }

// Get returns the value of the first entry whose key is Equal to key.
func (m Map) Get(key Value) (Value, bool) {
	for _, e := range m {
		if Equal(e.Key, key) {
			return e.Value, true
		}
	}
	return nil, false
}

// Tag describes a CBOR-tagged value (major type 6).
type Tag struct {
	ID    uint64
	Value Value
}

// MajorType returns MajorTypeTag.
func (*Tag) MajorType() MajorType { return MajorTypeTag }

// Bool describes a boolean value (major type 7, argument 20/21).
type Bool bool

// MajorType returns MajorType7.
func (Bool) MajorType() MajorType { return MajorType7 }

// Nil is the `nil` / `null` literal (major type 7, argument 22).
type Nil struct{}

// MajorType returns MajorType7.
func (Nil) MajorType() MajorType { return MajorType7 }

// Undefined is the `undefined` literal (major type 7, argument 23).
type Undefined struct{}

// MajorType returns MajorType7.
func (Undefined) MajorType() MajorType { return MajorType7 }

// Simple describes a simple value without assigned meaning (major type 7,
// arguments 0-19 or argument 24 followed by a value of at least 32).
//
// Values 20-31 are either assigned (false, true, null, undefined) or reserved
// and are rejected by Marshal.
type Simple uint8

// MajorType returns MajorType7.
func (Simple) MajorType() MajorType { return MajorType7 }

// Float16 describes an IEEE 754 half-precision floating-point number (major
// type 7, argument 25).
//
// The raw bits are kept so that the value re-encodes exactly, NaN payloads
// included. Use Float64 for arithmetic.
type Float16 uint16

// MajorType returns MajorType7.
func (Float16) MajorType() MajorType { return MajorType7 }

// Float32 describes an IEEE 754 single-precision floating-point number
// (major type 7, argument 26).
type Float32 float32

// MajorType returns MajorType7.
func (Float32) MajorType() MajorType { return MajorType7 }

// Float64 describes an IEEE 754 double-precision floating-point number
// (major type 7, argument 27).
type Float64 float64

// MajorType returns MajorType7.
func (Float64) MajorType() MajorType { return MajorType7 }
