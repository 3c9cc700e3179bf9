// Package cbor implements encoding and decoding of concise binary object
// representation (CBOR) described in RFC 8949.
//
// Decoding operates on a complete in-memory buffer and produces a tree of
// Value. The decoder accepts every well-formed data item, including the
// indefinite-length forms of byte strings, text strings, lists and maps, and
// rejects malformed input with a *DecodeError that identifies the failing
// condition and its byte offset. Input is treated as untrusted: nesting depth
// and container lengths are bounded (see DecodeOptions).
//
// As the encoding API operates strictly off of a constructed syntax tree, the
// length of each data item in a Value will always be known and the encoder
// will always generate definite-length encodings of container types (byte/text
// string, list, map), using the shortest argument width for every integer and
// length. Map pairs are written in stored order; no key sorting is applied.
//
// Semantic tags are not interpreted. A Tag carries its number and the single
// data item it wraps.
package cbor

// MajorType enumerates CBOR major types.
type MajorType byte

// Enumeration of CBOR major types
const (
	MajorTypeUint MajorType = iota
	MajorTypeNegInt
	MajorTypeSlice
	MajorTypeString
	MajorTypeList
	MajorTypeMap
	MajorTypeTag
	MajorType7
)

func (t MajorType) String() string {
	switch t {
	case MajorTypeUint:
		return "unsigned integer"
	case MajorTypeNegInt:
		return "negative integer"
	case MajorTypeSlice:
		return "byte string"
	case MajorTypeString:
		return "text string"
	case MajorTypeList:
		return "array"
	case MajorTypeMap:
		return "map"
	case MajorTypeTag:
		return "tag"
	default:
		return "simple/float"
	}
}

// additional information values with special meaning
const (
	minorArg1       = 24
	minorArg2       = 25
	minorArg4       = 26
	minorArg8       = 27
	minorIndefinite = 31
)

const (
	major7False = iota + 0b_10100
	major7True
	major7Nil
	major7Undefined
	major7Simple
	major7Float16
	major7Float32
	major7Float64
)

// breakMarker terminates indefinite-length items.
const breakMarker = 0xff

// Encode returns a byte slice that encodes the given Value.
//
// Encode panics if v or any value nested within it is nil, or if it contains
// a Simple in the assigned or reserved range 20-31. Use Marshal for trees that
// are not known to be valid.
func Encode(v Value) []byte {
	p := make([]byte, v.len())
	v.encode(p)
	return p
}

// Decode returns the Value encoded in the given byte slice, using the default
// DecodeOptions. The slice must contain exactly one data item.
func Decode(p []byte) (Value, error) {
	return defaultDecoder.Decode(p)
}

// DecodeItem decodes the data item that starts at offset off in p, using the
// default DecodeOptions. It returns the item and the offset just past it.
func DecodeItem(p []byte, off int) (Value, int, error) {
	return defaultDecoder.DecodeItem(p, off)
}
