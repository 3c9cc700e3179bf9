package cbor

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Marshal returns the encoding of v. Unlike Encode it checks the tree first
// and returns a *MarshalError wrapping ErrInvalidValue if v contains a nil
// element, a nil tag or a simple value that is assigned or reserved.
func Marshal(v Value) ([]byte, error) {
	if err := validate(v, "$"); err != nil {
		return nil, err
	}
	return Encode(v), nil
}

func validate(v Value, path string) error {
	switch vv := v.(type) {
	case nil:
		return &MarshalError{Path: path, Err: fmt.Errorf("%w: nil value", ErrInvalidValue)}
	case List:
		for i, item := range vv {
			if err := validate(item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case Map:
		for i, e := range vv {
			if err := validate(e.Key, fmt.Sprintf("%s{%d}.key", path, i)); err != nil {
				return err
			}
			if err := validate(e.Value, fmt.Sprintf("%s{%d}.value", path, i)); err != nil {
				return err
			}
		}
	case *Tag:
		if vv == nil {
			return &MarshalError{Path: path, Err: fmt.Errorf("%w: nil tag", ErrInvalidValue)}
		}
		return validate(vv.Value, fmt.Sprintf("%s(%d)", path, vv.ID))
	case Simple:
		if vv >= major7False && vv < 32 {
			return &MarshalError{Path: path, Err: fmt.Errorf("%w: simple value %d", ErrInvalidValue, vv)}
		}
	}
	return nil
}

func (i Uint) len() int {
	return itoarglen(uint64(i))
}

func (i Uint) encode(p []byte) int {
	return encodeArg(MajorTypeUint, uint64(i), p)
}

func (i NegInt) len() int {
	return itoarglen(uint64(i))
}

func (i NegInt) encode(p []byte) int {
	return encodeArg(MajorTypeNegInt, uint64(i), p)
}

func (s Slice) len() int {
	return itoarglen(len(s)) + len(s)
}

func (s Slice) encode(p []byte) int {
	off := encodeArg(MajorTypeSlice, len(s), p)
	copy(p[off:], []byte(s))
	return off + len(s)
}

func (s String) len() int {
	return itoarglen(len(s)) + len(s)
}

func (s String) encode(p []byte) int {
	off := encodeArg(MajorTypeString, len(s), p)
	copy(p[off:], []byte(s))
	return off + len(s)
}

func (l List) len() int {
	total := itoarglen(len(l))
	for _, v := range l {
		total += v.len()
	}
	return total
}

func (l List) encode(p []byte) int {
	off := encodeArg(MajorTypeList, len(l), p)
	for _, v := range l {
		off += v.encode(p[off:])
	}
	return off
}

func (m Map) len() int {
	total := itoarglen(len(m))
	for _, e := range m {
		total += e.Key.len() + e.Value.len()
	}
	return total
}

func (m Map) encode(p []byte) int {
	off := encodeArg(MajorTypeMap, len(m), p)
	for _, e := range m {
		off += e.Key.encode(p[off:])
		off += e.Value.encode(p[off:])
	}
	return off
}

func (t *Tag) len() int {
	return itoarglen(t.ID) + t.Value.len()
}

func (t *Tag) encode(p []byte) int {
	off := encodeArg(MajorTypeTag, t.ID, p)
	return off + t.Value.encode(p[off:])
}

func (b Bool) len() int {
	return 1
}

func (b Bool) encode(p []byte) int {
	if b {
		p[0] = compose(MajorType7, major7True)
	} else {
		p[0] = compose(MajorType7, major7False)
	}
	return 1
}

func (Nil) len() int {
	return 1
}

func (Nil) encode(p []byte) int {
	p[0] = compose(MajorType7, major7Nil)
	return 1
}

func (Undefined) len() int {
	return 1
}

func (Undefined) encode(p []byte) int {
	p[0] = compose(MajorType7, major7Undefined)
	return 1
}

func (s Simple) len() int {
	if s >= major7False && s < 32 {
		panic(fmt.Sprintf("cbor: cannot encode simple value %d", s))
	}
	if s < minorArg1 {
		return 1
	}
	return 2
}

func (s Simple) encode(p []byte) int {
	if s < minorArg1 {
		p[0] = compose(MajorType7, byte(s))
		return 1
	}
	p[0] = compose(MajorType7, major7Simple)
	p[1] = byte(s)
	return 2
}

func (f Float16) len() int {
	return 3
}

func (f Float16) encode(p []byte) int {
	p[0] = compose(MajorType7, major7Float16)
	binary.BigEndian.PutUint16(p[1:], uint16(f))
	return 3
}

func (f Float32) len() int {
	return 5
}

func (f Float32) encode(p []byte) int {
	p[0] = compose(MajorType7, major7Float32)
	binary.BigEndian.PutUint32(p[1:], math.Float32bits(float32(f)))
	return 5
}

func (f Float64) len() int {
	return 9
}

func (f Float64) encode(p []byte) int {
	p[0] = compose(MajorType7, major7Float64)
	binary.BigEndian.PutUint64(p[1:], math.Float64bits(float64(f)))
	return 9
}

func compose(major MajorType, minor byte) byte {
	return byte(major)<<5 | minor
}

func itoarglen[I int | uint64](v I) int {
	if v < 24 {
		return 1 // type and len in single byte
	} else if v < 0x100 {
		return 2 // type + 1-byte len
	} else if v < 0x10000 {
		return 3 // type + 2-byte len
	} else if uint64(v) < 0x100000000 {
		return 5 // type + 4-byte len
	}
	return 9 // type + 8-byte len
}

func encodeArg[I int | uint64](t MajorType, arg I, p []byte) int {
	if arg < 24 {
		p[0] = compose(t, byte(arg))
		return 1
	} else if arg < 0x100 {
		p[0] = compose(t, minorArg1)
		p[1] = byte(arg)
		return 2
	} else if arg < 0x10000 {
		p[0] = compose(t, minorArg2)
		binary.BigEndian.PutUint16(p[1:], uint16(arg))
		return 3
	} else if uint64(arg) < 0x100000000 {
		p[0] = compose(t, minorArg4)
		binary.BigEndian.PutUint32(p[1:], uint32(arg))
		return 5
	}

	p[0] = compose(t, minorArg8)
	binary.BigEndian.PutUint64(p[1:], uint64(arg))
	return 9
}
