package cbor

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

// upper bound on speculative preallocation for definite-length containers
const maxAlloc = 0xff

type decodeState struct {
	p       []byte
	off     int
	depth   int
	options *DecodeOptions
}

func (s *decodeState) fail(off int, err error) error {
	return &DecodeError{Offset: off, Err: err}
}

func (s *decodeState) remaining() int {
	return len(s.p) - s.off
}

func (s *decodeState) decode() (Value, error) {
	if s.off >= len(s.p) {
		return nil, s.fail(s.off, ErrUnexpectedEnd)
	}

	switch peekMajor(s.p[s.off:]) {
	case MajorTypeUint:
		return s.decodeUint()
	case MajorTypeNegInt:
		return s.decodeNegInt()
	case MajorTypeSlice:
		b, err := s.decodeSlice(MajorTypeSlice)
		if err != nil {
			return nil, err
		}
		return Slice(b), nil
	case MajorTypeString:
		b, err := s.decodeSlice(MajorTypeString)
		if err != nil {
			return nil, err
		}
		return String(b), nil
	case MajorTypeList:
		return s.decodeList()
	case MajorTypeMap:
		return s.decodeMap()
	case MajorTypeTag:
		return s.decodeTag()
	default: // MajorType7
		return s.decodeMajor7()
	}
}

// head consumes the initial byte and argument of the item at the cursor
func (s *decodeState) head() (uint64, error) {
	arg, n, err := decodeArgument(s.p[s.off:])
	if err != nil {
		return 0, s.fail(s.off, err)
	}
	s.off += n
	return arg, nil
}

func (s *decodeState) decodeUint() (Uint, error) {
	i, err := s.head()
	if err != nil {
		return 0, err
	}
	return Uint(i), nil
}

func (s *decodeState) decodeNegInt() (NegInt, error) {
	i, err := s.head()
	if err != nil {
		return 0, err
	}
	return NegInt(i), nil
}

// this routine is used for both string and slice major types, the value of
// inner specifies which context we're in (needed for validating subsegments
// inside indefinite encodings)
func (s *decodeState) decodeSlice(inner MajorType) ([]byte, error) {
	if peekMinor(s.p[s.off:]) == minorIndefinite {
		return s.decodeSliceIndefinite(inner)
	}

	start := s.off
	slen, err := s.head()
	if err != nil {
		return nil, err
	}
	n, err := s.checkLen(start, slen, 1, 0)
	if err != nil {
		return nil, err
	}

	b := make([]byte, n)
	copy(b, s.p[s.off:s.off+n])
	if inner == MajorTypeString && !utf8.Valid(b) {
		return nil, s.fail(start, ErrInvalidUTF8)
	}

	s.off += n
	return b, nil
}

func (s *decodeState) decodeSliceIndefinite(inner MajorType) ([]byte, error) {
	s.off++ // initial byte

	b := []byte{}
	for {
		if s.off >= len(s.p) {
			return nil, s.fail(s.off, ErrUnexpectedEnd)
		}

		ib := s.p[s.off]
		if ib == breakMarker {
			s.off++
			return b, nil
		}
		if major := peekMajor(s.p[s.off:]); major != inner {
			return nil, s.fail(s.off, &InvalidInitialByteError{
				Byte:   ib,
				Reason: fmt.Sprintf("unexpected %s chunk in indefinite-length %s", major, inner),
			})
		}
		if peekMinor(s.p[s.off:]) == minorIndefinite {
			return nil, s.fail(s.off, &InvalidInitialByteError{
				Byte:   ib,
				Reason: fmt.Sprintf("nested indefinite-length chunk in indefinite-length %s", inner),
			})
		}

		chunk, err := s.decodeSlice(inner)
		if err != nil {
			return nil, err
		}
		b = append(b, chunk...)
	}
}

func (s *decodeState) decodeList() (List, error) {
	start := s.off
	if err := s.enter(start); err != nil {
		return nil, err
	}
	defer s.leave()

	if peekMinor(s.p[s.off:]) == minorIndefinite {
		return s.decodeListIndefinite()
	}

	alen, err := s.head()
	if err != nil {
		return nil, err
	}
	n, err := s.checkLen(start, alen, 1, s.options.MaxContainerLength)
	if err != nil {
		return nil, err
	}

	l := make(List, 0, min(n, maxAlloc))
	for i := 0; i < n; i++ {
		item, err := s.decode()
		if err != nil {
			return nil, err
		}
		l = append(l, item)
	}

	return l, nil
}

func (s *decodeState) decodeListIndefinite() (List, error) {
	start := s.off
	s.off++ // initial byte

	l := List{}
	for {
		if s.off >= len(s.p) {
			return nil, s.fail(s.off, ErrUnexpectedEnd)
		}
		if s.p[s.off] == breakMarker {
			s.off++
			return l, nil
		}
		if len(l) == s.options.MaxContainerLength {
			return nil, s.fail(start, ErrLengthExceeded)
		}

		item, err := s.decode()
		if err != nil {
			return nil, err
		}
		l = append(l, item)
	}
}

func (s *decodeState) decodeMap() (Map, error) {
	start := s.off
	if err := s.enter(start); err != nil {
		return nil, err
	}
	defer s.leave()

	if peekMinor(s.p[s.off:]) == minorIndefinite {
		return s.decodeMapIndefinite()
	}

	maplen, err := s.head()
	if err != nil {
		return nil, err
	}
	n, err := s.checkLen(start, maplen, 2, s.options.MaxContainerLength)
	if err != nil {
		return nil, err
	}

	mp := make(Map, 0, min(n, maxAlloc))
	for i := 0; i < n; i++ {
		entry, err := s.decodeMapEntry()
		if err != nil {
			return nil, err
		}
		mp = append(mp, entry)
	}

	return mp, nil
}

func (s *decodeState) decodeMapIndefinite() (Map, error) {
	start := s.off
	s.off++ // initial byte

	mp := Map{}
	for {
		if s.off >= len(s.p) {
			return nil, s.fail(s.off, ErrUnexpectedEnd)
		}
		if s.p[s.off] == breakMarker {
			s.off++
			return mp, nil
		}
		if len(mp) == s.options.MaxContainerLength {
			return nil, s.fail(start, ErrLengthExceeded)
		}

		entry, err := s.decodeMapEntry()
		if err != nil {
			return nil, err
		}
		mp = append(mp, entry)
	}
}

func (s *decodeState) decodeMapEntry() (MapEntry, error) {
	key, err := s.decode()
	if err != nil {
		return MapEntry{}, err
	}
	value, err := s.decode()
	if err != nil {
		return MapEntry{}, err
	}
	return MapEntry{Key: key, Value: value}, nil
}

func (s *decodeState) decodeTag() (*Tag, error) {
	if err := s.enter(s.off); err != nil {
		return nil, err
	}
	defer s.leave()

	id, err := s.head()
	if err != nil {
		return nil, err
	}

	v, err := s.decode()
	if err != nil {
		return nil, err
	}

	return &Tag{ID: id, Value: v}, nil
}

func (s *decodeState) decodeMajor7() (Value, error) {
	start := s.off
	switch m := peekMinor(s.p[s.off:]); m {
	case major7True, major7False:
		s.off++
		return Bool(m == major7True), nil
	case major7Nil:
		s.off++
		return Nil{}, nil
	case major7Undefined:
		s.off++
		return Undefined{}, nil
	case minorIndefinite:
		return nil, s.fail(start, ErrUnexpectedBreak)
	}

	arg, err := s.head()
	if err != nil {
		return nil, err
	}

	switch m := peekMinor(s.p[start:]); m {
	case major7Simple:
		if arg < 32 {
			return nil, s.fail(start, &InvalidSimpleValueError{Value: byte(arg)})
		}
		return Simple(arg), nil
	case major7Float16:
		return Float16(arg), nil
	case major7Float32:
		return Float32(math.Float32frombits(uint32(arg))), nil
	case major7Float64:
		return Float64(math.Float64frombits(arg)), nil
	default: // 0-19
		return Simple(m), nil
	}
}

// enter accounts for one more level of container nesting
func (s *decodeState) enter(off int) error {
	if s.depth >= s.options.MaxDepth {
		return s.fail(off, ErrDepthExceeded)
	}
	s.depth++
	return nil
}

func (s *decodeState) leave() {
	s.depth--
}

// checkLen validates a definite length argument for the item at off. Every
// counted unit occupies at least minSize bytes, so a length that cannot fit in
// the remaining input is rejected before anything is allocated. A limit of 0
// means the count is not capped by options.
func (s *decodeState) checkLen(off int, arg uint64, minSize, limit int) (int, error) {
	if arg > math.MaxInt {
		return 0, s.fail(off, ErrIntegerOverflow)
	}
	n := int(arg)
	if limit > 0 && n > limit {
		return 0, s.fail(off, ErrLengthExceeded)
	}
	if n > s.remaining()/minSize {
		return 0, s.fail(off, ErrUnexpectedEnd)
	}
	return n, nil
}

func peekMajor(p []byte) MajorType {
	return MajorType(p[0] & 0b_111_00000 >> 5)
}

func peekMinor(p []byte) byte {
	return p[0] & 0b_11111
}

// pulls the next argument out of the buffer
//
// expects one of the sized arguments and will error otherwise - callers that
// need to check for the indefinite flag must do so externally
func decodeArgument(p []byte) (uint64, int, error) {
	minor := peekMinor(p)
	if minor < minorArg1 {
		return uint64(minor), 1, nil
	}

	switch minor {
	case minorArg1, minorArg2, minorArg4, minorArg8:
		argLen := mtol(minor)
		if len(p) < argLen+1 {
			return 0, 0, ErrUnexpectedEnd
		}
		return readArgument(p[1:], argLen), argLen + 1, nil
	case minorIndefinite:
		return 0, 0, &InvalidInitialByteError{
			Byte:   p[0],
			Reason: fmt.Sprintf("indefinite length not allowed for %s", peekMajor(p)),
		}
	default:
		return 0, 0, &ReservedAdditionalInfoError{Info: minor}
	}
}

// minor value to arg len in bytes
func mtol(minor byte) int {
	if minor == minorArg1 {
		return 1
	} else if minor == minorArg2 {
		return 2
	} else if minor == minorArg4 {
		return 4
	}
	return 8
}

func readArgument(p []byte, len int) uint64 {
	if len == 1 {
		return uint64(p[0])
	} else if len == 2 {
		return uint64(binary.BigEndian.Uint16(p))
	} else if len == 4 {
		return uint64(binary.BigEndian.Uint32(p))
	}
	return binary.BigEndian.Uint64(p)
}
