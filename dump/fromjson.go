package dump

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"

	"github.com/cbordump/cbordump/encoding/cbor"
)

// ErrInvalidJSON is returned by FromJSON for input that is not a single
// well-formed JSON document.
var ErrInvalidJSON = errors.New("invalid JSON")

// FromJSON converts a JSON document to a Value.
//
// Object members keep their order, duplicates included. Integer literals
// within [-2^64, 2^64-1] become Uint or NegInt; every other number becomes a
// Float64. Nesting is bounded by cbor.DefaultMaxDepth.
func FromJSON(data []byte) (cbor.Value, error) {
	// The padding lets every complete value end before the buffer does, so
	// any io.EOF seen while reading a value means truncated input.
	padded := make([]byte, len(data)+1)
	copy(padded, data)
	padded[len(data)] = ' '

	iter := jsoniter.ConfigDefault.BorrowIterator(padded)
	defer jsoniter.ConfigDefault.ReturnIterator(iter)

	r := &jsonReader{iter: iter}
	v, err := r.read(0)
	if err != nil {
		return nil, err
	}

	// the iterator reports io.EOF once the buffer is drained
	if iter.WhatIsNext() != jsoniter.InvalidValue || iter.Error == nil {
		return nil, fmt.Errorf("%w: trailing data after document", ErrInvalidJSON)
	}
	if iter.Error != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, iter.Error)
	}
	return v, nil
}

type jsonReader struct {
	iter *jsoniter.Iterator
}

func (r *jsonReader) fail(what string) error {
	switch r.iter.Error {
	case nil:
		return fmt.Errorf("%w: %s", ErrInvalidJSON, what)
	case io.EOF:
		return fmt.Errorf("%w: %s: unexpected end of input", ErrInvalidJSON, what)
	default:
		return fmt.Errorf("%w: %s: %v", ErrInvalidJSON, what, r.iter.Error)
	}
}

func (r *jsonReader) read(depth int) (cbor.Value, error) {
	switch r.iter.WhatIsNext() {
	case jsoniter.StringValue:
		s := r.iter.ReadString()
		if r.iter.Error != nil {
			return nil, r.fail("read string")
		}
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("%w: string is not valid UTF-8", ErrInvalidJSON)
		}
		return cbor.String(s), nil
	case jsoniter.NumberValue:
		return r.readNumber()
	case jsoniter.BoolValue:
		b := r.iter.ReadBool()
		if r.iter.Error != nil {
			return nil, r.fail("read bool")
		}
		return cbor.Bool(b), nil
	case jsoniter.NilValue:
		r.iter.ReadNil()
		if r.iter.Error != nil {
			return nil, r.fail("read null")
		}
		return cbor.Nil{}, nil
	case jsoniter.ArrayValue:
		if depth >= cbor.DefaultMaxDepth {
			return nil, fmt.Errorf("%w: maximum nesting depth exceeded", ErrInvalidJSON)
		}
		return r.readArray(depth + 1)
	case jsoniter.ObjectValue:
		if depth >= cbor.DefaultMaxDepth {
			return nil, fmt.Errorf("%w: maximum nesting depth exceeded", ErrInvalidJSON)
		}
		return r.readObject(depth + 1)
	default:
		return nil, r.fail("expect a value")
	}
}

func (r *jsonReader) readArray(depth int) (cbor.Value, error) {
	l := cbor.List{}
	var err error
	ok := r.iter.ReadArrayCB(func(*jsoniter.Iterator) bool {
		var v cbor.Value
		if v, err = r.read(depth); err != nil {
			return false
		}
		l = append(l, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, r.fail("malformed array")
	}
	return l, nil
}

func (r *jsonReader) readObject(depth int) (cbor.Value, error) {
	m := cbor.Map{}
	var err error
	ok := r.iter.ReadObjectCB(func(_ *jsoniter.Iterator, key string) bool {
		if !utf8.ValidString(key) {
			err = fmt.Errorf("%w: key is not valid UTF-8", ErrInvalidJSON)
			return false
		}
		var v cbor.Value
		if v, err = r.read(depth); err != nil {
			return false
		}
		m = append(m, cbor.MapEntry{Key: cbor.String(key), Value: v})
		return true
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, r.fail("malformed object")
	}
	return m, nil
}

func (r *jsonReader) readNumber() (cbor.Value, error) {
	n := string(r.iter.ReadNumber())
	if r.iter.Error != nil {
		return nil, r.fail("read number")
	}

	if !strings.ContainsAny(n, ".eE") {
		if v, ok := parseInteger(n); ok {
			return v, nil
		}
	}

	f, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: number %q", ErrInvalidJSON, n)
	}
	return cbor.Float64(f), nil
}

// parseInteger reports false for literals outside [-2^64, 2^64-1].
func parseInteger(n string) (cbor.Value, bool) {
	digits, negative := strings.CutPrefix(n, "-")
	u, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		if negative && digits == "18446744073709551616" {
			return cbor.NegInt(1<<64 - 1), true
		}
		return nil, false
	}
	if !negative || u == 0 {
		return cbor.Uint(u), true
	}
	return cbor.NegInt(u - 1), true
}
