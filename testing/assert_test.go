package testing

import (
	"math"
	"testing"

	"github.com/cbordump/cbordump/encoding/cbor"
)

func TestValueEqual(t *testing.T) {
	cases := map[string]struct {
		X, Y  cbor.Value
		Equal bool
	}{
		"equal": {
			X:     cbor.Map{{Key: cbor.String("a"), Value: cbor.List{cbor.Uint(1), cbor.NegInt(0)}}},
			Y:     cbor.Map{{Key: cbor.String("a"), Value: cbor.List{cbor.Uint(1), cbor.NegInt(0)}}},
			Equal: true,
		},
		"map order": {
			X:     cbor.Map{{Key: cbor.Uint(1), Value: cbor.Nil{}}, {Key: cbor.Uint(2), Value: cbor.Nil{}}},
			Y:     cbor.Map{{Key: cbor.Uint(2), Value: cbor.Nil{}}, {Key: cbor.Uint(1), Value: cbor.Nil{}}},
			Equal: false,
		},
		"int kinds": {
			X:     cbor.Uint(0),
			Y:     cbor.NegInt(0),
			Equal: false,
		},
		"empty slice": {
			X:     cbor.Slice(nil),
			Y:     cbor.Slice{},
			Equal: true,
		},
		"nan": {
			X:     cbor.Float64(math.NaN()),
			Y:     cbor.Float64(math.NaN()),
			Equal: true,
		},
		"signed zero": {
			X:     cbor.Float32(0),
			Y:     cbor.Float32(float32(math.Copysign(0, -1))),
			Equal: false,
		},
		"tag": {
			X:     &cbor.Tag{ID: 1, Value: cbor.Uint(0)},
			Y:     &cbor.Tag{ID: 2, Value: cbor.Uint(0)},
			Equal: false,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := ValueEqual(c.X, c.Y)
			if c.Equal {
				if err != nil {
					t.Fatalf("expect values to be equal, %v", err)
				}
			} else if err == nil {
				t.Fatalf("expect values to not be equal")
			}
		})
	}
}
