package cbor

import (
	"errors"
	"testing"
)

func FuzzDecode(f *testing.F) {
	f.Add([]byte{0xa0})                                                 // empty map
	f.Add([]byte{0x80})                                                 // empty array
	f.Add([]byte{0xbf, 0xff})                                           // indefinite map
	f.Add([]byte{0x9f, 0xff})                                           // indefinite array
	f.Add([]byte{0x7f, 0x61, 0x61, 0x61, 0x62, 0xff})                   // indefinite text
	f.Add([]byte{0x5f, 0x41, 0x01, 0xff})                               // indefinite bytes
	f.Add([]byte{0x00})                                                 // integer 0
	f.Add([]byte{0x1b, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}) // 2^64-1
	f.Add([]byte{0x3b, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}) // -2^64
	f.Add([]byte{0x65, 0x68, 0x65, 0x6c, 0x6c, 0x6f})                   // "hello"
	f.Add([]byte{0xc1, 0x1a, 0x51, 0x4b, 0x67, 0xb0})                   // tagged epoch
	f.Add([]byte{0xf7})                                                 // undefined
	f.Add([]byte{0xf8, 0xff})                                           // simple(255)
	f.Add([]byte{0xf9, 0x7e, 0x00})                                     // half NaN
	f.Add([]byte{0xa2, 0x01, 0x01, 0x01, 0x02})                         // duplicate keys
	f.Add([]byte{0x1c})                                                 // reserved
	f.Add([]byte{0x5b, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}) // huge length

	f.Fuzz(func(t *testing.T, data []byte) {
		v, err := Decode(data)
		if err != nil {
			var derr *DecodeError
			if !errors.As(err, &derr) {
				t.Fatalf("expect *DecodeError, got %T", err)
			}
			if derr.Offset < 0 || derr.Offset > len(data) {
				t.Fatalf("offset %d out of range [0, %d]", derr.Offset, len(data))
			}
			return
		}

		p := Encode(v)
		if len(p) > len(data) {
			t.Fatalf("re-encoding grew from %d to %d bytes", len(data), len(p))
		}
		rt, err := Decode(p)
		if err != nil {
			t.Fatalf("decode re-encoded %x: %v", p, err)
		}
		if !Equal(v, rt) {
			t.Fatalf("round trip mismatch for %x", data)
		}
	})
}
