package cbor_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"

	"github.com/cbordump/cbordump/encoding/cbor"
	cbortesting "github.com/cbordump/cbordump/testing"
)

// Encodings must match what fxamacker/cbor produces for the equivalent Go
// value under its default (shortest-form, definite-length) options.
func TestEncode_MatchesReference(t *testing.T) {
	for name, c := range map[string]struct {
		In        cbor.Value
		Reference interface{}
	}{
		"uint/small":  {cbor.Uint(10), uint64(10)},
		"uint/1":      {cbor.Uint(100), uint64(100)},
		"uint/2":      {cbor.Uint(1000), uint64(1000)},
		"uint/4":      {cbor.Uint(1000000), uint64(1000000)},
		"uint/8":      {cbor.Uint(1000000000000), uint64(1000000000000)},
		"negint":      {cbor.Int(-500), int64(-500)},
		"negint/min":  {cbor.Int(-9223372036854775808), int64(-9223372036854775808)},
		"bytes":       {cbor.Slice{1, 2, 3}, []byte{1, 2, 3}},
		"text":        {cbor.String("ü水"), "ü水"},
		"list":        {cbor.List{cbor.Uint(1), cbor.String("a")}, []interface{}{uint64(1), "a"}},
		"map":         {cbor.Map{{cbor.String("a"), cbor.Uint(1)}}, map[string]interface{}{"a": uint64(1)}},
		"tag":         {&cbor.Tag{ID: 55799, Value: cbor.List{}}, fxcbor.Tag{Number: 55799, Content: []interface{}{}}},
		"true":        {cbor.Bool(true), true},
		"null":        {cbor.Nil{}, nil},
		"simple":      {cbor.Simple(16), fxcbor.SimpleValue(16)},
		"simple/wide": {cbor.Simple(255), fxcbor.SimpleValue(255)},
		"float32":     {cbor.Float32(3.5), float32(3.5)},
		"float64":     {cbor.Float64(1.1), float64(1.1)},
		"long text":   {cbor.String(strings.Repeat("x", 300)), strings.Repeat("x", 300)},
	} {
		t.Run(name, func(t *testing.T) {
			expect, err := fxcbor.Marshal(c.Reference)
			if err != nil {
				t.Fatalf("reference marshal: %v", err)
			}
			if actual := cbor.Encode(c.In); !bytes.Equal(expect, actual) {
				t.Errorf("expect %x, got %x", expect, actual)
			}
		})
	}
}

// Acceptance of well-formed input must agree with fxamacker/cbor configured
// with the same nesting limit.
func TestDecode_AgreesWithReference(t *testing.T) {
	dm, err := fxcbor.DecOptions{MaxNestedLevels: cbor.DefaultMaxDepth}.DecMode()
	if err != nil {
		t.Fatal(err)
	}

	for name, in := range map[string]string{
		"uint":                    "1b000000e8d4a51000",
		"negint":                  "3bffffffffffffffff",
		"indefinite text":         "7f61616162ff",
		"indefinite bytes":        "5f4101420203ff",
		"nested indefinite":       "9f018202039f0405ffff",
		"indefinite map":          "bf61610161629f0203ffff",
		"duplicate keys":          "a201010102",
		"tagged text":             "c074323031332d30332d32315432303a30343a30305a",
		"half float":              "f93c00",
		"simple value":            "f820",
		"deep ok":                 strings.Repeat("81", 10) + "00",
		"reserved info":           "1c",
		"truncated argument":      "18",
		"truncated bytes":         "4401",
		"lone break":              "ff",
		"indefinite uint":         "1f",
		"wrong chunk":             "7f4161ff",
		"nested indefinite chunk": "5f5f4101ffff",
		"missing break":           "9f01",
		"odd map":                 "a101",
		"low two-byte simple":     "f818",
		"huge length":             "9b0000000100000000",
		"deep":                    strings.Repeat("81", 300) + "00",
		"trailing":                "0000",
		"empty":                   "",
	} {
		t.Run(name, func(t *testing.T) {
			p, err := hex.DecodeString(in)
			if err != nil {
				t.Fatal(err)
			}

			_, actual := cbor.Decode(p)
			expect := dm.Wellformed(p)
			if (expect == nil) != (actual == nil) {
				t.Errorf("expect err %v, got %v", expect, actual)
			}
		})
	}
}

// Well-formedness alone admits malformed UTF-8 in text strings, so this is
// checked against a full decode with UTF-8 validation enabled.
func TestDecode_InvalidUTF8AgreesWithReference(t *testing.T) {
	dm, err := fxcbor.DecOptions{UTF8: fxcbor.UTF8RejectInvalid}.DecMode()
	if err != nil {
		t.Fatal(err)
	}

	for name, in := range map[string]string{
		"truncated sequence": "62c328",
		"lone continuation":  "6180",
		"in map key":         "a161ff01",
		"indefinite chunk":   "7f6161" + "61c3" + "ff",
	} {
		t.Run(name, func(t *testing.T) {
			p, err := hex.DecodeString(in)
			if err != nil {
				t.Fatal(err)
			}

			var ref interface{}
			if err := dm.Unmarshal(p, &ref); err == nil {
				t.Fatalf("expect reference to reject %s", in)
			}
			if _, err := cbor.Decode(p); !errors.Is(err, cbor.ErrInvalidUTF8) {
				t.Errorf("expect ErrInvalidUTF8, got %v", err)
			}
		})
	}
}

// Values decoded by fxamacker/cbor into generic Go values must match ours
// after projection to the same shape.
func TestDecode_RoundTripReference(t *testing.T) {
	for name, in := range map[string]cbor.Value{
		"list": cbor.List{
			cbor.Uint(1), cbor.Int(-1), cbor.String("a"), cbor.Slice{0xff},
			cbor.Bool(false), cbor.Nil{}, cbor.Float64(2.5),
		},
		"map":  cbor.Map{{cbor.String("k"), cbor.List{cbor.Uint(2)}}},
		"tag":  &cbor.Tag{ID: 1000, Value: cbor.Slice{0x01}},
		"deep": cbor.List{cbor.List{cbor.List{cbor.Map{}}}},
	} {
		t.Run(name, func(t *testing.T) {
			p := cbor.Encode(in)

			var ref interface{}
			if err := fxcbor.Unmarshal(p, &ref); err != nil {
				t.Fatalf("reference unmarshal: %v", err)
			}
			reencoded, err := fxcbor.Marshal(ref)
			if err != nil {
				t.Fatalf("reference marshal: %v", err)
			}

			actual, err := cbor.Decode(reencoded)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			cbortesting.AssertValueEqual(t, in, actual)
		})
	}
}
