package dump

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbordump/cbordump/encoding/cbor"
	cbortesting "github.com/cbordump/cbordump/testing"
)

func TestProjectJSON_Representable(t *testing.T) {
	tests := []struct {
		name   string
		value  cbor.Value
		expect string
	}{
		{
			name: "document",
			value: cbor.Map{
				{Key: cbor.String("a"), Value: cbor.Uint(1)},
				{Key: cbor.String("b"), Value: cbor.List{cbor.Bool(true), cbor.Nil{}, cbor.String("x")}},
			},
			expect: `{"a":1,"b":[true,null,"x"]}`,
		},
		{"uint/max", cbor.Uint(math.MaxUint64), `18446744073709551615`},
		{"negint", cbor.Int(-500), `-500`},
		{"negint/min int64", cbor.Int(math.MinInt64), `-9223372036854775808`},
		{"negint/beyond int64", cbor.NegInt(math.MaxInt64 + 1), `-9223372036854775809`},
		{"negint/min", cbor.NegInt(math.MaxUint64), `-18446744073709551616`},
		{"half", cbor.Float16(0x3e00), `1.5`},
		{"single", cbor.Float32(0.1), `0.1`},
		{"double", cbor.Float64(1.1), `1.1`},
		{"text escape", cbor.String("é\"\u2028\u2029"), `"é\"\u2028\u2029"`},
		{"empty", cbor.List{cbor.Map{}, cbor.List{}}, `[{},[]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, issues, err := ProjectJSON(tt.value, Strict)
			require.NoError(t, err)
			assert.Empty(t, issues)
			assert.Equal(t, tt.expect, string(actual))
		})
	}
}

func TestProjectJSON_Placeholder(t *testing.T) {
	tests := []struct {
		name   string
		value  cbor.Value
		expect string
		issues []Issue
	}{
		{
			name:   "byte string",
			value:  cbor.Slice{1, 2, 3},
			expect: `{"$bytes":"AQID"}`,
			issues: []Issue{{ReasonByteString, "$"}},
		},
		{
			name:   "tag",
			value:  cbor.List{&cbor.Tag{ID: 1, Value: cbor.Uint(2)}},
			expect: `[{"$tag":1,"$value":2}]`,
			issues: []Issue{{ReasonTag, "$[0]"}},
		},
		{
			name:   "tagged bytes",
			value:  &cbor.Tag{ID: 2, Value: cbor.Slice{1}},
			expect: `{"$tag":2,"$value":{"$bytes":"AQ=="}}`,
			issues: []Issue{{ReasonTag, "$"}, {ReasonByteString, `$["$value"]`}},
		},
		{
			name:   "non-string key",
			value:  cbor.Map{{Key: cbor.Uint(1), Value: cbor.String("x")}},
			expect: `{"1":"x"}`,
			issues: []Issue{{ReasonNonStringKey, `$["1"]`}},
		},
		{
			name:   "list key",
			value:  cbor.Map{{Key: cbor.List{cbor.Uint(1)}, Value: cbor.Nil{}}},
			expect: `{"[1]":null}`,
			issues: []Issue{{ReasonNonStringKey, `$["[1]"]`}},
		},
		{
			name:   "duplicate key",
			value:  cbor.Map{{Key: cbor.String("a"), Value: cbor.Uint(1)}, {Key: cbor.String("a"), Value: cbor.Uint(2)}},
			expect: `{"a":1,"a":2}`,
			issues: []Issue{{ReasonDuplicateKey, "$.a"}},
		},
		{
			name:   "undefined",
			value:  cbor.Undefined{},
			expect: `{"$undefined":true}`,
			issues: []Issue{{ReasonUndefined, "$"}},
		},
		{
			name:   "simple",
			value:  cbor.Simple(16),
			expect: `{"$simple":16}`,
			issues: []Issue{{ReasonSimpleValue, "$"}},
		},
		{
			name:   "non-finite",
			value:  cbor.List{cbor.Float64(math.NaN()), cbor.Float16(0x7c00), cbor.Float32(float32(math.Inf(-1)))},
			expect: `["NaN","Infinity","-Infinity"]`,
			issues: []Issue{
				{ReasonNonFiniteFloat, "$[0]"},
				{ReasonNonFiniteFloat, "$[1]"},
				{ReasonNonFiniteFloat, "$[2]"},
			},
		},
		{
			name:   "odd key",
			value:  cbor.Map{{Key: cbor.String("odd key"), Value: cbor.Map{{Key: cbor.String("k"), Value: cbor.Slice{}}}}},
			expect: `{"odd key":{"k":{"$bytes":""}}}`,
			issues: []Issue{{ReasonByteString, `$["odd key"].k`}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, issues, err := ProjectJSON(tt.value, Placeholder)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, string(actual))
			assert.Equal(t, tt.issues, issues)

			_, _, err = ProjectJSON(tt.value, Strict)
			var uerr *UnrepresentableError
			require.True(t, errors.As(err, &uerr), "expect *UnrepresentableError, got %v", err)
			assert.Equal(t, tt.issues[0], uerr.Issue)
		})
	}
}

func TestProjectJSON_StrictError(t *testing.T) {
	_, _, err := ProjectJSON(cbor.List{cbor.Uint(1), cbor.Undefined{}}, Strict)
	require.Error(t, err)
	assert.Equal(t, "cannot encode: undefined at $[1]", err.Error())
}

func TestProjectJSON_Nil(t *testing.T) {
	_, _, err := ProjectJSON(cbor.List{nil}, Placeholder)
	require.True(t, errors.Is(err, cbor.ErrInvalidValue), "got %v", err)
}

func TestProjectJSON_ValidJSON(t *testing.T) {
	v, err := cbor.Decode(mustHex(t, "A3636B657943666F6F66746167676564C11A514B67B06A6E6F6E2D66696E697465F97C00"))
	require.NoError(t, err)

	actual, issues, err := ProjectJSON(v, Placeholder)
	require.NoError(t, err)
	assert.Len(t, issues, 3)
	cbortesting.AssertJSONEqual(t,
		[]byte(`{"key":{"$bytes":"Zm9v"},"tagged":{"$tag":1,"$value":1363896240},"non-finite":"Infinity"}`),
		actual)
}
