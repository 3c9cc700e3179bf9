package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHexInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		expect  []byte
		wantErr bool
	}{
		{name: "compact", input: "a1636b6579", expect: []byte{0xa1, 0x63, 0x6b, 0x65, 0x79}},
		{name: "spaced", input: "a1 63 6b 65 79", expect: []byte{0xa1, 0x63, 0x6b, 0x65, 0x79}},
		{name: "newlines and tabs", input: "a1\n63\t6b\r\n6579\n", expect: []byte{0xa1, 0x63, 0x6b, 0x65, 0x79}},
		{name: "uppercase", input: "A1FF", expect: []byte{0xa1, 0xff}},
		{name: "empty", input: " \n ", wantErr: true},
		{name: "odd length", input: "a1f", wantErr: true},
		{name: "not hex", input: "zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := decodeHexInput([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expect, actual)
		})
	}
}

func TestDescribeMismatch(t *testing.T) {
	err := describeMismatch([]byte{1, 2, 3}, []byte{1, 2, 4})
	assert.EqualError(t, err, "not in preferred serialization: first difference at byte 2 (original 3 bytes, re-encoded 3 bytes)")

	err = describeMismatch([]byte{1, 2, 3}, []byte{1, 2})
	assert.EqualError(t, err, "not in preferred serialization: first difference at byte 2 (original 3 bytes, re-encoded 2 bytes)")
}
