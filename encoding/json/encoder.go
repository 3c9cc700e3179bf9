// Package json provides a streaming JSON writer. Documents are built by
// calling methods on an Encoder, and objects write their keys in call order,
// so repeated keys are written as given.
package json

import (
	"bytes"
)

// Encoder is JSON encoder that supports construction of JSON values
// using methods.
type Encoder struct {
	w *bytes.Buffer
	Value
}

// NewEncoder returns a JSON encoder
func NewEncoder() *Encoder {
	writer := bytes.NewBuffer(make([]byte, 0, 1024))
	scratch := make([]byte, 64)

	return &Encoder{w: writer, Value: newValue(writer, &scratch)}
}

// String returns the String output of the JSON encoder
func (e Encoder) String() string {
	return e.w.String()
}

// Bytes returns the []byte slice of the JSON encoder
func (e Encoder) Bytes() []byte {
	return e.w.Bytes()
}

// Len returns the number of bytes written so far.
func (e Encoder) Len() int {
	return e.w.Len()
}
