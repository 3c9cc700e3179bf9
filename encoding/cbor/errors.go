package cbor

import (
	"errors"
	"fmt"
)

// Errors reported by the decoder, wrapped in a *DecodeError.
var (
	ErrUnexpectedEnd   = errors.New("unexpected end of payload")
	ErrUnexpectedBreak = errors.New("unexpected break marker")
	ErrInvalidUTF8     = errors.New("text string is not valid UTF-8")
	ErrDepthExceeded   = errors.New("maximum nesting depth exceeded")
	ErrIntegerOverflow = errors.New("integer overflow")
	ErrLengthExceeded  = errors.New("maximum container length exceeded")
	ErrTrailingData    = errors.New("trailing data after data item")
)

// ErrInvalidValue is returned by Marshal for a Value tree that cannot be
// encoded, such as one containing a nil element.
var ErrInvalidValue = errors.New("invalid value")

// DecodeError records a decoding failure and the offset of the data item (or
// byte) at which it was detected.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cbor: %v at offset %d", e.Err, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// InvalidInitialByteError reports an initial byte that is not valid in its
// position, e.g. an indefinite-length integer or a chunk of the wrong type
// inside an indefinite-length string.
type InvalidInitialByteError struct {
	Byte   byte
	Reason string
}

func (e *InvalidInitialByteError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid initial byte 0x%02x", e.Byte)
	}
	return fmt.Sprintf("invalid initial byte 0x%02x: %s", e.Byte, e.Reason)
}

// ReservedAdditionalInfoError reports use of one of the reserved additional
// information values 28-30.
type ReservedAdditionalInfoError struct {
	Info byte
}

func (e *ReservedAdditionalInfoError) Error() string {
	return fmt.Sprintf("reserved additional information value %d", e.Info)
}

// InvalidSimpleValueError reports a two-byte simple value below 32.
type InvalidSimpleValueError struct {
	Value byte
}

func (e *InvalidSimpleValueError) Error() string {
	return fmt.Sprintf("invalid two-byte simple value %d", e.Value)
}

// MarshalError reports the location of a Value that cannot be encoded.
type MarshalError struct {
	Path string
	Err  error
}

func (e *MarshalError) Error() string {
	return fmt.Sprintf("cbor: %v at %s", e.Err, e.Path)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}
