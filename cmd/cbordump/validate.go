package main

import (
	"bytes"
	"fmt"

	"github.com/cbordump/cbordump/encoding/cbor"
)

var validateCommand = &command{
	name:    "validate",
	summary: "check that input is well-formed and uses the shortest definite-length encoding",
	usage:   "cbordump validate [flags] [file]",
	run:     runValidate,
}

// runValidate decodes and re-encodes every item. Input that re-encodes to
// the same bytes uses shortest-form arguments and definite lengths only.
func runValidate(e *env, args []string) error {
	data, err := e.readCBOR(args)
	if err != nil {
		return err
	}
	items, err := e.decodeItems(data)
	if err != nil {
		return err
	}

	var reencoded bytes.Buffer
	for _, it := range items {
		reencoded.Write(cbor.Encode(it.value))
	}

	if !bytes.Equal(data, reencoded.Bytes()) {
		return describeMismatch(data, reencoded.Bytes())
	}
	fmt.Fprintln(e.stdout, "valid")
	return nil
}

func describeMismatch(original, reencoded []byte) error {
	offset := 0
	minLength := len(original)
	if len(reencoded) < minLength {
		minLength = len(reencoded)
	}
	for offset < minLength {
		if original[offset] != reencoded[offset] {
			break
		}
		offset++
	}

	return fmt.Errorf("not in preferred serialization: first difference at byte %d (original %d bytes, re-encoded %d bytes)",
		offset, len(original), len(reencoded))
}
