package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/cbordump/cbordump/dump"
	"github.com/cbordump/cbordump/encoding/cbor"
	"github.com/cbordump/cbordump/logging"
)

var encodeCommand = &command{
	name:    "encode",
	summary: "convert a JSON document to CBOR",
	usage:   "cbordump encode [-x] [flags] [file]",
	run:     runEncode,
}

// With --hex the output, rather than the input, is hex.
func runEncode(e *env, args []string) error {
	if e.options.Seq {
		return errors.New("encode reads a single JSON document; --seq is not supported")
	}

	data, err := e.readInput(args)
	if err != nil {
		return err
	}

	v, err := dump.FromJSON(data)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	p, err := cbor.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	e.logger.Logf(logging.Debug, "encoded %d bytes of JSON as %d bytes of CBOR", len(data), len(p))

	if e.options.Hex {
		_, err = fmt.Fprintln(e.stdout, hex.EncodeToString(p))
	} else {
		_, err = e.stdout.Write(p)
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
