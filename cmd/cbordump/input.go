package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/cbordump/cbordump/encoding/cbor"
	"github.com/cbordump/cbordump/logging"
)

// readInput returns the contents of the single optional file argument, or of
// stdin when there is none. Reading an interactive terminal is refused so the
// command does not appear to hang.
func (e *env) readInput(args []string) ([]byte, error) {
	if len(args) > 1 {
		return nil, fmt.Errorf("expected at most one file argument, got %d", len(args))
	}

	var data []byte
	if len(args) == 1 {
		var err error
		data, err = os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
	} else {
		if e.stdinIsTerminal != nil && e.stdinIsTerminal() {
			return nil, errors.New("refusing to read input from a terminal: pipe data in or pass a file")
		}
		var err error
		data, err = io.ReadAll(e.stdin)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
	}
	e.logger.Logf(logging.Debug, "read %d bytes", len(data))
	return data, nil
}

// readCBOR reads input and converts it from hex when --hex is set.
func (e *env) readCBOR(args []string) ([]byte, error) {
	data, err := e.readInput(args)
	if err != nil {
		return nil, err
	}
	if e.options.Hex {
		return decodeHexInput(data)
	}
	if len(data) == 0 {
		return nil, errors.New("empty input: expected CBOR data")
	}
	return data, nil
}

// decodeHexInput strips whitespace from hex-encoded input and decodes
// it to binary bytes. Whitespace between hex digit pairs is allowed
// (e.g., "a1 63 6b 65 79" or "a1636b6579").
func decodeHexInput(data []byte) ([]byte, error) {
	cleaned := bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)

	if len(cleaned) == 0 {
		return nil, errors.New("empty input after stripping whitespace from hex")
	}

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded[:count], nil
}

// item is one decoded data item and the bytes it was decoded from.
type item struct {
	value cbor.Value
	raw   []byte
}

// decodeItems decodes data as one item, or as a sequence of items when --seq
// is set.
func (e *env) decodeItems(data []byte) ([]item, error) {
	if !e.options.Seq {
		v, err := e.decoder.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("decode CBOR: %w", err)
		}
		return []item{{value: v, raw: data}}, nil
	}

	var items []item
	for off := 0; off < len(data); {
		v, next, err := e.decoder.DecodeItem(data, off)
		if err != nil {
			return nil, fmt.Errorf("decode CBOR sequence item %d: %w", len(items), err)
		}
		items = append(items, item{value: v, raw: data[off:next]})
		off = next
	}
	e.logger.Logf(logging.Debug, "decoded %d sequence items", len(items))
	return items, nil
}
