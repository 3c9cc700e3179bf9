package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/cbordump/cbordump/dump"
	"github.com/cbordump/cbordump/logging"
)

var decodeCommand = &command{
	name:    "decode",
	summary: "convert CBOR to JSON",
	usage:   "cbordump decode [-c] [--lossy] [--query expr] [flags] [file]",
	flags: func(fs *pflag.FlagSet, o *options) {
		fs.BoolVarP(&o.Compact, "compact", "c", false, "compact output (no indentation)")
		fs.StringVarP(&o.Query, "query", "q", "", "JMESPath expression applied to the JSON output")
		fs.BoolVar(&o.Lossy, "lossy", false, "write placeholders for values JSON cannot represent instead of failing")
	},
	run: runDecode,
}

func runDecode(e *env, args []string) error {
	data, err := e.readCBOR(args)
	if err != nil {
		return err
	}
	items, err := e.decodeItems(data)
	if err != nil {
		return err
	}

	mode := dump.Strict
	if e.options.Lossy {
		mode = dump.Placeholder
	}

	for i, it := range items {
		out, issues, err := dump.ProjectJSON(it.value, mode)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		for _, issue := range issues {
			e.logger.Logf(logging.Warn, "item %d: placeholder for %v", i, issue)
		}

		if e.options.Query != "" {
			if out, err = dump.Query(out, e.options.Query); err != nil {
				return err
			}
		}

		if err := writeJSON(e, out); err != nil {
			return err
		}
	}
	return nil
}

// writeJSON writes one document per line, indented unless --compact is set.
// Indentation keeps member order and duplicate members as written.
func writeJSON(e *env, doc []byte) error {
	if !e.options.Compact {
		var buf bytes.Buffer
		if err := json.Indent(&buf, doc, "", "  "); err != nil {
			return fmt.Errorf("format JSON: %w", err)
		}
		doc = buf.Bytes()
	}
	if _, err := e.stdout.Write(append(doc, '\n')); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
