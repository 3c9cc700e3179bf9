package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/cbordump/cbordump/dump"
)

var diagCommand = &command{
	name:    "diag",
	summary: "print RFC 8949 diagnostic notation, one line per item",
	usage:   "cbordump diag [--float-width] [flags] [file]",
	flags: func(fs *pflag.FlagSet, o *options) {
		fs.BoolVar(&o.FloatWidth, "float-width", false, "mark floats with their encoded width (_1, _2, _3)")
	},
	run: runDiag,
}

func runDiag(e *env, args []string) error {
	data, err := e.readCBOR(args)
	if err != nil {
		return err
	}
	items, err := e.decodeItems(data)
	if err != nil {
		return err
	}

	for _, it := range items {
		notation := dump.Diagnose(it.value, func(o *dump.DiagnoseOptions) {
			o.FloatWidth = e.options.FloatWidth
		})
		if _, err := fmt.Fprintln(e.stdout, notation); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
