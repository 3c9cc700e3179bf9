package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/cbordump/cbordump/dump"
)

var reportCommand = &command{
	name:    "report",
	summary: "print length, hex, diagnostic notation and JSON of the input",
	usage:   "cbordump [report] [flags] [file]",
	flags: func(fs *pflag.FlagSet, o *options) {
		fs.BoolVar(&o.FloatWidth, "float-width", false, "mark floats with their encoded width (_1, _2, _3)")
	},
	run: runReport,
}

func runReport(e *env, args []string) error {
	data, err := e.readCBOR(args)
	if err != nil {
		return err
	}

	withOptions := func(o *dump.ReportOptions) {
		o.Decoder = e.decoder
		o.Diagnose.FloatWidth = e.options.FloatWidth
	}

	if !e.options.Seq {
		return dump.WriteReport(e.stdout, data, withOptions)
	}

	items, err := e.decodeItems(data)
	if err != nil {
		return err
	}
	for i, it := range items {
		if i > 0 {
			fmt.Fprintln(e.stdout)
		}
		if err := dump.WriteReport(e.stdout, it.raw, withOptions); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}
