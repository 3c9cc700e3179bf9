package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/cbordump/cbordump/encoding/cbor"
	"github.com/cbordump/cbordump/logging"
)

type options struct {
	Hex       bool
	MaxDepth  int
	MaxLength int
	Seq       bool
	Verbose   bool

	// decode
	Compact bool
	Query   string
	Lossy   bool

	// diag
	FloatWidth bool
}

type command struct {
	name    string
	summary string
	usage   string
	flags   func(fs *pflag.FlagSet, o *options)
	run     func(e *env, args []string) error
}

// env carries what a command needs to run.
type env struct {
	*app
	options options
	logger  logging.Logger
	decoder *cbor.Decoder
}

var commands = []*command{
	reportCommand,
	decodeCommand,
	diagCommand,
	encodeCommand,
	validateCommand,
}

func lookupCommand(name string) *command {
	for _, c := range commands {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (a *app) run(args []string) error {
	cmd := reportCommand
	if len(args) > 0 {
		if c := lookupCommand(args[0]); c != nil {
			cmd, args = c, args[1:]
		} else if args[0] == "help" {
			a.usage()
			return nil
		}
	}

	e := &env{app: a}
	fs := pflag.NewFlagSet("cbordump "+cmd.name, pflag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.BoolVarP(&e.options.Hex, "hex", "x", false, "treat input as hex-encoded CBOR (whitespace is ignored)")
	fs.IntVar(&e.options.MaxDepth, "max-depth", cbor.DefaultMaxDepth, "maximum nesting depth of arrays, maps and tags")
	fs.IntVar(&e.options.MaxLength, "max-length", cbor.DefaultMaxContainerLength, "maximum number of elements in an array or map")
	fs.BoolVarP(&e.options.Seq, "seq", "s", false, "read input as a CBOR sequence (RFC 8742)")
	fs.BoolVarP(&e.options.Verbose, "verbose", "v", false, "log debug information to stderr")
	if cmd.flags != nil {
		cmd.flags(fs, &e.options)
	}
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "Usage: %s\n\n%s\n\nFlags:\n%s", cmd.usage, cmd.summary, fs.FlagUsages())
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	e.logger = logging.Leveled{
		Logger:  logging.NewStandardLogger(a.stderr),
		Verbose: e.options.Verbose,
	}
	e.decoder = cbor.NewDecoder(func(o *cbor.DecodeOptions) {
		o.MaxDepth = e.options.MaxDepth
		o.MaxContainerLength = e.options.MaxLength
	})

	return cmd.run(e, fs.Args())
}

func (a *app) usage() {
	var b strings.Builder
	b.WriteString("Usage: cbordump [command] [flags] [file]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "  %-9s %s\n", c.name, c.summary)
	}
	b.WriteString("\nWith no command, report is run. Input is read from file, or stdin when\nno file is given. Run 'cbordump <command> --help' for command flags.\n")
	fmt.Fprint(a.stdout, b.String())
}
