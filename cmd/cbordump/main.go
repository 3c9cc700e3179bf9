// Command cbordump inspects CBOR data: it prints a LEN/HEX/REPR/JSON report,
// converts CBOR to JSON and back, renders diagnostic notation and checks
// whether input uses the shortest definite-length encoding.
package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

func main() {
	a := &app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		stdinIsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
	if err := a.run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// stdinIsTerminal reports whether stdin is an interactive terminal, in
	// which case input must come from a file argument.
	stdinIsTerminal func() bool
}
