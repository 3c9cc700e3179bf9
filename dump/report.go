package dump

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/cbordump/cbordump/encoding/cbor"
)

// Report summarizes one CBOR data item.
type Report struct {
	// Len is the size of the input in bytes.
	Len int

	// Hex is the lowercase hex encoding of the input.
	Hex string

	// Repr is the diagnostic notation of the decoded item.
	Repr string

	// JSON is the strict JSON projection, nil if the item has none.
	JSON []byte

	// Unrepresentable names the first item JSON cannot represent when JSON
	// is nil.
	Unrepresentable *UnrepresentableError
}

// ReportOptions configures NewReport.
type ReportOptions struct {
	// Decoder decodes the input. Defaults to a decoder with default options.
	Decoder *cbor.Decoder

	// Diagnose configures the REPR line.
	Diagnose DiagnoseOptions
}

// NewReport decodes p, which must hold exactly one data item, and builds its
// report. The returned error is the decode error, if any.
func NewReport(p []byte, optFns ...func(*ReportOptions)) (*Report, error) {
	var options ReportOptions
	for _, fn := range optFns {
		fn(&options)
	}
	if options.Decoder == nil {
		options.Decoder = cbor.NewDecoder()
	}

	r := &Report{
		Len: len(p),
		Hex: hex.EncodeToString(p),
	}

	v, err := options.Decoder.Decode(p)
	if err != nil {
		return r, err
	}
	r.Repr = Diagnose(v, func(o *DiagnoseOptions) { *o = options.Diagnose })

	projection, _, err := ProjectJSON(v, Strict)
	var uerr *UnrepresentableError
	switch {
	case errors.As(err, &uerr):
		r.Unrepresentable = uerr
	case err != nil:
		return r, err
	default:
		r.JSON = projection
	}
	return r, nil
}

// WriteTo writes the report as LEN, HEX, REPR and JSON lines. REPR and JSON
// are omitted when the item was not decoded.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	fmt.Fprintf(cw, "LEN: %d\n", r.Len)
	fmt.Fprintf(cw, "HEX: %s\n", r.Hex)
	if r.Repr != "" {
		fmt.Fprintf(cw, "REPR: %s\n", r.Repr)
		switch {
		case r.JSON != nil:
			fmt.Fprintf(cw, "JSON: %s\n", r.JSON)
		case r.Unrepresentable != nil:
			fmt.Fprintf(cw, "JSON: %v\n", r.Unrepresentable)
		}
	}
	return cw.n, cw.err
}

// WriteReport builds the report of p and writes it to w. On a decode error
// the LEN and HEX lines are written before the error is returned.
func WriteReport(w io.Writer, p []byte, optFns ...func(*ReportOptions)) error {
	r, derr := NewReport(p, optFns...)
	if _, err := r.WriteTo(w); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if derr != nil {
		return fmt.Errorf("decode CBOR: %w", derr)
	}
	return nil
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
