// Package dump renders decoded CBOR values for people and for other tools:
// RFC 8949 diagnostic notation, a JSON projection that names everything JSON
// cannot express, and the LEN/HEX/REPR/JSON report.
package dump

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"

	"github.com/cbordump/cbordump/encoding/cbor"
	jsonwriter "github.com/cbordump/cbordump/encoding/json"
)

// DiagnoseOptions configures Diagnose.
type DiagnoseOptions struct {
	// FloatWidth appends the encoding width indicator to every float: _1 for
	// half, _2 for single and _3 for double precision.
	FloatWidth bool
}

// Diagnose returns the diagnostic notation of v (RFC 8949 section 8).
//
// Integers are written in decimal, byte strings as h'..', text strings as
// JSON strings, tags as N(item) and simple values as simple(n). Floats always
// carry a fraction or an exponent so they read differently from integers.
func Diagnose(v cbor.Value, optFns ...func(*DiagnoseOptions)) string {
	var options DiagnoseOptions
	for _, fn := range optFns {
		fn(&options)
	}

	var b strings.Builder
	diagnose(&b, v, &options)
	return b.String()
}

func diagnose(b *strings.Builder, v cbor.Value, o *DiagnoseOptions) {
	switch vv := v.(type) {
	case cbor.Uint:
		b.WriteString(strconv.FormatUint(uint64(vv), 10))
	case cbor.NegInt:
		b.WriteString(formatNegInt(vv))
	case cbor.Slice:
		b.WriteString("h'")
		b.WriteString(hex.EncodeToString(vv))
		b.WriteByte('\'')
	case cbor.String:
		b.WriteString(quote(string(vv)))
	case cbor.List:
		b.WriteByte('[')
		for i, item := range vv {
			if i > 0 {
				b.WriteString(", ")
			}
			diagnose(b, item, o)
		}
		b.WriteByte(']')
	case cbor.Map:
		b.WriteByte('{')
		for i, e := range vv {
			if i > 0 {
				b.WriteString(", ")
			}
			diagnose(b, e.Key, o)
			b.WriteString(": ")
			diagnose(b, e.Value, o)
		}
		b.WriteByte('}')
	case *cbor.Tag:
		if vv == nil {
			b.WriteString("<nil>")
			return
		}
		b.WriteString(strconv.FormatUint(vv.ID, 10))
		b.WriteByte('(')
		diagnose(b, vv.Value, o)
		b.WriteByte(')')
	case cbor.Bool:
		b.WriteString(strconv.FormatBool(bool(vv)))
	case cbor.Nil:
		b.WriteString("null")
	case cbor.Undefined:
		b.WriteString("undefined")
	case cbor.Simple:
		b.WriteString("simple(")
		b.WriteString(strconv.Itoa(int(vv)))
		b.WriteByte(')')
	case cbor.Float16:
		b.WriteString(formatFloat(vv.Float64(), 64))
		if o.FloatWidth {
			b.WriteString("_1")
		}
	case cbor.Float32:
		b.WriteString(formatFloat(float64(vv), 32))
		if o.FloatWidth {
			b.WriteString("_2")
		}
	case cbor.Float64:
		b.WriteString(formatFloat(float64(vv), 64))
		if o.FloatWidth {
			b.WriteString("_3")
		}
	case nil:
		b.WriteString("<nil>")
	}
}

func formatNegInt(i cbor.NegInt) string {
	if i == math.MaxUint64 {
		return "-18446744073709551616"
	}
	return "-" + strconv.FormatUint(uint64(i)+1, 10)
}

// formatFloat writes finite values in plain notation between 1e-6 and 1e21
// and in exponent notation otherwise, always with a fractional part.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	s := strconv.FormatFloat(f, format, -1, bits)

	mant, exp, hasExp := strings.Cut(s, "e")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	if !hasExp {
		return mant
	}
	// e-07 -> e-7, e+300 stays
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}

func quote(s string) string {
	enc := jsonwriter.NewEncoder()
	enc.Value.String(s)
	return enc.String()
}
