package dump

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/cbordump/cbordump/encoding/cbor"
	jsonwriter "github.com/cbordump/cbordump/encoding/json"
)

// Mode selects how ProjectJSON handles items JSON cannot represent.
type Mode int

// Enumeration of projection modes
const (
	// Strict fails on the first item JSON cannot represent.
	Strict Mode = iota

	// Placeholder writes an explicit placeholder for every such item and
	// reports it as an Issue.
	Placeholder
)

// Reason names why an item has no faithful JSON representation.
type Reason int

// Enumeration of reasons an item cannot be represented in JSON
const (
	// ReasonByteString: written as {"$bytes":"<base64>"}.
	ReasonByteString Reason = iota + 1

	// ReasonTag: written as {"$tag":N,"$value":<item>}.
	ReasonTag

	// ReasonNonStringKey: the key is written as its diagnostic notation.
	ReasonNonStringKey

	// ReasonDuplicateKey: both pairs are written.
	ReasonDuplicateKey

	// ReasonUndefined: written as {"$undefined":true}.
	ReasonUndefined

	// ReasonSimpleValue: written as {"$simple":n}.
	ReasonSimpleValue

	// ReasonNonFiniteFloat: written as "NaN", "Infinity" or "-Infinity".
	ReasonNonFiniteFloat
)

func (r Reason) String() string {
	switch r {
	case ReasonByteString:
		return "byte string"
	case ReasonTag:
		return "tagged value"
	case ReasonNonStringKey:
		return "non-string map key"
	case ReasonDuplicateKey:
		return "duplicate map key"
	case ReasonUndefined:
		return "undefined"
	case ReasonSimpleValue:
		return "simple value"
	case ReasonNonFiniteFloat:
		return "non-finite float"
	default:
		return "Reason(" + strconv.Itoa(int(r)) + ")"
	}
}

// Issue locates an item that has no faithful JSON representation. Path
// addresses the item in the projected document: $ is the root, .key or
// ["key"] selects an object member and [i] an array element.
type Issue struct {
	Reason Reason
	Path   string
}

func (i Issue) String() string {
	return fmt.Sprintf("%v at %s", i.Reason, i.Path)
}

// UnrepresentableError is returned by ProjectJSON in Strict mode.
type UnrepresentableError struct {
	Issue Issue
}

func (e *UnrepresentableError) Error() string {
	return "cannot encode: " + e.Issue.String()
}

// ProjectJSON returns the JSON projection of v.
//
// Text strings, integers of any magnitude, finite floats, booleans, null,
// arrays and maps with unique text keys map onto JSON directly. Every other
// item is handled according to mode; in Placeholder mode the returned issues
// list each substitution in document order.
func ProjectJSON(v cbor.Value, mode Mode) ([]byte, []Issue, error) {
	p := &projector{mode: mode}
	enc := jsonwriter.NewEncoder()
	if err := p.write(enc.Value, v, "$"); err != nil {
		return nil, nil, err
	}
	return enc.Bytes(), p.issues, nil
}

type projector struct {
	mode   Mode
	issues []Issue
}

func (p *projector) note(r Reason, path string) error {
	issue := Issue{Reason: r, Path: path}
	if p.mode == Strict {
		return &UnrepresentableError{Issue: issue}
	}
	p.issues = append(p.issues, issue)
	return nil
}

func (p *projector) write(jv jsonwriter.Value, v cbor.Value, path string) error {
	switch vv := v.(type) {
	case cbor.Uint:
		jv.ULong(uint64(vv))
	case cbor.NegInt:
		if i, err := vv.Int64(); err == nil {
			jv.Long(i)
		} else {
			jv.BigInteger(vv.BigInt())
		}
	case cbor.String:
		jv.String(string(vv))
	case cbor.Bool:
		jv.Boolean(bool(vv))
	case cbor.Nil:
		jv.Null()
	case cbor.Float16:
		return p.writeFloat(jv, vv.Float64(), 64, path)
	case cbor.Float32:
		return p.writeFloat(jv, float64(vv), 32, path)
	case cbor.Float64:
		return p.writeFloat(jv, float64(vv), 64, path)
	case cbor.List:
		return p.writeList(jv, vv, path)
	case cbor.Map:
		return p.writeMap(jv, vv, path)
	case cbor.Slice:
		if err := p.note(ReasonByteString, path); err != nil {
			return err
		}
		if vv == nil {
			vv = cbor.Slice{}
		}
		o := jv.Object()
		o.Key("$bytes").Base64EncodeBytes(vv)
		o.Close()
	case *cbor.Tag:
		if vv == nil {
			return invalidValue(path, "nil tag")
		}
		if err := p.note(ReasonTag, path); err != nil {
			return err
		}
		o := jv.Object()
		o.Key("$tag").ULong(vv.ID)
		if err := p.write(o.Key("$value"), vv.Value, keyPath(path, "$value")); err != nil {
			return err
		}
		o.Close()
	case cbor.Undefined:
		if err := p.note(ReasonUndefined, path); err != nil {
			return err
		}
		o := jv.Object()
		o.Key("$undefined").Boolean(true)
		o.Close()
	case cbor.Simple:
		if err := p.note(ReasonSimpleValue, path); err != nil {
			return err
		}
		o := jv.Object()
		o.Key("$simple").ULong(uint64(vv))
		o.Close()
	case nil:
		return invalidValue(path, "nil value")
	}
	return nil
}

func (p *projector) writeFloat(jv jsonwriter.Value, f float64, bits int, path string) error {
	if isNonFinite(f) {
		if err := p.note(ReasonNonFiniteFloat, path); err != nil {
			return err
		}
	}
	if bits == 32 {
		jv.Float(float32(f))
	} else {
		jv.Double(f)
	}
	return nil
}

func (p *projector) writeList(jv jsonwriter.Value, l cbor.List, path string) error {
	a := jv.Array()
	for i, item := range l {
		if err := p.write(a.Value(), item, indexPath(path, i)); err != nil {
			return err
		}
	}
	a.Close()
	return nil
}

func (p *projector) writeMap(jv jsonwriter.Value, m cbor.Map, path string) error {
	seen := make(map[string]struct{}, len(m))
	o := jv.Object()
	for _, e := range m {
		var key string
		if s, ok := e.Key.(cbor.String); ok {
			key = string(s)
		} else {
			if e.Key == nil {
				return invalidValue(path, "nil map key")
			}
			key = Diagnose(e.Key)
			if err := p.note(ReasonNonStringKey, keyPath(path, key)); err != nil {
				return err
			}
		}

		if _, ok := seen[key]; ok {
			if err := p.note(ReasonDuplicateKey, keyPath(path, key)); err != nil {
				return err
			}
		}
		seen[key] = struct{}{}

		if err := p.write(o.Key(key), e.Value, keyPath(path, key)); err != nil {
			return err
		}
	}
	o.Close()
	return nil
}

func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func keyPath(path, key string) string {
	if identifier.MatchString(key) {
		return path + "." + key
	}
	return path + "[" + quote(key) + "]"
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func invalidValue(path, msg string) error {
	return &cbor.MarshalError{Path: path, Err: fmt.Errorf("%w: %s", cbor.ErrInvalidValue, msg)}
}
