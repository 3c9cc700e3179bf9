package cbor

const (
	// DefaultMaxDepth is the default nesting limit for lists, maps and tags.
	// Real-world payloads nest beyond 64 levels; 256 leaves headroom while
	// keeping recursion bounded.
	DefaultMaxDepth = 256

	// DefaultMaxContainerLength is the default limit on the number of
	// elements of a list or pairs of a map.
	DefaultMaxContainerLength = 131072
)

// DecodeOptions configures a Decoder.
type DecodeOptions struct {
	// MaxDepth bounds the nesting of lists, maps and tags. A top-level
	// scalar has depth 0 and each enclosing container adds one level.
	// Defaults to DefaultMaxDepth when <= 0.
	MaxDepth int

	// MaxContainerLength bounds the number of list elements or map pairs in
	// any single container, definite or indefinite. Defaults to
	// DefaultMaxContainerLength when <= 0.
	MaxContainerLength int
}

func (o *DecodeOptions) resolve() {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MaxContainerLength <= 0 {
		o.MaxContainerLength = DefaultMaxContainerLength
	}
}

// Decoder decodes CBOR data items. A Decoder is immutable and may be used
// concurrently from multiple goroutines.
type Decoder struct {
	options DecodeOptions
}

var defaultDecoder = NewDecoder()

// NewDecoder returns a Decoder configured by the given option functions.
func NewDecoder(optFns ...func(*DecodeOptions)) *Decoder {
	var options DecodeOptions
	for _, fn := range optFns {
		fn(&options)
	}
	options.resolve()

	return &Decoder{options: options}
}

// Options returns a copy of the resolved options of d.
func (d *Decoder) Options() DecodeOptions {
	return d.options
}

// Decode returns the Value encoded in p, which must contain exactly one data
// item.
func (d *Decoder) Decode(p []byte) (Value, error) {
	v, off, err := d.DecodeItem(p, 0)
	if err != nil {
		return nil, err
	}
	if off != len(p) {
		return nil, &DecodeError{Offset: off, Err: ErrTrailingData}
	}
	return v, nil
}

// DecodeItem decodes the data item that starts at offset off in p. It returns
// the item and the offset just past it, which allows iterating over a
// sequence of concatenated items.
func (d *Decoder) DecodeItem(p []byte, off int) (Value, int, error) {
	if off < 0 || off > len(p) {
		return nil, 0, &DecodeError{Offset: off, Err: ErrUnexpectedEnd}
	}

	s := &decodeState{p: p, off: off, options: &d.options}
	v, err := s.decode()
	if err != nil {
		return nil, 0, err
	}
	return v, s.off, nil
}
