package json

import (
	"bytes"
	"testing"
)

func TestEscapeStringBytes(t *testing.T) {
	jsonEncoder := NewEncoder()
	object := jsonEncoder.Object()

	object.Key("foo\"").String("bar")
	object.Key("faz").String("baz")
	object.Close()

	expected := []byte(`{"foo\"":"bar","faz":"baz"}`)
	actual := object.w.Bytes()
	if bytes.Compare(expected, actual) != 0 {
		t.Errorf("expected %+q, but got %+q", expected, actual)
	}
}

func TestEscapeStringBytes_Cases(t *testing.T) {
	cases := map[string]struct {
		In     string
		Expect string
	}{
		"plain":     {"abc", `"abc"`},
		"backslash": {`a\b`, `"a\\b"`},
		"newline":   {"a\nb\r\t", `"a\nb\r\t"`},
		"control":   {"\x00\x1f", `"\u0000\u001f"`},
		"unicode":   {"ü水🎉", `"ü水🎉"`},
		"invalid":   {"a\xc3(", `"a\ufffd("`},
		"separator": {"\u2028\u2029", `"\u2028\u2029"`},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			escapeStringBytes(&buf, []byte(c.In))
			if actual := buf.String(); actual != c.Expect {
				t.Errorf("expected %s, but got %s", c.Expect, actual)
			}
		})
	}
}
