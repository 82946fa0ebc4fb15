// Package json reads and writes variant trees as JSON. The reader and
// writer are hand-rolled single-pass codecs with a closed error
// taxonomy and byte offsets; for arbitrary Go values the package
// doubles as a facade over a pluggable marshaler pair defaulting to
// goccy/go-json.
package json

import (
	"os"
	"strconv"
	"strings"

	"github.com/oarkflow/variant"
)

type reader struct {
	data []byte
	pos  int
	len  int
}

func newReader(data []byte) *reader {
	return &reader{data: data, pos: 0, len: len(data)}
}

func (r *reader) fail(c Code) error {
	return &Error{Code: c, Offset: int64(r.pos)}
}

// skipWhitespace advances past spaces, tabs, carriage returns and
// newlines.
func (r *reader) skipWhitespace() {
	for r.pos < r.len {
		switch r.data[r.pos] {
		case ' ', '\t', '\r', '\n':
			r.pos++
		default:
			return
		}
	}
}

// literal consumes word when it prefixes the remaining input.
func (r *reader) literal(word string) bool {
	if r.len-r.pos < len(word) {
		return false
	}
	if string(r.data[r.pos:r.pos+len(word)]) != word {
		return false
	}
	r.pos += len(word)
	return true
}

func (r *reader) readValue() (*variant.Value, error) {
	r.skipWhitespace()
	if r.pos >= r.len {
		return nil, r.fail(ExpectedStart)
	}
	switch c := r.data[r.pos]; {
	case c == '{':
		return r.readObject()
	case c == '[':
		return r.readArray()
	case c == '"':
		s, err := r.readString()
		if err != nil {
			return nil, err
		}
		return variant.ValueOf(s), nil
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		return r.readNumber()
	}
	if r.literal("true") {
		return variant.ValueOf(true), nil
	}
	if r.literal("false") {
		return variant.ValueOf(false), nil
	}
	if r.literal("null") {
		return variant.ValueOf(nil), nil
	}
	return nil, r.fail(UnexpectedValueStart)
}

func (r *reader) readObject() (*variant.Value, error) {
	r.pos++ // skip '{'
	obj := variant.New(variant.Object)
	for {
		r.skipWhitespace()
		if r.pos >= r.len {
			return nil, r.fail(ExpectedBraceClose)
		}
		if r.data[r.pos] == '}' {
			r.pos++
			return obj, nil
		}
		key, err := r.readString()
		if err != nil {
			return nil, err
		}
		r.skipWhitespace()
		if r.pos >= r.len || r.data[r.pos] != ':' {
			return nil, r.fail(ExpectedColon)
		}
		r.pos++ // skip ':'
		item, err := r.readValue()
		if err != nil {
			return nil, err
		}
		obj.Put(key, item)
		r.skipWhitespace()
		if r.pos >= r.len {
			return nil, r.fail(ExpectedCommaOrBraceClose)
		}
		// A trailing comma before '}' is tolerated.
		if r.data[r.pos] != '}' {
			if r.data[r.pos] != ',' {
				return nil, r.fail(ExpectedComma)
			}
			r.pos++ // skip ','
		}
	}
}

func (r *reader) readArray() (*variant.Value, error) {
	r.pos++ // skip '['
	arr := variant.New(variant.Array)
	for {
		r.skipWhitespace()
		if r.pos >= r.len {
			return nil, r.fail(ExpectedBracketClose)
		}
		if r.data[r.pos] == ']' {
			r.pos++
			return arr, nil
		}
		item, err := r.readValue()
		if err != nil {
			return nil, err
		}
		arr.Add(item)
		r.skipWhitespace()
		if r.pos >= r.len {
			return nil, r.fail(ExpectedCommaOrBracketClose)
		}
		if r.data[r.pos] != ']' {
			if r.data[r.pos] != ',' {
				return nil, r.fail(ExpectedComma)
			}
			r.pos++ // skip ','
		}
	}
}

func (r *reader) readString() (string, error) {
	if r.data[r.pos] != '"' {
		return "", r.fail(ExpectedQuoteOpen)
	}
	r.pos++ // skip '"'
	start := r.pos
	// A quote terminates the span only when the escape state is clear;
	// a backslash toggles it, everything else resets it.
	for state := true; r.pos < r.len; r.pos++ {
		if r.data[r.pos] == '"' && state {
			break
		}
		if r.data[r.pos] == '\\' {
			state = !state
		} else {
			state = true
		}
	}
	if r.pos >= r.len {
		return "", r.fail(ExpectedQuoteClose)
	}
	s, ok := unescape(r.data[start:r.pos])
	if !ok {
		return "", &Error{Code: InvalidString, Offset: int64(start - 1)}
	}
	r.pos++ // skip '"'
	return s, nil
}

func numberByte(c byte) bool {
	return c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E' || (c >= '0' && c <= '9')
}

// readNumber consumes the greedy span [-+.eE0-9]. A span without any
// of ".eE" is an integer, everything else a real; both parse strictly,
// and a failure reports InvalidNumber at the start of the span.
func (r *reader) readNumber() (*variant.Value, error) {
	start := r.pos
	for r.pos < r.len && numberByte(r.data[r.pos]) {
		r.pos++
	}
	span := string(r.data[start:r.pos])
	if !strings.ContainsAny(span, ".eE") {
		i, err := strconv.ParseInt(span, 10, 64)
		if err != nil {
			r.pos = start
			return nil, r.fail(InvalidNumber)
		}
		return variant.ValueOf(i), nil
	}
	f, err := strconv.ParseFloat(span, 64)
	if err != nil {
		r.pos = start
		return nil, r.fail(InvalidNumber)
	}
	return variant.ValueOf(f), nil
}

// unescape rewrites the escape sequences of a scanned string span.
// Recognized escapes are \" \\ \/ \b \f \n \r \t and \uXXXX with four
// hex digits, encoded to UTF-8 over the one, two and three byte
// code-point ranges.
func unescape(span []byte) (string, bool) {
	buf := make([]byte, 0, len(span))
	for i := 0; i < len(span); i++ {
		c := span[i]
		if c != '\\' {
			buf = append(buf, c)
			continue
		}
		i++
		if i >= len(span) {
			return "", false
		}
		switch span[i] {
		case '"', '\\', '/':
			buf = append(buf, span[i])
		case 'b':
			buf = append(buf, '\b')
		case 'f':
			buf = append(buf, '\f')
		case 'n':
			buf = append(buf, '\n')
		case 'r':
			buf = append(buf, '\r')
		case 't':
			buf = append(buf, '\t')
		case 'u':
			if i+4 >= len(span) {
				return "", false
			}
			code := 0
			for _, h := range span[i+1 : i+5] {
				code <<= 4
				switch {
				case h >= '0' && h <= '9':
					code += int(h - '0')
				case h >= 'a' && h <= 'f':
					code += int(h-'a') + 10
				case h >= 'A' && h <= 'F':
					code += int(h-'A') + 10
				default:
					return "", false
				}
			}
			i += 4
			switch {
			case code <= 0x7F:
				buf = append(buf, byte(code))
			case code <= 0x7FF:
				buf = append(buf, byte((code>>6)&0x1F|0xC0), byte(code&0x3F|0x80))
			default:
				buf = append(buf, byte((code>>12)&0x0F|0xE0), byte((code>>6)&0x3F|0x80), byte(code&0x3F|0x80))
			}
		default:
			return "", false
		}
	}
	return string(buf), true
}

// Read parses data as exactly one JSON value. Input left over after
// the value and any trailing whitespace fails with FailedToReachEnd.
func Read(data []byte) (*variant.Value, error) {
	v, end, err := ReadPrefix(data)
	if err != nil {
		return nil, err
	}
	if end != len(data) {
		return nil, &Error{Code: FailedToReachEnd, Offset: int64(end)}
	}
	return v, nil
}

// ReadString parses a string as exactly one JSON value.
func ReadString(s string) (*variant.Value, error) {
	return Read([]byte(s))
}

// ReadPrefix parses one JSON value from the front of data without
// requiring the input to be fully consumed. It returns the offset of
// the first byte after the value and its trailing whitespace.
func ReadPrefix(data []byte) (*variant.Value, int, error) {
	r := newReader(data)
	v, err := r.readValue()
	if err != nil {
		return nil, r.pos, err
	}
	r.skipWhitespace()
	return v, r.pos, nil
}

// ReadFile parses the contents of the file at path; failure to read
// it reports FileIOError wrapping the os error.
func ReadFile(path string) (*variant.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Code: FileIOError, Offset: -1, err: err}
	}
	return Read(data)
}
