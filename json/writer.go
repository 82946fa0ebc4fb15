package json

import (
	"bytes"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/oarkflow/variant"
)

// Mode selects the output density of the writer.
type Mode uint8

const (
	// Compact emits no whitespace between tokens.
	Compact Mode = iota
	// Readable indents four spaces per nesting level and puts each
	// entry on its own line.
	Readable
)

func (m Mode) String() string {
	switch m {
	case Compact:
		return "Compact"
	case Readable:
		return "Readable"
	}
	return "Unknown"
}

const hexUpper = "0123456789ABCDEF"

// Write serializes the value in the given mode.
func Write(v *variant.Value, mode Mode) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, v, mode, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteString serializes the value to a string.
func WriteString(v *variant.Value, mode Mode) (string, error) {
	data, err := Write(v, mode)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteTo serializes the value into w; a sink failure reports
// FileIOError wrapping the underlying error.
func WriteTo(w io.Writer, v *variant.Value, mode Mode) error {
	data, err := Write(v, mode)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return &Error{Code: FileIOError, Offset: -1, err: err}
	}
	return nil
}

// WriteFile serializes the value into the file at path, replacing it.
// An open or write failure reports FileIOError wrapping the os error.
func WriteFile(path string, v *variant.Value, mode Mode) error {
	data, err := Write(v, mode)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &Error{Code: FileIOError, Offset: -1, err: err}
	}
	return nil
}

func writeValue(buf *bytes.Buffer, v *variant.Value, mode Mode, indent int) error {
	if v == nil {
		buf.WriteString("null")
		return nil
	}
	switch v.Type() {
	case variant.Null:
		buf.WriteString("null")
	case variant.Bool:
		if v.Bool() {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case variant.Int:
		buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case variant.Real:
		return writeReal(buf, v.Real())
	case variant.String:
		return writeQuoted(buf, v.Str())
	case variant.Array:
		return writeArray(buf, v.Array(), mode, indent)
	case variant.Object:
		return writeObject(buf, v.Object(), mode, indent)
	default:
		return &Error{Code: InvalidValueType, Offset: -1}
	}
	return nil
}

// writeReal renders 16 significant digits; NaN and infinities have no
// JSON form and fail with InvalidNumber.
func writeReal(buf *bytes.Buffer, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return &Error{Code: InvalidNumber, Offset: -1}
	}
	buf.WriteString(strconv.FormatFloat(f, 'g', 16, 64))
	return nil
}

func writeQuoted(buf *bytes.Buffer, s string) error {
	buf.WriteByte('"')
	if err := escape(buf, s); err != nil {
		return err
	}
	buf.WriteByte('"')
	return nil
}

// escape is the inverse of unescape. Multi-byte UTF-8 sequences are
// sized by their lead byte and passed through raw; a sequence cut off
// by the end of the string fails with InvalidString. Control bytes
// without a named escape render as \u00XX.
func escape(buf *bytes.Buffer, s string) error {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c&0xF8 == 0xF0:
			if i+4 > len(s) {
				return &Error{Code: InvalidString, Offset: -1}
			}
			buf.WriteString(s[i : i+4])
			i += 3
		case c&0xF0 == 0xE0:
			if i+3 > len(s) {
				return &Error{Code: InvalidString, Offset: -1}
			}
			buf.WriteString(s[i : i+3])
			i += 2
		case c&0xE0 == 0xC0:
			if i+2 > len(s) {
				return &Error{Code: InvalidString, Offset: -1}
			}
			buf.WriteString(s[i : i+2])
			i++
		case c == '"':
			buf.WriteString(`\"`)
		case c == '\\':
			buf.WriteString(`\\`)
		case c == '/':
			buf.WriteString(`\/`)
		case c == '\b':
			buf.WriteString(`\b`)
		case c == '\f':
			buf.WriteString(`\f`)
		case c == '\n':
			buf.WriteString(`\n`)
		case c == '\r':
			buf.WriteString(`\r`)
		case c == '\t':
			buf.WriteString(`\t`)
		case c < 0x20:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexUpper[c>>4])
			buf.WriteByte(hexUpper[c&0xF])
		default:
			buf.WriteByte(c)
		}
	}
	return nil
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth*4; i++ {
		buf.WriteByte(' ')
	}
}

func writeArray(buf *bytes.Buffer, items []*variant.Value, mode Mode, indent int) error {
	if len(items) == 0 {
		buf.WriteString("[]")
		return nil
	}
	if mode == Compact {
		buf.WriteByte('[')
		for i, item := range items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, item, mode, indent); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	}
	buf.WriteString("[\n")
	for i, item := range items {
		if i > 0 {
			buf.WriteString(",\n")
		}
		writeIndent(buf, indent+1)
		if err := writeValue(buf, item, mode, indent+1); err != nil {
			return err
		}
	}
	buf.WriteByte('\n')
	writeIndent(buf, indent)
	buf.WriteByte(']')
	return nil
}

func writeObject(buf *bytes.Buffer, entries map[string]*variant.Value, mode Mode, indent int) error {
	if len(entries) == 0 {
		buf.WriteString("{}")
		return nil
	}
	if mode == Compact {
		buf.WriteByte('{')
		first := true
		for key, item := range entries {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err := writeQuoted(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeValue(buf, item, mode, indent); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	}
	buf.WriteString("{\n")
	first := true
	for key, item := range entries {
		if !first {
			buf.WriteString(",\n")
		}
		first = false
		writeIndent(buf, indent+1)
		if err := writeQuoted(buf, key); err != nil {
			return err
		}
		buf.WriteString(": ")
		if err := writeValue(buf, item, mode, indent+1); err != nil {
			return err
		}
	}
	buf.WriteByte('\n')
	writeIndent(buf, indent)
	buf.WriteByte('}')
	return nil
}
