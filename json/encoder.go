package json

import (
	"io"

	"github.com/oarkflow/variant"
)

// Encoder writes values to a sink, rendering *variant.Value through
// the hand-rolled writer in a selectable mode.
type Encoder struct {
	w    io.Writer
	mode Mode
}

// NewEncoder creates an Encoder writing to w in Compact mode.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// SetMode selects the output mode for subsequent Encode calls.
func (e *Encoder) SetMode(mode Mode) {
	e.mode = mode
}

// Encode serializes v to the underlying sink.
func (e *Encoder) Encode(v any) error {
	if val, ok := v.(*variant.Value); ok {
		return WriteTo(e.w, val, e.mode)
	}
	data, err := marshaler(v)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(data); err != nil {
		return &Error{Code: FileIOError, Offset: -1, err: err}
	}
	return nil
}
