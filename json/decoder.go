package json

import (
	"io"
)

// Decoder buffers a stream and decodes it with Unmarshal, so
// **variant.Value targets take the hand-rolled reader and everything
// else the pluggable Unmarshaler.
type Decoder struct {
	r io.Reader
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the remaining input and unmarshals it into dst. A read
// failure on the stream reports FileIOError.
func (d *Decoder) Decode(dst any) error {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return &Error{Code: FileIOError, Offset: -1, err: err}
	}
	return Unmarshal(data, dst)
}
