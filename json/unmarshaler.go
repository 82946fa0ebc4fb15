package json

import (
	goccy "github.com/goccy/go-json"
)

// Unmarshaler decodes into Go values that are not *variant.Value.
type Unmarshaler func([]byte, any) error

var unmarshaler Unmarshaler

func init() {
	DefaultUnmarshaler()
}

// DefaultUnmarshaler restores the goccy/go-json default.
func DefaultUnmarshaler() {
	unmarshaler = goccy.Unmarshal
}

// SetUnmarshaler swaps the unmarshaler used by Unmarshal and Decode
// for non-variant targets.
func SetUnmarshaler(u Unmarshaler) {
	unmarshaler = u
}
