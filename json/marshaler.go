package json

import (
	goccy "github.com/goccy/go-json"
)

// Marshaler serializes Go values that are not *variant.Value.
type Marshaler func(any) ([]byte, error)

var marshaler Marshaler

func init() {
	DefaultMarshaler()
}

// DefaultMarshaler restores the goccy/go-json default.
func DefaultMarshaler() {
	marshaler = goccy.Marshal
}

// SetMarshaler swaps the marshaler used by Marshal and Encode for
// non-variant values.
func SetMarshaler(m Marshaler) {
	marshaler = m
}
