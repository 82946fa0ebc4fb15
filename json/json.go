package json

import (
	"errors"

	"github.com/goccy/go-reflect"

	"github.com/oarkflow/variant"
)

// Marshal serializes v. A *variant.Value goes through the hand-rolled
// Compact writer; anything else through the pluggable Marshaler.
func Marshal(v any) ([]byte, error) {
	if val, ok := v.(*variant.Value); ok {
		return Write(val, Compact)
	}
	return marshaler(v)
}

// Unmarshal parses data into dst, which must be a pointer. A
// **variant.Value or *variant.Value target goes through the
// hand-rolled reader; anything else through the pluggable Unmarshaler.
func Unmarshal(data []byte, dst any) error {
	if reflect.ValueOf(dst).Kind() != reflect.Ptr {
		return errors.New("dst is not pointer type")
	}
	switch dst := dst.(type) {
	case **variant.Value:
		v, err := Read(data)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	case *variant.Value:
		v, err := Read(data)
		if err != nil {
			return err
		}
		*dst = *v
		return nil
	}
	return unmarshaler(data, dst)
}

// Valid reports whether data is a single well-formed value with
// nothing but whitespace after it.
func Valid(data []byte) bool {
	_, err := Read(data)
	return err == nil
}

// Get parses data and resolves a pointer path for reading.
func Get(data []byte, pointer string) (*variant.Value, error) {
	v, err := Read(data)
	if err != nil {
		return nil, err
	}
	return v.Find(pointer)
}

// Set parses data, assigns val at the pointer path with the write
// semantics of Dig (a missing leaf key is created, an array grows to
// the addressed index), and re-serializes the document compactly.
func Set(data []byte, pointer string, val *variant.Value) ([]byte, error) {
	root, err := Read(data)
	if err != nil {
		return nil, err
	}
	target, err := root.Dig(pointer)
	if err != nil {
		return nil, err
	}
	target.Set(val)
	return Write(root, Compact)
}
