package variant

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrPointerSyntax reports a malformed pointer: a non-empty pointer
	// without a leading slash, or a non-numeric array index.
	ErrPointerSyntax = errors.New("invalid pointer syntax")

	// ErrPointerNotFound reports read traversal through a missing key,
	// an index past the end, or a value that is not a container.
	ErrPointerNotFound = errors.New("pointer references a nonexistent value")
)

// splitPointer slices a /seg/seg pointer into unescaped segments. The
// empty pointer names the value itself and yields no segments.
func splitPointer(pointer string) ([]string, error) {
	if pointer == "" {
		return nil, nil
	}
	if pointer[0] != '/' {
		return nil, fmt.Errorf("%w: %q", ErrPointerSyntax, pointer)
	}
	segs := strings.Split(pointer[1:], "/")
	for i, seg := range segs {
		seg = strings.ReplaceAll(seg, "~1", "/")
		segs[i] = strings.ReplaceAll(seg, "~0", "~")
	}
	return segs, nil
}

func pointerIndex(seg string) (int, error) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("%w: array index %q", ErrPointerSyntax, seg)
	}
	return i, nil
}

// Find resolves a pointer path for reading and never modifies the
// tree. Each segment indexes the current container: an object by key,
// an array by decimal index. A missing key, an index past the end or
// traversal into a scalar fail with ErrPointerNotFound.
func (v *Value) Find(pointer string) (*Value, error) {
	segs, err := splitPointer(pointer)
	if err != nil {
		return nil, err
	}
	cur := v
	for _, seg := range segs {
		switch cur.typ {
		case Object:
			item, ok := cur.o[seg]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrPointerNotFound, pointer)
			}
			cur = item
		case Array:
			i, err := pointerIndex(seg)
			if err != nil {
				return nil, err
			}
			if i >= len(cur.a) {
				return nil, fmt.Errorf("%w: %q", ErrPointerNotFound, pointer)
			}
			cur = cur.a[i]
		default:
			return nil, fmt.Errorf("%w: %q", ErrPointerNotFound, pointer)
		}
	}
	return cur, nil
}

// Dig resolves a pointer path for writing: a missing object key is
// created holding Null, and an array is grown with Nulls up to the
// addressed index. Traversal into a scalar still fails.
func (v *Value) Dig(pointer string) (*Value, error) {
	segs, err := splitPointer(pointer)
	if err != nil {
		return nil, err
	}
	cur := v
	for _, seg := range segs {
		switch cur.typ {
		case Object:
			item, ok := cur.o[seg]
			if !ok {
				item = &Value{}
				if cur.o == nil {
					cur.o = map[string]*Value{}
				}
				cur.o[seg] = item
			}
			cur = item
		case Array:
			i, err := pointerIndex(seg)
			if err != nil {
				return nil, err
			}
			for len(cur.a) <= i {
				cur.a = append(cur.a, &Value{})
			}
			cur = cur.a[i]
		default:
			return nil, fmt.Errorf("%w: %q", ErrPointerNotFound, pointer)
		}
	}
	return cur, nil
}
