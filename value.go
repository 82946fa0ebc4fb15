// Package variant implements a tagged union able to hold any one of the
// seven JSON-compatible kinds of data: null, booleans, integers, reals,
// strings, arrays and objects. It is the interchange type shared by the
// json, xml and sqlite packages of this module.
package variant

import (
	"fmt"
	"time"
)

// Value holds exactly one variant at a time. The zero value is Null.
// Containers store *Value, so interior nodes stay addressable and
// mutations through pointers obtained from At, Get, Find or Dig are
// visible in the enclosing tree.
//
// Typed accessors panic when the held variant differs from the
// requested one. That panic is the programmer-error channel; the
// recoverable error channel belongs to the codec packages.
type Value struct {
	typ Type
	b   bool
	i   int64
	r   float64
	s   string
	a   []*Value
	o   map[string]*Value
}

// New returns a Value holding the default payload of the given type:
// false, 0, 0.0, "", an empty array or an empty object.
func New(t Type) *Value {
	v := &Value{typ: t}
	switch t {
	case Array:
		v.a = []*Value{}
	case Object:
		v.o = map[string]*Value{}
	}
	return v
}

// ValueOf builds a Value from a Go value:
//
//	nil                          => Null
//	bool                         => Bool
//	int and uint variants        => Int
//	float32, float64             => Real
//	string, []byte               => String
//	time.Time                    => String, formatted as RFC 3339
//	*Value                       => returned as is
//	[]*Value, map[string]*Value  => Array, Object (no copy)
//	[]any, map[string]any        => Array, Object (recursive)
//
// Any other type panics.
func ValueOf(x any) *Value {
	switch x := x.(type) {
	case nil:
		return &Value{}
	case bool:
		return &Value{typ: Bool, b: x}
	case int:
		return &Value{typ: Int, i: int64(x)}
	case int8:
		return &Value{typ: Int, i: int64(x)}
	case int16:
		return &Value{typ: Int, i: int64(x)}
	case int32:
		return &Value{typ: Int, i: int64(x)}
	case int64:
		return &Value{typ: Int, i: x}
	case uint:
		return &Value{typ: Int, i: int64(x)}
	case uint8:
		return &Value{typ: Int, i: int64(x)}
	case uint16:
		return &Value{typ: Int, i: int64(x)}
	case uint32:
		return &Value{typ: Int, i: int64(x)}
	case uint64:
		return &Value{typ: Int, i: int64(x)}
	case float32:
		return &Value{typ: Real, r: float64(x)}
	case float64:
		return &Value{typ: Real, r: x}
	case string:
		return &Value{typ: String, s: x}
	case []byte:
		return &Value{typ: String, s: string(x)}
	case time.Time:
		return &Value{typ: String, s: x.Format(time.RFC3339)}
	case *Value:
		if x == nil {
			return &Value{}
		}
		return x
	case []*Value:
		return &Value{typ: Array, a: x}
	case map[string]*Value:
		return &Value{typ: Object, o: x}
	case []any:
		a := make([]*Value, len(x))
		for i, item := range x {
			a[i] = ValueOf(item)
		}
		return &Value{typ: Array, a: a}
	case map[string]any:
		o := make(map[string]*Value, len(x))
		for k, item := range x {
			o[k] = ValueOf(item)
		}
		return &Value{typ: Object, o: o}
	}
	panic(fmt.Sprintf("cannot build a value from %T", x))
}

// Type reports the held variant.
func (v *Value) Type() Type { return v.typ }

// Is reports whether the held variant is t.
func (v *Value) Is(t Type) bool { return v.typ == t }

// Bool returns the payload and panics if the value is not a Bool. The
// panic message names the variant actually held.
func (v *Value) Bool() bool {
	if v.typ != Bool {
		panic(v.typ.String() + " value is not a boolean")
	}
	return v.b
}

// Int returns the payload and panics if the value is not an Int.
func (v *Value) Int() int64 {
	if v.typ != Int {
		panic(v.typ.String() + " value is not an integer")
	}
	return v.i
}

// Real returns the payload and panics if the value is not a Real.
func (v *Value) Real() float64 {
	if v.typ != Real {
		panic(v.typ.String() + " value is not a real")
	}
	return v.r
}

// Str returns the payload and panics if the value is not a String.
func (v *Value) Str() string {
	if v.typ != String {
		panic(v.typ.String() + " value is not a string")
	}
	return v.s
}

// Array returns the element slice and panics if the value is not an
// Array.
func (v *Value) Array() []*Value {
	if v.typ != Array {
		panic(v.typ.String() + " value is not an array")
	}
	return v.a
}

// Object returns the entry map and panics if the value is not an
// Object.
func (v *Value) Object() map[string]*Value {
	if v.typ != Object {
		panic(v.typ.String() + " value is not an object")
	}
	return v.o
}

// Set replaces the payload with ValueOf(x), releasing whatever the
// value held before. It returns the receiver for chaining.
func (v *Value) Set(x any) *Value {
	*v = *ValueOf(x)
	return v
}

// Reset returns the value to the Null state.
func (v *Value) Reset() { *v = Value{} }

// Add appends items to an array and panics if the value is not an
// Array. Nil items are stored as Null.
func (v *Value) Add(items ...*Value) *Value {
	if v.typ != Array {
		panic(v.typ.String() + " value is not an array")
	}
	for _, item := range items {
		if item == nil {
			item = &Value{}
		}
		v.a = append(v.a, item)
	}
	return v
}

// Put inserts or replaces an object entry and panics if the value is
// not an Object. A nil item is stored as Null.
func (v *Value) Put(key string, item *Value) *Value {
	if v.typ != Object {
		panic(v.typ.String() + " value is not an object")
	}
	if item == nil {
		item = &Value{}
	}
	if v.o == nil {
		v.o = map[string]*Value{}
	}
	v.o[key] = item
	return v
}

// At returns the array element at index i, panicking if the value is
// not an Array or i is out of range.
func (v *Value) At(i int) *Value {
	a := v.Array()
	if i < 0 || i >= len(a) {
		panic(fmt.Sprintf("array index %d out of range [0:%d]", i, len(a)))
	}
	return a[i]
}

// Get returns the object entry for key, panicking if the value is not
// an Object or the key is missing.
func (v *Value) Get(key string) *Value {
	item, ok := v.Object()[key]
	if !ok {
		panic(fmt.Sprintf("object has no key %q", key))
	}
	return item
}

// Lookup is the non-panicking form of Get.
func (v *Value) Lookup(key string) (*Value, bool) {
	item, ok := v.Object()[key]
	return item, ok
}

// Contains reports whether the object has an entry for key.
func (v *Value) Contains(key string) bool {
	_, ok := v.Object()[key]
	return ok
}

// Len returns the number of elements of an Array or entries of an
// Object and panics for any other variant.
func (v *Value) Len() int {
	switch v.typ {
	case Array:
		return len(v.a)
	case Object:
		return len(v.o)
	}
	panic(v.typ.String() + " value is not a container")
}

// Empty reports whether a container has no elements.
func (v *Value) Empty() bool { return v.Len() == 0 }

// Clear removes every element of an Array or Object.
func (v *Value) Clear() {
	switch v.typ {
	case Array:
		v.a = v.a[:0]
	case Object:
		clear(v.o)
	default:
		panic(v.typ.String() + " value is not a container")
	}
}

// Remove deletes the array element at index i, shifting the elements
// after it down.
func (v *Value) Remove(i int) {
	a := v.Array()
	if i < 0 || i >= len(a) {
		panic(fmt.Sprintf("array index %d out of range [0:%d]", i, len(a)))
	}
	v.a = append(a[:i], a[i+1:]...)
}

// Delete removes the object entry for key and reports whether it was
// present.
func (v *Value) Delete(key string) bool {
	o := v.Object()
	_, ok := o[key]
	delete(o, key)
	return ok
}

// Clone returns a deep copy: nested arrays and objects share no
// storage with the original.
func (v *Value) Clone() *Value {
	if v == nil {
		return &Value{}
	}
	out := *v
	switch v.typ {
	case Array:
		out.a = make([]*Value, len(v.a))
		for i, item := range v.a {
			out.a[i] = item.Clone()
		}
	case Object:
		out.o = make(map[string]*Value, len(v.o))
		for k, item := range v.o {
			out.o[k] = item.Clone()
		}
	}
	return &out
}

// Take moves the payload into a new Value and leaves the receiver
// Null. No container storage is copied.
func (v *Value) Take() *Value {
	out := *v
	*v = Value{}
	return &out
}

// Swap exchanges the payloads of a and b.
func Swap(a, b *Value) {
	*a, *b = *b, *a
}
