package variant

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/oarkflow/date"
)

// epsilon is the float64 machine epsilon, the tolerance of the numeric
// equality and truthiness rules.
const epsilon = 0x1p-52

// ToBool narrows the value to a boolean: Null is false, numbers are
// compared against zero (Real within epsilon), strings and containers
// are true when non-empty.
func (v *Value) ToBool() bool {
	switch v.typ {
	case Null:
		return false
	case Bool:
		return v.b
	case Int:
		return v.i != 0
	case Real:
		return math.Abs(v.r) >= epsilon
	case String:
		return len(v.s) > 0
	case Array:
		return len(v.a) > 0
	case Object:
		return len(v.o) > 0
	}
	return false
}

// ToInt narrows the value to an integer: Null is 0, Bool is 1 or 0,
// Real truncates toward zero and String must parse as a base-10
// integer. Containers do not convert and panic, as does a string that
// fails to parse.
func (v *Value) ToInt() int64 {
	switch v.typ {
	case Null:
		return 0
	case Bool:
		if v.b {
			return 1
		}
		return 0
	case Int:
		return v.i
	case Real:
		return int64(v.r)
	case String:
		i, err := strconv.ParseInt(v.s, 10, 64)
		if err != nil {
			panic("string " + strconv.Quote(v.s) + " is not a valid integer")
		}
		return i
	}
	panic(v.typ.String() + " is not convertible to an integer")
}

// ToReal narrows the value to a real: Null is 0, Bool is 1 or 0 and
// String must parse as a decimal number. Containers panic.
func (v *Value) ToReal() float64 {
	switch v.typ {
	case Null:
		return 0
	case Bool:
		if v.b {
			return 1
		}
		return 0
	case Int:
		return float64(v.i)
	case Real:
		return v.r
	case String:
		r, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			panic("string " + strconv.Quote(v.s) + " is not a valid number")
		}
		return r
	}
	panic(v.typ.String() + " is not convertible to a real")
}

// ToString renders scalars: Null is "", Bool is "true" or "false", Int
// is decimal, Real is the shortest decimal form that parses back
// exactly. Containers panic.
func (v *Value) ToString() string {
	switch v.typ {
	case Null:
		return ""
	case Bool:
		if v.b {
			return "true"
		}
		return "false"
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Real:
		return strconv.FormatFloat(v.r, 'g', -1, 64)
	case String:
		return v.s
	}
	panic(v.typ.String() + " is not convertible to a string")
}

// Time interprets the value as a point in time: a String is parsed
// with the flexible layouts of oarkflow/date, an Int is taken as Unix
// seconds. Other variants error.
func (v *Value) Time() (time.Time, error) {
	switch v.typ {
	case String:
		return date.Parse(v.s)
	case Int:
		return time.Unix(v.i, 0).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("cannot interpret %s value as time", v.typ)
}

// Native converts the tree to plain Go values: nil, bool, int64,
// float64, string, []any and map[string]any.
func (v *Value) Native() any {
	switch v.typ {
	case Bool:
		return v.b
	case Int:
		return v.i
	case Real:
		return v.r
	case String:
		return v.s
	case Array:
		a := make([]any, len(v.a))
		for i, item := range v.a {
			a[i] = item.Native()
		}
		return a
	case Object:
		o := make(map[string]any, len(v.o))
		for k, item := range v.o {
			o[k] = item.Native()
		}
		return o
	}
	return nil
}
