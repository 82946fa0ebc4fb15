package variant

import "math"

// Equal reports deep equality. Values of different variants are
// unequal, except Int and Real, which compare numerically within
// epsilon. Real values also compare within epsilon. A nil *Value is
// treated as Null.
func Equal(a, b *Value) bool {
	if a == nil {
		a = &Value{}
	}
	if b == nil {
		b = &Value{}
	}
	if a.typ == Int && b.typ == Real {
		return math.Abs(float64(a.i)-b.r) <= epsilon
	}
	if a.typ == Real && b.typ == Int {
		return math.Abs(a.r-float64(b.i)) <= epsilon
	}
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case Bool:
		return a.b == b.b
	case Int:
		return a.i == b.i
	case Real:
		return math.Abs(a.r-b.r) <= epsilon
	case String:
		return a.s == b.s
	case Array:
		if len(a.a) != len(b.a) {
			return false
		}
		for i := range a.a {
			if !Equal(a.a[i], b.a[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(a.o) != len(b.o) {
			return false
		}
		for k, av := range a.o {
			bv, ok := b.o[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return true
}

// Less orders values by variant rank first, then by payload. Arrays
// compare element-wise like strings; objects compare by entry count
// only, which is not a total order over their contents.
func Less(a, b *Value) bool {
	if a == nil {
		a = &Value{}
	}
	if b == nil {
		b = &Value{}
	}
	if a.typ != b.typ {
		return a.typ < b.typ
	}
	switch a.typ {
	case Bool:
		return !a.b && b.b
	case Int:
		return a.i < b.i
	case Real:
		return a.r < b.r
	case String:
		return a.s < b.s
	case Array:
		for i := 0; i < len(a.a) && i < len(b.a); i++ {
			if Less(a.a[i], b.a[i]) {
				return true
			}
			if Less(b.a[i], a.a[i]) {
				return false
			}
		}
		return len(a.a) < len(b.a)
	case Object:
		return len(a.o) < len(b.o)
	}
	return false
}
