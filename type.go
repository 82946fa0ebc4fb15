package variant

// Type identifies the variant held by a Value. The declaration order is
// also the rank used when ordering values of different types.
type Type uint8

const (
	Null Type = iota
	Bool
	Int
	Real
	String
	Array
	Object
)

func (t Type) String() string {
	switch t {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Real:
		return "real"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return "unknown"
}
