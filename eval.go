package variant

import (
	"errors"

	"github.com/oarkflow/expr"
)

// Eval evaluates an expression against an Object environment: every
// entry of env becomes a variable, the expression runs through the
// oarkflow expression language, and the result is converted back with
// ValueOf. A non-object env errors.
func Eval(expression string, env *Value) (*Value, error) {
	if env == nil || env.typ != Object {
		return nil, errors.New("eval environment must be an object")
	}
	scope, _ := env.Native().(map[string]any)
	out, err := expr.Eval(expression, scope)
	if err != nil {
		return nil, err
	}
	return ValueOf(out), nil
}
