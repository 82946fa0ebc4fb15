package variant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	env := ValueOf(map[string]any{
		"a":    2,
		"b":    3,
		"name": "gopher",
		"tags": []any{"x", "y"},
	})

	t.Run("arithmetic", func(t *testing.T) {
		out, err := Eval("a + b * 2", env)
		require.NoError(t, err)
		require.Equal(t, int64(8), out.ToInt())
	})

	t.Run("comparison", func(t *testing.T) {
		out, err := Eval("a < b", env)
		require.NoError(t, err)
		require.True(t, out.Bool())
	})

	t.Run("string concatenation", func(t *testing.T) {
		out, err := Eval(`name + "!"`, env)
		require.NoError(t, err)
		require.Equal(t, "gopher!", out.Str())
	})

	t.Run("container results convert back", func(t *testing.T) {
		out, err := Eval("tags", env)
		require.NoError(t, err)
		require.Equal(t, Array, out.Type())
		require.Equal(t, "y", out.At(1).Str())
	})

	t.Run("bad expression errors", func(t *testing.T) {
		_, err := Eval("a +", env)
		require.Error(t, err)
	})

	t.Run("non-object env errors", func(t *testing.T) {
		_, err := Eval("1 + 1", ValueOf(5))
		require.Error(t, err)
		_, err = Eval("1 + 1", nil)
		require.Error(t, err)
	})
}
