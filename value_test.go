package variant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("defaults per type", func(t *testing.T) {
		require.Equal(t, Null, New(Null).Type())
		require.False(t, New(Bool).Bool())
		require.Equal(t, int64(0), New(Int).Int())
		require.Equal(t, 0.0, New(Real).Real())
		require.Equal(t, "", New(String).Str())
		require.Equal(t, 0, New(Array).Len())
		require.Equal(t, 0, New(Object).Len())
	})

	t.Run("zero value is null", func(t *testing.T) {
		var v Value
		require.Equal(t, Null, v.Type())
	})
}

func TestValueOf(t *testing.T) {
	t.Run("scalars", func(t *testing.T) {
		require.Equal(t, Null, ValueOf(nil).Type())
		require.True(t, ValueOf(true).Bool())
		require.Equal(t, int64(42), ValueOf(42).Int())
		require.Equal(t, int64(42), ValueOf(uint8(42)).Int())
		require.Equal(t, int64(-7), ValueOf(int16(-7)).Int())
		require.Equal(t, 2.5, ValueOf(2.5).Real())
		require.Equal(t, Real, ValueOf(float32(1)).Type())
		require.Equal(t, "hi", ValueOf("hi").Str())
		require.Equal(t, "raw", ValueOf([]byte("raw")).Str())
	})

	t.Run("time formats as rfc3339", func(t *testing.T) {
		ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
		require.Equal(t, "2024-05-01T12:30:00Z", ValueOf(ts).Str())
	})

	t.Run("pointer passes through", func(t *testing.T) {
		v := ValueOf("shared")
		require.Same(t, v, ValueOf(v))
	})

	t.Run("recursive go containers", func(t *testing.T) {
		v := ValueOf(map[string]any{
			"items": []any{1, "two", nil},
			"ok":    true,
		})
		require.Equal(t, Object, v.Type())
		require.Equal(t, int64(1), v.Get("items").At(0).Int())
		require.Equal(t, "two", v.Get("items").At(1).Str())
		require.Equal(t, Null, v.Get("items").At(2).Type())
		require.True(t, v.Get("ok").Bool())
	})

	t.Run("unsupported type panics", func(t *testing.T) {
		require.Panics(t, func() { ValueOf(struct{}{}) })
		require.Panics(t, func() { ValueOf(make(chan int)) })
	})
}

func TestAccessorContract(t *testing.T) {
	v := ValueOf("text")
	require.PanicsWithValue(t, "string value is not a boolean", func() { v.Bool() })
	require.PanicsWithValue(t, "string value is not an integer", func() { v.Int() })
	require.PanicsWithValue(t, "string value is not a real", func() { v.Real() })
	require.PanicsWithValue(t, "string value is not an array", func() { v.Array() })
	require.PanicsWithValue(t, "string value is not an object", func() { v.Object() })
	require.PanicsWithValue(t, "int value is not a string", func() { ValueOf(1).Str() })
	require.PanicsWithValue(t, "null value is not a container", func() { ValueOf(nil).Len() })
}

func TestSetAndReset(t *testing.T) {
	v := ValueOf(1)
	require.Equal(t, "replaced", v.Set("replaced").Str())
	v.Set([]any{true})
	require.Equal(t, Array, v.Type())
	v.Reset()
	require.Equal(t, Null, v.Type())
}

func TestArrayOps(t *testing.T) {
	arr := New(Array)
	arr.Add(ValueOf(1), ValueOf(2)).Add(ValueOf("three"))

	t.Run("append and index", func(t *testing.T) {
		require.Equal(t, 3, arr.Len())
		require.False(t, arr.Empty())
		require.Equal(t, int64(2), arr.At(1).Int())
	})

	t.Run("mutation through interior pointer", func(t *testing.T) {
		arr.At(0).Set(10)
		require.Equal(t, int64(10), arr.At(0).Int())
	})

	t.Run("nil item becomes null", func(t *testing.T) {
		arr.Add(nil)
		require.Equal(t, Null, arr.At(3).Type())
		arr.Remove(3)
	})

	t.Run("remove shifts", func(t *testing.T) {
		arr.Remove(1)
		require.Equal(t, 2, arr.Len())
		require.Equal(t, "three", arr.At(1).Str())
	})

	t.Run("out of range panics", func(t *testing.T) {
		require.Panics(t, func() { arr.At(99) })
		require.Panics(t, func() { arr.Remove(-1) })
	})

	t.Run("clear", func(t *testing.T) {
		arr.Clear()
		require.True(t, arr.Empty())
	})

	t.Run("wrong variant panics", func(t *testing.T) {
		require.Panics(t, func() { ValueOf(1).Add(ValueOf(2)) })
		require.Panics(t, func() { ValueOf(1).Len() })
	})
}

func TestObjectOps(t *testing.T) {
	obj := New(Object)
	obj.Put("a", ValueOf(1)).Put("b", ValueOf("two"))

	t.Run("insert and fetch", func(t *testing.T) {
		require.Equal(t, 2, obj.Len())
		require.Equal(t, int64(1), obj.Get("a").Int())
		require.True(t, obj.Contains("b"))
		require.False(t, obj.Contains("c"))
	})

	t.Run("lookup", func(t *testing.T) {
		item, ok := obj.Lookup("b")
		require.True(t, ok)
		require.Equal(t, "two", item.Str())
		_, ok = obj.Lookup("missing")
		require.False(t, ok)
	})

	t.Run("overwrite", func(t *testing.T) {
		obj.Put("a", ValueOf(100))
		require.Equal(t, int64(100), obj.Get("a").Int())
		require.Equal(t, 2, obj.Len())
	})

	t.Run("missing key panics", func(t *testing.T) {
		require.Panics(t, func() { obj.Get("missing") })
	})

	t.Run("delete", func(t *testing.T) {
		require.True(t, obj.Delete("b"))
		require.False(t, obj.Delete("b"))
		require.Equal(t, 1, obj.Len())
	})

	t.Run("clear", func(t *testing.T) {
		obj.Clear()
		require.True(t, obj.Empty())
	})
}

func TestClone(t *testing.T) {
	orig := ValueOf(map[string]any{
		"nums": []any{1, 2},
		"name": "original",
	})
	copied := orig.Clone()
	require.True(t, Equal(orig, copied))

	copied.Get("nums").At(0).Set(99)
	copied.Put("name", ValueOf("copy"))
	require.Equal(t, int64(1), orig.Get("nums").At(0).Int())
	require.Equal(t, "original", orig.Get("name").Str())
}

func TestTake(t *testing.T) {
	v := ValueOf([]any{1, 2, 3})
	moved := v.Take()
	require.Equal(t, Null, v.Type())
	require.Equal(t, 3, moved.Len())
}

func TestSwap(t *testing.T) {
	a := ValueOf(1)
	b := ValueOf("text")
	Swap(a, b)
	require.Equal(t, "text", a.Str())
	require.Equal(t, int64(1), b.Int())
}

func TestTypeString(t *testing.T) {
	names := map[Type]string{
		Null:   "null",
		Bool:   "bool",
		Int:    "int",
		Real:   "real",
		String: "string",
		Array:  "array",
		Object: "object",
	}
	for typ, name := range names {
		require.Equal(t, name, typ.String())
	}
}
