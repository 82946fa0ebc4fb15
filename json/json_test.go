package json_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/variant"
	"github.com/oarkflow/variant/json"
)

type account struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Active bool   `json:"active"`
}

func TestMarshal(t *testing.T) {
	t.Run("variant goes through the hand-rolled writer", func(t *testing.T) {
		data, err := json.Marshal(variant.ValueOf([]any{1, "two"}))
		require.NoError(t, err)
		require.Equal(t, `[1,"two"]`, string(data))
	})

	t.Run("other values go through the pluggable marshaler", func(t *testing.T) {
		data, err := json.Marshal(account{Name: "ada", Age: 36, Active: true})
		require.NoError(t, err)
		require.JSONEq(t, `{"name":"ada","age":36,"active":true}`, string(data))
	})
}

func TestUnmarshal(t *testing.T) {
	t.Run("non-pointer dst is rejected", func(t *testing.T) {
		var v variant.Value
		err := json.Unmarshal([]byte("1"), v)
		require.EqualError(t, err, "dst is not pointer type")
	})

	t.Run("pointer to variant pointer", func(t *testing.T) {
		var v *variant.Value
		require.NoError(t, json.Unmarshal([]byte(`{"a":[1,2]}`), &v))
		require.Equal(t, int64(2), v.Get("a").At(1).Int())
	})

	t.Run("variant pointer fills in place", func(t *testing.T) {
		slot := variant.New(variant.Null)
		require.NoError(t, json.Unmarshal([]byte(`"filled"`), slot))
		require.Equal(t, "filled", slot.Str())
	})

	t.Run("struct target takes the pluggable unmarshaler", func(t *testing.T) {
		var a account
		require.NoError(t, json.Unmarshal([]byte(`{"name":"ada","age":36}`), &a))
		require.Equal(t, "ada", a.Name)
		require.Equal(t, 36, a.Age)
	})

	t.Run("reader errors surface unchanged", func(t *testing.T) {
		var v *variant.Value
		err := json.Unmarshal([]byte(`{"a"`), &v)
		require.Equal(t, json.ExpectedColon, json.ErrorCode(err))
	})
}

func TestSwappableCodecs(t *testing.T) {
	t.Run("marshaler", func(t *testing.T) {
		json.SetMarshaler(func(any) ([]byte, error) { return []byte("custom"), nil })
		defer json.DefaultMarshaler()

		data, err := json.Marshal(account{})
		require.NoError(t, err)
		require.Equal(t, "custom", string(data))

		data, err = json.Marshal(variant.ValueOf(1))
		require.NoError(t, err)
		require.Equal(t, "1", string(data))
	})

	t.Run("unmarshaler", func(t *testing.T) {
		json.SetUnmarshaler(func(_ []byte, dst any) error {
			*dst.(*account) = account{Name: "stub"}
			return nil
		})
		defer json.DefaultUnmarshaler()

		var a account
		require.NoError(t, json.Unmarshal([]byte(`{}`), &a))
		require.Equal(t, "stub", a.Name)
	})
}

func TestValid(t *testing.T) {
	require.True(t, json.Valid([]byte(`{"a": [1, 2]}`)))
	require.True(t, json.Valid([]byte(` 7 `)))
	require.False(t, json.Valid([]byte(`{"a": }`)))
	require.False(t, json.Valid([]byte(`1 2`)))
	require.False(t, json.Valid(nil))
}

func TestGetSet(t *testing.T) {
	doc := []byte(`{"server":{"ports":[80,443]}}`)

	t.Run("get resolves a pointer", func(t *testing.T) {
		v, err := json.Get(doc, "/server/ports/1")
		require.NoError(t, err)
		require.Equal(t, int64(443), v.Int())
	})

	t.Run("get errors on a missing path", func(t *testing.T) {
		_, err := json.Get(doc, "/server/name")
		require.ErrorIs(t, err, variant.ErrPointerNotFound)
	})

	t.Run("set creates the leaf and re-serializes", func(t *testing.T) {
		out, err := json.Set(doc, "/server/name", variant.ValueOf("edge"))
		require.NoError(t, err)
		require.JSONEq(t, `{"server":{"ports":[80,443],"name":"edge"}}`, string(out))
	})

	t.Run("set grows arrays with nulls", func(t *testing.T) {
		out, err := json.Set(doc, "/server/ports/3", variant.ValueOf(8080))
		require.NoError(t, err)
		require.JSONEq(t, `{"server":{"ports":[80,443,null,8080]}}`, string(out))
	})

	t.Run("set on malformed input fails", func(t *testing.T) {
		_, err := json.Set([]byte(`{`), "/a", variant.ValueOf(1))
		require.Equal(t, json.ExpectedBraceClose, json.ErrorCode(err))
	})
}

func TestDecoder(t *testing.T) {
	t.Run("variant target", func(t *testing.T) {
		var v *variant.Value
		dec := json.NewDecoder(strings.NewReader(`{"k": true}`))
		require.NoError(t, dec.Decode(&v))
		require.True(t, v.Get("k").Bool())
	})

	t.Run("struct target", func(t *testing.T) {
		var a account
		dec := json.NewDecoder(strings.NewReader(`{"name":"ada"}`))
		require.NoError(t, dec.Decode(&a))
		require.Equal(t, "ada", a.Name)
	})
}

func TestEncoder(t *testing.T) {
	t.Run("compact by default", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, json.NewEncoder(&buf).Encode(variant.ValueOf([]any{1, 2})))
		require.Equal(t, "[1,2]", buf.String())
	})

	t.Run("mode applies to variant values", func(t *testing.T) {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetMode(json.Readable)
		require.NoError(t, enc.Encode(variant.ValueOf([]any{1})))
		require.Equal(t, "[\n    1\n]", buf.String())
	})

	t.Run("non-variant values take the marshaler", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, json.NewEncoder(&buf).Encode(account{Name: "ada"}))
		require.JSONEq(t, `{"name":"ada","age":0,"active":false}`, buf.String())
	})
}

func TestReserializeIdempotent(t *testing.T) {
	// Single-key objects keep the compact text deterministic without
	// touching key order.
	v := variant.ValueOf(map[string]any{
		"outer": []any{map[string]any{"inner": 1}, "two", 0.5, nil},
	})
	first, err := json.Write(v, json.Compact)
	require.NoError(t, err)

	reread, err := json.Read(first)
	require.NoError(t, err)
	second, err := json.Write(reread, json.Compact)
	require.NoError(t, err)

	require.Equal(t, string(first), string(second))
}

func TestRandomTreesRoundTrip(t *testing.T) {
	f := gofakeit.New(7)
	for i := 0; i < 1000; i++ {
		tree := randomValue(f, 3)
		for _, mode := range []json.Mode{json.Compact, json.Readable} {
			data, err := json.Write(tree, mode)
			require.NoError(t, err)

			back, err := json.Read(data)
			require.NoError(t, err)
			require.True(t, variant.Equal(tree, back), "%s mode: %s", mode, data)
		}
	}
}

func randomValue(f *gofakeit.Faker, depth int) *variant.Value {
	if depth == 0 {
		return randomScalar(f)
	}
	switch f.Number(0, 3) {
	case 0:
		arr := variant.New(variant.Array)
		for i := f.Number(0, 4); i > 0; i-- {
			arr.Add(randomValue(f, depth-1))
		}
		return arr
	case 1:
		obj := variant.New(variant.Object)
		for i := f.Number(0, 4); i > 0; i-- {
			obj.Put(f.Word(), randomValue(f, depth-1))
		}
		return obj
	}
	return randomScalar(f)
}

func randomScalar(f *gofakeit.Faker) *variant.Value {
	switch f.Number(0, 5) {
	case 0:
		return variant.ValueOf(nil)
	case 1:
		return variant.ValueOf(f.Bool())
	case 2:
		return variant.ValueOf(f.Number(-1000000, 1000000))
	case 3:
		// Magnitudes below one keep a one-ulp reparse difference inside
		// the equality tolerance.
		return variant.ValueOf(f.Float64Range(-1, 1))
	case 4:
		return variant.ValueOf(f.Sentence(3))
	}
	awkward := []string{
		"with \"quotes\"",
		"tab\there",
		"line\nbreak",
		"star ☆ light",
		"slash/dash\\done",
		"ctrl\x01byte",
	}
	return variant.ValueOf(awkward[f.Number(0, len(awkward)-1)])
}

func BenchmarkRead(b *testing.B) {
	docs := []string{
		`{"name":"John","age":30,"city":"New York"}`,
		`[0,1,2,3,4,5,6,7,8,9]`,
		`{"nested":{"deep":{"deeper":[true,null,"end"]}}}`,
		`"plain string with a ☆ escape"`,
	}
	for _, doc := range docs {
		b.Run(doc, func(b *testing.B) {
			b.ReportAllocs()
			data := []byte(doc)
			for i := 0; i < b.N; i++ {
				if _, err := json.Read(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkWrite(b *testing.B) {
	v, err := json.ReadString(`{"name":"John","scores":[1,2.5,3],"active":true,"note":"tabs\tand ☆"}`)
	if err != nil {
		b.Fatal(err)
	}
	for _, mode := range []json.Mode{json.Compact, json.Readable} {
		b.Run(mode.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := json.Write(v, mode); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
