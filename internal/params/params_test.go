package params

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapping(t *testing.T) {
	m := Map("b", 1, "a", "A", "c", nil)
	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	m.Set("b", Scalar{V: 2})
	assert.Equal(t, []string{"b", "a", "c"}, m.Keys(), "an extant key retains its position")
	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, Scalar{V: 2}, v)
	assert.True(t, m.Has("a"))
	assert.False(t, m.Has("missing"))
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, map[string]any{"b": 2, "a": "A", "c": nil}, m.Map())
	assert.Panics(t, func() { Map("odd") })
	assert.Panics(t, func() { Map(1, 2) })
}

func TestNilMapping(t *testing.T) {
	var m *Mapping
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, []string{}, m.Keys())
	assert.Equal(t, map[string]any{}, m.Map())
	assert.False(t, m.Has("a"))
	m.Each(func(Entry) bool {
		t.Fatal("nil mappings have no entries")
		return false
	})
	assert.Equal(t, 0, CleanMapping(m).Len())
	assert.Equal(t, 0, Filter(m, func(string) bool { return true }).Len())
	assert.Equal(t, "{}\n", func() string {
		var out strings.Builder
		require.NoError(t, Encode(&out, m))
		return out.String()
	}())
}

func TestFrom(t *testing.T) {
	value := From(map[string]any{
		"z": []int{1, 2},
		"a": map[string]string{"y": "Y", "x": "X"},
		"m": []byte("raw"),
	})
	m, ok := value.(*Mapping)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "m", "z"}, m.Keys())
	nested, _ := m.Get("a")
	assert.Equal(t, []string{"x", "y"}, nested.(*Mapping).Keys())
	seq, _ := m.Get("z")
	assert.Equal(t, Sequence{Scalar{V: 1}, Scalar{V: 2}}, seq)
	raw, _ := m.Get("m")
	assert.Equal(t, Scalar{V: []byte("raw")}, raw)
	assert.Equal(t, map[string]any{
		"z": []any{1, 2},
		"a": map[string]any{"x": "X", "y": "Y"},
		"m": []byte("raw"),
	}, m.Native())

	assert.Equal(t, Scalar{}, From(nil))
	assert.Equal(t, Scalar{}, From([]int(nil)))
	assert.Equal(t, Scalar{V: map[int]int{1: 1}}, From(map[int]int{1: 1}))
	assert.Same(t, m, From(m))
}

func TestClean(t *testing.T) {
	examples := []struct {
		input    *Mapping
		expected map[string]any
	}{
		{Map("string", ""), map[string]any{}},
		{Map("string", nil), map[string]any{}},
		{Map("a", []any{1, 2, ""}), map[string]any{"a": []any{1, 2}}},
		{Map("a", []any{1, 2, nil}), map[string]any{"a": []any{1, 2}}},
		{Map("a", "A", "b", ""), map[string]any{"a": "A"}},
		{Map("a", "A", "b", nil), map[string]any{"a": "A"}},
		{Map("string", map[string]any{"a": "A", "b": ""}), map[string]any{"string": map[string]any{"a": "A"}}},
		{Map("string", map[string]any{"a": "A", "b": nil}), map[string]any{"string": map[string]any{"a": "A"}}},
		{Map("deep", []any{[]any{"", map[string]any{"x": nil, "y": []any{0, ""}}}}), map[string]any{"deep": []any{[]any{map[string]any{"y": []any{0}}}}}},
		{Map("zero", 0, "false", false, "space", " "), map[string]any{"zero": 0, "false": false, "space": " "}},
		{Map("emptied", []any{"", nil}), map[string]any{"emptied": []any{}}},
	}
	for _, ex := range examples {
		cleaned := CleanMapping(ex.input)
		assert.Equal(t, ex.expected, cleaned.Map())
		assert.Equal(t, cleaned, CleanMapping(cleaned), "cleaning is idempotent")
	}
	assert.Equal(t, Scalar{V: ""}, Clean(Scalar{V: ""}), "scalars are untouched")
}

func TestCleanPreservesOrder(t *testing.T) {
	cleaned := CleanMapping(Map("c", 3, "b", "", "a", 1))
	assert.Equal(t, []string{"c", "a"}, cleaned.Keys())
}

func TestBlank(t *testing.T) {
	var nothing *int
	type name string
	assert.True(t, Blank(nil))
	assert.True(t, Blank(Scalar{}))
	assert.True(t, Blank(Scalar{V: ""}))
	assert.True(t, Blank(Scalar{V: name("")}))
	assert.True(t, Blank(Scalar{V: nothing}))
	assert.False(t, Blank(Scalar{V: 0}))
	assert.False(t, Blank(Sequence{}))
	assert.False(t, Blank(NewMapping()))
}

func TestFilter(t *testing.T) {
	known := func(key string) bool { return key == "string" }
	filtered := Filter(Map("string", "AA", "unknown", "value"), known)
	assert.Equal(t, map[string]any{"string": "AA"}, filtered.Map())
}

func TestDecode(t *testing.T) {
	m, err := Decode(strings.NewReader(`
string: AA
integer: "2"
flags: [1, 2, ""]
nested:
  b: B
  a: ~
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"string", "integer", "flags", "nested"}, m.Keys())
	assert.Equal(t, map[string]any{
		"string":  "AA",
		"integer": "2",
		"flags":   []any{1, 2, ""},
		"nested":  map[string]any{"b": "B", "a": nil},
	}, m.Map())
	nested, _ := m.Get("nested")
	assert.Equal(t, []string{"b", "a"}, nested.(*Mapping).Keys())

	m, err = Decode(strings.NewReader(`{"z": 1, "a": [true, null]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, m.Keys())
	assert.Equal(t, map[string]any{"z": 1, "a": []any{true, nil}}, m.Map())

	m, err = Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())

	_, err = Decode(strings.NewReader("- 1\n- 2\n"))
	assert.Error(t, err)
	_, err = Decode(strings.NewReader("? [a]\n: 1\n"))
	assert.Error(t, err)
	_, err = Decode(strings.NewReader("a: [unclosed"))
	assert.Error(t, err)
	_, err = Decode(strings.NewReader("a: 1\nb: {c: 1, c: 2}\n"))
	assert.Error(t, err)
}

func TestAliases(t *testing.T) {
	m, err := Decode(strings.NewReader("base: &b {x: 1}\ncopy: *b\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"base": map[string]any{"x": 1}, "copy": map[string]any{"x": 1}}, m.Map())
}

func TestEncode(t *testing.T) {
	m := Map("z", 1, "a", []any{"x", nil}, "m", Map("b", true, "a", 1.5))
	var out strings.Builder
	require.NoError(t, Encode(&out, m))
	assert.Equal(t, "z: 1\na:\n  - x\n  - null\nm:\n  b: true\n  a: 1.5\n", out.String())

	decoded, err := Decode(strings.NewReader(out.String()))
	require.NoError(t, err)
	assert.Equal(t, m.Map(), decoded.Map())
	assert.Equal(t, m.Keys(), decoded.Keys())
}
