// Package params models untrusted parameter documents as a closed variant of scalars,
// sequences, and mappings, and provides the filter and clean stages of the params pipeline.
package params

import (
	"reflect"

	"github.com/dball/riveter/internal/iterator"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Value is a Scalar, a Sequence, or a *Mapping.
type Value interface {
	// Native converts the value to plain go values: scalars, []any, and map[string]any.
	Native() any
	isValue()
}

// Scalar is any value that is neither a sequence nor a mapping.
type Scalar struct {
	V any
}

// Sequence is an ordered list of values.
type Sequence []Value

// Entry is a keyed value in a mapping.
type Entry struct {
	Key   string
	Value Value
}

// Mapping is an insertion-ordered mapping of string keys to values. A nil mapping reads as
// empty, but only mappings from NewMapping or Map may be set.
type Mapping struct {
	keys    []string
	entries map[string]Value
}

var _ iterator.Collection[Entry] = (*Mapping)(nil)

func (Scalar) isValue()   {}
func (Sequence) isValue() {}
func (*Mapping) isValue() {}

func (s Scalar) Native() any {
	return s.V
}

func (seq Sequence) Native() any {
	values := make([]any, len(seq))
	for i, v := range seq {
		values[i] = v.Native()
	}
	return values
}

func (m *Mapping) Native() any {
	return m.Map()
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{entries: map[string]Value{}}
}

// Map returns a mapping of the given alternating keys and values, in order. Values are
// converted with From.
func Map(args ...any) (m *Mapping) {
	n := len(args)
	if n%2 != 0 {
		panic("Invalid mapping args")
	}
	m = NewMapping()
	for i := 0; i < n; i += 2 {
		key, ok := args[i].(string)
		if !ok {
			panic("Invalid mapping args")
		}
		m.Set(key, From(args[i+1]))
	}
	return
}

// Set associates the value with the key. An extant key retains its position.
func (m *Mapping) Set(key string, value Value) {
	_, extant := m.entries[key]
	if !extant {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = value
}

// Get returns the value for the key, if any.
func (m *Mapping) Get(key string) (value Value, ok bool) {
	if m == nil {
		return
	}
	value, ok = m.entries[key]
	return
}

// Has is true if the key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the keys in order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return []string{}
	}
	return slices.Clone(m.keys)
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Each visits the entries in order.
func (m *Mapping) Each(accept iterator.Accept[Entry]) {
	if m == nil {
		return
	}
	for _, key := range m.keys {
		if !accept(Entry{Key: key, Value: m.entries[key]}) {
			return
		}
	}
}

// Map converts the mapping to a plain go map.
func (m *Mapping) Map() map[string]any {
	values := make(map[string]any, m.Len())
	m.Each(func(entry Entry) bool {
		values[entry.Key] = entry.Value.Native()
		return true
	})
	return values
}

// From converts plain go values into the variant. Slices and arrays become sequences,
// except byte slices, and maps become mappings with their keys in ascending order. Values
// already in the variant are returned as is.
func From(x any) Value {
	switch v := x.(type) {
	case nil:
		return Scalar{}
	case Value:
		return v
	case []byte:
		return Scalar{V: v}
	case []any:
		seq := make(Sequence, len(v))
		for i, e := range v {
			seq[i] = From(e)
		}
		return seq
	case map[string]any:
		return FromMap(v)
	}
	value := reflect.ValueOf(x)
	switch value.Kind() {
	case reflect.Slice, reflect.Array:
		if value.Kind() == reflect.Slice && value.IsNil() {
			return Scalar{}
		}
		seq := make(Sequence, value.Len())
		for i := range seq {
			seq[i] = From(value.Index(i).Interface())
		}
		return seq
	case reflect.Map:
		if value.Type().Key().Kind() != reflect.String {
			return Scalar{V: x}
		}
		if value.IsNil() {
			return Scalar{}
		}
		m := NewMapping()
		keys := value.MapKeys()
		slices.SortFunc(keys, func(k1, k2 reflect.Value) bool { return k1.String() < k2.String() })
		for _, key := range keys {
			m.Set(key.String(), From(value.MapIndex(key).Interface()))
		}
		return m
	}
	return Scalar{V: x}
}

// FromMap converts a plain go map into a mapping with its keys in ascending order.
func FromMap(values map[string]any) (m *Mapping) {
	m = NewMapping()
	keys := maps.Keys(values)
	slices.Sort(keys)
	for _, key := range keys {
		m.Set(key, From(values[key]))
	}
	return
}
