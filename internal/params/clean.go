package params

import (
	"reflect"

	"github.com/dball/riveter/internal/iterator"
)

// Blank is true for absent values: nil, nil pointers, and empty strings.
func Blank(value Value) bool {
	if value == nil {
		return true
	}
	scalar, ok := value.(Scalar)
	if !ok {
		return false
	}
	if scalar.V == nil {
		return true
	}
	v := reflect.ValueOf(scalar.V)
	switch v.Kind() {
	case reflect.String:
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Clean recursively removes blank elements from sequences and blank entries from mappings,
// preserving their other elements and entries in order. Scalars are returned as is.
// Sequences and mappings emptied by cleaning are retained, so Clean is idempotent.
func Clean(value Value) Value {
	switch v := value.(type) {
	case Sequence:
		cleaned := make(Sequence, 0, len(v))
		for _, element := range v {
			if Blank(element) {
				continue
			}
			cleaned = append(cleaned, Clean(element))
		}
		return cleaned
	case *Mapping:
		if v == nil {
			return v
		}
		return CleanMapping(v)
	}
	return value
}

// CleanMapping is Clean for mappings.
func CleanMapping(m *Mapping) (cleaned *Mapping) {
	cleaned = NewMapping()
	m.Each(func(entry Entry) bool {
		if !Blank(entry.Value) {
			cleaned.Set(entry.Key, Clean(entry.Value))
		}
		return true
	})
	return
}

// Filter returns the entries of the mapping whose keys are known, in order.
func Filter(m *Mapping, known func(key string) bool) (filtered *Mapping) {
	filtered = NewMapping()
	entries := iterator.Filter[Entry](m, func(entry Entry) bool { return known(entry.Key) })
	entries.Each(func(entry Entry) bool {
		filtered.Set(entry.Key, entry.Value)
		return true
	})
	return
}
