package coerce

import (
	"fmt"
	"reflect"
)

func coerceElement(raw any, target Target, cfg Config) (typed any, err error) {
	if target.Of == 0 {
		typed = raw
		return
	}
	typed, err = Coerce(raw, Target{Type: target.Of, Attribute: target.Attribute}, cfg)
	return
}

func coerceArray(raw any, target Target, cfg Config) (typed any, err error) {
	if raw == nil {
		return
	}
	value := reflect.ValueOf(raw)
	switch value.Kind() {
	case reflect.Slice, reflect.Array:
		if value.Kind() == reflect.Slice && value.IsNil() {
			return
		}
		n := value.Len()
		elements := make([]any, n)
		for i := 0; i < n; i++ {
			elements[i], err = coerceElement(value.Index(i).Interface(), target, cfg)
			if err != nil {
				return
			}
		}
		typed = elements
	default:
		var element any
		element, err = coerceElement(raw, target, cfg)
		if err != nil {
			return
		}
		typed = []any{element}
	}
	return
}

func coerceHash(raw any, target Target, cfg Config) (typed any, err error) {
	if raw == nil {
		return
	}
	value := reflect.ValueOf(raw)
	if value.Kind() != reflect.Map || value.IsNil() {
		return
	}
	entries := make(map[string]any, value.Len())
	iter := value.MapRange()
	for iter.Next() {
		key := iter.Key()
		var k string
		if key.Kind() == reflect.String {
			k = key.String()
		} else {
			k = fmt.Sprint(key.Interface())
		}
		entries[k], err = coerceElement(iter.Value().Interface(), target, cfg)
		if err != nil {
			return
		}
	}
	typed = entries
	return
}
