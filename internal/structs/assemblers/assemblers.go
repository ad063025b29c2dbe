// Package assemblers provides for the construction of structs from attribute values.
package assemblers

import (
	"fmt"
	"reflect"
	"time"

	"github.com/dball/riveter/internal/structs/models"
	. "github.com/dball/riveter/internal/types"
	"github.com/shopspring/decimal"
)

// Values returns the value of the named attribute, if there is such an attribute.
type Values func(name string) (value any, ok bool)

// Assemble writes attribute values into the attr-tagged fields of the struct to which ptr
// points. Fields whose attributes are unknown are left alone, and nil values zero their
// fields.
func Assemble(analyzer models.Analyzer, ptr any, values Values) (err error) {
	dest := reflect.ValueOf(ptr)
	if dest.Kind() != reflect.Pointer || dest.IsNil() {
		err = NewError("assembler.destNotPointer", "type", reflect.TypeOf(ptr))
		return
	}
	entity := dest.Elem()
	model, err := analyzer.Analyze(entity.Type())
	if err != nil {
		return
	}
	for _, attr := range model.AttrFields {
		value, ok := values(attr.Name)
		if !ok {
			continue
		}
		err = assign(entity.Field(attr.Index), value)
		if err != nil {
			if e, ok := err.(Error); ok {
				e.Context["attr"] = attr.Name
			}
			return
		}
	}
	return
}

// assign converts the value to the field's type and stores it.
func assign(field reflect.Value, value any) (err error) {
	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return
	}
	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(field.Type()) {
		field.Set(v)
		return
	}
	switch field.Kind() {
	case reflect.Pointer:
		elem := reflect.New(field.Type().Elem())
		err = assign(elem.Elem(), value)
		if err == nil {
			field.Set(elem)
		}
		return
	case reflect.String:
		switch x := value.(type) {
		case fmt.Stringer:
			field.SetString(x.String())
		case []byte:
			field.SetString(string(x))
		default:
			field.SetString(fmt.Sprint(x))
		}
		return
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var i int64
		i, err = integer(value)
		if err != nil {
			return
		}
		if field.OverflowInt(i) {
			err = NewError("assembler.overflow", "value", value, "type", field.Type())
			return
		}
		field.SetInt(i)
		return
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var i int64
		i, err = integer(value)
		if err != nil {
			return
		}
		if i < 0 || field.OverflowUint(uint64(i)) {
			err = NewError("assembler.overflow", "value", value, "type", field.Type())
			return
		}
		field.SetUint(uint64(i))
		return
	case reflect.Float32, reflect.Float64:
		switch x := value.(type) {
		case decimal.Decimal:
			field.SetFloat(x.InexactFloat64())
			return
		case int64:
			field.SetFloat(float64(x))
			return
		}
	case reflect.Slice:
		if v.Kind() == reflect.Slice {
			n := v.Len()
			slice := reflect.MakeSlice(field.Type(), n, n)
			for i := 0; i < n; i++ {
				err = assign(slice.Index(i), v.Index(i).Interface())
				if err != nil {
					return
				}
			}
			field.Set(slice)
			return
		}
	case reflect.Map:
		if v.Kind() == reflect.Map && field.Type().Key().Kind() == reflect.String {
			m := reflect.MakeMapWithSize(field.Type(), v.Len())
			iter := v.MapRange()
			for iter.Next() {
				entry := reflect.New(field.Type().Elem()).Elem()
				err = assign(entry, iter.Value().Interface())
				if err != nil {
					return
				}
				key := reflect.New(field.Type().Key()).Elem()
				key.SetString(fmt.Sprint(iter.Key().Interface()))
				m.SetMapIndex(key, entry)
			}
			field.Set(m)
			return
		}
	case reflect.Struct:
		switch x := value.(type) {
		case Date:
			if field.Type() == models.TimeType {
				field.Set(reflect.ValueOf(x.Time()))
				return
			}
		case time.Time:
			if field.Type() == models.DateType {
				field.Set(reflect.ValueOf(DateOf(x)))
				return
			}
		}
	}
	if v.Type().ConvertibleTo(field.Type()) {
		field.Set(v.Convert(field.Type()))
		return
	}
	err = NewError("assembler.invalidValue", "value", value, "type", field.Type())
	return
}

func integer(value any) (i int64, err error) {
	switch x := value.(type) {
	case int64:
		i = x
	case decimal.Decimal:
		i = x.IntPart()
	default:
		v := reflect.ValueOf(value)
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			i = v.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			i = int64(v.Uint())
		default:
			err = NewError("assembler.invalidValue", "value", value, "kind", "integer")
		}
	}
	return
}
