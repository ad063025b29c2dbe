// Package shredder deconstructs structs into params.
package shredder

import (
	"reflect"

	"github.com/dball/riveter/internal/params"
	"github.com/dball/riveter/internal/structs/models"
	. "github.com/dball/riveter/internal/types"
)

// Shred returns the values of the attr-tagged fields of the struct, or of the struct to
// which x points, in field order. Nil pointers, and zero values of fields that ignore
// empties, shred to nil.
func Shred(analyzer models.Analyzer, x any) (m *params.Mapping, err error) {
	var fields reflect.Value
	typ := reflect.TypeOf(x)
	if typ == nil {
		err = NewError("shredder.invalidStruct", "type", typ)
		return
	}
	switch typ.Kind() {
	case reflect.Struct:
		fields = reflect.ValueOf(x)
	case reflect.Pointer:
		ptr := reflect.ValueOf(x)
		if ptr.IsNil() {
			err = NewError("shredder.nilStruct", "type", typ)
			return
		}
		fields = ptr.Elem()
		typ = fields.Type()
	default:
		err = NewError("shredder.invalidStruct", "type", typ)
		return
	}
	model, err := analyzer.Analyze(typ)
	if err != nil {
		return
	}
	m = params.NewMapping()
	for _, attr := range model.AttrFields {
		m.Set(attr.Name, fieldValue(attr, fields.Field(attr.Index)))
	}
	return
}

func fieldValue(attr models.AttrFieldModel, field reflect.Value) params.Value {
	if attr.IgnoreEmpty && field.IsZero() {
		return params.Scalar{}
	}
	if attr.IsPointer() {
		if field.IsNil() {
			return params.Scalar{}
		}
		field = field.Elem()
	}
	return params.From(field.Interface())
}
