// Package models provides models of structs with fields bound to attributes.
package models

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/dball/riveter/internal/iterator"
	"github.com/dball/riveter/internal/sys"
	. "github.com/dball/riveter/internal/types"
	"github.com/shopspring/decimal"
)

var (
	TimeType      = reflect.TypeOf(time.Time{})
	DateType      = reflect.TypeOf(Date{})
	DateRangeType = reflect.TypeOf(DateRange{})
	DecimalType   = reflect.TypeOf(decimal.Decimal{})
)

// StructModel models a struct that has fields bound to attributes.
type StructModel struct {
	// Type is the struct type, whose kind must be a struct.
	Type reflect.Type
	// AttrFields are the fields bound to attributes, in field order.
	AttrFields []AttrFieldModel
}

// Attr returns the attribute field model with the given name, if any.
func (model StructModel) Attr(name string) (attr AttrFieldModel, ok bool) {
	fields := iterator.Slice[AttrFieldModel](model.AttrFields)
	attr, ok = iterator.Find[AttrFieldModel](fields, func(a AttrFieldModel) bool { return a.Name == name })
	return
}

// AttrFieldModel models a field bound to an attribute.
type AttrFieldModel struct {
	// Name is the name of the attribute.
	Name string
	// Index is the position of the field in the struct.
	Index int
	// FieldType is the field's go type.
	FieldType reflect.Type
	// Type is the attribute type, given by the tag or inferred from the field type.
	Type sys.Type
	// Of is the element type of array and hash attributes. This may be zero.
	Of sys.Type
	// Default is the raw default value, if HasDefault.
	Default    string
	HasDefault bool
	Required   bool
	// Lenient and Strict override the enum policy.
	Lenient bool
	Strict  bool
	// IgnoreEmpty indicates that zero values are treated as nils.
	IgnoreEmpty bool
}

// IsPointer indicates that the field value is a pointer.
func (attr AttrFieldModel) IsPointer() bool {
	return attr.FieldType.Kind() == reflect.Pointer
}

// Analyzer builds struct models.
type Analyzer interface {
	Analyze(typ reflect.Type) (model StructModel, err error)
}

type cachingAnalyzer struct {
	lock   sync.RWMutex
	models map[reflect.Type]StructModel
}

// BuildCachingAnalyzer returns an analyzer that retains the models it builds. It is safe
// for concurrent use.
func BuildCachingAnalyzer() Analyzer {
	return &cachingAnalyzer{models: map[reflect.Type]StructModel{}}
}

func (analyzer *cachingAnalyzer) Analyze(typ reflect.Type) (model StructModel, err error) {
	analyzer.lock.RLock()
	model, ok := analyzer.models[typ]
	analyzer.lock.RUnlock()
	if ok {
		return
	}
	model, err = Analyze(typ)
	if err != nil {
		return
	}
	analyzer.lock.Lock()
	analyzer.models[typ] = model
	analyzer.lock.Unlock()
	return
}

// Analyze builds a struct model for the given type.
func Analyze(typ reflect.Type) (model StructModel, err error) {
	if typ.Kind() != reflect.Struct {
		err = NewError("models.notStruct", "type", typ)
		return
	}
	model.Type = typ
	n := typ.NumField()
	attrFields := make([]AttrFieldModel, 0, n)
	for i := 0; i < n; i++ {
		field := typ.Field(i)
		tag, ok := field.Tag.Lookup("attr")
		if !ok {
			continue
		}
		if !field.IsExported() {
			err = NewError("models.unexportedField", "type", typ, "field", field.Name)
			return
		}
		attr, fieldErr := parseAttrField(field, tag)
		if fieldErr != nil {
			err = fieldErr
			return
		}
		attr.Index = i
		attrFields = append(attrFields, attr)
	}
	model.AttrFields = attrFields
	return
}

// AttrTypeForType infers the attribute type of values of the go type. Pointers are
// inferred by their element types, and anything unrecognized is an object.
func AttrTypeForType(typ reflect.Type) (attrType sys.Type) {
	switch typ {
	case TimeType:
		return sys.AttrTypeTime
	case DateType:
		return sys.AttrTypeDate
	case DateRangeType:
		return sys.AttrTypeDateRange
	case DecimalType:
		return sys.AttrTypeDecimal
	}
	switch typ.Kind() {
	case reflect.Bool:
		attrType = sys.AttrTypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		attrType = sys.AttrTypeInteger
	case reflect.Float32, reflect.Float64:
		attrType = sys.AttrTypeDecimal
	case reflect.String:
		attrType = sys.AttrTypeString
	case reflect.Slice, reflect.Array:
		if typ.Elem().Kind() == reflect.Uint8 {
			attrType = sys.AttrTypeString
		} else {
			attrType = sys.AttrTypeArray
		}
	case reflect.Map:
		if typ.Key().Kind() == reflect.String {
			attrType = sys.AttrTypeHash
		} else {
			attrType = sys.AttrTypeObject
		}
	case reflect.Pointer:
		attrType = AttrTypeForType(typ.Elem())
	default:
		attrType = sys.AttrTypeObject
	}
	return
}

func parseAttrField(field reflect.StructField, tag string) (attr AttrFieldModel, err error) {
	attr, err = parseAttrTag(tag)
	if err != nil {
		return
	}
	attr.FieldType = field.Type
	if attr.Name == "" {
		attr.Name = field.Name
	}
	if attr.Type == 0 {
		attr.Type = AttrTypeForType(field.Type)
	}
	if attr.Of == 0 && (attr.Type == sys.AttrTypeArray || attr.Type == sys.AttrTypeHash) {
		elem := field.Type
		if elem.Kind() == reflect.Pointer {
			elem = elem.Elem()
		}
		switch elem.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			// Elements of unrecognized types pass through rather than becoming objects.
			of := AttrTypeForType(elem.Elem())
			if of != sys.AttrTypeObject && sys.ValidElementType(of) {
				attr.Of = of
			}
		}
	}
	return
}

// parseAttrTag parses tags of the form name,type=integer,default=1,required. The name may be
// empty, in which case the field's name is used. Default values may not contain commas.
func parseAttrTag(tag string) (attr AttrFieldModel, err error) {
	parts := strings.Split(tag, ",")
	attr.Name = strings.TrimSpace(parts[0])
	n := len(parts)
	for i := 1; i < n; i++ {
		part := strings.TrimSpace(parts[i])
		switch part {
		case "required":
			attr.Required = true
		case "lenient":
			if attr.Strict {
				err = NewError("models.duplicatePolicyDirective", "tag", tag)
				return
			}
			attr.Lenient = true
		case "strict":
			if attr.Lenient {
				err = NewError("models.duplicatePolicyDirective", "tag", tag)
				return
			}
			attr.Strict = true
		case "ignoreempty":
			attr.IgnoreEmpty = true
		default:
			key, value, ok := strings.Cut(part, "=")
			if !ok {
				err = NewError("models.invalidDirective", "tag", tag, "directive", part)
				return
			}
			switch key {
			case "type":
				typ, valid := sys.ParseType(value)
				if !valid {
					err = NewError("models.invalidType", "tag", tag, "type", value)
					return
				}
				attr.Type = typ
			case "of":
				typ, valid := sys.ParseType(value)
				if !valid {
					err = NewError("models.invalidType", "tag", tag, "of", value)
					return
				}
				attr.Of = typ
			case "default":
				attr.Default = value
				attr.HasDefault = true
			default:
				err = NewError("models.invalidDirective", "tag", tag, "directive", part)
				return
			}
		}
	}
	return
}
