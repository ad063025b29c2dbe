// Package attributes declares typed attributes on classes and coerces untyped input into
// instances of them.
//
// A class declares an ordered set of named attributes, each with a type tag and options.
// Every declaration generates accessors: a getter, a setter that runs its input through
// the type's coercion rule, and for date ranges, independent accessors for the endpoints.
// Instances are constructed with their defaults assigned through those setters, and may be
// assigned from untrusted params through the filter, clean, and apply pipeline.
//
// Classes are not safe for concurrent declaration, and instances are not safe for
// concurrent use.
package attributes

import (
	"reflect"
	"time"

	"github.com/dball/riveter/internal/coerce"
	"github.com/dball/riveter/internal/registry"
	"github.com/dball/riveter/internal/sys"
	"github.com/dball/riveter/internal/types"
)

type (
	Date       = types.Date
	DateRange  = types.DateRange
	Definition = registry.Definition
	Type       = sys.Type
	Enum       = coerce.Enum
	Finder     = coerce.Finder
	FinderFunc = coerce.FinderFunc
	Model      = coerce.Model
	Error      = types.Error
)

const (
	TypeString    = sys.AttrTypeString
	TypeText      = sys.AttrTypeText
	TypeInteger   = sys.AttrTypeInteger
	TypeDecimal   = sys.AttrTypeDecimal
	TypeDate      = sys.AttrTypeDate
	TypeTime      = sys.AttrTypeTime
	TypeDateRange = sys.AttrTypeDateRange
	TypeBoolean   = sys.AttrTypeBoolean
	TypeEnum      = sys.AttrTypeEnum
	TypeArray     = sys.AttrTypeArray
	TypeHash      = sys.AttrTypeHash
	TypeModel     = sys.AttrTypeModel
	TypeObject    = sys.AttrTypeObject
)

// These match the errors of their kind with errors.Is.
var (
	ErrDuplicateAttribute = types.Error{Code: types.DuplicateAttribute}
	ErrAttributeNotFound  = types.Error{Code: types.AttributeNotFound}
	ErrUnknownAttribute   = types.Error{Code: types.UnknownAttribute}
	ErrInvalidEnumValue   = types.Error{Code: types.InvalidEnumValue}
)

// NewDate returns the given calendar date.
func NewDate(year int, month time.Month, day int) Date {
	return types.NewDate(year, month, day)
}

// ParseType returns the type tag with the given ident, e.g. date_range.
func ParseType(ident string) (typ Type, err error) {
	typ, ok := sys.ParseType(ident)
	if !ok {
		err = types.NewError("attributes.invalidType", "ident", ident)
	}
	return
}

// ModelOf references the model type T, whose instances are resolved by the finder.
func ModelOf[T any](finder Finder) *Model {
	return &Model{Type: reflect.TypeOf((*T)(nil)).Elem(), Finder: finder}
}
