// Package sys defines the closed set of attribute type tags.
package sys

import "strings"

// Type is an attribute type tag.
type Type uint8

const (
	AttrTypeString Type = iota + 1
	AttrTypeText
	AttrTypeInteger
	AttrTypeDecimal
	AttrTypeDate
	AttrTypeTime
	AttrTypeDateRange
	AttrTypeBoolean
	AttrTypeEnum
	AttrTypeArray
	AttrTypeHash
	AttrTypeModel
	AttrTypeObject
)

// FromSuffix and ToSuffix name the endpoint accessors of a date range attribute.
const (
	FromSuffix = "_from"
	ToSuffix   = "_to"
)

// Idents are the textual representations of the type tags.
var Idents = map[Type]string{
	AttrTypeString:    "string",
	AttrTypeText:      "text",
	AttrTypeInteger:   "integer",
	AttrTypeDecimal:   "decimal",
	AttrTypeDate:      "date",
	AttrTypeTime:      "time",
	AttrTypeDateRange: "date_range",
	AttrTypeBoolean:   "boolean",
	AttrTypeEnum:      "enum",
	AttrTypeArray:     "array",
	AttrTypeHash:      "hash",
	AttrTypeModel:     "model",
	AttrTypeObject:    "object",
}

// Types are the type tags indexed by their idents.
var Types = map[string]Type{}

func init() {
	for typ, ident := range Idents {
		Types[ident] = typ
	}
}

func (typ Type) String() string {
	ident, ok := Idents[typ]
	if !ok {
		return "invalid"
	}
	return ident
}

// ParseType returns the type tag for the given ident, ignoring case.
func ParseType(ident string) (typ Type, ok bool) {
	typ, ok = Types[strings.ToLower(strings.TrimSpace(ident))]
	return
}

func ValidAttrType(typ Type) bool {
	_, ok := Idents[typ]
	return ok
}

// ValidElementType is true for the types that may be used for the elements of
// arrays and the values of hashes. Types that need collaborators or produce
// more than one accessor may not.
func ValidElementType(typ Type) bool {
	switch typ {
	case AttrTypeDateRange, AttrTypeEnum, AttrTypeModel, AttrTypeArray, AttrTypeHash:
		return false
	}
	return ValidAttrType(typ)
}

// IsCompound is true for types that materialize as more than one accessor.
func IsCompound(typ Type) bool {
	return typ == AttrTypeDateRange
}

// IsNumeric is true for types whose values an external validator would treat as numbers.
func IsNumeric(typ Type) bool {
	return typ == AttrTypeInteger || typ == AttrTypeDecimal
}

// IsTemporal is true for types whose values an external validator would treat as instants.
func IsTemporal(typ Type) bool {
	return typ == AttrTypeDate || typ == AttrTypeTime
}
