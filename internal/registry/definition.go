// Package registry holds the ordered attribute definitions declared on a class.
package registry

import (
	"github.com/dball/riveter/internal/coerce"
	"github.com/dball/riveter/internal/sys"
	. "github.com/dball/riveter/internal/types"
)

// Options are the settings of a declared attribute.
type Options struct {
	// Default is the raw or typed value assigned to new instances.
	Default any
	// Required marks the attribute for presence validation.
	Required bool
	// Of is the element type of array and hash attributes.
	Of sys.Type
	// Enum is the enumeration type of enum attributes.
	Enum coerce.Enum
	// Model is the model reference of model attributes.
	Model *coerce.Model
	// Bounds are the allowed bounds of date range attributes.
	Bounds *DateRange
	// Enums overrides the class's enum policy.
	Enums coerce.EnumPolicy
}

// Definition describes one declared attribute. Definitions are immutable.
type Definition struct {
	name    string
	typ     sys.Type
	options Options
}

// NewDefinition returns a new definition if the options are consistent with the type.
func NewDefinition(name string, typ sys.Type, options Options) (def *Definition, err error) {
	switch {
	case name == "":
		err = NewError("registry.blankName", "type", typ)
	case !sys.ValidAttrType(typ):
		err = NewError("registry.invalidType", "name", name, "type", typ)
	case typ == sys.AttrTypeEnum && options.Enum == nil:
		err = NewError("registry.missingEnum", "name", name)
	case typ == sys.AttrTypeModel && (options.Model == nil || options.Model.Type == nil):
		err = NewError("registry.missingModel", "name", name)
	case options.Of != 0 && typ != sys.AttrTypeArray && typ != sys.AttrTypeHash:
		err = NewError("registry.invalidElementDirective", "name", name, "type", typ)
	case options.Of != 0 && !sys.ValidElementType(options.Of):
		err = NewError("registry.invalidElementType", "name", name, "of", options.Of)
	case options.Bounds != nil && typ != sys.AttrTypeDateRange:
		err = NewError("registry.invalidBoundsDirective", "name", name, "type", typ)
	case options.Bounds != nil && options.Bounds.To.Before(options.Bounds.From):
		err = NewError("registry.invalidBounds", "name", name, "bounds", *options.Bounds)
	}
	if err != nil {
		return
	}
	def = &Definition{name: name, typ: typ, options: options}
	return
}

func (def *Definition) Name() string {
	return def.name
}

func (def *Definition) Type() sys.Type {
	return def.typ
}

func (def *Definition) Default() any {
	return def.options.Default
}

func (def *Definition) Required() bool {
	return def.options.Required
}

func (def *Definition) Of() sys.Type {
	return def.options.Of
}

func (def *Definition) Enum() coerce.Enum {
	return def.options.Enum
}

func (def *Definition) Model() *coerce.Model {
	return def.options.Model
}

// Bounds returns the allowed bounds of a date range, if any.
func (def *Definition) Bounds() (bounds DateRange, ok bool) {
	if def.options.Bounds != nil {
		bounds = *def.options.Bounds
		ok = true
	}
	return
}

// Target returns the coercion target for values of this attribute.
func (def *Definition) Target() coerce.Target {
	return coerce.Target{
		Type:      def.typ,
		Of:        def.options.Of,
		Enum:      def.options.Enum,
		Model:     def.options.Model,
		Enums:     def.options.Enums,
		Attribute: def.name,
	}
}

// FromName and ToName are the names of the endpoint accessors of a date range.
func (def *Definition) FromName() string {
	return def.name + sys.FromSuffix
}

func (def *Definition) ToName() string {
	return def.name + sys.ToSuffix
}

// Accessors returns the names of the instance accessors generated for this attribute.
func (def *Definition) Accessors() (names []string) {
	names = []string{def.name}
	if sys.IsCompound(def.typ) {
		names = append(names, def.FromName(), def.ToName())
	}
	return
}

// Enums returns the attribute's enum policy override.
func (def *Definition) Enums() coerce.EnumPolicy {
	return def.options.Enums
}
