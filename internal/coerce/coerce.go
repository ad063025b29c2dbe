// Package coerce converts raw, often textual, values into typed attribute values.
//
// Coercion is permissive. Mis-typed scalars degrade to nil rather than failing, leaving
// acceptability to whatever validates the attribute values afterwards. The only failures
// are unrecognized enum members under the strict policy and errors raised by model finders.
package coerce

import (
	"reflect"
	"time"

	"github.com/dball/riveter/internal/sys"
	. "github.com/dball/riveter/internal/types"
)

// Enum is an externally supplied enumeration type.
type Enum interface {
	// Name is the name of the enumeration type.
	Name() string
	// Lookup returns the member with the given external name or key.
	Lookup(key string) (member any, ok bool)
	// Has is true if the value is a member of the enumeration.
	Has(value any) bool
	// Collection returns all of the members in their declared order.
	Collection() []any
}

// Finder resolves model instances from their identifiers. Finders return a nil
// model and no error when there is no such instance.
type Finder interface {
	FindByID(id any) (model any, err error)
}

// FinderFunc adapts a function to the Finder interface.
type FinderFunc func(id any) (model any, err error)

func (fn FinderFunc) FindByID(id any) (model any, err error) {
	return fn(id)
}

// Model references an external model type and the finder for its instances.
type Model struct {
	// Type is the go type of the model instances, which may be a pointer type.
	Type reflect.Type
	// Finder resolves raw identifiers. If nil, raw identifiers coerce to nil.
	Finder Finder
	// Accepts recognizes instances among values of the model type, for models whose
	// instances share a go type. If nil, every value of the type is an instance.
	Accepts func(value any) bool
}

// instance is true if the value's dynamic type is the model type, or a pointer to or
// the element of it, and the model accepts it.
func (model *Model) instance(value any) bool {
	if !model.typed(value) {
		return false
	}
	return model.Accepts == nil || model.Accepts(value)
}

func (model *Model) typed(value any) bool {
	typ := reflect.TypeOf(value)
	switch {
	case typ == model.Type:
		return true
	case typ.Kind() == reflect.Pointer && typ.Elem() == model.Type:
		return true
	case model.Type.Kind() == reflect.Pointer && model.Type.Elem() == typ:
		return true
	}
	return false
}

// EnumPolicy governs how unrecognized enum members coerce.
type EnumPolicy uint8

const (
	// EnumPolicyDefault defers to the config's policy, or strict if that is also default.
	EnumPolicyDefault EnumPolicy = iota
	// EnumPolicyStrict fails with an InvalidEnumValue error.
	EnumPolicyStrict
	// EnumPolicyLenient coerces to nil.
	EnumPolicyLenient
)

// Config holds the coercion settings shared by the attributes of a class.
type Config struct {
	// Location is where times without zones are parsed. Nil means UTC.
	Location *time.Location
	// Enums is the enum policy for attributes that do not declare one.
	Enums EnumPolicy
}

func (cfg Config) location() *time.Location {
	if cfg.Location == nil {
		return time.UTC
	}
	return cfg.Location
}

func (cfg Config) lenient(target Target) bool {
	policy := target.Enums
	if policy == EnumPolicyDefault {
		policy = cfg.Enums
	}
	return policy == EnumPolicyLenient
}

// Target describes the typed representation to which raw values are coerced.
type Target struct {
	// Type is the attribute type tag.
	Type sys.Type
	// Of is the element type for arrays and hashes. Zero means elements pass through.
	Of sys.Type
	// Enum is the enumeration type for enum attributes.
	Enum Enum
	// Model is the model reference for model attributes.
	Model *Model
	// Enums overrides the config's enum policy.
	Enums EnumPolicy
	// Attribute names the attribute in errors, if known.
	Attribute string
}

// Rule coerces a raw value to a target's type.
type Rule func(raw any, target Target, cfg Config) (typed any, err error)

var rules map[sys.Type]Rule

func init() {
	rules = map[sys.Type]Rule{
		sys.AttrTypeString:    coerceString,
		sys.AttrTypeText:      coerceString,
		sys.AttrTypeInteger:   coerceInteger,
		sys.AttrTypeDecimal:   coerceDecimal,
		sys.AttrTypeDate:      coerceDate,
		sys.AttrTypeTime:      coerceTime,
		sys.AttrTypeDateRange: coerceDateRange,
		sys.AttrTypeBoolean:   coerceBoolean,
		sys.AttrTypeEnum:      coerceEnum,
		sys.AttrTypeArray:     coerceArray,
		sys.AttrTypeHash:      coerceHash,
		sys.AttrTypeModel:     coerceModel,
		sys.AttrTypeObject:    coerceObject,
	}
}

// Coerce converts the raw value to the target's typed representation.
func Coerce(raw any, target Target, cfg Config) (typed any, err error) {
	rule, ok := rules[target.Type]
	if !ok {
		err = NewError("coerce.invalidType", "type", target.Type, "attribute", target.Attribute)
		return
	}
	typed, err = rule(raw, target, cfg)
	return
}

func coerceObject(raw any, _ Target, _ Config) (typed any, err error) {
	typed = raw
	return
}

func coerceEnum(raw any, target Target, cfg Config) (typed any, err error) {
	if raw == nil || target.Enum == nil {
		return
	}
	if target.Enum.Has(raw) {
		typed = raw
		return
	}
	key, ok := raw.(string)
	if !ok {
		stringer, isStringer := raw.(interface{ String() string })
		if isStringer {
			key, ok = stringer.String(), true
		}
	}
	if ok {
		if key == "" {
			return
		}
		member, found := target.Enum.Lookup(key)
		if found {
			typed = member
			return
		}
	}
	if !cfg.lenient(target) {
		err = NewError(InvalidEnumValue, "attribute", target.Attribute, "enum", target.Enum.Name(), "value", raw)
	}
	return
}

func coerceModel(raw any, target Target, _ Config) (typed any, err error) {
	model := target.Model
	if raw == nil || model == nil {
		return
	}
	if model.Type != nil && model.instance(raw) {
		typed = raw
		return
	}
	if model.Finder == nil {
		return
	}
	typed, err = model.Finder.FindByID(raw)
	return
}
