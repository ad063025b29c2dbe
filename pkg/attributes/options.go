package attributes

import (
	"github.com/dball/riveter/internal/coerce"
	"github.com/dball/riveter/internal/registry"
)

// Option configures an attribute declaration.
type Option func(options *registry.Options)

// Default sets the value assigned to new instances. It may be raw or typed, and is
// coerced like any other assignment.
func Default(value any) Option {
	return func(options *registry.Options) {
		options.Default = value
	}
}

// Required marks the attribute for presence validation.
func Required() Option {
	return func(options *registry.Options) {
		options.Required = true
	}
}

// Of sets the type to which array elements or hash values are coerced.
func Of(typ Type) Option {
	return func(options *registry.Options) {
		options.Of = typ
	}
}

// Between sets the bounds within which a date range must lie.
func Between(from, to Date) Option {
	return func(options *registry.Options) {
		options.Bounds = &DateRange{From: from, To: to}
	}
}

// Lenient coerces unrecognized enum members to nil, regardless of the class's policy.
func Lenient() Option {
	return func(options *registry.Options) {
		options.Enums = coerce.EnumPolicyLenient
	}
}

// Strict fails unrecognized enum members, regardless of the class's policy.
func Strict() Option {
	return func(options *registry.Options) {
		options.Enums = coerce.EnumPolicyStrict
	}
}

// WithEnum sets the enum type of an attribute declared with Declare.
func WithEnum(enum Enum) Option {
	return func(options *registry.Options) {
		options.Enum = enum
	}
}

// WithModel sets the model reference of an attribute declared with Declare.
func WithModel(model *Model) Option {
	return func(options *registry.Options) {
		options.Model = model
	}
}
