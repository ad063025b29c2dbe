package attributes

import (
	"reflect"
	"time"

	"github.com/dball/riveter/internal/coerce"
	"github.com/dball/riveter/internal/registry"
	"github.com/dball/riveter/internal/sys"
	"github.com/dball/riveter/internal/types"
	"github.com/jinzhu/inflection"
	"golang.org/x/exp/maps"
)

// Class is a named set of attribute declarations from which instances are constructed.
type Class struct {
	name   string
	parent *Class
	cfg    coerce.Config
	degree int
	// own is nil until the class first declares or intercepts, whereupon it is seeded with
	// a copy of the nearest ancestor's state.
	own *state
}

// state is everything a class declares, all of which is copied when a subclass diverges.
type state struct {
	registry  *registry.Registry
	accessors map[string]accessor
	// classValues are the class-level accessors generated by enum and model declarations.
	classValues map[string]func() any
}

type ClassOption func(class *Class)

// WithLocation sets the location in which times without zones are parsed.
func WithLocation(loc *time.Location) ClassOption {
	return func(class *Class) {
		class.cfg.Location = loc
	}
}

// WithLenientEnums coerces unrecognized enum members to nil instead of failing.
func WithLenientEnums() ClassOption {
	return func(class *Class) {
		class.cfg.Enums = coerce.EnumPolicyLenient
	}
}

// WithDegree sets the btree degree of the class's accessor index.
func WithDegree(degree int) ClassOption {
	return func(class *Class) {
		class.degree = degree
	}
}

// NewClass returns a class with no attributes.
func NewClass(name string, opts ...ClassOption) (class *Class) {
	class = &Class{name: name, degree: registry.DefaultDegree}
	for _, opt := range opts {
		opt(class)
	}
	return
}

// Subclass returns a class that inherits this class's attributes and settings. Until it
// declares attributes of its own, the subclass observes this class's declarations. From
// its first declaration onwards, it owns a copy of them, and neither class's declarations
// affect the other's.
func (class *Class) Subclass(name string, opts ...ClassOption) (sub *Class) {
	sub = &Class{name: name, parent: class, cfg: class.cfg, degree: class.degree}
	for _, opt := range opts {
		opt(sub)
	}
	return
}

func (class *Class) Name() string {
	return class.name
}

func (class *Class) Parent() *Class {
	return class.parent
}

func newState(degree int) *state {
	return &state{
		registry:    registry.New(degree),
		accessors:   map[string]accessor{},
		classValues: map[string]func() any{},
	}
}

func (st *state) clone() *state {
	return &state{
		registry:    st.registry.Clone(),
		accessors:   maps.Clone(st.accessors),
		classValues: maps.Clone(st.classValues),
	}
}

// current returns the state of the nearest class in the chain that has any, or nil.
func (class *Class) current() *state {
	for c := class; c != nil; c = c.parent {
		if c.own != nil {
			return c.own
		}
	}
	return nil
}

// owned returns this class's own state, copying it from the nearest ancestor if need be.
func (class *Class) owned() *state {
	if class.own == nil {
		inherited := class.current()
		if inherited == nil {
			class.own = newState(class.degree)
		} else {
			class.own = inherited.clone()
		}
	}
	return class.own
}

func (class *Class) accessor(name string) (acc accessor, ok bool) {
	st := class.current()
	if st == nil {
		return
	}
	acc, ok = st.accessors[name]
	return
}

// Declare declares an attribute of the given type. The attribute's name, and the names of
// any accessors it generates, must not collide with those already declared.
func (class *Class) Declare(name string, typ Type, opts ...Option) (def *Definition, err error) {
	var options registry.Options
	for _, opt := range opts {
		opt(&options)
	}
	def, err = registry.NewDefinition(name, typ, options)
	if err != nil {
		return
	}
	accessors := generate(def)
	values := classValues(def)
	// Collisions are checked against the current state before copying it, so a rejected
	// declaration leaves a subclass reading through to its parent.
	if st := class.current(); st != nil {
		for key := range values {
			if _, ok := st.classValues[key]; ok {
				err = types.NewError(types.DuplicateAttribute, "name", key, "class", class.name)
				return
			}
		}
		for _, acc := range accessors {
			if owner, ok := st.registry.Owner(acc.name); ok {
				err = types.NewError(types.DuplicateAttribute, "name", acc.name, "declared", owner.Name(), "class", class.name)
				return
			}
		}
	}
	st := class.owned()
	err = st.registry.Declare(def)
	if err != nil {
		return
	}
	for _, acc := range accessors {
		st.accessors[acc.name] = acc
	}
	maps.Copy(st.classValues, values)
	return
}

func classValues(def *Definition) (values map[string]func() any) {
	values = map[string]func() any{}
	switch def.Type() {
	case sys.AttrTypeEnum:
		enum := def.Enum()
		values[def.Name()+"_enum"] = func() any { return enum }
		values[inflection.Plural(def.Name())] = func() any { return enum.Collection() }
	case sys.AttrTypeModel:
		typ := def.Model().Type
		values[def.Name()+"_model"] = func() any { return typ }
	}
	return
}

func (class *Class) String(name string, opts ...Option) (err error) {
	_, err = class.Declare(name, sys.AttrTypeString, opts...)
	return
}

func (class *Class) Text(name string, opts ...Option) (err error) {
	_, err = class.Declare(name, sys.AttrTypeText, opts...)
	return
}

func (class *Class) Integer(name string, opts ...Option) (err error) {
	_, err = class.Declare(name, sys.AttrTypeInteger, opts...)
	return
}

func (class *Class) Decimal(name string, opts ...Option) (err error) {
	_, err = class.Declare(name, sys.AttrTypeDecimal, opts...)
	return
}

func (class *Class) Date(name string, opts ...Option) (err error) {
	_, err = class.Declare(name, sys.AttrTypeDate, opts...)
	return
}

func (class *Class) Time(name string, opts ...Option) (err error) {
	_, err = class.Declare(name, sys.AttrTypeTime, opts...)
	return
}

// DateRange declares a date range, which generates name, name_from, and name_to accessors.
func (class *Class) DateRange(name string, opts ...Option) (err error) {
	_, err = class.Declare(name, sys.AttrTypeDateRange, opts...)
	return
}

func (class *Class) Boolean(name string, opts ...Option) (err error) {
	_, err = class.Declare(name, sys.AttrTypeBoolean, opts...)
	return
}

// Enum declares an enum attribute, which generates the class values name_enum and the
// plural of name, e.g. people for person.
func (class *Class) Enum(name string, enum Enum, opts ...Option) (err error) {
	opts = append([]Option{WithEnum(enum)}, opts...)
	_, err = class.Declare(name, sys.AttrTypeEnum, opts...)
	return
}

// Array declares an array attribute, whose elements are coerced by the Of option, if any.
func (class *Class) Array(name string, opts ...Option) (err error) {
	_, err = class.Declare(name, sys.AttrTypeArray, opts...)
	return
}

// Hash declares a hash attribute, whose values are coerced by the Of option, if any.
func (class *Class) Hash(name string, opts ...Option) (err error) {
	_, err = class.Declare(name, sys.AttrTypeHash, opts...)
	return
}

// Model declares a model attribute, which generates the class value name_model.
func (class *Class) Model(name string, model *Model, opts ...Option) (err error) {
	opts = append([]Option{WithModel(model)}, opts...)
	_, err = class.Declare(name, sys.AttrTypeModel, opts...)
	return
}

func (class *Class) Object(name string, opts ...Option) (err error) {
	_, err = class.Declare(name, sys.AttrTypeObject, opts...)
	return
}

// Attributes returns the class's definitions in declaration order.
func (class *Class) Attributes() (defs []*Definition) {
	st := class.current()
	if st == nil {
		defs = []*Definition{}
		return
	}
	defs = st.registry.Definitions()
	return
}

// ColumnForAttribute returns the definition of the named attribute.
func (class *Class) ColumnForAttribute(name string) (def *Definition, err error) {
	st := class.current()
	if st == nil {
		err = types.NewError(types.AttributeNotFound, "name", name, "class", class.name)
		return
	}
	def, err = st.registry.Column(name)
	return
}

// Accessors returns the names of every instance accessor, in ascending order.
func (class *Class) Accessors() (names []string) {
	st := class.current()
	if st == nil {
		names = []string{}
		return
	}
	names = st.registry.Accessors()
	return
}

// EnumFor returns the enum type of the named enum attribute.
func (class *Class) EnumFor(name string) (enum Enum, err error) {
	def, err := class.ColumnForAttribute(name)
	if err != nil {
		return
	}
	enum = def.Enum()
	if enum == nil {
		err = types.NewError("attributes.notEnum", "name", name, "type", def.Type())
	}
	return
}

// Collection returns the members of the named enum attribute's enum type.
func (class *Class) Collection(name string) (members []any, err error) {
	enum, err := class.EnumFor(name)
	if err != nil {
		return
	}
	members = enum.Collection()
	return
}

// ModelFor returns the model type of the named model attribute.
func (class *Class) ModelFor(name string) (typ reflect.Type, err error) {
	def, err := class.ColumnForAttribute(name)
	if err != nil {
		return
	}
	if def.Model() == nil {
		err = types.NewError("attributes.notModel", "name", name, "type", def.Type())
		return
	}
	typ = def.Model().Type
	return
}

// ClassValue returns the value of a generated class-level accessor: name_enum and the
// plural of name for enums, name_model for models.
func (class *Class) ClassValue(accessor string) (value any, err error) {
	st := class.current()
	if st != nil {
		if fn, ok := st.classValues[accessor]; ok {
			value = fn()
			return
		}
	}
	err = types.NewError(types.AttributeNotFound, "name", accessor, "class", class.name)
	return
}

// Setter assigns a raw value to an instance's attribute.
type Setter func(inst *Instance, raw any) error

// Intercept wraps the named accessor's setter. The wrapper may transform the raw value,
// refuse it with an error, or decline to call the next setter at all. Intercepting a
// subclass's setter does not affect its parent.
func (class *Class) Intercept(name string, wrap func(next Setter) Setter) (err error) {
	if _, ok := class.accessor(name); !ok {
		err = types.NewError(types.AttributeNotFound, "name", name, "class", class.name)
		return
	}
	st := class.owned()
	acc := st.accessors[name]
	acc.set = wrap(acc.set)
	st.accessors[name] = acc
	return
}
