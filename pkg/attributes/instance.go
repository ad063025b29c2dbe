package attributes

import (
	"io"

	"github.com/dball/riveter/internal/coerce"
	"github.com/dball/riveter/internal/params"
	"github.com/dball/riveter/internal/structs/assemblers"
	"github.com/dball/riveter/internal/structs/shredder"
	"github.com/dball/riveter/internal/types"
)

// Instance holds typed attribute values, each of which has passed through its setter.
type Instance struct {
	class     *Class
	values    map[string]any
	persisted bool
}

// New returns an instance with the declared defaults assigned through their setters, in
// declaration order.
func (class *Class) New() (inst *Instance, err error) {
	inst = &Instance{class: class, values: map[string]any{}}
	for _, def := range class.Attributes() {
		if def.Default() == nil {
			continue
		}
		err = inst.Set(def.Name(), def.Default())
		if err != nil {
			inst = nil
			return
		}
	}
	return
}

func (inst *Instance) Class() *Class {
	return inst.class
}

// store coerces the raw value and writes it to the slot. Failed coercions leave the slot
// unchanged.
func (inst *Instance) store(slot string, raw any, target coerce.Target) (err error) {
	typed, err := coerce.Coerce(raw, target, inst.class.cfg)
	if err != nil {
		return
	}
	inst.values[slot] = typed
	return
}

func (inst *Instance) lookup(name string) (acc accessor, err error) {
	acc, ok := inst.class.accessor(name)
	if !ok {
		err = types.NewError(types.AttributeNotFound, "name", name, "class", inst.class.name)
	}
	return
}

// Get returns the named accessor's current value.
func (inst *Instance) Get(name string) (value any, err error) {
	acc, err := inst.lookup(name)
	if err != nil {
		return
	}
	value = acc.get(inst)
	return
}

// Set assigns the raw value through the named accessor's setter.
func (inst *Instance) Set(name string, raw any) (err error) {
	acc, err := inst.lookup(name)
	if err != nil {
		return
	}
	err = acc.set(inst, raw)
	return
}

// Present is true if the named accessor's value is neither nil nor the empty string.
func (inst *Instance) Present(name string) (present bool, err error) {
	value, err := inst.Get(name)
	if err != nil {
		return
	}
	present = !params.Blank(params.From(value))
	return
}

// Value returns the named accessor's value as a T. Nil values are the zero T.
func Value[T any](inst *Instance, name string) (value T, err error) {
	raw, err := inst.Get(name)
	if err != nil || raw == nil {
		return
	}
	value, ok := raw.(T)
	if !ok {
		err = types.NewError("attributes.typeMismatch", "name", name, "value", raw)
	}
	return
}

// Attributes returns the values of every accessor, including the endpoints of date ranges.
func (inst *Instance) Attributes() (values map[string]any) {
	names := inst.class.Accessors()
	values = make(map[string]any, len(names))
	for _, name := range names {
		acc, _ := inst.class.accessor(name)
		values[name] = acc.get(inst)
	}
	return
}

// Persisted is false, as instances are never saved.
func (inst *Instance) Persisted() bool {
	return inst.persisted
}

func (inst *Instance) ColumnForAttribute(name string) (def *Definition, err error) {
	return inst.class.ColumnForAttribute(name)
}

// FilterParams returns the params whose keys name accessors, in order. Nil params are
// empty, here and in the other stages of the pipeline.
func (inst *Instance) FilterParams(m *Params) *Params {
	return params.Filter(m, func(key string) bool {
		_, ok := inst.class.accessor(key)
		return ok
	})
}

// UnknownParams returns the keys of the params that name no accessor, in order.
func (inst *Instance) UnknownParams(m *Params) (keys []string) {
	keys = []string{}
	for _, key := range m.Keys() {
		if _, ok := inst.class.accessor(key); !ok {
			keys = append(keys, key)
		}
	}
	return
}

// CleanParams returns the params with blank values removed at every depth.
func (inst *Instance) CleanParams(m *Params) *Params {
	return params.CleanMapping(m)
}

// ApplyParams assigns each param through its accessor's setter, in order. An unknown key
// fails with an UnknownAttribute error, and a setter's error is returned as is. Either
// halts the assignment, leaving the prior assignments in effect.
func (inst *Instance) ApplyParams(m *Params) (err error) {
	m.Each(func(entry params.Entry) bool {
		acc, ok := inst.class.accessor(entry.Key)
		if !ok {
			err = types.NewError(types.UnknownAttribute, "name", entry.Key, "class", inst.class.name)
			return false
		}
		err = acc.set(inst, entry.Value.Native())
		return err == nil
	})
	return
}

// AssignParams cleans, filters, and applies the raw params.
func (inst *Instance) AssignParams(raw map[string]any) error {
	return inst.ApplyParams(inst.FilterParams(inst.CleanParams(params.FromMap(raw))))
}

// AssignStruct cleans, filters, and applies the attr-tagged fields of the struct, or of
// the struct to which it points.
func (inst *Instance) AssignStruct(v any) (err error) {
	fields, err := shredder.Shred(analyzer, v)
	if err != nil {
		return
	}
	err = inst.ApplyParams(inst.FilterParams(inst.CleanParams(fields)))
	return
}

// Decode writes the accessor values into the attr-tagged fields of the struct to which ptr
// points.
func (inst *Instance) Decode(ptr any) error {
	return assemblers.Assemble(analyzer, ptr, func(name string) (value any, ok bool) {
		acc, ok := inst.class.accessor(name)
		if ok {
			value = acc.get(inst)
		}
		return
	})
}

// Params is an insertion-ordered mapping of untrusted input.
type Params = params.Mapping

// NewParams returns params of the given alternating keys and values, in order.
func NewParams(args ...any) *Params {
	return params.Map(args...)
}

// ParamsOf returns params of the map's entries, in key order.
func ParamsOf(values map[string]any) *Params {
	return params.FromMap(values)
}

// DecodeParams reads params from a YAML or JSON mapping, in document order.
func DecodeParams(r io.Reader) (*Params, error) {
	return params.Decode(r)
}
