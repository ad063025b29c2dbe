package attributes

import (
	"github.com/dball/riveter/internal/coerce"
	"github.com/dball/riveter/internal/sys"
)

// accessor is a generated getter and setter pair.
type accessor struct {
	name string
	def  *Definition
	get  func(inst *Instance) any
	set  Setter
}

// generate returns the accessors for the definition, the attribute's own first.
func generate(def *Definition) (accessors []accessor) {
	name := def.Name()
	if def.Type() != sys.AttrTypeDateRange {
		target := def.Target()
		accessors = []accessor{{
			name: name,
			def:  def,
			get:  func(inst *Instance) any { return inst.values[name] },
			set:  func(inst *Instance, raw any) error { return inst.store(name, raw, target) },
		}}
		return
	}
	// Date ranges store only their endpoints.
	from, to := def.FromName(), def.ToName()
	endpoint := func(slot string) accessor {
		target := coerce.Target{Type: sys.AttrTypeDate, Attribute: slot}
		return accessor{
			name: slot,
			def:  def,
			get:  func(inst *Instance) any { return inst.values[slot] },
			set:  func(inst *Instance, raw any) error { return inst.store(slot, raw, target) },
		}
	}
	accessors = []accessor{
		{
			name: name,
			def:  def,
			get: func(inst *Instance) any {
				f, t := inst.values[from], inst.values[to]
				if f == nil || t == nil {
					return nil
				}
				return DateRange{From: f.(Date), To: t.(Date)}
			},
			set: func(inst *Instance, raw any) error {
				inst.values[from], inst.values[to] = coerce.Endpoints(raw, inst.class.cfg)
				return nil
			},
		},
		endpoint(from),
		endpoint(to),
	}
	return
}
