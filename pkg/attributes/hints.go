package attributes

import (
	"github.com/dball/riveter/internal/iterator"
	"github.com/dball/riveter/internal/sys"
)

// HintKind names a kind of validation an external validator should apply.
type HintKind string

const (
	HintPresence     HintKind = "presence"
	HintNumericality HintKind = "numericality"
	HintTimeliness   HintKind = "timeliness"
	HintDateRange    HintKind = "date_range"
	HintInclusion    HintKind = "inclusion"
)

// Hint describes a validation implied by an attribute's declaration.
type Hint struct {
	// Attribute is the name of the accessor to validate.
	Attribute string
	Kind      HintKind
	// Members are the allowed members of an inclusion.
	Members []any
	// Bounds are the allowed bounds of a date range, if declared.
	Bounds *DateRange
}

// Hints returns the validations implied by the class's declarations, in declaration order.
// Attributes are never validated here.
func (class *Class) Hints() []Hint {
	defs := iterator.Slice[*Definition](class.Attributes())
	return iterator.Reduce[*Definition](defs, appendHints, []Hint{})
}

func appendHints(hints []Hint, def *Definition) []Hint {
	name := def.Name()
	if def.Required() {
		hints = append(hints, Hint{Attribute: name, Kind: HintPresence})
	}
	switch {
	case sys.IsNumeric(def.Type()):
		hints = append(hints, Hint{Attribute: name, Kind: HintNumericality})
	case def.Type() == sys.AttrTypeDateRange:
		hint := Hint{Attribute: name, Kind: HintDateRange}
		if bounds, ok := def.Bounds(); ok {
			hint.Bounds = &bounds
		}
		hints = append(hints,
			hint,
			Hint{Attribute: def.FromName(), Kind: HintTimeliness},
			Hint{Attribute: def.ToName(), Kind: HintTimeliness},
		)
	case sys.IsTemporal(def.Type()):
		hints = append(hints, Hint{Attribute: name, Kind: HintTimeliness})
	case def.Type() == sys.AttrTypeEnum:
		hints = append(hints, Hint{Attribute: name, Kind: HintInclusion, Members: def.Enum().Collection()})
	}
	return hints
}
