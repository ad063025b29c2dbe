package attributes

import (
	"reflect"

	"github.com/dball/riveter/internal/structs/models"
	"github.com/dball/riveter/internal/types"
)

var analyzer = models.BuildCachingAnalyzer()

// DeclareStruct declares an attribute for each attr-tagged field of the struct type, in
// field order. Tags are of the form:
//
//	attr:"name,type=integer,default=1,required,of=integer,lenient"
//
// Types absent from tags are inferred from the field types. Enum and model attributes
// require collaborators that tags cannot express, which may be given as extra options
// keyed by attribute name. Extra options for names no field declares are an error, and
// nothing is declared.
func DeclareStruct(class *Class, typ reflect.Type, extra map[string][]Option) (defs []*Definition, err error) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	model, err := analyzer.Analyze(typ)
	if err != nil {
		return
	}
	for name := range extra {
		if _, ok := model.Attr(name); !ok {
			err = types.NewError("attributes.unknownField", "name", name, "type", typ)
			return
		}
	}
	defs = make([]*Definition, 0, len(model.AttrFields))
	for _, attr := range model.AttrFields {
		opts := make([]Option, 0, 4+len(extra[attr.Name]))
		if attr.HasDefault {
			opts = append(opts, Default(attr.Default))
		}
		if attr.Required {
			opts = append(opts, Required())
		}
		if attr.Of != 0 {
			opts = append(opts, Of(attr.Of))
		}
		switch {
		case attr.Lenient:
			opts = append(opts, Lenient())
		case attr.Strict:
			opts = append(opts, Strict())
		}
		opts = append(opts, extra[attr.Name]...)
		var def *Definition
		def, err = class.Declare(attr.Name, attr.Type, opts...)
		if err != nil {
			return
		}
		defs = append(defs, def)
	}
	return
}
