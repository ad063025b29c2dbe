// Package schema declares classes from YAML schema documents.
//
// A document names the class, optionally the location in which its times are parsed and
// its enum policy, fixtures for its model references, and its attributes in order:
//
//	class: Order
//	location: America/New_York
//	models:
//	  Product:
//	    "1": {name: Widget}
//	attributes:
//	  - {name: status, type: enum, enum: {name: Status, members: [Draft, Placed]}, default: Draft}
//	  - {name: items, type: array, of: integer}
//	  - {name: product, type: model, model: Product, required: true}
//	  - {name: term, type: date_range, between: 2000-01-01..2100-01-01}
package schema

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"time"
	_ "time/tzdata"

	. "github.com/dball/riveter/internal/types"
	"github.com/dball/riveter/pkg/attributes"
	"gopkg.in/yaml.v3"
)

// Document is a schema document.
type Document struct {
	Class        string                               `yaml:"class"`
	Location     string                               `yaml:"location,omitempty"`
	LenientEnums bool                                 `yaml:"lenient_enums,omitempty"`
	Models       map[string]map[string]map[string]any `yaml:"models,omitempty"`
	Attributes   []Attribute                          `yaml:"attributes"`
}

// Attribute is the declaration of one attribute.
type Attribute struct {
	Name     string    `yaml:"name"`
	Type     string    `yaml:"type"`
	Default  any       `yaml:"default,omitempty"`
	Required bool      `yaml:"required,omitempty"`
	Of       string    `yaml:"of,omitempty"`
	Enum     *EnumType `yaml:"enum,omitempty"`
	Model    string    `yaml:"model,omitempty"`
	Between  string    `yaml:"between,omitempty"`
	Lenient  bool      `yaml:"lenient,omitempty"`
	Strict   bool      `yaml:"strict,omitempty"`
}

// EnumType is an enum given by its member keys.
type EnumType struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

// Fixture is a model instance given in a schema document.
type Fixture struct {
	Model  string
	ID     string
	Fields map[string]any
}

func (fixture *Fixture) String() string {
	return fmt.Sprintf("%s#%s", fixture.Model, fixture.ID)
}

// FixtureType is the model type of model attributes declared in schema documents.
var FixtureType = reflect.TypeOf((*Fixture)(nil))

// Decode reads a schema document, rejecting unknown fields.
func Decode(r io.Reader) (doc Document, err error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	err = decoder.Decode(&doc)
	if errors.Is(err, io.EOF) {
		err = NewError("schema.empty")
	}
	return
}

// Load reads a schema document and declares its class. Options are applied after the
// document's own settings.
func Load(r io.Reader, opts ...attributes.ClassOption) (class *attributes.Class, err error) {
	doc, err := Decode(r)
	if err != nil {
		return
	}
	class, err = doc.Build(opts...)
	return
}

// Build declares the document's class.
func (doc Document) Build(opts ...attributes.ClassOption) (class *attributes.Class, err error) {
	if doc.Class == "" {
		err = NewError("schema.missingClass")
		return
	}
	var classOpts []attributes.ClassOption
	if doc.Location != "" {
		loc, locErr := time.LoadLocation(doc.Location)
		if locErr != nil {
			err = NewError("schema.invalidLocation", "location", doc.Location, "error", locErr)
			return
		}
		classOpts = append(classOpts, attributes.WithLocation(loc))
	}
	if doc.LenientEnums {
		classOpts = append(classOpts, attributes.WithLenientEnums())
	}
	classOpts = append(classOpts, opts...)
	class = attributes.NewClass(doc.Class, classOpts...)
	for _, attr := range doc.Attributes {
		err = doc.declare(class, attr)
		if err != nil {
			class = nil
			return
		}
	}
	return
}

func (doc Document) declare(class *attributes.Class, attr Attribute) (err error) {
	typ, err := attributes.ParseType(attr.Type)
	if err != nil {
		return
	}
	var opts []attributes.Option
	if attr.Default != nil {
		opts = append(opts, attributes.Default(attr.Default))
	}
	if attr.Required {
		opts = append(opts, attributes.Required())
	}
	if attr.Of != "" {
		var of attributes.Type
		of, err = attributes.ParseType(attr.Of)
		if err != nil {
			return
		}
		opts = append(opts, attributes.Of(of))
	}
	if attr.Enum != nil {
		opts = append(opts, attributes.WithEnum(attributes.NewEnum(attr.Enum.Name, attr.Enum.Members...)))
	}
	if attr.Model != "" {
		var model *attributes.Model
		model, err = doc.model(attr.Model)
		if err != nil {
			return
		}
		opts = append(opts, attributes.WithModel(model))
	}
	if attr.Between != "" {
		var bounds DateRange
		bounds, err = ParseDateRange(attr.Between)
		if err != nil {
			return
		}
		opts = append(opts, attributes.Between(bounds.From, bounds.To))
	}
	switch {
	case attr.Lenient && attr.Strict:
		err = NewError("schema.conflictingPolicies", "name", attr.Name)
		return
	case attr.Lenient:
		opts = append(opts, attributes.Lenient())
	case attr.Strict:
		opts = append(opts, attributes.Strict())
	}
	_, err = class.Declare(attr.Name, typ, opts...)
	return
}

// model returns a reference to the named model, whose instances are the document's
// fixtures. Identifiers are matched by their text, and fixtures of other models are
// resolved as identifiers, which match nothing.
func (doc Document) model(name string) (model *attributes.Model, err error) {
	records, ok := doc.Models[name]
	if !ok {
		err = NewError("schema.unknownModel", "model", name)
		return
	}
	fixtures := make(map[string]*Fixture, len(records))
	for id, fields := range records {
		fixtures[id] = &Fixture{Model: name, ID: id, Fields: fields}
	}
	finder := attributes.FinderFunc(func(id any) (found any, err error) {
		fixture, ok := fixtures[fmt.Sprint(id)]
		if ok {
			found = fixture
		}
		return
	})
	accepts := func(value any) bool {
		fixture, ok := value.(*Fixture)
		return ok && fixture != nil && fixture.Model == name
	}
	model = &attributes.Model{Type: FixtureType, Finder: finder, Accepts: accepts}
	return
}
