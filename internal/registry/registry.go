package registry

import (
	"github.com/dball/riveter/internal/index"
	"github.com/dball/riveter/internal/iterator"
	. "github.com/dball/riveter/internal/types"
	"golang.org/x/exp/slices"
)

// DefaultDegree is the btree degree of registry indexes.
const DefaultDegree = 8

// Registry is an ordered collection of definitions with unique names. Every accessor name a
// definition generates is reserved, so no declaration can shadow another's accessors.
//
// Registries are not safe for concurrent declaration.
type Registry struct {
	definitions []*Definition
	// accessors resolves every accessor name to the definition that generated it.
	accessors index.Index[string, *Definition]
}

var _ iterator.Collection[*Definition] = (*Registry)(nil)

// New returns an empty registry whose index has the given btree degree.
func New(degree int) (r *Registry) {
	if degree < 2 {
		degree = DefaultDegree
	}
	r = &Registry{accessors: index.NewBTreeIndex[string, *Definition](degree)}
	return
}

// Declare appends the definition. If any of its accessor names is already present, the
// registry is unchanged and a DuplicateAttribute error is returned.
func (r *Registry) Declare(def *Definition) (err error) {
	names := def.Accessors()
	for _, name := range names {
		extant, ok := r.accessors.Find(name)
		if ok {
			err = NewError(DuplicateAttribute, "name", name, "declared", extant.Name())
			return
		}
	}
	for _, name := range names {
		r.accessors.Insert(name, def)
	}
	r.definitions = append(r.definitions, def)
	return
}

// Column returns the definition declared with the given name.
func (r *Registry) Column(name string) (def *Definition, err error) {
	def, ok := r.accessors.Find(name)
	if !ok || def.Name() != name {
		def = nil
		err = NewError(AttributeNotFound, "name", name)
	}
	return
}

// Owner returns the definition that generated the named accessor.
func (r *Registry) Owner(accessor string) (def *Definition, ok bool) {
	def, ok = r.accessors.Find(accessor)
	return
}

// Each visits the definitions in declaration order.
func (r *Registry) Each(accept iterator.Accept[*Definition]) {
	iterator.Slice[*Definition](r.definitions).Each(accept)
}

// Definitions returns the definitions in declaration order.
func (r *Registry) Definitions() []*Definition {
	return iterator.Collect[*Definition](r)
}

// Accessors returns every accessor name in ascending order.
func (r *Registry) Accessors() (names []string) {
	names = make([]string, 0, r.accessors.Len())
	r.accessors.Each(func(entry index.Entry[string, *Definition]) bool {
		names = append(names, entry.Key)
		return true
	})
	return
}

// Clone returns a copy of the registry. Both may be declared upon hereafter without either
// affecting the other. Definitions are immutable and so are shared.
func (r *Registry) Clone() (clone *Registry) {
	clone = &Registry{
		definitions: slices.Clone(r.definitions),
		accessors:   r.accessors.Clone(),
	}
	return
}
