// Package index provides ordered, cloneable indexes implemented on btrees.
package index

import (
	"github.com/dball/riveter/internal/iterator"
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// Entry is a keyed value in an index.
type Entry[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

// Index instances maintain sorted sets of keyed entries. Indexes are safe for concurrent read
// operations but may not be safe for concurrent write operations, including cloning.
type Index[K constraints.Ordered, V any] interface {
	// Find returns the value for the given key, if any.
	Find(key K) (value V, extant bool)
	// Insert ensures the key is present in the index, returning true if it was already. An extant
	// entry retains its value.
	Insert(key K, value V) (extant bool)
	// Len returns the number of entries.
	Len() int
	// Clone returns a copy of the index. Both the original and the clone may be changed hereafter
	// without either affecting the other.
	Clone() (clone Index[K, V])
	// Each visits the entries in ascending key order.
	Each(accept iterator.Accept[Entry[K, V]])
}

type btreeIndex[K constraints.Ordered, V any] struct {
	tree *btree.BTreeG[Entry[K, V]]
}

var _ iterator.Collection[Entry[string, any]] = (Index[string, any])(nil)

func lessKey[K constraints.Ordered, V any](e1 Entry[K, V], e2 Entry[K, V]) bool {
	return e1.Key < e2.Key
}

// NewBTreeIndex returns a btree index of the given degree.
func NewBTreeIndex[K constraints.Ordered, V any](degree int) (index Index[K, V]) {
	index = &btreeIndex[K, V]{tree: btree.NewG(degree, btree.LessFunc[Entry[K, V]](lessKey[K, V]))}
	return
}

func (idx *btreeIndex[K, V]) Find(key K) (value V, extant bool) {
	entry, extant := idx.tree.Get(Entry[K, V]{Key: key})
	if extant {
		value = entry.Value
	}
	return
}

func (idx *btreeIndex[K, V]) Insert(key K, value V) (extant bool) {
	extant = idx.tree.Has(Entry[K, V]{Key: key})
	if !extant {
		// ReplaceOrInsert would overwrite an extant value, while we choose to retain it.
		idx.tree.ReplaceOrInsert(Entry[K, V]{Key: key, Value: value})
	}
	return
}

func (idx *btreeIndex[K, V]) Len() int {
	return idx.tree.Len()
}

func (idx *btreeIndex[K, V]) Clone() (clone Index[K, V]) {
	return &btreeIndex[K, V]{tree: idx.tree.Clone()}
}

func (idx *btreeIndex[K, V]) Each(accept iterator.Accept[Entry[K, V]]) {
	idx.tree.Ascend(btree.ItemIteratorG[Entry[K, V]](accept))
}
