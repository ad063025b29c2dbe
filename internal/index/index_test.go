package index

import (
	"testing"

	"github.com/dball/riveter/internal/iterator"
	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	idx := NewBTreeIndex[string, int](4)
	assert.False(t, idx.Insert("b", 2))
	assert.True(t, idx.Insert("b", 3))
	assert.False(t, idx.Insert("a", 1))

	v, ok := idx.Find("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v, "an extant entry retains its value")
	_, ok = idx.Find("c")
	assert.False(t, ok)
	assert.Equal(t, 2, idx.Len())

	entries := iterator.Collect[Entry[string, int]](idx)
	assert.Equal(t, []Entry[string, int]{{"a", 1}, {"b", 2}}, entries)
}

func TestClone(t *testing.T) {
	idx := NewBTreeIndex[string, int](4)
	idx.Insert("shared", 1)
	clone := idx.Clone()

	idx.Insert("original", 2)
	clone.Insert("clone", 3)
	assert.False(t, clone.Insert("shared", 4), "a clone retains the entries it was cloned with")

	_, ok := idx.Find("clone")
	assert.False(t, ok)
	_, ok = clone.Find("original")
	assert.False(t, ok)
	_, ok = idx.Find("shared")
	assert.True(t, ok)
}

func TestEarlyTermination(t *testing.T) {
	idx := NewBTreeIndex[int64, string](2)
	for i := int64(0); i < 100; i++ {
		idx.Insert(i, "")
	}
	seen := 0
	idx.Each(func(Entry[int64, string]) bool {
		seen++
		return seen < 10
	})
	assert.Equal(t, 10, seen)
}
