// Package iterator provides forwards-only traversal over enumerable collections,
// allowing for early termination.
package iterator

// Accept is a predicate that receives a value from a collection
// and returns true if more values are desired.
type Accept[T any] func(T) bool

// Collection is a source for iterable values.
type Collection[T any] interface {
	Each(Accept[T])
}

// Slice is a wrapper type for slices.
type Slice[T any] []T

func (slice Slice[T]) Each(accept Accept[T]) {
	for _, value := range slice {
		if !accept(value) {
			return
		}
	}
}

// Collect returns a slice of the values in the collection, never nil.
func Collect[T any](coll Collection[T]) []T {
	values := []T{}
	coll.Each(func(value T) bool {
		values = append(values, value)
		return true
	})
	return values
}

// Reduce fully reduces the collection by adding the values sequentially to the given init value.
func Reduce[T any, U any](coll Collection[T], add func(U, T) U, init U) U {
	result := init
	coll.Each(func(value T) bool {
		result = add(result, value)
		return true
	})
	return result
}

// Find returns the first value for which the predicate is true, if any.
func Find[T any](coll Collection[T], pred func(T) bool) (match T, ok bool) {
	coll.Each(func(value T) bool {
		if pred(value) {
			match = value
			ok = true
			return false
		}
		return true
	})
	return
}

type filtered[T any] struct {
	coll Collection[T]
	pred func(T) bool
}

func (f filtered[T]) Each(accept Accept[T]) {
	f.coll.Each(func(value T) bool {
		if !f.pred(value) {
			return true
		}
		return accept(value)
	})
}

// Filter returns a lazy collection of the values for which the predicate is true.
func Filter[T any](coll Collection[T], pred func(T) bool) Collection[T] {
	return filtered[T]{coll: coll, pred: pred}
}
