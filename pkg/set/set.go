/*
Package set provides Set, a generic unordered collection of unique elements with algebraic operations:
union, difference, intersection, subset and superset tests, and content equality.

A nil *Set is an absent set. Operations that need a set report *ErrInvalidArgument when given one,
except Equal, under which two absent sets are equal.
*/
package set

import (
	"fmt"
	"strings"

	uiterator "gitlab.com/kyle_anderson/go-utils/pkg/iterator"
	uset "gitlab.com/kyle_anderson/go-utils/pkg/set"

	"gitlab.com/kyle_anderson/gaur/pkg/iterator"
)

type Set[T comparable] struct {
	elements uset.Set[T]
}

func empty[T comparable]() *Set[T] {
	return &Set[T]{newStorage[T]()}
}

/*
Creates a set holding the given elements, each once.
New() and New(nilSlice...) both produce an empty set; use FromSlice to reject a nil slice.
*/
func New[T comparable](elems ...T) *Set[T] {
	if elems == nil {
		elems = []T{}
	}
	return Must(FromSlice(elems))
}

/* Creates a set holding the elements of elems, each once. A nil slice is rejected. */
func FromSlice[T comparable](elems []T) (*Set[T], error) {
	if elems == nil {
		return nil, &ErrInvalidArgument{OpFromSlice}
	}
	return FromIterator[T](uiterator.SliceIterator(elems))
}

/* Creates a set from the elements of it, closing it once consumed. A nil iterator is rejected. */
func FromIterator[T comparable](it uiterator.Iterator[T]) (*Set[T], error) {
	if it == nil {
		return nil, &ErrInvalidArgument{OpFromIterator}
	}
	s := empty[T]()
	if err := s.addAll(it); err != nil {
		return nil, fmt.Errorf(`set.FromIterator: failed to read elements: %w`, err)
	}
	return s, nil
}

/* Returns s, panicking if err is not nil. */
func Must[T comparable](s *Set[T], err error) *Set[T] {
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Set[T]) Len() int {
	return int(s.storage().Size())
}

func (s *Set[T]) Contains(elem T) bool {
	return s.storage().Contains(elem)
}

/* Add and Remove require a non-nil receiver; an absent set cannot be modified. */
func (s *Set[T]) Add(elem T) {
	s.storage().Add(elem)
}

func (s *Set[T]) Remove(elem T) {
	s.storage().Remove(elem)
}

/* Iterates through the elements in no particular order. The caller must consume the iterator
to the end before modifying the set, then close it. Use Items for a snapshot instead. */
func (s *Set[T]) It() uiterator.Iterator[T] {
	return s.storage().It()
}

/* Returns the elements in no particular order. */
func (s *Set[T]) Items() []T {
	items, err := iterator.Collect(s.It())
	mustNotFail(err)
	return items
}

/* Returns an independent copy of s. */
func (s *Set[T]) Clone() *Set[T] {
	clone := empty[T]()
	mustNotFail(clone.addAll(s.It()))
	return clone
}

/* Reports whether other is a set with the same elements as s. Values of any other type are never equal. */
func (s *Set[T]) Equals(other any) bool {
	switch o := other.(type) {
	case *Set[T]:
		return Equal(s, o)
	case Set[T]:
		return Equal(s, &o)
	default:
		return false
	}
}

/* Renders s as {e1,e2,...,en}. Element order follows the storage and is unspecified. */
func (s *Set[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	mustNotFail(iterator.ForEach(s.It(), func(elem T) {
		if !first {
			sb.WriteByte(',')
		}
		fmt.Fprint(&sb, elem)
		first = false
	}))
	sb.WriteByte('}')
	return sb.String()
}
