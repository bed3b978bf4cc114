package set

import (
	"fmt"

	uiterator "gitlab.com/kyle_anderson/go-utils/pkg/iterator"
)

/* Copies s1, then applies the primitive to the copy with the elements of s2. Neither operand is modified. */
func combine[T comparable](op string, s1, s2 *Set[T], apply func(*Set[T], uiterator.Iterator[T]) error) (*Set[T], error) {
	if s1 == nil || s2 == nil {
		return nil, &ErrInvalidArgument{op}
	}
	result := s1.Clone()
	if err := apply(result, s2.It()); err != nil {
		return nil, fmt.Errorf(`set: %s failed: %w`, op, err)
	}
	return result, nil
}

/* Returns s1 ∪ s2. */
func Union[T comparable](s1, s2 *Set[T]) (*Set[T], error) {
	return combine(OpUnion, s1, s2, (*Set[T]).addAll)
}

/* Returns s1 \ s2. */
func Difference[T comparable](s1, s2 *Set[T]) (*Set[T], error) {
	return combine(OpDifference, s1, s2, (*Set[T]).removeAll)
}

/* Returns s1 ∩ s2. */
func Intersect[T comparable](s1, s2 *Set[T]) (*Set[T], error) {
	return combine(OpIntersect, s1, s2, (*Set[T]).retainAll)
}

/* Reports whether every element of s2 is in s1. */
func IsSupersetOf[T comparable](s1, s2 *Set[T]) (bool, error) {
	if s1 == nil || s2 == nil {
		return false, &ErrInvalidArgument{OpSuperset}
	}
	return s1.containsAll(s2.It())
}

/* Reports whether every element of s1 is in s2. */
func IsSubsetOf[T comparable](s1, s2 *Set[T]) (bool, error) {
	if s1 == nil || s2 == nil {
		return false, &ErrInvalidArgument{OpSubset}
	}
	return s2.containsAll(s1.It())
}

/* Reports whether s1 and s2 are both nil, or both hold exactly the same elements. */
func Equal[T comparable](s1, s2 *Set[T]) bool {
	switch {
	case s1 == nil || s2 == nil:
		return s1 == s2
	case s1 == s2:
		return true
	case s1.Len() != s2.Len():
		return false
	}
	contained, err := s1.containsAll(s2.It())
	mustNotFail(err)
	return contained
}

func NotEqual[T comparable](s1, s2 *Set[T]) bool {
	return !Equal(s1, s2)
}

func (s *Set[T]) Union(other *Set[T]) (*Set[T], error)      { return Union(s, other) }
func (s *Set[T]) Difference(other *Set[T]) (*Set[T], error) { return Difference(s, other) }
func (s *Set[T]) Intersect(other *Set[T]) (*Set[T], error)  { return Intersect(s, other) }
func (s *Set[T]) IsSupersetOf(other *Set[T]) (bool, error)  { return IsSupersetOf(s, other) }
func (s *Set[T]) IsSubsetOf(other *Set[T]) (bool, error)    { return IsSubsetOf(s, other) }
