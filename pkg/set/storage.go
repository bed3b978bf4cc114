/* The storage primitives every set operation is built from. They work over the comparable set from
go-utils, which holds the elements. Each primitive takes ownership of, and closes, its iterator. */

package set

import (
	"fmt"

	uiterator "gitlab.com/kyle_anderson/go-utils/pkg/iterator"
	uset "gitlab.com/kyle_anderson/go-utils/pkg/set"

	"gitlab.com/kyle_anderson/gaur/pkg/iterator"
)

func newStorage[T comparable]() uset.Set[T] {
	return uset.NewComparable[T]()
}

/* The zero Set is empty and usable; its storage is allocated on first use. */
func (s *Set[T]) storage() uset.Set[T] {
	if s.elements == nil {
		s.elements = newStorage[T]()
	}
	return s.elements
}

/* Inserts every element of it, ignoring those already present. */
func (s *Set[T]) addAll(it uiterator.Iterator[T]) error {
	return iterator.ForEach(it, s.storage().Add)
}

/* Removes every element of it that is present. */
func (s *Set[T]) removeAll(it uiterator.Iterator[T]) error {
	return iterator.ForEach(it, s.storage().Remove)
}

/* Removes every element that does not appear in it. */
func (s *Set[T]) retainAll(it uiterator.Iterator[T]) error {
	keep := newStorage[T]()
	if err := iterator.ForEach(it, keep.Add); err != nil {
		return fmt.Errorf(`set.retainAll: failed to read retained elements: %w`, err)
	}
	/* Gather first; the storage must not change while it is being iterated. */
	var discard []T
	err := iterator.ForEach(s.storage().It(), func(elem T) {
		if !keep.Contains(elem) {
			discard = append(discard, elem)
		}
	})
	if err != nil {
		return fmt.Errorf(`set.retainAll: %w`, err)
	}
	for _, elem := range discard {
		s.storage().Remove(elem)
	}
	return nil
}

/* Reports whether every element of it is present.
The argument is drained before any lookup. A storage iterator that is closed early leaves its map
goroutine running, so it must never be abandoned half way. */
func (s *Set[T]) containsAll(it uiterator.Iterator[T]) (bool, error) {
	elems, err := iterator.Collect(it)
	if err != nil {
		return false, fmt.Errorf(`set.containsAll: %w`, err)
	}
	return iterator.All[T](uiterator.SliceIterator(elems), s.storage().Contains)
}

/* Sets are not expected to fail during iteration. If one does, something is badly wrong. */
func mustNotFail(err error) {
	if err != nil {
		panic(fmt.Errorf(`set: storage iteration failed: %w`, err))
	}
}
