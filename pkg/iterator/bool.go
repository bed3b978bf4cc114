package iterator

import (
	"fmt"

	uiterator "gitlab.com/kyle_anderson/go-utils/pkg/iterator"
)

/* Reports whether every element of the iterator is true, stopping at the first false one.
The iterator is closed before returning. */
func AllBool(it uiterator.Iterator[bool]) (bool, error) {
	defer it.Close()
loop:
	for {
		elem, err := it.Next()
		switch {
		case err == nil:
			if !elem {
				return false, nil
			}
		case err.IsDone():
			break loop
		default:
			return false, fmt.Errorf(`iterator errored: %w`, err)
		}
	}
	return true, nil
}

func predicateNilErr[E any](predicate func(E) bool) func(E) (bool, error) {
	return func(e E) (bool, error) { return predicate(e), nil }
}

/* Reports whether predicate holds for every element, closing the iterator before returning. */
func All[E any](it uiterator.Iterator[E], predicate func(E) bool) (bool, error) {
	return AllBool(uiterator.Map(it, predicateNilErr(predicate)))
}
