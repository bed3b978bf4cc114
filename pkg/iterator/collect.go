/*
Helpers for consuming iterators from gitlab.com/kyle_anderson/go-utils/pkg/iterator.
Every helper takes ownership of the iterator it is given and closes it.
*/
package iterator

import (
	"fmt"

	uiterator "gitlab.com/kyle_anderson/go-utils/pkg/iterator"
)

/* Calls fn on every element of it, in iteration order. */
func ForEach[E any](it uiterator.Iterator[E], fn func(E)) error {
	defer it.Close()
	for {
		elem, err := it.Next()
		switch {
		case err == nil:
			fn(elem)
		case err.IsDone():
			return nil
		default:
			return fmt.Errorf(`iterator.ForEach: iterator errored: %w`, err)
		}
	}
}

/* Drains it into a slice. The slice is never nil, even when the iterator is empty. */
func Collect[E any](it uiterator.Iterator[E]) ([]E, error) {
	result := make([]E, 0)
	if err := ForEach(it, func(e E) { result = append(result, e) }); err != nil {
		return nil, err
	}
	return result, nil
}
