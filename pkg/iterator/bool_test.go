package iterator

import (
	"errors"
	"fmt"
	"testing"

	uiterator "gitlab.com/kyle_anderson/go-utils/pkg/iterator"
)

func TestAllBool(t *testing.T) {
	for testNo, test := range []struct {
		input    []bool
		expected bool
	}{
		{[]bool{}, true},
		{[]bool{true}, true},
		{[]bool{false, false, true, true}, false},
		{[]bool{true, true, false}, false},
		{make([]bool, 100), false},
	} {
		test := test // Capture
		t.Run(fmt.Sprint("case ", testNo), func(t *testing.T) {
			t.Log("test: ", test)
			it := &closeWrapper[bool]{Iterator: uiterator.SliceIterator(test.input)}
			received, err := AllBool(it)
			if err != nil {
				t.Errorf("unexpected error: %#v", err)
			} else if received != test.expected {
				t.Errorf("expected: %v, received: %v", test.expected, received)
			}
			if it.closed != 1 {
				t.Errorf(`expected iterator to be closed once, was closed %d times`, it.closed)
			}
		})
	}

	t.Run(`with an erroring iterator`, func(t *testing.T) {
		boom := errors.New(`boom`)
		it := uiterator.Map[int](uiterator.SliceIterator([]int{1}), func(int) (bool, error) { return false, boom })
		if _, err := AllBool(it); err == nil {
			t.Error(`expected error but did not receive one`)
		} else if !errors.Is(err, boom) {
			t.Errorf(`expected error to wrap boom, got: %v`, err)
		}
	})
}

func TestAll(t *testing.T) {
	isEven := func(n int) bool { return n%2 == 0 }
	for testNo, test := range []struct {
		input   []int
		allEven bool
	}{
		{[]int{}, true},
		{[]int{2, 4, 8}, true},
		{[]int{1, 3, 4}, false},
		{[]int{2, 4, 5}, false},
	} {
		test := test // Capture
		t.Run(fmt.Sprint("case ", testNo), func(t *testing.T) {
			it := &closeWrapper[int]{Iterator: uiterator.SliceIterator(test.input)}
			if all, err := All[int](it, isEven); err != nil {
				t.Errorf("unexpected error: %v", err)
			} else if all != test.allEven {
				t.Errorf("expected: %v, received: %v", test.allEven, all)
			}
			if it.closed != 1 {
				t.Errorf(`expected iterator to be closed once, was closed %d times`, it.closed)
			}
		})
	}
}
