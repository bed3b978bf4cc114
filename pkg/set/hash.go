package set

import (
	"encoding/binary"
	"fmt"
	"hash"
	"io"
	"reflect"

	"github.com/OneOfOne/xxhash"
)

/* Elements implementing Hasher supply their own hash to Set.Hash.
Equal elements must return equal hashes. */
type Hasher interface {
	Hash() uint64
}

/*
Returns a hash of the contents of s, consistent with Equal: sets holding the same elements hash
the same regardless of insertion order. Element hashes are summed, so the order they are visited in
does not matter.
*/
func (s *Set[T]) Hash() (sum uint64) {
	h := xxhash.New64()
	for _, elem := range s.Items() {
		sum += hashElement(h, elem)
	}
	return
}

func hashElement[T comparable](h hash.Hash64, elem T) uint64 {
	var v any = elem
	if hasher, ok := v.(Hasher); ok {
		return hasher.Hash()
	}
	h.Reset()
	/* Switch on the kind so that named types hash like their underlying type. */
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		writeString(h, rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeNum(h, rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeNum(h, rv.Uint())
	/* -0 == +0, so both must hash alike; adding +0 turns -0 into +0. */
	case reflect.Float32, reflect.Float64:
		writeNum(h, rv.Float()+0)
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		writeNum(h, real(c)+0)
		writeNum(h, imag(c)+0)
	default:
		writeString(h, fmt.Sprintf("%#v", v))
	}
	return h.Sum64()
}

func writeNum[X int64 | uint64 | float64](h hash.Hash64, num X) {
	if err := binary.Write(h, binary.LittleEndian, num); err != nil {
		/* The write to the hash should not fail, if it does something's wrong. */
		panic(fmt.Errorf(`set.writeNum: failed to write number: %w`, err))
	}
}

func writeString(h hash.Hash64, s string) {
	if _, err := io.WriteString(h, s); err != nil {
		panic(fmt.Errorf(`set.writeString: failed to write string: %w`, err))
	}
}
