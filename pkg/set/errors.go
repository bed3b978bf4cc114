package set

import "fmt"

/* Operation names reported by ErrInvalidArgument. */
const (
	OpFromSlice    = "FromSlice"
	OpFromIterator = "FromIterator"
	OpUnion        = "Set+Set"
	OpDifference   = "Set-Set"
	OpIntersect    = "Set*Set"
	OpSuperset     = "Set>=Set"
	OpSubset       = "Set<=Set"
)

/* Error returned when an operation is handed a nil set or a nil sequence where one is required.
Op names the operation that rejected the argument. */
type ErrInvalidArgument struct {
	Op string
}

func (e *ErrInvalidArgument) Error() string {
	return fmt.Sprintf("set: invalid argument: %s requires non-nil operands", e.Op)
}

/* Any *ErrInvalidArgument matches any other, regardless of Op. */
func (e *ErrInvalidArgument) Is(target error) bool {
	_, ok := target.(*ErrInvalidArgument)
	return ok
}
