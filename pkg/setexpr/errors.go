package setexpr

import "fmt"

/* Error returned when a set literal is not of the form {a,b,...}. */
type ErrMalformedLiteral struct {
	Literal string
}

func (e *ErrMalformedLiteral) Error() string {
	return fmt.Sprintf("setexpr: malformed set literal %q, expected {a,b,...}", e.Literal)
}

/* Error returned when an operand names a set that has not been defined. */
type ErrUnknownSet struct {
	Name string
}

func (e *ErrUnknownSet) Error() string { return fmt.Sprintf("setexpr: set %q is not defined", e.Name) }

/* Error returned when a set definition cannot be turned into a set. */
type ErrDefinition struct {
	Name string
	err  error
}

func (e *ErrDefinition) Error() string {
	return fmt.Sprintf("setexpr: invalid definition of set %q: %v", e.Name, e.err)
}
func (e *ErrDefinition) Unwrap() error { return e.err }
