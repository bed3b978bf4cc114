/*
setexpr: set expressions.
Reads sets of strings written as literals, such as {a,b,c}, or defined by name in a YAML document.
*/
package setexpr

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"gitlab.com/kyle_anderson/gaur/pkg/set"
)

var literalRegex = regexp.MustCompile(`^\{(?P<elems>.*)\}$`)

/* Parses a literal of the form {a,b,...}. Whitespace around the literal and around each element is ignored. */
func ParseLiteral(literal string) (*set.Set[string], error) {
	matches := literalRegex.FindStringSubmatch(strings.TrimSpace(literal))
	if matches == nil {
		return nil, &ErrMalformedLiteral{literal}
	}
	inner := strings.TrimSpace(matches[literalRegex.SubexpIndex("elems")])
	if inner == "" {
		return set.New[string](), nil
	}
	elems := strings.Split(inner, ",")
	for i, elem := range elems {
		elems[i] = strings.TrimSpace(elem)
		if elems[i] == "" || strings.ContainsAny(elems[i], "{}") {
			return nil, &ErrMalformedLiteral{literal}
		}
	}
	return set.FromSlice(elems)
}

/* Named sets, as loaded by LoadDefinitions. */
type Definitions map[string]*set.Set[string]

/*
Reads set definitions from a YAML mapping of set names to element lists:

	primes: [2, 3, 5, 7]
	evens: [2, 4, 6, 8]

Scalar elements of any type are kept in their textual form. An empty document defines no sets.
*/
func LoadDefinitions(r io.Reader) (Definitions, error) {
	var raw map[string][]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf(`setexpr.LoadDefinitions: failed to decode definitions: %w`, err)
	}
	defs := make(Definitions, len(raw))
	for name, elems := range raw {
		var strElems []string
		if elems != nil {
			strElems = make([]string, len(elems))
		}
		for i, elem := range elems {
			if elem == nil {
				return nil, &ErrDefinition{name, fmt.Errorf(`element %d is null`, i)}
			}
			strElems[i] = fmt.Sprint(elem)
		}
		s, err := set.FromSlice(strElems)
		if err != nil {
			return nil, &ErrDefinition{name, err}
		}
		defs[name] = s
	}
	return defs, nil
}

/* Resolves an operand, which is either a set literal or the name of a defined set.
Resolving the same name twice yields independent copies. */
func (d Definitions) Resolve(operand string) (*set.Set[string], error) {
	trimmed := strings.TrimSpace(operand)
	if strings.HasPrefix(trimmed, "{") {
		return ParseLiteral(trimmed)
	}
	if s, ok := d[trimmed]; ok {
		return s.Clone(), nil
	}
	return nil, &ErrUnknownSet{trimmed}
}
