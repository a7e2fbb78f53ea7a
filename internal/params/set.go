package params

import (
	"fmt"
	"strings"
)

// Set is an ordered collection of resolved parameter values for one launch.
// Iteration follows Registry order. A parameter with no stored value is
// absent, which is distinct from a stored false or zero.
type Set struct {
	values map[string]any
}

// NewSet returns an empty parameter set.
func NewSet() *Set {
	return &Set{values: make(map[string]any)}
}

// Put stores a value for the named parameter. The value's Go type must match
// the parameter's kind: string, int, float64, bool, or []string. List values
// are validated against the parameter's choices.
func (s *Set) Put(name string, value any) error {
	spec, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("unknown parameter %q", name)
	}

	switch spec.Kind {
	case KindString:
		if _, ok := value.(string); !ok {
			return kindMismatch(spec, "string", value)
		}
	case KindInt:
		if _, ok := value.(int); !ok {
			return kindMismatch(spec, "int", value)
		}
	case KindFloat:
		if _, ok := value.(float64); !ok {
			return kindMismatch(spec, "float", value)
		}
	case KindBool:
		if _, ok := value.(bool); !ok {
			return kindMismatch(spec, "bool", value)
		}
	case KindStringList:
		items, ok := value.([]string)
		if !ok {
			return kindMismatch(spec, "string list", value)
		}
		for _, item := range items {
			if !spec.Allows(item) {
				return fmt.Errorf("invalid value %q for %s: must be one of %s",
					item, spec.Name, strings.Join(spec.Choices, ", "))
			}
		}
	}

	s.values[name] = value
	return nil
}

// Get returns the stored value and whether the parameter is present.
func (s *Set) Get(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Has reports whether the named parameter has a stored value.
func (s *Set) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Len returns the number of present parameters.
func (s *Set) Len() int {
	return len(s.values)
}

// Walk visits every schema parameter in declaration order. Absent parameters
// are visited with present == false and a nil value.
func (s *Set) Walk(fn func(spec Spec, value any, present bool)) {
	for _, spec := range Registry() {
		v, ok := s.values[spec.Name]
		fn(spec, v, ok)
	}
}

func kindMismatch(spec Spec, want string, got any) error {
	return fmt.Errorf("parameter %s: expected %s, got %T", spec.Name, want, got)
}
