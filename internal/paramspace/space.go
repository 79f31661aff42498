// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package paramspace

import (
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

var (
	// ErrEmptyCandidates is reported by Validate for a parameter without values.
	ErrEmptyCandidates = errors.New("parameter has no candidate values")
	// ErrDuplicateParameter is returned when a parameter name is declared twice.
	ErrDuplicateParameter = errors.New("duplicate parameter")
	// ErrSpaceTooLarge is returned when the product exceeds MaxCombinations.
	ErrSpaceTooLarge = errors.New("parameter space too large")
)

// MaxCombinations bounds the number of state points, and so workspaces, a
// space may span.
const MaxCombinations = 1 << 24

// Parameter is a named list of candidate values.
type Parameter struct {
	Name        string
	Description string
	Values      []cty.Value
}

// Space is an ordered collection of parameters.
type Space struct {
	params []Parameter
	index  map[string]int
}

// NewSpace creates an empty parameter space.
func NewSpace() *Space {
	return &Space{index: make(map[string]int)}
}

// Add appends a parameter. Names must be unique and non-empty.
func (s *Space) Add(p Parameter) error {
	if p.Name == "" {
		return errors.New("parameter name must not be empty")
	}
	if _, exists := s.index[p.Name]; exists {
		return fmt.Errorf("%w %q", ErrDuplicateParameter, p.Name)
	}
	values := make([]cty.Value, len(p.Values))
	for i, v := range p.Values {
		if v == cty.NilVal {
			v = cty.NullVal(cty.DynamicPseudoType)
		}
		values[i] = v
	}
	p.Values = values

	s.index[p.Name] = len(s.params)
	s.params = append(s.params, p)
	return nil
}

// AddGo appends a parameter whose candidates are native Go values.
func (s *Space) AddGo(name string, values ...any) error {
	converted := make([]cty.Value, 0, len(values))
	for i, v := range values {
		cv, err := ToValue(v)
		if err != nil {
			return fmt.Errorf("parameter %q value %d: %w", name, i, err)
		}
		converted = append(converted, cv)
	}
	return s.Add(Parameter{Name: name, Values: converted})
}

// Parameters returns a copy of the declared parameters in order.
func (s *Space) Parameters() []Parameter {
	out := make([]Parameter, len(s.params))
	copy(out, s.params)
	return out
}

// Parameter looks up a parameter by name.
func (s *Space) Parameter(name string) (Parameter, bool) {
	i, ok := s.index[name]
	if !ok {
		return Parameter{}, false
	}
	return s.params[i], true
}

// Names returns the parameter names in declaration order.
func (s *Space) Names() []string {
	names := make([]string, len(s.params))
	for i, p := range s.params {
		names[i] = p.Name
	}
	return names
}

// Len returns the number of declared parameters.
func (s *Space) Len() int {
	return len(s.params)
}

// Count returns the number of combinations the space spans. A parameter
// without candidates makes the count zero no matter how large the other
// lists are; otherwise a product above MaxCombinations is ErrSpaceTooLarge.
func (s *Space) Count() (int, error) {
	for _, p := range s.params {
		if len(p.Values) == 0 {
			return 0, nil
		}
	}

	total := 1
	for _, p := range s.params {
		n := len(p.Values)
		if total > MaxCombinations/n {
			return 0, fmt.Errorf("%w: more than %d combinations (at parameter %q)", ErrSpaceTooLarge, MaxCombinations, p.Name)
		}
		total *= n
	}
	return total, nil
}

// Validate reports every parameter that has no candidate values.
func (s *Space) Validate() error {
	var errs []error
	for _, p := range s.params {
		if len(p.Values) == 0 {
			errs = append(errs, fmt.Errorf("%q: %w", p.Name, ErrEmptyCandidates))
		}
	}
	return errors.Join(errs...)
}

// EmptyParameters returns the names of parameters with no candidate values.
func (s *Space) EmptyParameters() []string {
	var names []string
	for _, p := range s.params {
		if len(p.Values) == 0 {
			names = append(names, p.Name)
		}
	}
	return names
}
