// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package paramspace

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// StatePoint is an immutable assignment of one value to every parameter.
type StatePoint struct {
	val       cty.Value
	canonical []byte
	id        string
}

// NewStatePoint zips names with values into a state point.
func NewStatePoint(names []string, values []cty.Value) (StatePoint, error) {
	if len(names) != len(values) {
		return StatePoint{}, fmt.Errorf("got %d names for %d values", len(names), len(values))
	}
	attrs := make(map[string]cty.Value, len(names))
	for i, name := range names {
		if _, dup := attrs[name]; dup {
			return StatePoint{}, fmt.Errorf("%w %q", ErrDuplicateParameter, name)
		}
		v := values[i]
		if v == cty.NilVal {
			v = cty.NullVal(cty.DynamicPseudoType)
		}
		attrs[name] = v
	}
	return fromObject(cty.ObjectVal(attrs))
}

// StatePointFromJSON decodes a state point from its JSON object form. The
// identity is computed from the re-encoded canonical form, so formatting
// differences in data do not change the ID.
func StatePointFromJSON(data []byte) (StatePoint, error) {
	ty, err := ctyjson.ImpliedType(data)
	if err != nil {
		return StatePoint{}, fmt.Errorf("failed to infer state point type: %w", err)
	}
	if !ty.IsObjectType() {
		return StatePoint{}, errors.New("state point must be a JSON object")
	}
	val, err := ctyjson.Unmarshal(data, ty)
	if err != nil {
		return StatePoint{}, fmt.Errorf("failed to decode state point: %w", err)
	}
	return fromObject(val)
}

func fromObject(val cty.Value) (StatePoint, error) {
	if !val.IsWhollyKnown() {
		return StatePoint{}, errors.New("state point contains unknown values")
	}
	canonical, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return StatePoint{}, fmt.Errorf("failed to encode state point: %w", err)
	}
	sum := md5.Sum(canonical)
	return StatePoint{
		val:       val,
		canonical: canonical,
		id:        hex.EncodeToString(sum[:]),
	}, nil
}

// ID returns the 32-character hex identity of the state point.
func (sp StatePoint) ID() string { return sp.id }

// Value returns the state point as a cty object.
func (sp StatePoint) Value() cty.Value { return sp.val }

// Get returns the value assigned to name.
func (sp StatePoint) Get(name string) (cty.Value, bool) {
	if sp.val == cty.NilVal || !sp.val.Type().HasAttribute(name) {
		return cty.NilVal, false
	}
	return sp.val.GetAttr(name), true
}

// Names returns the parameter names of the state point, sorted.
func (sp StatePoint) Names() []string {
	if sp.val == cty.NilVal {
		return nil
	}
	names := make([]string, 0, len(sp.val.Type().AttributeTypes()))
	for name := range sp.val.Type().AttributeTypes() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Canonical returns a copy of the canonical JSON encoding.
func (sp StatePoint) Canonical() []byte {
	out := make([]byte, len(sp.canonical))
	copy(out, sp.canonical)
	return out
}

// Equal reports whether both state points assign the same values.
func (sp StatePoint) Equal(other StatePoint) bool {
	return sp.id == other.id && string(sp.canonical) == string(other.canonical)
}

// MarshalJSON implements json.Marshaler with the canonical encoding.
func (sp StatePoint) MarshalJSON() ([]byte, error) {
	if sp.canonical == nil {
		return []byte("null"), nil
	}
	return sp.Canonical(), nil
}

func (sp StatePoint) String() string {
	return string(sp.canonical)
}
