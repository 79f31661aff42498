// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package paramspace

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Enumerate returns the parameter names in declaration order and the
// cartesian product of their candidate lists. The last parameter varies
// fastest. Duplicate candidates yield duplicate combinations, and an empty
// candidate list yields no combinations at all. A space spanning more than
// MaxCombinations fails with ErrSpaceTooLarge.
func Enumerate(s *Space) ([]string, [][]cty.Value, error) {
	names := s.Names()
	total, err := s.Count()
	if err != nil {
		return names, nil, err
	}
	combos := make([][]cty.Value, 0, total)
	if total == 0 {
		return names, combos, nil
	}

	// idx is an odometer over the candidate lists.
	idx := make([]int, len(s.params))
	for {
		combo := make([]cty.Value, len(s.params))
		for i, p := range s.params {
			combo[i] = p.Values[idx[i]]
		}
		combos = append(combos, combo)

		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(s.params[i].Values) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return names, combos, nil
		}
	}
}

// StatePoints enumerates the space and zips every combination with the
// parameter names.
func StatePoints(s *Space) ([]StatePoint, error) {
	names, combos, err := Enumerate(s)
	if err != nil {
		return nil, err
	}
	points := make([]StatePoint, 0, len(combos))
	for i, combo := range combos {
		sp, err := NewStatePoint(names, combo)
		if err != nil {
			return nil, fmt.Errorf("combination %d: %w", i, err)
		}
		points = append(points, sp)
	}
	return points, nil
}
