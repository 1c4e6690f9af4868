package normalize

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// ErrConstantInput indicates a constant non-zero signal, whose range is
// empty and cannot be stretched onto [0, 1].
var ErrConstantInput = errors.New("normalize: constant non-zero signal has no range")

// Range — min-max normalization into [0, 1]
//
// Description:
//
//	Range maps x linearly so that min(x) → 0 and max(x) → 1.
//
// Degenerate cases:
//   - Empty or identically-zero input is returned unchanged (the same
//     slice, no copy). This passthrough is part of the contract: a zero
//     signal carries no beats and stays zero.
//   - Constant non-zero input errors with ErrConstantInput; the naive
//     formula would divide by zero and flood the caller with NaNs.
//
// Algorithm Outline:
//  1. Scan for the all-zero passthrough.
//  2. z = x - min(x); m = max(z).
//  3. If m == 0 → ErrConstantInput, else return z/m.
//
// Complexity: O(n) time, O(n) memory (one output slice).
func Range(x []float64) ([]float64, error) {
	if len(x) == 0 || allZero(x) {
		return x, nil
	}

	out := make([]float64, len(x))
	copy(out, x)
	floats.AddConst(-floats.Min(out), out)

	m := floats.Max(out)
	if m == 0 {
		return nil, ErrConstantInput
	}
	floats.Scale(1/m, out)

	return out, nil
}

// allZero reports whether every sample is exactly zero.
func allZero(x []float64) bool {
	for _, v := range x {
		if v != 0 {
			return false
		}
	}
	return true
}
