// Package normalize rescales numeric signals into the closed interval
// [0, 1] ahead of thresholding.
//
// 🚀 What is range normalization?
//
//	A linear min-max map: the smallest sample goes to 0, the largest to
//	1, everything in between keeps its relative position. Downstream
//	peak picking can then use absolute thresholds regardless of the
//	original signal gain or offset.
//
// ✨ Key features:
//   - all-zero (and empty) inputs pass through unchanged — a deliberate
//     degenerate case, not an error
//   - constant non-zero inputs fail fast with ErrConstantInput instead
//     of silently producing NaN from a zero division
//   - affine-invariant: Range(a*x+b) == Range(x) for a > 0
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/pulse/normalize"
//
//	y, err := normalize.Range(x)
//	if err != nil {
//	  // handle ErrConstantInput
//	}
//
// Complexity: O(n) time, O(n) memory.
package normalize
