// Package bspline evaluates cardinal B-spline basis functions of
// arbitrary non-negative degree.
//
// 🚀 What is a cardinal B-spline?
//
//	The degree-n cardinal B-spline Bₙ is the (n+1)-fold convolution of
//	the unit box with itself, centered at zero: a symmetric,
//	compactly-supported, piecewise-polynomial bump. It is the standard
//	smooth building block for assembling pulse shapes, kernels and
//	interpolants:
//	  • B₀ — unit box on (-½, ½)
//	  • B₁ — triangle (hat) on [-1, 1]
//	  • B₂ — quadratic bell on [-3/2, 3/2]
//	  • B₃ — cubic bell on [-2, 2]
//
// ✨ Key features:
//   - single evaluator parameterized by degree — no per-degree code paths
//   - closed-form truncated-power expansion, no recursion, no allocation
//   - exact zero outside the support interval
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/pulse/bspline"
//
//	v, err := bspline.Eval(0.25, 3) // cubic B-spline at t=0.25
//	if err != nil {
//	  // handle ErrNegativeDegree
//	}
//
// Complexity: O(degree²) time per call (degree+2 truncated powers of
// degree multiplications each), O(1) memory.
package bspline
