package bspline

import "errors"

// ErrNegativeDegree indicates a spline degree below zero was requested.
var ErrNegativeDegree = errors.New("bspline: degree must be non-negative")

// Eval — cardinal B-spline basis evaluation
//
// Description:
//
//	Eval computes Bₙ(t), the degree-n cardinal B-spline at point t.
//	Bₙ is symmetric around zero and supported on [-(n+1)/2, (n+1)/2];
//	outside that interval Eval returns exactly 0.
//
// Algorithm Outline:
//  1. Reject degree < 0 with ErrNegativeDegree.
//  2. Short-circuit to 0 when |t| ≥ (degree+1)/2.
//  3. Evaluate the truncated-power expansion
//     Bₙ(t) = (1/n!) Σ_{k=0}^{n+1} (-1)ᵏ C(n+1,k) (t + (n+1)/2 - k)₊ⁿ
//     accumulating the binomial coefficient and sign incrementally.
//
// Errors:
//   - ErrNegativeDegree — if degree < 0.
func Eval(t float64, degree int) (float64, error) {
	if degree < 0 {
		return 0, ErrNegativeDegree
	}

	half := float64(degree+1) / 2
	if t <= -half || t >= half {
		return 0, nil
	}

	var sum float64
	sign := 1.0
	binom := 1.0 // C(degree+1, k), updated incrementally
	for k := 0; k <= degree+1; k++ {
		if u := t + half - float64(k); u > 0 {
			sum += sign * binom * powInt(u, degree)
		}
		sign = -sign
		binom = binom * float64(degree+1-k) / float64(k+1)
	}

	return sum / factorial(degree), nil
}

// Support returns the half-width of the support interval of the
// degree-n cardinal B-spline: Bₙ(t) == 0 for |t| ≥ Support(n).
func Support(degree int) (float64, error) {
	if degree < 0 {
		return 0, ErrNegativeDegree
	}
	return float64(degree+1) / 2, nil
}

// powInt computes u^n for small non-negative integer n by repeated
// multiplication; u⁰ is 1.
func powInt(u float64, n int) float64 {
	p := 1.0
	for ; n > 0; n-- {
		p *= u
	}
	return p
}

// factorial returns n! as a float64; exact for the small degrees used here.
func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
