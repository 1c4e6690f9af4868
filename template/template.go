package template

import (
	"errors"

	"github.com/katalvlaran/pulse/bspline"
)

// ErrInvalidRate indicates a non-positive sampling rate.
var ErrInvalidRate = errors.New("template: sampling rate must be a positive integer")

// decimation keeps every 4th sample of the full-rate waveform.
const decimation = 4

// basisTerm is one scaled, shifted, weighted B-spline bump:
// value(x) = coef * B_degree(scale*x + shift).
type basisTerm struct {
	coef   float64
	scale  float64
	shift  float64
	degree int
}

// canonicalTerms is the fixed design of the pulse: a wide quadratic base,
// a cubic trailing bump and three narrow linear spikes forming the sharp
// central complex. Kept as pure data so the shape reads as a table.
var canonicalTerms = [...]basisTerm{
	{coef: 0.3, scale: 9, shift: -7.5, degree: 2},
	{coef: 0.15, scale: 12, shift: -2, degree: 3},
	{coef: 1.0, scale: 12, shift: -6, degree: 1},
	{coef: -0.2, scale: 12, shift: -5, degree: 1},
	{coef: -0.4, scale: 12, shift: -7, degree: 1},
}

// Generate — canonical pulse-template synthesis
//
// Description:
//
//	Generate builds one period of the canonical pulse at sampling rate
//	fs. The waveform is the pointwise sum of the five canonicalTerms
//	evaluated on the grid x[i] = i/fs for i in [0, fs), decimated by
//	keeping every 4th sample starting at index 0.
//
// The result has length ⌈fs/4⌉. Note the decimation keeps the sample
// *selection* of the source design: indices 0,4,8,… of the 1-second
// grid, i.e. the first quarter of the index range, not a resampled
// quarter-second time axis.
//
// Errors:
//   - ErrInvalidRate — if fs <= 0.
//
// Complexity: O(fs) time, O(fs) memory.
func Generate(fs int) ([]float64, error) {
	if fs <= 0 {
		return nil, ErrInvalidRate
	}

	full := make([]float64, fs)
	for i := range full {
		x := float64(i) / float64(fs)
		var sum float64
		for _, term := range canonicalTerms {
			v, err := bspline.Eval(term.scale*x+term.shift, term.degree)
			if err != nil {
				return nil, err
			}
			sum += term.coef * v
		}
		full[i] = sum
	}

	out := make([]float64, 0, (fs+decimation-1)/decimation)
	for i := 0; i < fs; i += decimation {
		out = append(out, full[i])
	}

	return out, nil
}
