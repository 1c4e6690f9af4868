package peaks

import (
	"errors"
	"math"
)

var (
	// ErrEmptySignal indicates an empty input signal.
	ErrEmptySignal = errors.New("peaks: signal must be non-empty")
	// ErrBadThreshold indicates a NaN threshold.
	ErrBadThreshold = errors.New("peaks: threshold must not be NaN")
	// ErrBadDistance indicates a negative refractory distance.
	ErrBadDistance = errors.New("peaks: min distance must be non-negative")
)

// Options configures Detect.
//
// Fields:
//   - Threshold   — minimum sample value for a candidate peak.
//   - MinDistance — refractory gap: a candidate closer than this many
//     samples after the previously accepted peak is suppressed.
//     0 disables the gap.
type Options struct {
	Threshold   float64
	MinDistance int
}

// DefaultOptions returns a mid-range threshold with no refractory gap,
// tuned for signals normalized into [0, 1].
func DefaultOptions() Options {
	return Options{Threshold: 0.5, MinDistance: 0}
}

// Detect — thresholded non-maximum suppression
//
// Description:
//
//	Detect returns the indices i (ascending) where x[i] ≥ Threshold and
//	x[i] is a local maximum: strictly above its left neighbor and at
//	least as high as its right one, so a flat-topped bump yields its
//	leftmost summit sample. A candidate within MinDistance samples of
//	the previously accepted peak is suppressed.
//
// Edge samples (first and last) qualify with their single neighbor.
//
// Errors:
//   - ErrEmptySignal  — empty input.
//   - ErrBadThreshold — NaN threshold.
//   - ErrBadDistance  — MinDistance < 0.
//
// Complexity: O(n) time, O(k) memory for k peaks.
func Detect(x []float64, opts *Options) ([]int, error) {
	if len(x) == 0 {
		return nil, ErrEmptySignal
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if math.IsNaN(o.Threshold) {
		return nil, ErrBadThreshold
	}
	if o.MinDistance < 0 {
		return nil, ErrBadDistance
	}

	var idx []int
	last := 0 // index of the previously accepted peak, valid once idx is non-empty
	for i := range x {
		if x[i] < o.Threshold {
			continue
		}
		if i > 0 && x[i-1] >= x[i] {
			continue
		}
		if i < len(x)-1 && x[i+1] > x[i] {
			continue
		}
		if len(idx) > 0 && i-last < o.MinDistance {
			continue
		}
		idx = append(idx, i)
		last = i
	}

	return idx, nil
}

// Refine — sub-sample peak localization
//
// Description:
//
//	Refine fits a parabola through (i-1, x[i-1]), (i, x[i]), (i+1, x[i+1])
//	and returns the abscissa of its vertex. Edge indices and degenerate
//	(collinear) neighborhoods return float64(i) unchanged.
//
// Complexity: O(1).
func Refine(x []float64, i int) float64 {
	if i <= 0 || i >= len(x)-1 {
		return float64(i)
	}
	alpha, beta, gamma := x[i-1], x[i], x[i+1]
	denom := alpha - 2*beta + gamma
	if denom == 0 {
		return float64(i)
	}
	return float64(i) + 0.5*(alpha-gamma)/denom
}
