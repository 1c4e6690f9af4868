package matched

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrEmptyInput indicates an empty signal or template.
	ErrEmptyInput = errors.New("matched: signal and template must be non-empty")
	// ErrTemplateTooLong indicates len(template) > len(signal).
	ErrTemplateTooLong = errors.New("matched: template longer than signal")
)

// Options configures Correlate.
//
// Fields:
//   - Normalized — if true, each lag score is divided by
//     √(E_template · E_window), yielding normalized cross-correlation
//     in [-1, 1]. Windows with zero energy score 0.
type Options struct {
	Normalized bool
}

// DefaultOptions returns plain (un-normalized) correlation.
func DefaultOptions() Options {
	return Options{}
}

// Correlate — sliding cross-correlation of signal against template
//
// Description:
//
//	Correlate computes score[i] = Σ_j signal[i+j]·template[j] for every
//	lag i with full overlap, i in [0, len(signal)-len(template)].
//	With Options.Normalized, each score is additionally divided by the
//	geometric mean of the two energies (zero-energy windows score 0).
//
// Errors:
//   - ErrEmptyInput      — empty signal or template.
//   - ErrTemplateTooLong — template longer than signal.
//
// Complexity: O(n·m) time, O(n-m+1) memory.
func Correlate(signal, template []float64, opts *Options) ([]float64, error) {
	if len(signal) == 0 || len(template) == 0 {
		return nil, ErrEmptyInput
	}
	if len(template) > len(signal) {
		return nil, ErrTemplateTooLong
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	tEnergy := floats.Dot(template, template)
	lags := len(signal) - len(template) + 1
	out := make([]float64, lags)
	for i := 0; i < lags; i++ {
		win := signal[i : i+len(template)]
		score := floats.Dot(win, template)
		if o.Normalized {
			denom := math.Sqrt(tEnergy * floats.Dot(win, win))
			if denom > 0 {
				score /= denom
			} else {
				score = 0
			}
		}
		out[i] = score
	}

	return out, nil
}
