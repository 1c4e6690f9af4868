package synth

import (
	"errors"

	"github.com/mjibson/go-dsp/dsputils"
	"github.com/mjibson/go-dsp/fft"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrEmptyTemplate indicates an empty pulse template.
	ErrEmptyTemplate = errors.New("synth: template must be non-empty")
	// ErrBadLength indicates a non-positive output length.
	ErrBadLength = errors.New("synth: output length must be positive")
	// ErrLengthMismatch indicates len(locs) != len(amps).
	ErrLengthMismatch = errors.New("synth: locations and amplitudes must have equal length")
	// ErrBadLocation indicates a beat location outside [0, n).
	ErrBadLocation = errors.New("synth: beat location out of range")
	// ErrBadSigma indicates a negative noise standard deviation.
	ErrBadSigma = errors.New("synth: noise sigma must be non-negative")
)

// Options configures noise injection for Noisy.
//
// Fields:
//   - NoiseSigma — standard deviation of the zero-mean Gaussian noise.
//     0 disables noise entirely.
//   - Seed       — seed for the noise source; the same seed always
//     reproduces the same noise sequence.
type Options struct {
	NoiseSigma float64
	Seed       uint64
}

// DefaultOptions returns moderate noise with a fixed seed.
func DefaultOptions() Options {
	return Options{NoiseSigma: 0.1, Seed: 1}
}

// Train — clean pulse-train synthesis
//
// Description:
//
//	Train places amps[j] at index locs[j] of an n-sample impulse train
//	and convolves it with the template, so each beat contributes one
//	template copy starting at its location. The convolution is linear:
//	both operands are zero-padded to the next power of two ≥
//	n+len(template)-1 before the FFT, then the product is inverse
//	transformed and truncated back to n samples.
//
// Errors:
//   - ErrBadLength      — n <= 0.
//   - ErrEmptyTemplate  — empty template.
//   - ErrLengthMismatch — len(locs) != len(amps).
//   - ErrBadLocation    — any location outside [0, n).
//
// Complexity: O(n log n) time, O(n) memory.
func Train(template []float64, locs []int, amps []float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrBadLength
	}
	if len(template) == 0 {
		return nil, ErrEmptyTemplate
	}
	if len(locs) != len(amps) {
		return nil, ErrLengthMismatch
	}
	for _, loc := range locs {
		if loc < 0 || loc >= n {
			return nil, ErrBadLocation
		}
	}

	impulses := make([]float64, n)
	for j, loc := range locs {
		impulses[loc] += amps[j]
	}

	// Pad past n+len(template)-1 so the circular FFT convolution
	// cannot wrap the template tail back into the front.
	size := dsputils.NextPowerOf2(n + len(template) - 1)
	conv := fft.Convolve(
		dsputils.ZeroPad(dsputils.ToComplex(impulses), size),
		dsputils.ZeroPad(dsputils.ToComplex(template), size),
	)

	out := make([]float64, n)
	for i := range out {
		out[i] = real(conv[i])
	}

	return out, nil
}

// Noisy — pulse train with Gaussian perturbation
//
// Description:
//
//	Noisy builds the clean train (see Train) and adds independent
//	Normal(0, NoiseSigma) samples drawn from a source seeded with
//	Options.Seed. A nil opts uses DefaultOptions.
//
// Errors:
//   - ErrBadSigma — NoiseSigma < 0.
//   - everything Train returns.
func Noisy(template []float64, locs []int, amps []float64, n int, opts *Options) ([]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.NoiseSigma < 0 {
		return nil, ErrBadSigma
	}

	out, err := Train(template, locs, amps, n)
	if err != nil {
		return nil, err
	}
	if o.NoiseSigma == 0 {
		return out, nil
	}

	noise := distuv.Normal{Mu: 0, Sigma: o.NoiseSigma, Src: rand.NewSource(o.Seed)}
	for i := range out {
		out[i] += noise.Rand()
	}

	return out, nil
}
