// Package synth builds test signals for heartbeat detection: sparse
// pulse trains convolved with a template, optionally perturbed by
// seeded Gaussian noise.
//
// 🚀 What is a pulse train?
//
//	An impulse train — zeros everywhere except unit-like spikes at the
//	beat locations — convolved with the canonical pulse template. The
//	result is a clean synthetic recording whose ground-truth beat
//	positions are known exactly, which makes it the ideal fixture for
//	exercising the matched filter and peak picker.
//
// ✨ Key features:
//   - linear (non-circular) convolution via FFT, zero-padded to the
//     next power of two
//   - reproducible noise: an explicit seed drives a Normal(0, σ) source
//   - eager validation with typed sentinel errors, no NaN leakage
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/pulse/synth"
//
//	h, _ := template.Generate(512)
//	opts := synth.DefaultOptions()
//	opts.NoiseSigma = 0.05
//	x, err := synth.Noisy(h, []int{100, 600, 1100}, []float64{1, 1, 0.8}, 2048, &opts)
//
// Complexity: O(n log n) time for the convolution, O(n) memory.
package synth
