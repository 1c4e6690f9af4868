package synth_test

import (
	"testing"

	"github.com/katalvlaran/pulse/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// TestTrain_Validation covers every eager-validation branch.
func TestTrain_Validation(t *testing.T) {
	h := []float64{1, 0.5}

	_, err := synth.Train(h, []int{0}, []float64{1}, 0)
	assert.ErrorIs(t, err, synth.ErrBadLength, "n=0")

	_, err = synth.Train(nil, []int{0}, []float64{1}, 8)
	assert.ErrorIs(t, err, synth.ErrEmptyTemplate, "nil template")

	_, err = synth.Train(h, []int{0, 1}, []float64{1}, 8)
	assert.ErrorIs(t, err, synth.ErrLengthMismatch, "locs/amps mismatch")

	_, err = synth.Train(h, []int{8}, []float64{1}, 8)
	assert.ErrorIs(t, err, synth.ErrBadLocation, "location == n")

	_, err = synth.Train(h, []int{-1}, []float64{1}, 8)
	assert.ErrorIs(t, err, synth.ErrBadLocation, "negative location")
}

// TestTrain_SingleImpulse verifies that one unit impulse reproduces the
// template verbatim at its location.
func TestTrain_SingleImpulse(t *testing.T) {
	h := []float64{1, 0.5, 0.25}
	got, err := synth.Train(h, []int{2}, []float64{1}, 8)
	require.NoError(t, err)
	require.Len(t, got, 8)

	want := []float64{0, 0, 1, 0.5, 0.25, 0, 0, 0}
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "sample %d", i)
	}
}

// TestTrain_ScaledAndSummed verifies amplitude scaling and overlap
// superposition of two close beats.
func TestTrain_ScaledAndSummed(t *testing.T) {
	h := []float64{1, 1}
	got, err := synth.Train(h, []int{1, 2}, []float64{2, 3}, 6)
	require.NoError(t, err)

	// 2*[0,1,1,0,0,0] + 3*[0,0,1,1,0,0]
	want := []float64{0, 2, 5, 3, 0, 0}
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "sample %d", i)
	}
}

// TestTrain_NoCircularWrap plants a beat whose template tail would run
// past the end; nothing may wrap around to the front.
func TestTrain_NoCircularWrap(t *testing.T) {
	h := []float64{1, 1, 1, 1}
	got, err := synth.Train(h, []int{6}, []float64{1}, 8)
	require.NoError(t, err)

	want := []float64{0, 0, 0, 0, 0, 0, 1, 1}
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "sample %d", i)
	}
}

// TestNoisy_BadSigma verifies the negative-sigma guard.
func TestNoisy_BadSigma(t *testing.T) {
	opts := synth.DefaultOptions()
	opts.NoiseSigma = -0.1
	_, err := synth.Noisy([]float64{1}, []int{0}, []float64{1}, 4, &opts)
	assert.ErrorIs(t, err, synth.ErrBadSigma)
}

// TestNoisy_ZeroSigmaIsClean verifies σ=0 equals the clean train.
func TestNoisy_ZeroSigmaIsClean(t *testing.T) {
	h := []float64{1, 0.5}
	opts := synth.DefaultOptions()
	opts.NoiseSigma = 0

	clean, err := synth.Train(h, []int{1}, []float64{1}, 8)
	require.NoError(t, err)
	noisy, err := synth.Noisy(h, []int{1}, []float64{1}, 8, &opts)
	require.NoError(t, err)
	assert.Equal(t, clean, noisy, "σ=0 must be a no-op")
}

// TestNoisy_SeedReproducible verifies the same seed gives identical
// output and a different seed does not.
func TestNoisy_SeedReproducible(t *testing.T) {
	h := []float64{1, 0.5}
	opts := synth.DefaultOptions()
	opts.NoiseSigma = 0.3
	opts.Seed = 42

	a, err := synth.Noisy(h, []int{1}, []float64{1}, 64, &opts)
	require.NoError(t, err)
	b, err := synth.Noisy(h, []int{1}, []float64{1}, 64, &opts)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce the same signal")

	opts.Seed = 43
	c, err := synth.Noisy(h, []int{1}, []float64{1}, 64, &opts)
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seeds must differ")
}

// TestNoisy_NilOptions verifies nil opts falls back to DefaultOptions.
func TestNoisy_NilOptions(t *testing.T) {
	got, err := synth.Noisy([]float64{1}, []int{0}, []float64{1}, 16, nil)
	require.NoError(t, err)
	assert.Len(t, got, 16)
}
