package hr

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrInvalidRate indicates a non-positive sampling rate.
	ErrInvalidRate = errors.New("hr: sampling rate must be a positive integer")
	// ErrTooFewPeaks indicates fewer than two peaks — no interval exists.
	ErrTooFewPeaks = errors.New("hr: at least two peaks required")
	// ErrUnsortedPeaks indicates peak indices are not strictly increasing.
	ErrUnsortedPeaks = errors.New("hr: peak indices must be strictly increasing")
)

// Intervals — successive RR intervals in seconds
//
// Description:
//
//	Intervals converts strictly-increasing peak sample indices at rate
//	fs into the k-1 successive peak-to-peak time differences.
//
// Errors:
//   - ErrInvalidRate   — fs <= 0.
//   - ErrTooFewPeaks   — fewer than two peaks.
//   - ErrUnsortedPeaks — any non-increasing adjacent pair.
//
// Complexity: O(k) time, O(k) memory.
func Intervals(peakIdx []int, fs int) ([]float64, error) {
	if fs <= 0 {
		return nil, ErrInvalidRate
	}
	if len(peakIdx) < 2 {
		return nil, ErrTooFewPeaks
	}

	rr := make([]float64, len(peakIdx)-1)
	for k := 1; k < len(peakIdx); k++ {
		d := peakIdx[k] - peakIdx[k-1]
		if d <= 0 {
			return nil, ErrUnsortedPeaks
		}
		rr[k-1] = float64(d) / float64(fs)
	}

	return rr, nil
}

// Estimate — mean heart rate in beats per minute
//
// Description:
//
//	Estimate computes 60 divided by the mean RR interval. Validation is
//	delegated to Intervals; the mean of strictly positive intervals is
//	strictly positive, so the division is always safe.
//
// Errors: everything Intervals returns.
//
// Complexity: O(k) time, O(k) memory.
func Estimate(peakIdx []int, fs int) (float64, error) {
	rr, err := Intervals(peakIdx, fs)
	if err != nil {
		return 0, err
	}

	return 60.0 / stat.Mean(rr, nil), nil
}
