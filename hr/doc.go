// Package hr turns detected beat positions into RR intervals and a
// heart-rate estimate in beats per minute.
//
// 🚀 What is an RR interval?
//
//	The time between two consecutive detected heartbeat peaks. Its
//	reciprocal, scaled by 60, is the instantaneous heart rate; the mean
//	over all intervals gives the estimate for the whole recording.
//
// ✨ Key features:
//   - works on raw sample indices — pairs directly with peaks.Detect
//   - strictly validated: indices must be strictly increasing, at least
//     two peaks are required for any interval at all
//   - DegenerateInput cases are typed errors, never NaN or ±Inf
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/pulse/hr"
//
//	bpm, err := hr.Estimate(beatIdx, 512)
//	if err != nil {
//	  // handle ErrTooFewPeaks / ErrUnsortedPeaks / ErrInvalidRate
//	}
//
// Complexity: O(k) time for k peaks, O(k) memory.
package hr
