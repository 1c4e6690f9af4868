// Package template synthesizes the canonical pulse waveform used as the
// matched-filter template for heartbeat detection.
//
// 🚀 What is the canonical pulse?
//
//	One period of an idealized cardiac-cycle shape — the impulse
//	response h(t) in the linear-systems view of an ECG trace. It is
//	assembled from five scaled & shifted cardinal B-spline bumps over a
//	one-second time grid, then decimated by keeping every 4th sample.
//
// ✨ Key features:
//   - pure function of the sampling rate — no state, no randomness
//   - the five basis terms live in a single data table, not in code
//   - deterministic: same rate, bit-identical output
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/pulse/template"
//
//	h, err := template.Generate(512) // 128 samples
//	if err != nil {
//	  // handle ErrInvalidRate
//	}
//
// Complexity: O(fs) time, O(fs) memory.
package template
