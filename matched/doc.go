// Package matched cross-correlates a signal against a known template —
// the matched-filter step of heartbeat detection.
//
// 🚀 What is matched filtering?
//
//	Sliding the template along the signal and scoring each alignment by
//	the dot product of the template with the window under it. Where the
//	signal contains a (possibly noisy) copy of the template, the score
//	spikes; thresholding those spikes recovers the beat locations.
//
// ✨ Key features:
//   - "valid" correlation extent: one score per fully-overlapping lag,
//     len(signal)-len(template)+1 scores in total
//   - optional normalized mode: every score divided by the geometric
//     mean of template and window energies, bounding it to [-1, 1]
//   - score index == window start index, so a peak at lag i means the
//     template instance begins at signal sample i
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/pulse/matched"
//
//	opts := matched.DefaultOptions()
//	opts.Normalized = true
//	score, err := matched.Correlate(signal, tmpl, &opts)
//
// Complexity: O(n·m) time, O(n) memory, n=len(signal), m=len(template).
package matched
