// Package peaks picks beat candidates out of a correlation score:
// thresholding plus non-maximum suppression.
//
// 🚀 What is non-maximum suppression?
//
//	Keeping only samples that beat both neighbors, then dropping any
//	survivor that falls inside the refractory gap after the previously
//	accepted peak. One physical beat produces one detection, however
//	wide the correlation bump is.
//
// ✨ Key features:
//   - absolute threshold — pair with normalize.Range for gain-free tuning
//   - MinDistance refractory gap mirrors the physiological limit on
//     how fast consecutive beats can occur
//   - Refine sharpens an integer peak index to sub-sample precision by
//     parabolic interpolation of the three surrounding samples
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/pulse/peaks"
//
//	opts := peaks.DefaultOptions()
//	opts.Threshold = 0.6
//	opts.MinDistance = 100 // ≈200 ms at 512 Hz
//	idx, err := peaks.Detect(score, &opts)
//
// Complexity: O(n) time, O(k) memory for k detections.
package peaks
