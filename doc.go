// Package pulse is your toolbox for heartbeat detection on sampled
// signals — from synthesizing a canonical pulse template to estimating
// heart rate from matched-filter correlation peaks.
//
// 🚀 What is pulse?
//
//	A small, composable library of pure signal-processing building blocks:
//		• Spline primitives: cardinal B-spline evaluation of any degree
//		• Template synthesis: one canonical QRS-like pulse per sampling rate
//		• Signal conditioning: min-max range normalization into [0,1]
//		• Simulation: sparse pulse trains with seeded Gaussian noise
//		• Matched filtering: plain & normalized cross-correlation
//		• Peak picking: thresholding + non-maximum suppression
//		• Heart rate: RR intervals and beats-per-minute estimation
//
// ✨ Why choose pulse?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – stateless pure functions, typed sentinel errors
//   - Deterministic – identical inputs (and seeds) give identical outputs
//   - Extensible – every stage is an independent leaf package
//
// Everything is organized under small subpackages:
//
//	bspline/   — cardinal B-spline basis evaluation
//	template/  — canonical pulse-template generator
//	normalize/ — [0,1] range normalization
//	synth/     — pulse-train construction + Gaussian noise injection
//	matched/   — matched-filter cross-correlation
//	peaks/     — threshold + non-maximum-suppression peak detection
//	hr/        — RR intervals & heart-rate estimation
//
// Quick ASCII pipeline:
//
//	template ──▶ synth ──▶ matched ──▶ normalize ──▶ peaks ──▶ hr
//	 (shape)    (signal)   (score)      ([0,1])     (beats)   (BPM)
//
// Dive into examples/ for full end-to-end scenarios.
//
//	go get github.com/katalvlaran/pulse
package pulse
