// SPDX-License-Identifier: EPL-2.0

// Package tempo estimates the dominant beat rate (BPM) of a decoded
// audio clip, together with a confidence score.
//
// # Pipeline
//
// Analyze runs a fixed forward pipeline over an audio.Buffer:
//
//  1. Mixdown: all channels averaged into one mono signal, truncated
//     to the configured leading sample window.
//  2. Low-pass: a running-sum moving average of the rectified signal
//     isolates bass and kick-drum energy.
//  3. Envelope: windowed RMS (~10ms frames, 50% overlap) reduces the
//     signal to a coarse energy curve.
//  4. Onset detection: positive spectral flux against an adaptive
//     local-median threshold yields candidate beat positions.
//  5. Tempo estimation: inter-onset intervals feed a tolerance-grouped
//     histogram; when too few onsets are found, a normalized
//     autocorrelation of the envelope takes over.
//  6. Octave handling: half-time ambiguity is folded toward the slower
//     reading and the estimate is clamped into the configured range.
//
// Data flows strictly forward; there is no feedback between stages.
//
// # Usage
//
//	buf, _ := audio.ReadAll(src, 4096)
//	res := tempo.Analyze(ctx, buf, tempo.Config{})
//	if res.Succeeded() {
//	    fmt.Printf("%d BPM (%.2f)\n", res.BPM, res.Confidence)
//	}
//
// Config{} selects the tuned defaults (60–180 BPM, 150Hz cutoff, 30s
// analysis window). AnalyzeAll processes a slice of buffers and returns
// one Result per input, continuing past individual failures.
//
// # Cancellation
//
// The context is polled between pipeline stages and never mid-stage:
// cancellation is cooperative and bounded by the longest single stage.
// A cancelled call returns a Result with ErrCancelled wrapped in Err.
//
// # Failure policy
//
// Nothing in this package panics on malformed input, and no error
// escapes out-of-band: invalid buffers, cancellation, and internal
// failures all land in Result.Err. Silence and too-short clips are not
// failures at all: they succeed with the range midpoint and a low
// confidence, so a quiet track never blocks whatever the caller is
// ingesting.
//
// # Concurrency
//
// Analyze keeps no state between calls. Buffers are caller-owned and
// read-only, Config is a value; any number of analyses may run
// concurrently as long as each works on its own Buffer.
package tempo
