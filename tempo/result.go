// SPDX-License-Identifier: EPL-2.0

package tempo

import "time"

// Result is the outcome of one analysis call. It is constructed once
// and never mutated afterwards.
//
// A Result can fail without the call "erroring": malformed buffers and
// cancellation are reported inside the Result so that batch callers get
// one entry per input regardless of individual outcomes.
type Result struct {
	// BPM is the estimated tempo, always inside the configured range
	// when present. Zero means no estimate was produced (Err is set).
	BPM int

	// Confidence in [0, 1]. Silent or featureless input yields a low
	// confidence rather than a failure.
	Confidence float64

	// Elapsed is the wall-clock analysis time, including the portion
	// spent before a cancellation was honored.
	Elapsed time.Duration

	// Err is nil on success. On failure it wraps one of the package
	// sentinels (ErrInvalidInput, ErrCancelled) for errors.Is checks.
	Err error
}

// Succeeded reports whether the analysis produced a usable Result.
func (r Result) Succeeded() bool { return r.Err == nil }

// ErrorDescription returns the failure text, or "" on success.
func (r Result) ErrorDescription() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
