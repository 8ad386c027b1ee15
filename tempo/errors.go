// SPDX-License-Identifier: EPL-2.0

package tempo

import "errors"

var (
	// ErrCancelled marks a Result whose analysis was stopped through the
	// caller's context before completing. The underlying context error
	// is wrapped alongside, so errors.Is matches both this sentinel and
	// context.Canceled / context.DeadlineExceeded.
	ErrCancelled = errors.New("analysis cancelled")

	// ErrInvalidInput marks a Result produced from a malformed buffer.
	// The concrete buffer violation (audio.ErrNoChannels, ...) is
	// wrapped alongside.
	ErrInvalidInput = errors.New("invalid input")

	// Config violations.
	ErrBadBPMRange          = errors.New("bpm range must satisfy 0 < min < max")
	ErrBadCutoff            = errors.New("low-pass cutoff must be positive")
	ErrBadSampleWindow      = errors.New("sample window must be positive")
	ErrBadOnsetRadius       = errors.New("onset window radius must be at least 1")
	ErrBadOnsetMultiplier   = errors.New("onset threshold multiplier must be positive")
	ErrBadGroupingTolerance = errors.New("grouping tolerance must not be negative")
	ErrBadMinIntervals      = errors.New("minimum interval count must be at least 1")
)
