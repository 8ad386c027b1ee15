// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// Buffer invariant violations. Analysis treats any of these as an
	// invalid-input failure rather than a panic.
	ErrNilBuffer       = errors.New("buffer is nil")
	ErrBadSampleRate   = errors.New("sample rate must be positive")
	ErrNoChannels      = errors.New("buffer has no channels")
	ErrNoSamples       = errors.New("buffer has no samples")
	ErrChannelMismatch = errors.New("channel lengths differ")
)
