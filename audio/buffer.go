// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Buffer holds a fully decoded PCM clip: one sample slice per channel,
// all of equal length, at a single sample rate. It is the unit of input
// for offline analysis (tempo estimation works on a bounded Buffer, not
// on a stream).
//
// A Buffer is owned by its creator and treated as read-only by the
// analysis code; it is never retained after a call returns.
type Buffer struct {
	// Rate is the sample rate in Hz. Must be positive.
	Rate int
	// Data holds one slice of samples per channel, in [-1, 1].
	// All slices must have the same length.
	Data [][]float32
}

// NumChannels returns the channel count.
func (b *Buffer) NumChannels() int { return len(b.Data) }

// Len returns the number of samples per channel.
func (b *Buffer) Len() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Duration returns the clip length in seconds.
func (b *Buffer) Duration() float64 {
	if b.Rate <= 0 {
		return 0
	}
	return float64(b.Len()) / float64(b.Rate)
}

// Validate checks the Buffer invariants: positive sample rate, at least
// one channel, at least one sample, and equal-length channels.
func (b *Buffer) Validate() error {
	if b == nil {
		return ErrNilBuffer
	}
	if b.Rate <= 0 {
		return ErrBadSampleRate
	}
	if len(b.Data) == 0 {
		return ErrNoChannels
	}
	if len(b.Data[0]) == 0 {
		return ErrNoSamples
	}
	for ch := 1; ch < len(b.Data); ch++ {
		if len(b.Data[ch]) != len(b.Data[0]) {
			return ErrChannelMismatch
		}
	}
	return nil
}

// ReadAll drains src into a Buffer, deinterleaving samples per channel.
// bufferSize is the scratch read size in float32 values (e.g., 4096);
// values that do not form a whole frame at the stream tail are dropped.
//
// The source is read to io.EOF but not closed; closing stays with the
// caller, matching the Decoder contract.
func ReadAll(src Source, bufferSize int) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}
	if bufferSize < channels {
		bufferSize = channels
	}
	// Round the scratch buffer down to whole frames.
	bufferSize -= bufferSize % channels

	data := make([][]float32, channels)
	// Pre-size for roughly two seconds to keep early growth cheap.
	for ch := range data {
		data[ch] = make([]float32, 0, src.SampleRate()*2)
	}

	scratch := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(scratch)
		frames := n / channels
		for f := 0; f < frames; f++ {
			base := f * channels
			for ch := 0; ch < channels; ch++ {
				data[ch] = append(data[ch], scratch[base+ch])
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	return &Buffer{Rate: src.SampleRate(), Data: data}, nil
}
