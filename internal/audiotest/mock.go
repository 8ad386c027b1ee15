// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic audio sources for tests.
// The sources implement the audio.Source interface without importing
// it, so packages under test stay free of import cycles.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates samples from a waveform function.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     func(sample, channel int) float32
}

// NewMockSource returns a source producing totalSamples frames, each
// sample computed by waveform from its frame index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource returns a source producing only zeros.
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return 0.0
	})
}

// NewSineSource returns a source producing a sine wave at frequency Hz
// on every channel.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource returns a source producing a fixed value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

// NewClickSource returns a source producing a metronome-style click
// track at the given tempo: short 0.9-amplitude bursts on every
// channel, silence in between. Useful for exercising tempo analysis
// end to end.
func NewClickSource(sampleRate, channels, totalSamples int, bpm float64) *MockSource {
	period := int(math.Round(float64(sampleRate) * 60 / bpm))
	if period < 1 {
		period = 1
	}

	width := sampleRate / 200 // 5ms clicks
	if width < 1 {
		width = 1
	}

	return NewMockSource(sampleRate, channels, totalSamples, func(sample, _ int) float32 {
		if sample%period < width {
			return 0.9
		}
		return 0.0
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)

	for frame := 0; frame < frames; frame++ {
		sampleIndex := m.generated + frame
		for ch := 0; ch < m.channels; ch++ {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += frames
	written := frames * m.channels

	if m.generated >= m.totalSamples {
		return written, io.EOF
	}

	return written, nil
}
