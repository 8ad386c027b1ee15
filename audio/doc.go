// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM plumbing underneath tempo analysis.
//
// It contains the building blocks that sit between a format decoder and
// the estimation engine:
//   - Source interface for streaming audio input
//   - Buffer for fully decoded, per-channel PCM clips
//   - MonoMixer for channel downmixing
//   - Resampler for sample rate conversion
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the streaming side of the pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders return a Source, and Sources can be chained:
// decoder -> Resampler -> MonoMixer.
//
// # Buffer
//
// Tempo estimation is offline: it needs the whole clip (or at least its
// leading window) in memory. ReadAll drains any Source into a Buffer,
// deinterleaving samples per channel:
//
//	buf, err := audio.ReadAll(src, 4096)
//
// Buffer.Validate enforces the invariants the analysis engine relies
// on: positive sample rate, at least one channel, equal-length
// channels.
//
// # Resampling
//
// The Resampler changes the sample rate using cubic interpolation:
//
//	resampler := audio.NewResampler(source, 16000)
//
// Downsampling before analysis is the intended use: it bounds the cost
// of the autocorrelation stage on long clips without affecting the
// tempo estimate, since beat periodicity lives far below any common
// sample rate.
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]:
//   - 0.0 is silence
//   - ±1.0 is maximum amplitude
//
// The normalized format keeps the processing code free of bit-depth
// concerns.
//
// # Error Handling
//
// Streaming functions return io.EOF when the source is exhausted.
// Buffer invariant violations are reported with the sentinel errors in
// errors.go and checked with errors.Is:
//
//	if errors.Is(err, audio.ErrNoChannels) { ... }
package audio
