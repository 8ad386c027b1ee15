// SPDX-License-Identifier: EPL-2.0

// Package audbpm estimates the tempo of decoded audio in beats per
// minute.
//
// The analysis lives in the tempo subpackage and works on in-memory
// PCM buffers; this root package adds the glue for going from an
// encoded file to an estimate in one call.
//
// # Supported Formats
//
// The package decodes the following audio formats:
//   - WAV (integer PCM, 8/16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
//	file, _ := os.Open("track.wav")
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // handle decode error
//	}
//
//	result, err := audbpm.AnalyzeSource(context.Background(), src, 0, 0, tempo.Config{})
//	if err != nil {
//	    // handle read error
//	}
//	if result.Succeeded() {
//	    fmt.Printf("%d BPM (confidence %.2f)\n", result.BPM, result.Confidence)
//	}
//
// # Analyzing Buffers Directly
//
// Callers that already hold PCM can skip this package and use
// tempo.Analyze on an audio.Buffer:
//
//	buf := &audio.Buffer{Rate: 44100, Data: samples}
//	result := tempo.Analyze(ctx, buf, tempo.DefaultConfig())
//
// # Decoder Registry
//
// When the input format is chosen at runtime, register the decoders
// once and look them up by name:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	reg.Register("mp3", mp3.Decoder{})
//
//	if dec, ok := reg.Get(format); ok {
//	    src, err := dec.Decode(r)
//	    ...
//	}
//
// # Cancellation
//
// Analysis of long clips honors context cancellation between pipeline
// stages. A cancelled run reports tempo.ErrCancelled inside its Result
// rather than returning an error, so batch processing stays uniform.
package audbpm
