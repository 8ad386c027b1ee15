// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio into an audio.Source.
//
// Decoding is built on github.com/go-audio/aiff and is limited to
// 16-bit PCM, the dominant AIFF encoding. Samples come out as float32
// in [-1.0, 1.0]:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("track.aiff")
//	source, err := decoder.Decode(file)
//
// The parser seeks, so plain io.Readers are buffered fully into memory
// before decoding; pass an io.ReadSeeker to avoid that copy.
//
// Decode failures map to the package sentinels: ErrNotAiffFile,
// ErrOnlyPCM16bitSupported and ErrUnsupportedAiffLayout.
package aiff
