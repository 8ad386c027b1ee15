// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG layer-3 audio into an audio.Source.
//
// Decoding is built on github.com/hajimehoshi/go-mp3, a pure-Go
// decoder, so no system codec is required. The underlying library
// always produces interleaved 16-bit stereo PCM, so the returned
// Source reports two channels even for mono streams:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("track.mp3")
//	source, err := decoder.Decode(file)
//
// Samples come out as float32 in [-1.0, 1.0]. The decoder streams,
// it never buffers the whole file.
package mp3
