// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio into an audio.Source.
//
// Decoding is built on github.com/jfreymuth/oggvorbis, a pure-Go
// decoder that already produces interleaved float32 samples in
// [-1.0, 1.0], so the Source is a thin adapter:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("track.ogg")
//	source, err := decoder.Decode(file)
//
// Chained streams are supported by the underlying library; the sample
// rate and channel count reported by the Source are those of the first
// stream.
package vorbis
