// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE PCM audio into an audio.Source and
// writes 16-bit PCM WAV files.
//
// Decoding is built on github.com/go-audio/wav and handles 8-, 16-,
// 24- and 32-bit integer PCM at any sample rate and channel count.
// Samples come out as float32 in [-1.0, 1.0]:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("track.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // handle error
//	}
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The parser seeks, so plain io.Readers are buffered fully into memory
// before decoding; pass an io.ReadSeeker (an *os.File, a bytes.Reader)
// to avoid that copy.
//
// WriteWAV16 is the counterpart encoder, limited to mono 16-bit PCM:
//
//	out, _ := os.Create("clip.wav")
//	err := wav.WriteWAV16(out, 44100, samples)
//
// Decode failures map to the package sentinels: ErrNotWavFile for
// streams that are not RIFF/WAVE at all, ErrUnsupportedBitDepth for
// float or exotic integer encodings, ErrUnsupportedWavLayout for
// well-formed files whose format chunk the decoder cannot use.
package wav
