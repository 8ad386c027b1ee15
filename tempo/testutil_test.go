// SPDX-License-Identifier: EPL-2.0

package tempo

import (
	"math"

	"github.com/ik5/audbpm/audio"
)

// clickTrack builds a mono buffer with a short impulse at every beat of
// the given tempo. Clicks are ~5ms wide so they survive the low-pass
// stage as energy bumps.
func clickTrack(sampleRate int, seconds float64, bpm float64) *audio.Buffer {
	total := int(seconds * float64(sampleRate))
	period := int(math.Round(float64(sampleRate) * 60.0 / bpm))
	width := sampleRate / 200
	if width < 1 {
		width = 1
	}

	data := make([]float32, total)
	for i := range data {
		if i%period < width {
			data[i] = 0.9
		}
	}

	return &audio.Buffer{Rate: sampleRate, Data: [][]float32{data}}
}

// silentBuffer builds an all-zero buffer.
func silentBuffer(sampleRate int, seconds float64, channels int) *audio.Buffer {
	total := int(seconds * float64(sampleRate))
	data := make([][]float32, channels)
	for ch := range data {
		data[ch] = make([]float32, total)
	}
	return &audio.Buffer{Rate: sampleRate, Data: data}
}

// tremoloSine builds a sustained carrier tone whose amplitude swells
// smoothly at beatHz. No transients, so onset detection finds nothing,
// but the energy envelope is strongly periodic.
func tremoloSine(sampleRate int, seconds, carrierHz, beatHz float64) *audio.Buffer {
	total := int(seconds * float64(sampleRate))
	data := make([]float32, total)
	for i := range data {
		t := float64(i) / float64(sampleRate)
		amp := 0.45 * (1 + math.Sin(2*math.Pi*beatHz*t-math.Pi/2))
		data[i] = float32(amp * math.Sin(2*math.Pi*carrierHz*t))
	}
	return &audio.Buffer{Rate: sampleRate, Data: [][]float32{data}}
}

// onsetsFromIntervals turns a list of inter-onset intervals (envelope
// frames) into cumulative onset indices starting at 0.
func onsetsFromIntervals(intervals ...int) []int {
	onsets := make([]int, 0, len(intervals)+1)
	pos := 0
	onsets = append(onsets, pos)
	for _, iv := range intervals {
		pos += iv
		onsets = append(onsets, pos)
	}
	return onsets
}
