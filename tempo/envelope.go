// SPDX-License-Identifier: EPL-2.0

package tempo

import "math"

// envelopeFrameSeconds is the target frame length of the coarse energy
// envelope: about 10ms of audio per frame.
const envelopeFrameSeconds = 0.01

// rmsEnvelope reduces the filtered signal to a coarse energy-over-time
// curve: RMS over ~10ms frames with 50% overlap. It returns the
// envelope together with the hop size in samples, which later stages
// need to convert frame indices back to time.
//
// Input shorter than one frame yields an empty envelope; callers treat
// that as insufficient data, not as an error.
func rmsEnvelope(x []float64, sampleRate int) (env []float64, hop int) {
	frame := int(math.Round(float64(sampleRate) * envelopeFrameSeconds))
	if frame < 1 {
		frame = 1
	}
	hop = frame / 2
	if hop < 1 {
		hop = 1
	}

	if len(x) < frame {
		return nil, hop
	}

	n := (len(x) - frame) / hop
	env = make([]float64, n)

	for i := range env {
		start := i * hop
		sum := 0.0
		for _, v := range x[start : start+frame] {
			sum += v * v
		}
		env[i] = math.Sqrt(sum / float64(frame))
	}

	return env, hop
}
