// SPDX-License-Identifier: EPL-2.0

package tempo

import "math"

// lowpass isolates low-frequency energy by taking a centered moving
// average of |x| with window w = round(sampleRate/cutoffHz), clamped to
// at least 1. The window sum is maintained incrementally (add the
// sample entering the window, subtract the one leaving), so the filter
// is O(n) regardless of window size. Frames near the edges use a
// clamped partial window.
//
// The output is a rectified energy signal, not a phase-preserving
// filter; onset detection downstream only needs energy.
func lowpass(x []float64, sampleRate int, cutoffHz float64) []float64 {
	w := int(math.Round(float64(sampleRate) / cutoffHz))
	if w < 1 {
		w = 1
	}
	half := w / 2

	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}

	sum := 0.0
	lo, hi := 0, -1 // inclusive bounds of the current window
	for i := range x {
		wantLo := i - half
		if wantLo < 0 {
			wantLo = 0
		}
		wantHi := i + half
		if wantHi > len(x)-1 {
			wantHi = len(x) - 1
		}

		for hi < wantHi {
			hi++
			sum += math.Abs(x[hi])
		}
		for lo < wantLo {
			sum -= math.Abs(x[lo])
			lo++
		}

		out[i] = sum / float64(hi-lo+1)
	}

	return out
}
