// SPDX-License-Identifier: EPL-2.0

package tempo

import "github.com/ik5/audbpm/utils"

// onsetEpsilon keeps the adaptive threshold above zero so that silence
// (flux identically 0) never produces onsets.
const onsetEpsilon = 0.001

// spectralFlux computes the frame-to-frame positive energy difference
// of the envelope. flux[0] is 0 by definition.
func spectralFlux(env []float64) []float64 {
	flux := make([]float64, len(env))
	for i := 1; i < len(env); i++ {
		if d := env[i] - env[i-1]; d > 0 {
			flux[i] = d
		}
	}
	return flux
}

// detectOnsets marks candidate beat onsets in the envelope. Each frame
// in the interior (radius frames away from either edge) is compared
// against the median flux of its 2*radius+1 neighborhood scaled by
// multiplier; frames above the threshold that are also a local peak
// become onsets.
//
// The peak test is strict against the left neighbor and non-strict
// against the right (flux[i] > flux[i-1] && flux[i] >= flux[i+1]):
// of two equal adjacent peaks the earlier one wins. Downstream interval
// statistics were tuned against that tie-break.
//
// The per-frame median sort costs O(n·radius·log(radius)), fine for the
// small radii in use.
func detectOnsets(env []float64, radius int, multiplier float64) []int {
	flux := spectralFlux(env)
	if len(flux) < 2*radius+1 {
		return nil
	}

	var onsets []int
	window := make([]float64, 0, 2*radius+1)

	for i := radius; i < len(flux)-radius; i++ {
		window = append(window[:0], flux[i-radius:i+radius+1]...)
		threshold := utils.Median(window)*multiplier + onsetEpsilon

		// radius >= 1 keeps both neighbor accesses in bounds.
		if flux[i] > threshold && flux[i] > flux[i-1] && flux[i] >= flux[i+1] {
			onsets = append(onsets, i)
		}
	}

	return onsets
}
