// SPDX-License-Identifier: EPL-2.0

package tempo

import (
	"math"

	"github.com/goccmack/godsp"
)

const autocorrConfidenceCap = 0.85

// estimateAutocorr is the fallback estimator for material without
// clean transients: normalized autocorrelation of the mean-centered
// envelope over the lag window implied by the BPM range. The lag with
// the highest correlation gives the beat period.
//
// This is the dominant cost of the whole pipeline, O(lagRange·n);
// the sample-window truncation upstream keeps n bounded.
func estimateAutocorr(env []float64, sampleRate, hop int, cfg Config) (bpm int, confidence float64, ok bool) {
	if len(env) < 2 {
		return 0, 0, false
	}

	mean := godsp.Average(env)
	x := make([]float64, len(env))
	for i, v := range env {
		x[i] = v - mean
	}

	hopSeconds := float64(hop) / float64(sampleRate)
	minLag := int(60.0 / (cfg.BPMRange.Max * hopSeconds))
	maxLag := int(60.0 / (cfg.BPMRange.Min * hopSeconds))
	if maxLag > len(x)/2 {
		maxLag = len(x) / 2
	}
	if minLag < 1 {
		minLag = 1
	}
	if minLag > maxLag {
		return 0, 0, false
	}

	bestLag := 0
	bestCorr := 0.0

	for lag := minLag; lag <= maxLag; lag++ {
		var num, energyA, energyB float64
		n := len(x) - lag
		for i := 0; i < n; i++ {
			num += x[i] * x[i+lag]
			energyA += x[i] * x[i]
			energyB += x[i+lag] * x[i+lag]
		}

		den := math.Sqrt(energyA * energyB)
		if den == 0 {
			continue
		}

		if corr := num / den; corr > bestCorr {
			bestCorr = corr
			bestLag = lag
		}
	}

	if bestLag == 0 {
		// No positive correlation anywhere in the window: nothing
		// periodic to report.
		return 0, 0, false
	}

	raw := 60.0 / (float64(bestLag) * hopSeconds)
	bpm = int(math.Round(foldIntoRange(raw, cfg.BPMRange)))
	confidence = math.Min(autocorrConfidenceCap, bestCorr*0.5+0.35)

	return bpm, confidence, true
}
