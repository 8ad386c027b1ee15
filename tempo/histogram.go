// SPDX-License-Identifier: EPL-2.0

package tempo

import "math"

// histogramConfidenceCap, autocorrConfidenceCap and the formula
// constants below were tuned together with the greedy binning policy;
// changing one without the others shifts the confidence scale.
const (
	histogramConfidenceCap = 0.95
	halfTempoCountRatio    = 0.7
	maxOctaveFolds         = 8
)

// tempoBin is one cluster of the interval histogram. The bin keeps the
// BPM that opened it; later members only raise the count.
type tempoBin struct {
	bpm   int
	count int
}

// onsetIntervalsToBPM converts consecutive onset spacings (in envelope
// frames) to BPM values, dropping everything outside the range.
func onsetIntervalsToBPM(onsets []int, sampleRate, hop int, bpmRange Range) []float64 {
	var valid []float64
	for i := 1; i < len(onsets); i++ {
		interval := onsets[i] - onsets[i-1]
		if interval <= 0 {
			continue
		}
		seconds := float64(interval*hop) / float64(sampleRate)
		bpm := 60.0 / seconds
		if bpmRange.Contains(bpm) {
			valid = append(valid, bpm)
		}
	}
	return valid
}

// estimateFromOnsets runs the primary estimator: a tolerance-grouped
// histogram over inter-onset intervals. ok is false when fewer than
// cfg.MinIntervalCount intervals survive range filtering, signalling
// the caller to fall back to autocorrelation.
//
// Binning is a single greedy pass in input order: each rounded BPM
// joins the nearest existing bin within the tolerance or opens a new
// one. The result depends on insertion order; that is accepted for
// speed and simplicity, and the confidence constants were tuned against
// exactly this behavior.
func estimateFromOnsets(onsets []int, sampleRate, hop int, cfg Config) (bpm int, confidence float64, ok bool) {
	valid := onsetIntervalsToBPM(onsets, sampleRate, hop, cfg.BPMRange)
	if len(valid) < cfg.MinIntervalCount {
		return 0, 0, false
	}

	var bins []tempoBin
	for _, v := range valid {
		rounded := int(math.Round(v))

		best := -1
		bestDist := math.MaxFloat64
		for j := range bins {
			d := math.Abs(float64(bins[j].bpm - rounded))
			if d <= cfg.GroupingToleranceBPM && d < bestDist {
				best = j
				bestDist = d
			}
		}

		if best >= 0 {
			bins[best].count++
		} else {
			bins = append(bins, tempoBin{bpm: rounded, count: 1})
		}
	}

	// Highest count wins; ties go to the earlier-opened bin.
	dominant := bins[0]
	for _, b := range bins[1:] {
		if b.count > dominant.count {
			dominant = b
		}
	}

	confidence = math.Min(histogramConfidenceCap,
		float64(dominant.count)/float64(len(valid))+0.3)

	estimate := float64(dominant.bpm)

	// Half-tempo correction: a busy track often doubles a genuine
	// slower tempo, so when the half-tempo bin is nearly as populated
	// as the dominant one, prefer it. The correction is intentionally
	// one-directional; no symmetric double-tempo check is performed.
	if !cfg.DisableOctaveCorrection {
		half := estimate / 2
		if cfg.BPMRange.Contains(half) {
			for _, b := range bins {
				if math.Abs(float64(b.bpm)-half) <= cfg.GroupingToleranceBPM &&
					float64(b.count) > halfTempoCountRatio*float64(dominant.count) {
					estimate = float64(b.bpm)
					break
				}
			}
		}
	}

	return int(math.Round(foldIntoRange(estimate, cfg.BPMRange))), confidence, true
}

// foldIntoRange maps a tempo into the range by octave steps: doubling
// while below the minimum, halving while above the maximum. Ranges
// narrower than one octave can make the walk oscillate, so it is
// bounded and then clamped to the nearer edge.
func foldIntoRange(bpm float64, r Range) float64 {
	for _i := 0; _i < maxOctaveFolds; _i++ {
		switch {
		case bpm < r.Min:
			bpm *= 2
		case bpm > r.Max:
			bpm /= 2
		default:
			return bpm
		}
	}

	if bpm < r.Min {
		return r.Min
	}
	if bpm > r.Max {
		return r.Max
	}
	return bpm
}
