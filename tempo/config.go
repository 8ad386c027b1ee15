// SPDX-License-Identifier: EPL-2.0

package tempo

import "time"

// Range bounds the tempo search in beats per minute.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether bpm lies inside the range (inclusive).
func (r Range) Contains(bpm float64) bool {
	return bpm >= r.Min && bpm <= r.Max
}

// Mid returns the midpoint of the range, the default estimate when a
// clip carries no usable rhythmic information.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// Config controls a single analysis run. It is a value type: Analyze
// never mutates or retains it, so one Config may serve any number of
// concurrent calls.
//
// The zero value of every field means "use the default"; pass Config{}
// to analyze with defaults, or start from DefaultConfig and override.
type Config struct {
	// BPMRange bounds the reported tempo. Default 60–180.
	BPMRange Range

	// LowPassCutoffHz sets the cutoff of the bass-isolation filter.
	// The filter window is round(sampleRate/cutoff) samples. Default 150.
	LowPassCutoffHz float64

	// SampleWindow limits analysis to the leading portion of the clip.
	// Bounds the autocorrelation cost on long recordings. Default 30s.
	SampleWindow time.Duration

	// OnsetWindowRadius is the half-width, in envelope frames, of the
	// median window used for adaptive onset thresholding. Default 10.
	OnsetWindowRadius int

	// OnsetThresholdMultiplier scales the local median flux to form the
	// onset threshold. Default 1.5.
	OnsetThresholdMultiplier float64

	// GroupingToleranceBPM is the maximum distance at which an interval
	// joins an existing histogram bin. Default 2.
	GroupingToleranceBPM float64

	// MinIntervalCount is the number of valid inter-onset intervals the
	// histogram estimator requires before it trusts its input; with
	// fewer, analysis falls back to envelope autocorrelation. The
	// constant is arbitrary but tuned together with the confidence
	// formulas, so it is configurable rather than inlined. Default 4.
	MinIntervalCount int

	// DisableOctaveCorrection turns off the half-tempo fold of §octave
	// handling. Intended for tests and for material where doubled
	// estimates are the desired reading.
	DisableOctaveCorrection bool
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		BPMRange:                 Range{Min: 60, Max: 180},
		LowPassCutoffHz:          150,
		SampleWindow:             30 * time.Second,
		OnsetWindowRadius:        10,
		OnsetThresholdMultiplier: 1.5,
		GroupingToleranceBPM:     2,
		MinIntervalCount:         4,
	}
}

// withDefaults fills zero-valued fields from DefaultConfig. Exact-match
// binning is still expressible: bins sit on integers, so any tolerance
// below 1 (e.g. 0.5) matches only the bin's own value.
func (c Config) withDefaults() Config {
	def := DefaultConfig()

	if c.BPMRange == (Range{}) {
		c.BPMRange = def.BPMRange
	}
	if c.LowPassCutoffHz == 0 {
		c.LowPassCutoffHz = def.LowPassCutoffHz
	}
	if c.SampleWindow == 0 {
		c.SampleWindow = def.SampleWindow
	}
	if c.OnsetWindowRadius == 0 {
		c.OnsetWindowRadius = def.OnsetWindowRadius
	}
	if c.OnsetThresholdMultiplier == 0 {
		c.OnsetThresholdMultiplier = def.OnsetThresholdMultiplier
	}
	if c.GroupingToleranceBPM == 0 {
		c.GroupingToleranceBPM = def.GroupingToleranceBPM
	}
	if c.MinIntervalCount == 0 {
		c.MinIntervalCount = def.MinIntervalCount
	}

	return c
}

// validate rejects configurations the pipeline cannot run with.
func (c Config) validate() error {
	switch {
	case c.BPMRange.Min <= 0 || c.BPMRange.Max <= c.BPMRange.Min:
		return ErrBadBPMRange
	case c.LowPassCutoffHz <= 0:
		return ErrBadCutoff
	case c.SampleWindow <= 0:
		return ErrBadSampleWindow
	case c.OnsetWindowRadius < 1:
		return ErrBadOnsetRadius
	case c.OnsetThresholdMultiplier <= 0:
		return ErrBadOnsetMultiplier
	case c.GroupingToleranceBPM < 0:
		return ErrBadGroupingTolerance
	case c.MinIntervalCount < 1:
		return ErrBadMinIntervals
	}
	return nil
}
