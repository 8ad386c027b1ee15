// SPDX-License-Identifier: EPL-2.0

package tempo

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/goccmack/godsp"
	"github.com/ik5/audbpm/audio"
)

// insufficientDataConfidence is reported when a clip carries no usable
// rhythmic information (silence, or shorter than one envelope frame).
// Such clips still succeed, with the range midpoint as a placeholder
// tempo, so that a quiet track never blocks ingestion downstream.
const insufficientDataConfidence = 0.3

// Analyze estimates the dominant tempo of buf.
//
// The pipeline runs in one goroutine: mixdown, low-pass filtering,
// energy envelope, onset detection, then the interval histogram with an
// autocorrelation fallback. ctx is polled between stages only; a stage
// in progress always completes, so cancellation latency is bounded by
// the longest single stage, not honored mid-computation.
//
// Analyze never panics on malformed input and never returns an error
// out-of-band: every outcome, including cancellation and invalid
// buffers, is reported inside the Result. buf and cfg are not retained
// after the call returns.
func Analyze(ctx context.Context, buf *audio.Buffer, cfg Config) Result {
	start := time.Now()

	if ctx == nil {
		ctx = context.Background()
	}

	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return failure(start, err)
	}

	if err := buf.Validate(); err != nil {
		return failure(start, fmt.Errorf("%w: %w", ErrInvalidInput, err))
	}

	if err := ctx.Err(); err != nil {
		return cancelled(start, err)
	}

	maxSamples := int(cfg.SampleWindow.Seconds() * float64(buf.Rate))
	mono := mixdown(buf, maxSamples)

	if err := ctx.Err(); err != nil {
		return cancelled(start, err)
	}

	filtered := lowpass(mono, buf.Rate, cfg.LowPassCutoffHz)

	if err := ctx.Err(); err != nil {
		return cancelled(start, err)
	}

	env, hop := rmsEnvelope(filtered, buf.Rate)

	if err := ctx.Err(); err != nil {
		return cancelled(start, err)
	}

	// Empty or silent envelope: nothing to analyze, but not a failure.
	if len(env) == 0 || godsp.Max(env) == 0 {
		return insufficientData(start, cfg.BPMRange)
	}

	onsets := detectOnsets(env, cfg.OnsetWindowRadius, cfg.OnsetThresholdMultiplier)

	if err := ctx.Err(); err != nil {
		return cancelled(start, err)
	}

	if bpm, confidence, ok := estimateFromOnsets(onsets, buf.Rate, hop, cfg); ok {
		return Result{BPM: bpm, Confidence: confidence, Elapsed: time.Since(start)}
	}

	if err := ctx.Err(); err != nil {
		return cancelled(start, err)
	}

	if bpm, confidence, ok := estimateAutocorr(env, buf.Rate, hop, cfg); ok {
		return Result{BPM: bpm, Confidence: confidence, Elapsed: time.Since(start)}
	}

	return insufficientData(start, cfg.BPMRange)
}

// AnalyzeAll analyzes each buffer in order and returns one Result per
// input. A malformed buffer fails only its own slot; the batch carries
// on. Once ctx is cancelled the remaining slots fill with cancelled
// Results, preserving the one-result-per-input shape.
func AnalyzeAll(ctx context.Context, bufs []*audio.Buffer, cfg Config) []Result {
	results := make([]Result, len(bufs))
	for i, buf := range bufs {
		results[i] = Analyze(ctx, buf, cfg)
	}
	return results
}

func failure(start time.Time, err error) Result {
	return Result{Err: err, Elapsed: time.Since(start)}
}

func cancelled(start time.Time, cause error) Result {
	return failure(start, fmt.Errorf("%w: %w", ErrCancelled, cause))
}

func insufficientData(start time.Time, r Range) Result {
	return Result{
		BPM:        int(math.Round(r.Mid())),
		Confidence: insufficientDataConfidence,
		Elapsed:    time.Since(start),
	}
}
