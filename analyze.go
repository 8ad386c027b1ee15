// SPDX-License-Identifier: EPL-2.0

package audbpm

import (
	"context"
	"fmt"

	"github.com/ik5/audbpm/audio"
	"github.com/ik5/audbpm/tempo"
)

// AnalyzeSource decodes the whole of src into memory and estimates its
// tempo.
//
// When analysisRate is positive and differs from the source rate, the
// stream is resampled first; analysis needs no more than a few kHz of
// bandwidth, so downsampling long clips cuts both memory and
// autocorrelation cost. Pass 0 to analyze at the native rate.
// bufferSize is the read granularity in samples (0 picks the source's
// preferred size).
//
// The returned error covers decode-side failures only. Analysis-side
// failures, cancellation included, arrive inside the Result, matching
// tempo.Analyze.
func AnalyzeSource(ctx context.Context, src audio.Source, analysisRate, bufferSize int, cfg tempo.Config) (tempo.Result, error) {
	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}

	if analysisRate > 0 && analysisRate != src.SampleRate() {
		src = audio.NewResampler(src, analysisRate)
	}

	buf, err := audio.ReadAll(src, bufferSize)
	if err != nil {
		return tempo.Result{}, fmt.Errorf("collecting samples: %w", err)
	}

	return tempo.Analyze(ctx, buf, cfg), nil
}

// AnalyzeAll runs AnalyzeSource over each source in order and returns
// one Result per input. A source that fails to decode yields a failed
// Result wrapping tempo.ErrInvalidInput; the remaining sources are
// still analyzed.
func AnalyzeAll(ctx context.Context, srcs []audio.Source, analysisRate, bufferSize int, cfg tempo.Config) []tempo.Result {
	results := make([]tempo.Result, len(srcs))
	for i, src := range srcs {
		res, err := AnalyzeSource(ctx, src, analysisRate, bufferSize, cfg)
		if err != nil {
			results[i] = tempo.Result{
				Err: fmt.Errorf("%w: %w", tempo.ErrInvalidInput, err),
			}
			continue
		}
		results[i] = res
	}
	return results
}
