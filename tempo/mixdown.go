// SPDX-License-Identifier: EPL-2.0

package tempo

import "github.com/ik5/audbpm/audio"

// mixdown collapses all channels of buf into one mono signal by
// equal-weight averaging, keeping at most maxSamples leading samples.
// maxSamples <= 0 means the full clip.
//
// The buffer is assumed validated; mixdown itself never fails.
func mixdown(buf *audio.Buffer, maxSamples int) []float64 {
	n := buf.Len()
	if maxSamples > 0 && maxSamples < n {
		n = maxSamples
	}

	mono := make([]float64, n)

	if buf.NumChannels() == 1 {
		for i := 0; i < n; i++ {
			mono[i] = float64(buf.Data[0][i])
		}
		return mono
	}

	inv := 1.0 / float64(buf.NumChannels())
	for i := 0; i < n; i++ {
		sum := 0.0
		for ch := range buf.Data {
			sum += float64(buf.Data[ch][i])
		}
		mono[i] = sum * inv
	}

	return mono
}
