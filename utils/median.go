// SPDX-License-Identifier: EPL-2.0

package utils

import "sort"

// Median returns the median of xs. The slice is sorted in place, so
// callers that need the original order must pass a copy.
// An empty slice yields 0.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	sort.Float64s(xs)

	mid := len(xs) / 2
	if len(xs)%2 == 1 {
		return xs[mid]
	}
	return (xs[mid-1] + xs[mid]) / 2
}
