// SPDX-License-Identifier: EPL-2.0

package tempo

import (
	"math"
	"testing"
)

// naiveLowpass recomputes every window from scratch. Used as the
// reference for the incremental running-sum implementation.
func naiveLowpass(x []float64, sampleRate int, cutoffHz float64) []float64 {
	w := int(math.Round(float64(sampleRate) / cutoffHz))
	if w < 1 {
		w = 1
	}
	half := w / 2

	out := make([]float64, len(x))
	for i := range x {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > len(x)-1 {
			hi = len(x) - 1
		}
		sum := 0.0
		for j := lo; j <= hi; j++ {
			sum += math.Abs(x[j])
		}
		out[i] = sum / float64(hi-lo+1)
	}
	return out
}

func TestLowpass_MatchesNaiveReference(t *testing.T) {
	t.Parallel()

	x := make([]float64, 500)
	for i := range x {
		x[i] = math.Sin(float64(i)*0.37) * math.Cos(float64(i)*0.011)
	}

	got := lowpass(x, 8000, 150)
	want := naiveLowpass(x, 8000, 150)

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("lowpass[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLowpass_WindowOfOneIsRectification(t *testing.T) {
	t.Parallel()

	x := []float64{-0.5, 0.25, -1.0, 0.0}

	// cutoff equal to the sample rate gives w = 1 with half = 0, i.e.
	// pure absolute value.
	got := lowpass(x, 8000, 8000)

	want := []float64{0.5, 0.25, 1.0, 0.0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("lowpass[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLowpass_ConstantSignal(t *testing.T) {
	t.Parallel()

	x := make([]float64, 200)
	for i := range x {
		x[i] = -0.3 // negative on purpose: the filter rectifies
	}

	got := lowpass(x, 8000, 150)
	for i, v := range got {
		if math.Abs(v-0.3) > 1e-9 {
			t.Fatalf("lowpass[%d] = %v, want 0.3", i, v)
		}
	}
}

func TestLowpass_SuppressesHighFrequency(t *testing.T) {
	t.Parallel()

	rate := 8000
	n := rate / 2

	// Alternating-sign signal (Nyquist). After rectification it becomes
	// a constant, so the filter output must be flat.
	x := make([]float64, n)
	for i := range x {
		if i%2 == 0 {
			x[i] = 0.8
		} else {
			x[i] = -0.8
		}
	}

	got := lowpass(x, rate, 150)
	for i, v := range got {
		if math.Abs(v-0.8) > 1e-9 {
			t.Fatalf("lowpass[%d] = %v, want 0.8", i, v)
		}
	}
}

func TestLowpass_Empty(t *testing.T) {
	t.Parallel()

	if got := lowpass(nil, 8000, 150); len(got) != 0 {
		t.Errorf("lowpass(nil) length = %d, want 0", len(got))
	}
}

func TestLowpass_TinyWindowClamped(t *testing.T) {
	t.Parallel()

	// Cutoff far above the sample rate would round the window to 0; it
	// must clamp to 1 instead of dividing by zero.
	x := []float64{0.5, -0.5}
	got := lowpass(x, 100, 100000)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != 0.5 || got[1] != 0.5 {
		t.Errorf("lowpass = %v, want [0.5 0.5]", got)
	}
}

func BenchmarkLowpass(b *testing.B) {
	x := make([]float64, 44100*10)
	for i := range x {
		x[i] = math.Sin(float64(i) * 0.1)
	}

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		lowpass(x, 44100, 150)
	}
}
