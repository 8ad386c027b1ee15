// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"
)

func TestBuffer_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		buf     *Buffer
		wantErr error
	}{
		{
			name: "valid stereo",
			buf: &Buffer{
				Rate: 44100,
				Data: [][]float32{{0, 0.5}, {0, -0.5}},
			},
			wantErr: nil,
		},
		{
			name:    "nil buffer",
			buf:     nil,
			wantErr: ErrNilBuffer,
		},
		{
			name:    "zero sample rate",
			buf:     &Buffer{Rate: 0, Data: [][]float32{{0}}},
			wantErr: ErrBadSampleRate,
		},
		{
			name:    "negative sample rate",
			buf:     &Buffer{Rate: -8000, Data: [][]float32{{0}}},
			wantErr: ErrBadSampleRate,
		},
		{
			name:    "no channels",
			buf:     &Buffer{Rate: 8000, Data: nil},
			wantErr: ErrNoChannels,
		},
		{
			name:    "empty channel",
			buf:     &Buffer{Rate: 8000, Data: [][]float32{{}}},
			wantErr: ErrNoSamples,
		},
		{
			name: "mismatched channel lengths",
			buf: &Buffer{
				Rate: 8000,
				Data: [][]float32{{0, 0, 0}, {0, 0}},
			},
			wantErr: ErrChannelMismatch,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.buf.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuffer_Metadata(t *testing.T) {
	t.Parallel()

	buf := &Buffer{
		Rate: 8000,
		Data: [][]float32{make([]float32, 16000), make([]float32, 16000)},
	}

	if buf.NumChannels() != 2 {
		t.Errorf("NumChannels() = %d, want 2", buf.NumChannels())
	}
	if buf.Len() != 16000 {
		t.Errorf("Len() = %d, want 16000", buf.Len())
	}
	if math.Abs(buf.Duration()-2.0) > 1e-9 {
		t.Errorf("Duration() = %v, want 2.0", buf.Duration())
	}
}

func TestReadAll_Stereo(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 2, 100, func(sample int, channel int) float32 {
		if channel == 0 {
			return 0.25
		}
		return -0.25
	})

	buf, err := ReadAll(src, 64)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if buf.Rate != 8000 {
		t.Errorf("Rate = %d, want 8000", buf.Rate)
	}
	if buf.NumChannels() != 2 {
		t.Fatalf("NumChannels() = %d, want 2", buf.NumChannels())
	}
	if buf.Len() != 100 {
		t.Errorf("Len() = %d, want 100", buf.Len())
	}

	for i := 0; i < buf.Len(); i++ {
		if buf.Data[0][i] != 0.25 {
			t.Fatalf("Data[0][%d] = %v, want 0.25", i, buf.Data[0][i])
		}
		if buf.Data[1][i] != -0.25 {
			t.Fatalf("Data[1][%d] = %v, want -0.25", i, buf.Data[1][i])
		}
	}
}

func TestReadAll_DeinterleavesInOrder(t *testing.T) {
	t.Parallel()

	// Encode the per-channel sample index in the sample value so the
	// deinterleaving order is observable.
	src := newMockSource(8000, 2, 10, func(sample int, channel int) float32 {
		return float32(sample) / 100
	})

	buf, err := ReadAll(src, 4) // deliberately tiny scratch buffer
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	for ch := 0; ch < 2; ch++ {
		for i := 0; i < buf.Len(); i++ {
			want := float32(i) / 100
			if buf.Data[ch][i] != want {
				t.Errorf("Data[%d][%d] = %v, want %v", ch, i, buf.Data[ch][i], want)
			}
		}
	}
}

func TestReadAll_TinyBufferSize(t *testing.T) {
	t.Parallel()

	// A bufferSize below the channel count must still make progress.
	src := newConstantSource(8000, 4, 8, 0.5)

	buf, err := ReadAll(src, 1)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if buf.Len() != 8 {
		t.Errorf("Len() = %d, want 8", buf.Len())
	}
}

func TestReadAll_ValidatesAfterDrain(t *testing.T) {
	t.Parallel()

	src := newSineSource(44100, 2, 44100, 440)
	buf, err := ReadAll(src, 4096)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if err := buf.Validate(); err != nil {
		t.Errorf("Validate() after ReadAll error = %v", err)
	}
}

func BenchmarkReadAll(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		src := newSineSource(44100, 2, 441000, 440)
		if _, err := ReadAll(src, 4096); err != nil {
			b.Fatal(err)
		}
	}
}
