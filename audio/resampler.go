// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audbpm/utils"
)

// Resampler streams from src at a new sample rate using cubic
// interpolation over a four-frame window. Channel count is preserved.
//
// The main use here is cutting the analysis cost of long clips: tempo
// content lives far below even telephone bandwidth, so decoding at
// 44.1kHz and resampling down before buffering keeps the
// autocorrelation stage cheap without hurting the estimate.
type Resampler struct {
	src      Source
	channels int
	step     float64 // source frames advanced per output frame

	// win holds the four frames bracketing the interpolation point:
	// win[0]=t-1, win[1]=t0, win[2]=t+1, win[3]=t+2.
	win    [4][]float32
	filled [4]bool
	primed bool

	// pos is the fractional position between win[1] and win[2].
	pos float64

	frameBuf []float32
	eof      bool

	dstRate int

	// One-pole smoothing state, engaged when downsampling to tame
	// aliasing of high-frequency content.
	smooth      []float32
	smoothAlpha float32
	useSmooth   bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		channels: channels,
		step:     step,
		dstRate:  dstRate,
		frameBuf: make([]float32, channels),
		smooth:   make([]float32, channels),
	}

	if step > 1.0 {
		r.useSmooth = true
		r.smoothAlpha = 0.5
	}

	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame pulls exactly one interleaved frame from the source.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	n, err := r.src.ReadSamples(r.frameBuf)
	if n > 0 {
		copy(dst, r.frameBuf[:n])
	}
	if err == io.EOF {
		r.eof = true
		if n == 0 {
			return false, io.EOF
		}
		return true, nil
	}
	if err != nil {
		return n > 0, fmt.Errorf("%w", err)
	}
	return n > 0, nil
}

// advance shifts the window left by one frame and fills the trailing slot.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	copy(r.win[0], r.win[1])
	copy(r.win[1], r.win[2])
	copy(r.win[2], r.win[3])
	r.filled[0], r.filled[1], r.filled[2] = r.filled[1], r.filled[2], r.filled[3]

	ok, err := r.readFrame(r.win[3])
	r.filled[3] = ok
	if err != nil && err != io.EOF {
		return err
	}
	if !ok && r.eof {
		return io.EOF
	}

	if ok && r.useSmooth {
		for c := 0; c < r.channels; c++ {
			r.win[3][c] = r.smoothAlpha*r.win[3][c] + (1-r.smoothAlpha)*r.smooth[c]
			r.smooth[c] = r.win[3][c]
		}
	}

	return nil
}

// prime fills the initial window, duplicating the last frame of short
// sources so interpolation always has four points.
func (r *Resampler) prime() error {
	for i := range r.win {
		ok, err := r.readFrame(r.win[i])
		if ok {
			r.filled[i] = true
			if i == 0 && r.useSmooth {
				copy(r.smooth, r.win[0])
			}
		}
		if r.eof {
			if i == 0 && !ok {
				return io.EOF
			}
			for j := i; j < len(r.win); j++ {
				if !r.filled[j] && j > 0 {
					copy(r.win[j], r.win[j-1])
					r.filled[j] = true
				}
			}
			break
		}
		if err != nil {
			return err
		}
	}
	r.primed = true
	return nil
}

// ReadSamples produces samples at the destination rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.filled[1] || !r.filled[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		for c := 0; c < r.channels; c++ {
			y0 := r.win[1][c]
			if r.filled[0] {
				y0 = r.win[0][c]
			}
			y3 := r.win[2][c]
			if r.filled[3] {
				y3 = r.win[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, r.win[1][c], r.win[2][c], y3, alpha)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
