// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/clipwav/utils"
)

// Resampler converts a mono Source to a target sample rate using cubic
// (Catmull-Rom) interpolation over a sliding four-sample window. When
// downsampling, a one-pole low-pass filter is applied to the incoming
// samples for basic anti-aliasing.
//
// The source must be mono; downmix first (see Downmixer).
type Resampler struct {
	src     Source
	srcRate float64
	dstRate float64
	ratio   float64 // source samples advanced per output sample

	// Sliding window: window[0] = t-1, window[1] = t0,
	// window[2] = t+1, window[3] = t+2. Interpolation happens
	// between window[1] and window[2].
	window   [4]float32
	haveSamp [4]bool
	primed   bool
	pos      float64
	eof      bool

	readBuf [1]float32

	// One-pole low-pass state, enabled only when downsampling.
	useFilter   bool
	filterAlpha float32
	filterState float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:     src,
		srcRate: float64(src.SampleRate()),
		dstRate: float64(dstRate),
		ratio:   ratio,
	}

	if ratio > 1.0 {
		// Simple one-pole filter; a proper FIR would do better but
		// this matches the quality bar of the rest of the pipeline.
		r.useFilter = true
		r.filterAlpha = 0.5
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return 1 }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// advance shifts the window left and reads one source sample into the
// last slot, filtering it when downsampling.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	r.window[0], r.window[1], r.window[2] = r.window[1], r.window[2], r.window[3]
	r.haveSamp[0], r.haveSamp[1], r.haveSamp[2] = r.haveSamp[1], r.haveSamp[2], r.haveSamp[3]

	n, err := r.src.ReadSamples(r.readBuf[:])
	if n > 0 {
		r.window[3] = r.filter(r.readBuf[0])
		r.haveSamp[3] = true
	} else {
		r.haveSamp[3] = false
	}

	if err == io.EOF {
		r.eof = true
		if !r.haveSamp[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (r *Resampler) filter(x float32) float32 {
	if !r.useFilter {
		return x
	}
	// y[n] = alpha * x[n] + (1-alpha) * y[n-1]
	r.filterState = r.filterAlpha*x + (1-r.filterAlpha)*r.filterState
	return r.filterState
}

// prime fills the initial four-sample window, duplicating the last valid
// sample when the source is shorter than the window.
func (r *Resampler) prime() error {
	for i := 0; i < 4; i++ {
		n, err := r.src.ReadSamples(r.readBuf[:])
		if n > 0 {
			if i == 0 && r.useFilter {
				// Seed the filter to avoid a warm-up transient.
				r.filterState = r.readBuf[0]
			}
			r.window[i] = r.filter(r.readBuf[0])
			r.haveSamp[i] = true
		}
		if err == io.EOF {
			r.eof = true
			last := i
			if n == 0 {
				last = i - 1
			}
			if last < 0 {
				return io.EOF
			}
			for j := last + 1; j < 4; j++ {
				r.window[j] = r.window[last]
				r.haveSamp[j] = true
			}
			break
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	r.primed = true
	return nil
}

// ReadSamples produces mono samples at the target rate.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written < len(dst) {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written, io.EOF
				}
				return written, err
			}
		}

		if !r.haveSamp[1] || !r.haveSamp[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written, io.EOF
		}

		y0 := r.window[1]
		if r.haveSamp[0] {
			y0 = r.window[0]
		}
		y3 := r.window[2]
		if r.haveSamp[3] {
			y3 = r.window[3]
		}

		dst[written] = utils.CubicInterpolate(y0, r.window[1], r.window[2], y3, float32(r.pos))
		written++
		r.pos += r.ratio
	}

	return written, nil
}
