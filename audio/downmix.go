// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Downmixer reduces a multi-channel Source to mono by averaging the
// channels of every frame. A mono source passes through untouched.
type Downmixer struct {
	src Source
	tmp []float32
}

func NewDownmixer(src Source) *Downmixer {
	return &Downmixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (d *Downmixer) SampleRate() int { return d.src.SampleRate() }
func (d *Downmixer) Channels() int   { return 1 }

func (d *Downmixer) Close() error {
	err := d.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (d *Downmixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := d.src.Channels()
	if channels == 1 {
		return d.src.ReadSamples(dst)
	}

	samplesNeeded := len(dst) * channels
	if cap(d.tmp) < samplesNeeded {
		d.tmp = make([]float32, samplesNeeded)
	}
	d.tmp = d.tmp[:samplesNeeded]

	n, err := d.src.ReadSamples(d.tmp)
	if n == 0 {
		return 0, err
	}
	frames := n / channels

	if channels == 2 {
		// Stereo fast path
		for f := range frames {
			dst[f] = (d.tmp[2*f] + d.tmp[2*f+1]) * 0.5
		}
		return frames, err
	}

	invChannels := float32(1.0) / float32(channels)
	for f := range frames {
		sum := float32(0)
		base := f * channels
		for c := range channels {
			sum += d.tmp[base+c]
		}
		dst[f] = sum * invChannels
	}

	return frames, err
}
