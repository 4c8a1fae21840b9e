// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource produces deterministic interleaved samples from a waveform
// function. It satisfies audio.Source structurally rather than by
// importing the package, keeping audiotest dependency-free.
type MockSource struct {
	rate     int
	channels int
	total    int // frames to produce in all
	pos      int // frames produced so far
	waveform func(frame, channel int) float32
}

// NewMockSource builds a source that emits total frames per channel,
// asking waveform for the value at each (frame, channel) pair.
func NewMockSource(rate, channels, total int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		rate:     rate,
		channels: channels,
		total:    total,
		waveform: waveform,
	}
}

// NewSilentSource emits all-zero samples.
func NewSilentSource(rate, channels, total int) *MockSource {
	return NewMockSource(rate, channels, total, func(frame, channel int) float32 {
		return 0
	})
}

// NewSineSource emits a sine wave at the given frequency in Hz, the
// same phase on every channel.
func NewSineSource(rate, channels, total int, frequency float64) *MockSource {
	return NewMockSource(rate, channels, total, func(frame, channel int) float32 {
		t := float64(frame) / float64(rate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource emits the same value for every sample.
func NewConstantSource(rate, channels, total int, value float32) *MockSource {
	return NewMockSource(rate, channels, total, func(frame, channel int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.rate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again from the start.
func (m *MockSource) Reset() {
	m.pos = 0
}

// ReadSamples fills dst with whole frames and reports the number of
// samples written. The final read returns io.EOF together with any
// remaining samples.
func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.total {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.total-m.pos)

	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.pos+f, ch)
		}
	}
	m.pos += frames

	if m.pos >= m.total {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}
