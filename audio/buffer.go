// SPDX-License-Identifier: EPL-2.0

package audio

// Buffer holds a fully decoded mono sample sequence, normalized to
// [-1.0, 1.0], together with its sample rate. Once built it is never
// mutated; downstream consumers slice it.
type Buffer struct {
	Data []float32
	Rate int
}

// Len returns the number of samples in the buffer.
func (b Buffer) Len() int { return len(b.Data) }

// Duration returns the buffer length in seconds.
func (b Buffer) Duration() float64 {
	if b.Rate <= 0 {
		return 0
	}
	return float64(len(b.Data)) / float64(b.Rate)
}
