// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"iter"

	"github.com/ik5/clipwav/audio"
)

// Sequence is a lazy, restartable view of a buffer partitioned into
// fixed-length clips. Every clip has exactly SamplesPerClip samples; the
// final clip is zero-padded when the buffer length is not an exact
// multiple. All clips except the padded tail alias the source buffer,
// so callers must not mutate them.
type Sequence struct {
	buf            audio.Buffer
	samplesPerClip int
	count          int
}

// Partition splits buf into clips of clipSeconds each. An empty buffer
// yields an empty sequence. Non-positive clip duration or sample rate is
// rejected rather than dividing by zero.
func Partition(buf audio.Buffer, clipSeconds int) (*Sequence, error) {
	if clipSeconds <= 0 {
		return nil, ErrNonPositiveDuration
	}
	if buf.Rate <= 0 {
		return nil, ErrNonPositiveRate
	}

	samplesPerClip := clipSeconds * buf.Rate
	count := (buf.Len() + samplesPerClip - 1) / samplesPerClip

	return &Sequence{
		buf:            buf,
		samplesPerClip: samplesPerClip,
		count:          count,
	}, nil
}

// Count returns the number of clips: ceil(len / SamplesPerClip).
func (s *Sequence) Count() int { return s.count }

// SamplesPerClip returns the uniform clip length in samples.
func (s *Sequence) SamplesPerClip() int { return s.samplesPerClip }

// At returns clip i. Index must be in [0, Count()).
func (s *Sequence) At(i int) []float32 {
	start := i * s.samplesPerClip
	end := min(start+s.samplesPerClip, s.buf.Len())

	raw := s.buf.Data[start:end]
	if len(raw) == s.samplesPerClip {
		return raw
	}

	// Final short clip: copy and zero-pad to the uniform length.
	padded := make([]float32, s.samplesPerClip)
	copy(padded, raw)
	return padded
}

// All iterates the clips in index order. The sequence can be ranged over
// any number of times; each pass starts from clip 0.
func (s *Sequence) All() iter.Seq2[int, []float32] {
	return func(yield func(int, []float32) bool) {
		for i := range s.count {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}
