// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// MonoPipeline wires src through a Downmixer and, when the source rate
// differs from targetRate, a Resampler. The result is a mono Source at
// targetRate.
func MonoPipeline(src Source, targetRate int) (Source, error) {
	if targetRate <= 0 {
		return nil, ErrNonPositiveRate
	}

	mono := Source(NewDownmixer(src))
	if src.SampleRate() != targetRate {
		mono = NewResampler(mono, targetRate)
	}

	return mono, nil
}

// ReadAll drains src into a single sample slice. The source is read in
// fixed-size chunks until io.EOF; any other error aborts the collection.
func ReadAll(src Source) ([]float32, error) {
	// Start with room for about two seconds of audio and grow from there.
	samples := make([]float32, 0, src.SampleRate()*2)
	buf := make([]float32, 4096)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return samples, nil
}

// Collect runs src through MonoPipeline and gathers the full output as a
// Buffer at targetRate.
func Collect(src Source, targetRate int) (Buffer, error) {
	mono, err := MonoPipeline(src, targetRate)
	if err != nil {
		return Buffer{}, err
	}

	data, err := ReadAll(mono)
	if err != nil {
		return Buffer{}, err
	}

	return Buffer{Data: data, Rate: targetRate}, nil
}
