// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/clipwav/utils"
)

const bitDepth = 16

// WriteClip writes samples as a mono 16-bit PCM WAV file at path.
// samples are normalized float32 values in [-1, 1]; they are clamped and
// scaled to int16 on the way out. An existing file at path is
// overwritten.
func WriteClip(path string, samples []float32, sampleRate int) error {
	if sampleRate <= 0 {
		return ErrNonPositiveRate
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := Encode(f, samples, sampleRate); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Encode writes samples as a mono 16-bit PCM WAV stream to w. The
// encoder seeks back to patch chunk sizes, hence the WriteSeeker.
func Encode(w io.WriteSeeker, samples []float32, sampleRate int) error {
	enc := gowav.NewEncoder(w, sampleRate, bitDepth, 1, 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(utils.Float32ToInt16(s))
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
