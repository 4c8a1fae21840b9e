// SPDX-License-Identifier: EPL-2.0

package clipwav_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/clipwav"
	"github.com/ik5/clipwav/audio"
	"github.com/ik5/clipwav/clip"
	"github.com/ik5/clipwav/internal/audiotest"
)

// toneDecoder stands in for the MP3 decoder so the example runs without
// an audio fixture.
type toneDecoder struct{}

func (toneDecoder) Decode(r io.Reader) (audio.Source, error) {
	// 2.5 seconds of a 440Hz tone at 8kHz mono.
	return audiotest.NewSineSource(8000, 1, 20000, 440.0), nil
}

// Example_split splits an input file into 1-second clips; the 2.5s input
// yields three files, the last padded with silence.
func Example_split() {
	dir, err := os.MkdirTemp("", "clipwav")
	if err != nil {
		fmt.Println("temp dir:", err)
		return
	}
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "tone.mp3")
	if err := os.WriteFile(input, []byte("placeholder"), 0o644); err != nil {
		fmt.Println("write input:", err)
		return
	}

	reg := audio.NewRegistry()
	reg.Register("mp3", toneDecoder{})

	manifest, err := clipwav.Split(input, clipwav.Options{
		OutputDir:    filepath.Join(dir, "clips"),
		ClipDuration: 1,
		SampleRate:   8000,
		Registry:     reg,
	})
	if err != nil {
		fmt.Println("split:", err)
		return
	}

	fmt.Println("clips written:", len(manifest))
	fmt.Println("last clip:", filepath.Base(manifest[len(manifest)-1]))
	// Output:
	// clips written: 3
	// last clip: tone_clip_003.wav
}

// Example_partition shows the clip arithmetic on its own: 25 samples at
// 10Hz with 1-second clips make three 10-sample clips.
func Example_partition() {
	buf := audio.Buffer{Data: make([]float32, 25), Rate: 10}

	seq, err := clip.Partition(buf, 1)
	if err != nil {
		fmt.Println("partition:", err)
		return
	}

	fmt.Println("clips:", seq.Count())
	fmt.Println("samples per clip:", seq.SamplesPerClip())
	for i, samples := range seq.All() {
		fmt.Printf("clip %d: %d samples\n", i, len(samples))
	}
	// Output:
	// clips: 3
	// samples per clip: 10
	// clip 0: 10 samples
	// clip 1: 10 samples
	// clip 2: 10 samples
}
