// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 streams
// into float32 PCM samples. It is the input format of the clip splitter.
//
// # Decoding MP3 Files
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: 2 (go-mp3 always produces an interleaved stereo stream)
//   - Sample rate: taken from the MP3 file (typically 44.1kHz or 48kHz)
//
// Use audio.NewDownmixer and audio.NewResampler (or audio.Collect) to
// reduce the output to mono at a target rate:
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	buffer, _ := audio.Collect(src, 16000)
//
// MP3 writing is not supported.
package mp3
