// SPDX-License-Identifier: EPL-2.0

// Package clipwav decodes an MP3 file into a normalized mono sample
// buffer and splits it into fixed-duration WAV clips.
//
// # Quick Start
//
// The high-level entry point is Split:
//
//	manifest, err := clipwav.Split("track.mp3", clipwav.Options{
//	    OutputDir:    "clips",
//	    ClipDuration: 10,
//	    SampleRate:   16000,
//	})
//
// manifest holds the written file paths ordered by clip index. Clips are
// named <base>_clip_<NNN>.wav with a 1-based, zero-padded index
// (track_clip_001.wav, track_clip_002.wav, ...). The final clip is
// zero-padded with silence so every file has the same length.
//
// # Pipeline
//
// Split runs a fixed sequence: validate the input, create the output
// directory, decode, partition, encode each clip in order. Decoding
// downmixes to mono and resamples to the target rate when the source
// rate differs (see the audio package); partitioning is handled by the
// clip package; WAV output by formats/wav.
//
// # Progress
//
// Options carries two optional callbacks instead of printing anything:
//
//	clipwav.Options{
//	    OnDecode: func(info clipwav.DecodeInfo) { ... },
//	    OnClip:   func(index int, path string) { ... },
//	}
//
// OnDecode fires once after decoding with the native rate and duration;
// OnClip fires after each clip is written.
//
// # Errors
//
// All failures are final; nothing is retried and already-written clips
// stay on disk. Errors can be classified with errors.Is against
// ErrInputNotFound, ErrUnsupportedFormat, ErrInvalidConfig,
// ErrDecodeFailed and ErrEncodeFailed.
//
// # Lower-Level Use
//
// DecodeFile exposes the decode step on its own, and the clip package
// can partition any audio.Buffer:
//
//	buf, origRate, err := clipwav.DecodeFile("track.mp3", 16000, nil)
//	seq, err := clip.Partition(buf, 10)
//	for i, samples := range seq.All() {
//	    // samples always has exactly seq.SamplesPerClip() values
//	}
package clipwav
