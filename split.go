// SPDX-License-Identifier: EPL-2.0

package clipwav

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/clipwav/audio"
	"github.com/ik5/clipwav/clip"
	"github.com/ik5/clipwav/formats/wav"
)

// Default settings. Split falls back to DefaultOutputDir when
// Options.OutputDir is empty; the duration and rate defaults are applied
// by the command-line front end.
const (
	DefaultOutputDir    = "output_clips"
	DefaultClipDuration = 10
	DefaultSampleRate   = 16000
)

// DecodeInfo describes the decoded input, passed to OnDecode before any
// clip is written. OriginalRate is the file's native sample rate and is
// informational only.
type DecodeInfo struct {
	OriginalRate int
	TargetRate   int
	Duration     float64
	ClipCount    int
}

// Options configures Split. An empty OutputDir selects
// DefaultOutputDir; ClipDuration and SampleRate must be positive.
type Options struct {
	// OutputDir receives the WAV clips; created (with parents) if missing.
	OutputDir string

	// ClipDuration is the clip length in seconds. Must be positive.
	ClipDuration int

	// SampleRate is the target output rate in Hz. Must be positive.
	SampleRate int

	// Registry resolves the input decoder by extension. Nil means
	// DefaultRegistry.
	Registry *audio.Registry

	// OnDecode, if set, is called once after decoding.
	OnDecode func(info DecodeInfo)

	// OnClip, if set, is called after each clip is written with the
	// zero-based clip index and the written path.
	OnClip func(index int, path string)
}

func (o Options) withDefaults() Options {
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	return o
}

// Split decodes the MP3 file at inputPath, partitions it into clips of
// opts.ClipDuration seconds, writes each clip as
// <base>_clip_<NNN>.wav under opts.OutputDir and returns the written
// paths ordered by clip index. The final clip is zero-padded to the
// uniform length.
//
// Clips already written when an encode fails are left on disk; there is
// no rollback. Existing files with colliding names are overwritten.
func Split(inputPath string, opts Options) ([]string, error) {
	opts = opts.withDefaults()

	if opts.ClipDuration <= 0 {
		return nil, fmt.Errorf("%w: clip duration %d", ErrInvalidConfig, opts.ClipDuration)
	}
	if opts.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, opts.SampleRate)
	}

	// Input validation precedes output directory creation, so a bad
	// input never leaves an empty directory behind.
	if err := validateInput(inputPath); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	buf, origRate, err := DecodeFile(inputPath, opts.SampleRate, opts.Registry)
	if err != nil {
		return nil, err
	}

	seq, err := clip.Partition(buf, opts.ClipDuration)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if opts.OnDecode != nil {
		opts.OnDecode(DecodeInfo{
			OriginalRate: origRate,
			TargetRate:   opts.SampleRate,
			Duration:     buf.Duration(),
			ClipCount:    seq.Count(),
		})
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	manifest := make([]string, 0, seq.Count())
	for i, samples := range seq.All() {
		name := fmt.Sprintf("%s_clip_%03d.wav", base, i+1)
		path := filepath.Join(opts.OutputDir, name)

		if err := wav.WriteClip(path, samples, opts.SampleRate); err != nil {
			return nil, fmt.Errorf("%w: clip %d: %w", ErrEncodeFailed, i+1, err)
		}

		manifest = append(manifest, path)

		if opts.OnClip != nil {
			opts.OnClip(i, path)
		}
	}

	return manifest, nil
}
