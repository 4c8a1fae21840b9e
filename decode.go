// SPDX-License-Identifier: EPL-2.0

package clipwav

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/clipwav/audio"
	"github.com/ik5/clipwav/formats/mp3"
)

// DefaultRegistry returns a registry holding the decoder the splitter
// accepts as input.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("mp3", mp3.Decoder{})
	return reg
}

// validateInput checks that path exists and carries an MP3 extension
// (case-insensitive). Both checks happen before any decode work.
func validateInput(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, err)
	}

	if ext(path) != "mp3" {
		return fmt.Errorf("%w, got: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	return nil
}

// ext returns the lower-cased extension of path without the dot.
func ext(path string) string {
	e := filepath.Ext(path)
	if len(e) > 0 {
		e = e[1:]
	}
	return strings.ToLower(e)
}

// DecodeFile decodes the audio file at path into a mono Buffer at
// targetRate, downmixing and resampling as needed. It also returns the
// file's native sample rate, which is informational only. reg selects
// the decoder by extension; pass nil for DefaultRegistry.
func DecodeFile(path string, targetRate int, reg *audio.Registry) (audio.Buffer, int, error) {
	if targetRate <= 0 {
		return audio.Buffer{}, 0, fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, targetRate)
	}

	if err := validateInput(path); err != nil {
		return audio.Buffer{}, 0, err
	}

	if reg == nil {
		reg = DefaultRegistry()
	}

	dec, ok := reg.Get(ext(path))
	if !ok {
		return audio.Buffer{}, 0, fmt.Errorf("%w, got: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return audio.Buffer{}, 0, fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return audio.Buffer{}, 0, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	defer src.Close()

	origRate := src.SampleRate()

	buf, err := audio.Collect(src, targetRate)
	if err != nil {
		return audio.Buffer{}, 0, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}

	return buf, origRate, nil
}
