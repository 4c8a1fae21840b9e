// SPDX-License-Identifier: EPL-2.0

// Command clipwav converts an MP3 file to WAV and splits it into
// fixed-duration clips.
//
// Usage:
//
//	clipwav <input.mp3> [--output-dir DIR] [--clip-duration N] [--sample-rate N]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/clipwav"
)

func usage() {
	fmt.Println("usage: clipwav <input.mp3> [--output-dir DIR] [--clip-duration N] [--sample-rate N]")
}

func main() {
	fs := flag.NewFlagSet("clipwav", flag.ExitOnError)
	outputDir := fs.String("output-dir", clipwav.DefaultOutputDir, "output directory for WAV clips")
	clipDuration := fs.Int("clip-duration", clipwav.DefaultClipDuration, "duration of each clip in seconds")
	sampleRate := fs.Int("sample-rate", clipwav.DefaultSampleRate, "target sample rate in Hz")

	args := os.Args[1:]
	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		usage()
		os.Exit(1)
	}
	input := args[0]

	if err := fs.Parse(args[1:]); err != nil {
		os.Exit(1)
	}

	fmt.Println("Loading audio file:", input)

	clipSeconds := *clipDuration

	manifest, err := clipwav.Split(input, clipwav.Options{
		OutputDir:    *outputDir,
		ClipDuration: clipSeconds,
		SampleRate:   *sampleRate,
		OnDecode: func(info clipwav.DecodeInfo) {
			fmt.Printf("Original sample rate: %d, Target sample rate: %d\n", info.OriginalRate, info.TargetRate)
			fmt.Printf("Audio duration: %.2f seconds\n", info.Duration)
			fmt.Printf("Splitting into %d clips of %d seconds each\n", info.ClipCount, clipSeconds)
		},
		OnClip: func(index int, path string) {
			fmt.Printf("  Created: %s\n", filepath.Base(path))
		},
	})
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	absDir, absErr := filepath.Abs(*outputDir)
	if absErr != nil {
		absDir = *outputDir
	}

	fmt.Printf("Success! Created %d WAV clips in '%s'\n", len(manifest), *outputDir)
	fmt.Println("Output directory:", absDir)
}
