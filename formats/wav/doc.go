// SPDX-License-Identifier: EPL-2.0

// Package wav writes audio clips as WAV files.
//
// It uses the github.com/go-audio library for the WAV container, always
// producing mono 16-bit PCM:
//
//	err := wav.WriteClip("clip_001.wav", samples, 16000)
//
// samples are normalized float32 values in [-1, 1] and are clamped and
// scaled to int16. WriteClip overwrites any existing file at the target
// path. Encode is the io.WriteSeeker variant for callers that manage
// their own files.
package wav
