// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio decoding.
//
// This package uses github.com/go-audio/aiff to decode 16-bit PCM AIFF
// files into float32 PCM samples, exposed through the audio.Source
// interface. Like package vorbis, it exists for library consumers; the
// clip splitter command itself only accepts MP3 input.
package aiff
