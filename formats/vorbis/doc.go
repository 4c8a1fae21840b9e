// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// streams into float32 PCM samples, exposed through the audio.Source
// interface. It exists for library consumers; the clip splitter command
// itself only accepts MP3 input.
//
//	decoder := vorbis.Decoder{}
//	source, err := decoder.Decode(file)
package vorbis
