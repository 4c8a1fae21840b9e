// SPDX-License-Identifier: EPL-2.0

package clipwav

import "errors"

var (
	// ErrInputNotFound indicates the input path does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrUnsupportedFormat indicates the input is not an MP3 file.
	ErrUnsupportedFormat = errors.New("input file must be MP3")

	// ErrInvalidConfig indicates a non-positive clip duration or sample rate.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDecodeFailed indicates the MP3 stream could not be decoded.
	ErrDecodeFailed = errors.New("decoding failed")

	// ErrEncodeFailed indicates a WAV clip could not be written.
	ErrEncodeFailed = errors.New("encoding failed")
)
