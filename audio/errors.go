// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNonPositiveRate = errors.New("target sample rate must be positive")
)
