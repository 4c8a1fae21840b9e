// SPDX-License-Identifier: EPL-2.0

package clip

import "errors"

var (
	ErrNonPositiveDuration = errors.New("clip duration must be positive")
	ErrNonPositiveRate     = errors.New("sample rate must be positive")
)
