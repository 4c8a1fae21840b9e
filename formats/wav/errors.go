// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNonPositiveRate = errors.New("sample rate must be positive")
)
