// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a normalized sample in [-1, 1] to a signed
// 16-bit value. Out-of-range input saturates symmetrically at ±32767,
// so -1 and 1 map to values of equal magnitude.
func Float32ToInt16(x float32) int16 {
	switch {
	case x >= 1:
		return 32767
	case x <= -1:
		return -32767
	}
	return int16(x * 32767.0)
}
