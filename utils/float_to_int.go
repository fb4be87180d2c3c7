package utils

import "math"

// Float64ToInt16 converts a sample in [-1, 1] to 16-bit PCM.
// Out-of-range samples clamp.
func Float64ToInt16(x float64) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow; round so the
	// save/load round trip stays within half a quantization step.
	return int16(math.Round(x * 32767.0))
}
