package utils

// Float64ToInt16 clamps x to [-1, 1] and scales it to a 16-bit PCM
// sample. 32767 is used for the positive max to avoid overflow.
func Float64ToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}
