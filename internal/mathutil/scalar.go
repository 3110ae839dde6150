// Package mathutil holds scalar helpers shared across the render pipeline.
package mathutil

// Lerp returns a + (b-a)*t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp8 rounds v to the nearest byte value, saturating at 0 and 255.
func Clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
