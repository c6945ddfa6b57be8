package common

// Logical canvas size shared by both games.
const (
	BaseWidth  = 1024
	BaseHeight = 600
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
