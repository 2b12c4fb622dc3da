package scale

// Lerp interpolates between a and b at t in [0, 1].
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// EaseCubicInOut is the symmetric cubic easing curve.
func EaseCubicInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 1 + u*u*u/2
}
