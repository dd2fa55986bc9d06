package ui

import "math"

// Spring shaping: a critically damped spring x(t) = 1 - (1 + k·t)·e^(-k·t)
// approaches its target without overshoot. Stiffness is chosen so the curve
// is visually settled well inside the animation duration.
const springStiffness = 8.0

// springScale normalizes the curve so it ends at exactly 1
var springScale = 1.0 / (1.0 - (1.0+springStiffness)*math.Exp(-springStiffness))

// springCurve is a fyne.AnimationCurve for the settle animation
func springCurve(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	kt := springStiffness * float64(t)
	x := 1.0 - (1.0+kt)*math.Exp(-kt)
	return float32(x * springScale)
}
