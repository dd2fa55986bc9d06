package ui

import "testing"

func TestSpringCurve_Endpoints(t *testing.T) {
	if got := springCurve(0); got != 0 {
		t.Errorf("springCurve(0) = %f, expected 0", got)
	}
	if got := springCurve(1); got != 1 {
		t.Errorf("springCurve(1) = %f, expected 1", got)
	}
}

func TestSpringCurve_MonotonicNoOvershoot(t *testing.T) {
	prev := float32(0)
	for i := 1; i <= 100; i++ {
		v := springCurve(float32(i) / 100)
		if v < prev {
			t.Fatalf("Curve not monotonic at t=%d/100: %f < %f", i, v, prev)
		}
		if v > 1 {
			t.Fatalf("Critically damped curve overshot at t=%d/100: %f", i, v)
		}
		prev = v
	}
}

func TestSpringCurve_ClampsOutOfRange(t *testing.T) {
	if springCurve(-0.5) != 0 {
		t.Error("Negative progress should clamp to 0")
	}
	if springCurve(1.5) != 1 {
		t.Error("Progress past 1 should clamp to 1")
	}
}
