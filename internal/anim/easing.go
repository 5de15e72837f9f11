// Package anim holds the small set of timing primitives the scene is built from:
// easing curves, keyframe tracks and timers advanced by frame deltas.
package anim

import "math"

// Ease maps normalized progress in [0,1] onto eased progress.
type Ease func(u float64) float64

func Linear(u float64) float64 { return u }

// CubicBezier builds a CSS-style cubic-bezier(x1, y1, x2, y2) easing.
func CubicBezier(x1, y1, x2, y2 float64) Ease {
	// polynomial coefficients, p0=(0,0) p3=(1,1)
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	slopeX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	return func(u float64) float64 {
		u = Clamp01(u)
		if u == 0 || u == 1 {
			return u
		}
		// Newton first, bisection if the slope flattens out
		t := u
		for i := 0; i < 8; i++ {
			x := sampleX(t) - u
			if math.Abs(x) < 1e-7 {
				return sampleY(t)
			}
			d := slopeX(t)
			if math.Abs(d) < 1e-6 {
				break
			}
			t -= x / d
		}
		lo, hi := 0.0, 1.0
		t = u
		for i := 0; i < 40; i++ {
			x := sampleX(t)
			if math.Abs(x-u) < 1e-7 {
				break
			}
			if x < u {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return sampleY(t)
	}
}

var (
	EaseIn    = CubicBezier(0.42, 0, 1, 1)
	EaseOut   = CubicBezier(0, 0, 0.58, 1)
	EaseInOut = CubicBezier(0.42, 0, 0.58, 1)
	// Standard is the slow-fast-slow curve used by the collapse.
	Standard = CubicBezier(0.4, 0, 0.2, 1)
)

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func Lerp(a, b, u float64) float64 { return a + (b-a)*u }

// Progress returns eased progress of an animation that starts after delay and lasts duration.
func Progress(elapsed, delay, duration float64, ease Ease) float64 {
	if duration <= 0 {
		if elapsed >= delay {
			return 1
		}
		return 0
	}
	u := Clamp01((elapsed - delay) / duration)
	if ease == nil {
		return u
	}
	return ease(u)
}

// PingPong maps elapsed time onto [0,1] for an animation that plays forward,
// then in reverse, forever.
func PingPong(elapsed, duration float64) float64 {
	if duration <= 0 || elapsed <= 0 {
		return 0
	}
	c := math.Mod(elapsed, 2*duration)
	if c > duration {
		c = 2*duration - c
	}
	return c / duration
}

// Loop maps elapsed time onto [0,1) for an animation that restarts after duration.
func Loop(elapsed, duration float64) float64 {
	if duration <= 0 || elapsed <= 0 {
		return 0
	}
	return math.Mod(elapsed, duration) / duration
}
