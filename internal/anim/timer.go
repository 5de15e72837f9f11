package anim

import "time"

// Frame deltas are accumulated floats; a tiny slack keeps 240 steps of 1/60s equal to 4s.
const epsilon = 1e-9

// Timer fires fn once after its delay has elapsed in Update calls.
type Timer struct {
	remaining float64
	fn        func()
	active    bool
}

func After(d time.Duration, fn func()) *Timer {
	return &Timer{remaining: d.Seconds(), fn: fn, active: true}
}

func (t *Timer) Update(dt float64) {
	if t == nil || !t.active {
		return
	}
	t.remaining -= dt
	if t.remaining > epsilon {
		return
	}
	t.active = false
	if t.fn != nil {
		t.fn()
	}
}

// Stop cancels the timer without firing it.
func (t *Timer) Stop() {
	if t != nil {
		t.active = false
	}
}

func (t *Timer) Active() bool { return t != nil && t.active }

// Interval fires fn once per elapsed period until stopped.
type Interval struct {
	period  float64
	elapsed float64
	fn      func()
	stopped bool
}

func Every(d time.Duration, fn func()) *Interval {
	return &Interval{period: d.Seconds(), fn: fn}
}

func (iv *Interval) Update(dt float64) {
	if iv == nil || iv.stopped || iv.period <= 0 {
		return
	}
	iv.elapsed += dt
	for !iv.stopped && iv.elapsed >= iv.period-epsilon {
		iv.elapsed -= iv.period
		if iv.fn != nil {
			iv.fn()
		}
	}
}

func (iv *Interval) Stop() {
	if iv != nil {
		iv.stopped = true
	}
}

func (iv *Interval) Stopped() bool { return iv == nil || iv.stopped }
