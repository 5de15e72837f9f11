package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCubicBezierEndpoints(t *testing.T) {
	for _, e := range []Ease{EaseIn, EaseOut, EaseInOut, Standard} {
		assert.Equal(t, 0.0, e(0))
		assert.Equal(t, 1.0, e(1))
		assert.Equal(t, 0.0, e(-1))
		assert.Equal(t, 1.0, e(2))
	}
}

func TestCubicBezierMonotonic(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := Standard(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestEaseInOutSymmetric(t *testing.T) {
	assert.InDelta(t, 0.5, EaseInOut(0.5), 1e-4)
	assert.InDelta(t, 1-EaseInOut(0.2), EaseInOut(0.8), 1e-4)
}

func TestEaseOutLeadsLinear(t *testing.T) {
	assert.Greater(t, EaseOut(0.3), 0.3)
	assert.Less(t, EaseIn(0.3), 0.3)
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0.0, Progress(0.4, 0.5, 1.5, nil))
	assert.InDelta(t, 0.5, Progress(1.25, 0.5, 1.5, nil), 1e-9)
	assert.Equal(t, 1.0, Progress(3, 0.5, 1.5, nil))
	assert.Equal(t, 1.0, Progress(1, 0, 0, nil))
}

func TestPingPong(t *testing.T) {
	assert.Equal(t, 0.0, PingPong(0, 3))
	assert.InDelta(t, 0.5, PingPong(1.5, 3), 1e-9)
	assert.InDelta(t, 1.0, PingPong(3, 3), 1e-9)
	assert.InDelta(t, 0.5, PingPong(4.5, 3), 1e-9)
	assert.InDelta(t, 0.0, PingPong(6, 3), 1e-9)
	assert.InDelta(t, 0.25, PingPong(6.75, 3), 1e-9)
}

func TestLoop(t *testing.T) {
	assert.InDelta(t, 0.5, Loop(1.5, 3), 1e-9)
	assert.InDelta(t, 0.0, Loop(3, 3), 1e-9)
	assert.InDelta(t, 0.5, Loop(4.5, 3), 1e-9)
}

func TestTrackEvenlySpaced(t *testing.T) {
	tr := Track{Values: []float64{0, 10, 0}}
	assert.Equal(t, 0.0, tr.At(0))
	assert.InDelta(t, 5, tr.At(0.25), 1e-9)
	assert.InDelta(t, 10, tr.At(0.5), 1e-9)
	assert.InDelta(t, 5, tr.At(0.75), 1e-9)
	assert.Equal(t, 0.0, tr.At(1))
	assert.Equal(t, 0.0, tr.At(2))
}

func TestTrackWithTimes(t *testing.T) {
	tr := Track{
		Values: []float64{0.25, 7.5, 2.5, 1},
		Times:  []float64{0, 0.2, 0.6, 1},
	}
	assert.Equal(t, 0.25, tr.At(0))
	assert.InDelta(t, 7.5, tr.At(0.2), 1e-9)
	assert.InDelta(t, 5.0, tr.At(0.4), 1e-9)
	assert.InDelta(t, 2.5, tr.At(0.6), 1e-9)
	assert.InDelta(t, 1.75, tr.At(0.8), 1e-9)
	assert.Equal(t, 1.0, tr.At(1))
}

func TestTrackEased(t *testing.T) {
	tr := Track{Values: []float64{0, 1}, Ease: EaseInOut}
	assert.Less(t, tr.At(0.2), 0.2)
	assert.InDelta(t, 0.5, tr.At(0.5), 1e-4)
}

func TestTrackDegenerate(t *testing.T) {
	assert.Equal(t, 0.0, Track{}.At(0.5))
	assert.Equal(t, 3.0, Track{Values: []float64{3}}.At(0.5))
}

func TestTimerFiresOnce(t *testing.T) {
	fired := 0
	tm := After(200*time.Millisecond, func() { fired++ })
	tm.Update(0.1)
	assert.Equal(t, 0, fired)
	assert.True(t, tm.Active())
	tm.Update(0.1)
	assert.Equal(t, 1, fired)
	assert.False(t, tm.Active())
	tm.Update(1)
	assert.Equal(t, 1, fired)
}

func TestTimerStop(t *testing.T) {
	fired := false
	tm := After(time.Second, func() { fired = true })
	tm.Stop()
	tm.Update(2)
	assert.False(t, fired)

	var nilTimer *Timer
	nilTimer.Update(1)
	assert.False(t, nilTimer.Active())
}

func TestIntervalFrameSteps(t *testing.T) {
	n := 0
	iv := Every(4*time.Second, func() { n++ })
	for i := 0; i < 239; i++ {
		iv.Update(1.0 / 60)
	}
	assert.Equal(t, 0, n)
	iv.Update(1.0 / 60)
	assert.Equal(t, 1, n)
	for i := 0; i < 240; i++ {
		iv.Update(1.0 / 60)
	}
	assert.Equal(t, 2, n)
}

func TestIntervalCatchesUpAndStops(t *testing.T) {
	n := 0
	iv := Every(time.Second, func() { n++ })
	iv.Update(3.5)
	assert.Equal(t, 3, n)
	iv.Stop()
	assert.True(t, iv.Stopped())
	iv.Update(10)
	assert.Equal(t, 3, n)
}
