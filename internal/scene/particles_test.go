package scene

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParticlesBounds(t *testing.T) {
	// unseeded in production, so only the ranges are asserted
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for round := 0; round < 20; round++ {
		ps := NewParticles(rng, 100)
		require.Len(t, ps, 100)
		for _, p := range ps {
			require.True(t, p.Angle >= 0 && p.Angle < 2*math.Pi, "angle %v", p.Angle)
			require.True(t, p.Distance >= 50 && p.Distance <= 300, "distance %v", p.Distance)
			require.True(t, p.Delay >= 0 && p.Delay <= 0.5, "delay %v", p.Delay)
			require.True(t, p.Size >= 1 && p.Size <= 3, "size %v", p.Size)
		}
	}
}

func TestParticleSampleBeforeDelay(t *testing.T) {
	p := Particle{X: 100, Y: -50, Delay: 0.4, Size: 2}
	st := p.Sample(0.3)
	assert.Equal(t, ParticleState{Size: 2}, st)
}

func TestParticleSampleKeyframes(t *testing.T) {
	p := Particle{X: 100, Y: -50, Delay: 0.5, Size: 2}

	st := p.Sample(0.5)
	assert.InDelta(t, 0, st.X, 1e-9)
	assert.InDelta(t, 0.3, st.Opacity, 1e-9)
	assert.InDelta(t, 0.25, st.Scale, 1e-9)

	st = p.Sample(0.5 + 0.6) // 20% of the 3s cycle
	assert.InDelta(t, 1, st.Opacity, 1e-3)
	assert.InDelta(t, 7.5, st.Scale, 1e-3)

	st = p.Sample(0.5 + 1.8) // 60%
	assert.InDelta(t, 0.7, st.Opacity, 1e-3)
	assert.InDelta(t, 2.5, st.Scale, 1e-3)

	st = p.Sample(0.5 + 3)
	assert.InDelta(t, 100, st.X, 1e-9)
	assert.InDelta(t, -50, st.Y, 1e-9)
	assert.InDelta(t, 1, st.Opacity, 1e-9)
	assert.InDelta(t, 1, st.Scale, 1e-9)
	assert.Equal(t, 2.0, st.Size)
}

func TestParticleSampleReverses(t *testing.T) {
	p := Particle{X: 100, Y: 0, Delay: 0}
	out := p.Sample(1.2)
	back := p.Sample(4.8)
	assert.InDelta(t, out.X, back.X, 1e-9)
	assert.InDelta(t, out.Opacity, back.Opacity, 1e-9)
	assert.InDelta(t, out.Scale, back.Scale, 1e-9)

	home := p.Sample(6)
	assert.InDelta(t, 0, home.X, 1e-9)
	assert.InDelta(t, 0.3, home.Opacity, 1e-9)

	again := p.Sample(7.2)
	assert.InDelta(t, out.X, again.X, 1e-9)
}

func TestHueWraps(t *testing.T) {
	h := &HueCycle{}
	for i := 0; i < 17; i++ {
		h.Advance()
	}
	start := h.Base()
	for i := 0; i < 359; i++ {
		h.Advance()
		require.NotEqual(t, start, h.Base())
		require.Less(t, h.Base(), 360)
	}
	h.Advance()
	assert.Equal(t, start, h.Base())
}

func TestHueOffsets(t *testing.T) {
	h := &HueCycle{}
	for i := 0; i < 350; i++ {
		h.Advance()
	}
	assert.Equal(t, 350.0, h.RingHue(0, 12))
	assert.Equal(t, 20.0, h.RingHue(1, 12))
	assert.InDelta(t, 350+3.6*5-360, h.ParticleHue(5, 100), 1e-9)
	assert.Equal(t, 350.0, h.ParticleHue(3, 0))
	assert.Equal(t, 30.0, OffsetHue(330, 60))
	assert.Equal(t, 300.0, OffsetHue(0, -60))
}

func TestHueStop(t *testing.T) {
	h := &HueCycle{}
	h.Advance()
	h.Stop()
	h.Advance()
	assert.Equal(t, 1, h.Base())
}
