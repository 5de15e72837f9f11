package scene

import (
	"math"

	"github.com/iburimskiy/orbit-collapse/internal/config"
)

// HueCycle is the shared colour angle. It is written once per frame by the
// scene and read by everything that derives a colour from it.
type HueCycle struct {
	base    int
	stopped bool
}

func (h *HueCycle) Base() int { return h.base }

// Advance moves the hue one step, wrapping at 360.
func (h *HueCycle) Advance() {
	if h.stopped {
		return
	}
	h.base = (h.base + config.HueStep) % config.HueWrap
}

func (h *HueCycle) Stop() { h.stopped = true }

// RingHue is the hue of ring i out of n.
func (h *HueCycle) RingHue(i, n int) float64 {
	return OffsetHue(float64(h.base), float64(i)*360/float64(n))
}

// ParticleHue is the hue of particle j out of n.
func (h *HueCycle) ParticleHue(j, n int) float64 {
	if n <= 0 {
		return float64(h.base)
	}
	return OffsetHue(float64(h.base), float64(j)*360/float64(n))
}

// OffsetHue rotates a hue by offset degrees and keeps it in [0,360).
func OffsetHue(hue, offset float64) float64 {
	v := math.Mod(hue+offset, 360)
	if v < 0 {
		v += 360
	}
	return v
}
