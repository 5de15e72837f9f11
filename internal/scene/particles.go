package scene

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/orbit-collapse/internal/anim"
	"github.com/iburimskiy/orbit-collapse/internal/config"
)

// Particle is one dot of the scatter cloud. X/Y is its target offset from the center.
type Particle struct {
	Angle    float64
	Distance float64
	X, Y     float64
	Delay    float64
	Size     float64
}

// ParticleState is a particle sampled at some point of the scatter phase.
type ParticleState struct {
	X, Y    float64
	Opacity float64
	Scale   float64
	Size    float64
}

var (
	particleOpacity = anim.Track{Values: config.ParticleOpacity(), Times: config.ParticleTimes(), Ease: anim.EaseInOut}
	particleScale   = anim.Track{Values: config.ParticleScale(), Times: config.ParticleTimes(), Ease: anim.EaseInOut}
)

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// NewParticles draws a fresh batch of n particles.
func NewParticles(rng *rand.Rand, n int) []Particle {
	out := make([]Particle, n)
	for i := range out {
		angle := rng.Float64() * 2 * math.Pi
		dist := uniform(rng, config.ParticleMinDistance, config.ParticleMaxDistance)
		out[i] = Particle{
			Angle:    angle,
			Distance: dist,
			X:        math.Cos(angle) * dist,
			Y:        math.Sin(angle) * dist,
			Delay:    uniform(rng, 0, config.ParticleMaxDelay),
			Size:     uniform(rng, config.ParticleMinSize, config.ParticleMaxSize),
		}
	}
	return out
}

// Sample returns the particle's state elapsed seconds after scatter began.
// Before its delay it sits invisible at the center; afterwards it breathes
// out and back with a period of twice ParticleCycle.
func (p Particle) Sample(elapsed float64) ParticleState {
	local := elapsed - p.Delay
	if local < 0 {
		return ParticleState{Size: p.Size}
	}
	u := anim.PingPong(local, config.ParticleCycle)
	move := anim.EaseInOut(u)
	return ParticleState{
		X:       p.X * move,
		Y:       p.Y * move,
		Opacity: particleOpacity.At(u),
		Scale:   particleScale.At(u),
		Size:    p.Size,
	}
}
