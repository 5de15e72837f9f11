package scene

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/iburimskiy/orbit-collapse/internal/anim"
	"github.com/iburimskiy/orbit-collapse/internal/config"
)

const slack = 1e-9

type orbitStage int

const (
	stageRings orbitStage = iota
	stageSettle
	stageDone
)

// RingState describes how ring i is drawn this frame.
type RingState struct {
	RX, RY   float64
	Opacity  float64
	Rotation float64 // degrees
	Active   bool
}

// MarkerState is the orbiting dot, offset from the canvas center.
type MarkerState struct {
	X, Y    float64
	Scale   float64
	Opacity float64
}

// GroupState is the tumble applied to the whole ring group, in degrees.
type GroupState struct {
	RotateX, RotateY float64
}

// Animator plays the ring traversal, the collapse and the particle field for
// whatever phase it was last told about, and reports completion through advance.
type Animator struct {
	phase   Phase
	advance func(Phase)
	rng     *rand.Rand
	paths   []anim.Path
	log     zerolog.Logger

	stage       orbitStage
	step        int
	elapsed     float64
	currentRing int
	dotOpacity  float64
	fromOpacity float64
	settleFromX float64
	settleFromY float64
	marker      MarkerState

	suckElapsed float64
	suckFromX   float64
	suckFromY   float64
	toScatter   *anim.Timer

	particles      []Particle
	scatterElapsed float64
}

func NewAnimator(rng *rand.Rand, advance func(Phase), log zerolog.Logger) *Animator {
	a := &Animator{
		advance: advance,
		rng:     rng,
		paths:   orbitPaths(config.RingCount),
		log:     log.With().Str("component", "animator").Logger(),
	}
	a.Reinitialize()
	return a
}

// orbitPaths samples one revolution of every orbit ellipse; path i has radii (i+1)*25 x (i+1)*12.
func orbitPaths(n int) []anim.Path {
	paths := make([]anim.Path, n)
	for i := range paths {
		rx := float64(i+1) * config.RingRadiusX
		ry := float64(i+1) * config.RingRadiusY
		xs := make([]float64, config.OrbitSteps+1)
		ys := make([]float64, config.OrbitSteps+1)
		for s := 0; s <= config.OrbitSteps; s++ {
			angle := float64(s) / config.OrbitSteps * 2 * math.Pi
			xs[s] = math.Cos(angle) * rx
			ys[s] = math.Sin(angle) * ry
		}
		paths[i] = anim.Path{X: anim.Track{Values: xs}, Y: anim.Track{Values: ys}}
	}
	return paths
}

// Reinitialize puts the orbit state back to where a fresh cycle starts and
// drops the particle batch.
func (a *Animator) Reinitialize() {
	a.stage = stageRings
	a.step = 0
	a.elapsed = 0
	a.currentRing = config.RingCount + 1
	a.dotOpacity = 1
	a.fromOpacity = 1
	a.marker = MarkerState{Scale: 1, Opacity: 1}
	a.suckElapsed = 0
	a.toScatter.Stop()
	a.toScatter = nil
	a.particles = nil
	a.scatterElapsed = 0
}

// SetPhase is subscribed to the controller; every entry restarts that phase's work.
func (a *Animator) SetPhase(p Phase) {
	a.phase = p
	switch p {
	case PhaseOrbit:
		a.Reinitialize()
		a.beginRing(0)
	case PhaseSuck:
		a.suckElapsed = 0
		a.suckFromX, a.suckFromY = a.marker.X, a.marker.Y
		a.toScatter.Stop()
		a.toScatter = nil
	case PhaseScatter:
		a.particles = NewParticles(a.rng, config.ParticleCount)
		a.scatterElapsed = 0
		a.log.Debug().Int("particles", len(a.particles)).Msg("particle batch generated")
	case PhaseReset:
		a.Reinitialize()
	}
}

func (a *Animator) Update(dt float64) {
	switch a.phase {
	case PhaseOrbit:
		a.updateOrbit(dt)
	case PhaseSuck:
		a.updateSuck(dt)
	case PhaseScatter:
		a.scatterElapsed += dt
	}
}

func (a *Animator) perRing() float64 {
	return config.OrbitDuration / config.RingCount
}

// ring is the orbit path currently being traversed.
func (a *Animator) ring() int {
	return config.RingCount - 1 - a.step
}

func (a *Animator) beginRing(step int) {
	a.step = step
	i := a.ring()
	a.currentRing = config.RingCount - i
	a.fromOpacity = a.dotOpacity
	if i <= config.FadeRingIndex {
		a.dotOpacity = config.MinDotOpacity + float64(i)/config.FadeRingIndex*(1-config.MinDotOpacity)
	}
	a.marker.X, a.marker.Y = a.paths[i].At(0)
}

func (a *Animator) updateOrbit(dt float64) {
	if a.stage == stageDone {
		return
	}
	a.elapsed += dt
	per := a.perRing()
	for a.stage == stageRings && a.elapsed >= per-slack {
		a.elapsed -= per
		if a.step+1 < config.RingCount {
			a.beginRing(a.step + 1)
			continue
		}
		a.stage = stageSettle
		a.settleFromX, a.settleFromY = a.paths[a.ring()].At(1)
		a.marker.Opacity = a.dotOpacity
	}

	switch a.stage {
	case stageRings:
		u := anim.Clamp01(a.elapsed / per)
		a.marker.X, a.marker.Y = a.paths[a.ring()].At(u)
		a.marker.Opacity = anim.Lerp(a.fromOpacity, a.dotOpacity, u)
	case stageSettle:
		u := anim.Progress(a.elapsed, 0, config.SettleDuration, anim.EaseInOut)
		a.marker.X = anim.Lerp(a.settleFromX, config.SettleOffsetX, u)
		a.marker.Y = anim.Lerp(a.settleFromY, config.SettleOffsetY, u)
		if a.elapsed >= config.SettleDuration-slack {
			a.stage = stageDone
			a.advance(PhaseSuck)
		}
	}
}

func (a *Animator) updateSuck(dt float64) {
	a.suckElapsed += dt
	u := anim.Progress(a.suckElapsed, 0, config.SuckDuration, anim.Standard)
	a.marker.X = anim.Lerp(a.suckFromX, 0, u)
	a.marker.Y = anim.Lerp(a.suckFromY, 0, u)
	a.marker.Scale = 1 - anim.Progress(a.suckElapsed, config.SuckScaleDelay, config.SuckScaleDuration, anim.Standard)

	if a.toScatter == nil {
		if a.suckElapsed >= config.SuckDuration-slack {
			a.toScatter = anim.After(config.ScatterDelay, func() { a.advance(PhaseScatter) })
		}
		return
	}
	a.toScatter.Update(dt)
}

func (a *Animator) Phase() Phase { return a.phase }

// CurrentRing counts traversed rings, 1 for the outermost up to RingCount.
// RingCount+1 means no ring has been entered yet.
func (a *Animator) CurrentRing() int { return a.currentRing }

// DotOpacity is the marker opacity target for the current ring.
func (a *Animator) DotOpacity() float64 { return a.dotOpacity }

func (a *Animator) Marker() MarkerState { return a.marker }

// Ring returns the state of ring i, where ring 0 is the outermost.
func (a *Animator) Ring(i int) RingState {
	r := float64(config.RingCount - i)
	st := RingState{
		RX:      r * config.RingRadiusX,
		RY:      r * config.RingRadiusY,
		Opacity: 1,
		Active:  a.phase == PhaseOrbit && i == a.currentRing-1,
	}
	if a.phase == PhaseSuck {
		u := anim.Progress(a.suckElapsed, 0, config.SuckDuration, anim.Standard)
		st.RX *= 1 - u
		st.RY *= 1 - u
		st.Opacity = 1 - u
		st.Rotation = config.RingRotation * anim.Progress(a.suckElapsed, 0, config.SuckDuration, anim.EaseInOut)
	}
	return st
}

func (a *Animator) Group() GroupState {
	if a.phase != PhaseSuck {
		return GroupState{}
	}
	deg := config.GroupTumble * anim.Progress(a.suckElapsed, 0, config.SuckDuration, anim.EaseInOut)
	return GroupState{RotateX: deg, RotateY: deg}
}

// RingsVisible and ParticlesVisible are mutually exclusive.
func (a *Animator) RingsVisible() bool     { return a.phase != PhaseScatter }
func (a *Animator) ParticlesVisible() bool { return a.phase == PhaseScatter }

func (a *Animator) Particles() []Particle { return a.particles }

func (a *Animator) ScatterElapsed() float64 { return a.scatterElapsed }

// ParticleAt samples particle j at the current scatter time.
func (a *Animator) ParticleAt(j int) ParticleState {
	return a.particles[j].Sample(a.scatterElapsed)
}
