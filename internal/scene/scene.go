// Package scene is the renderer-independent model of the animation: the phase
// controller, the ring/particle animator, the colour cycle and both labels.
// Everything advances from Update(dt) so it can be stepped without a window.
package scene

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/iburimskiy/orbit-collapse/internal/config"
)

type Scene struct {
	Controller *Controller
	Animator   *Animator
	Hue        *HueCycle
	Phrase     *PhraseToggle
	Shimmer    *Shimmer

	cycle  float64
	closed bool
}

// New wires a scene. A nil rng is replaced by one seeded from the clock.
func New(rng *rand.Rand, log zerolog.Logger) (*Scene, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	shimmer, err := NewShimmer(config.ShimmerText)
	if err != nil {
		return nil, err
	}
	s := &Scene{
		Controller: NewController(log),
		Hue:        &HueCycle{},
		Phrase:     NewPhraseToggle(config.PhraseFirst, config.PhraseSecond),
		Shimmer:    shimmer,
	}
	s.Animator = NewAnimator(rng, s.Controller.Advance, log)
	s.Controller.Subscribe(s.Animator.SetPhase)
	s.Controller.Subscribe(func(p Phase) {
		if p == PhaseOrbit {
			s.cycle = 0
		}
	})
	s.Animator.SetPhase(s.Controller.Phase())
	return s, nil
}

// Update advances one frame of dt seconds.
func (s *Scene) Update(dt float64) {
	if s.closed {
		return
	}
	s.cycle += dt
	s.Controller.Update(dt)
	if p := s.Controller.Phase(); p == PhaseOrbit || p == PhaseScatter {
		s.Hue.Advance()
	}
	s.Animator.Update(dt)
	s.Phrase.Update(dt)
	s.Shimmer.Update(dt)
}

// Click forwards a pointer press; it only has an effect while scattering.
func (s *Scene) Click() bool {
	if s.closed {
		return false
	}
	return s.Controller.Click()
}

func (s *Scene) Phase() Phase { return s.Controller.Phase() }

// CycleTime is the time since the current cycle's orbit began.
func (s *Scene) CycleTime() time.Duration {
	return time.Duration(s.cycle * float64(time.Second))
}

// Close tears down the periodic tasks. Further updates do nothing.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.Phrase.Stop()
	s.Hue.Stop()
	s.Controller.Close()
}

func (s *Scene) Closed() bool { return s.closed }
