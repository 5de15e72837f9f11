package scene

import (
	"github.com/rs/zerolog"

	"github.com/iburimskiy/orbit-collapse/internal/anim"
	"github.com/iburimskiy/orbit-collapse/internal/config"
)

// Phase is one step of the animation cycle.
type Phase int

const (
	PhaseOrbit Phase = iota
	PhaseSuck
	PhaseScatter
	// PhaseReset is transient: it exists only between a click and the next orbit.
	PhaseReset
)

func (p Phase) String() string {
	switch p {
	case PhaseOrbit:
		return "orbit"
	case PhaseSuck:
		return "suck"
	case PhaseScatter:
		return "scatter"
	case PhaseReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Controller owns the current phase and notifies subscribers of every change.
type Controller struct {
	phase     Phase
	listeners []func(Phase)
	reset     *anim.Timer
	log       zerolog.Logger
}

func NewController(log zerolog.Logger) *Controller {
	return &Controller{
		phase: PhaseOrbit,
		log:   log.With().Str("component", "controller").Logger(),
	}
}

func (c *Controller) Phase() Phase { return c.phase }

// Subscribe registers fn to be called synchronously after each phase change.
func (c *Controller) Subscribe(fn func(Phase)) {
	c.listeners = append(c.listeners, fn)
}

// Advance is the completion handler for the animator. Only orbit->suck and
// suck->scatter are accepted; anything else is dropped.
func (c *Controller) Advance(next Phase) {
	switch {
	case c.phase == PhaseOrbit && next == PhaseSuck:
	case c.phase == PhaseSuck && next == PhaseScatter:
	default:
		c.log.Debug().Stringer("from", c.phase).Stringer("to", next).Msg("ignored phase change")
		return
	}
	c.set(next)
}

// Click requests a restart. It is honoured only while scattering and reports
// whether it was.
func (c *Controller) Click() bool {
	if c.phase != PhaseScatter {
		return false
	}
	c.set(PhaseReset)
	c.reset = anim.After(config.ResetDelay, func() {
		c.reset = nil
		c.set(PhaseOrbit)
	})
	return true
}

// Update drives the pending reset, if any.
func (c *Controller) Update(dt float64) {
	c.reset.Update(dt)
}

// Close drops a pending reset.
func (c *Controller) Close() {
	c.reset.Stop()
	c.reset = nil
}

func (c *Controller) set(next Phase) {
	prev := c.phase
	c.phase = next
	c.log.Debug().Stringer("from", prev).Stringer("to", next).Msg("phase change")
	for _, fn := range c.listeners {
		fn(next)
	}
}
