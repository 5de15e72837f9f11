package sound

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
)

// Cue is a sound tied to a phase change.
type Cue int

const (
	// CueCollapse is a falling glide while the rings are pulled in.
	CueCollapse Cue = iota
	// CueBurst is a bright chord when the particles appear.
	CueBurst
	// CueRestart is a short blip acknowledging the click.
	CueRestart
)

func (c Cue) String() string {
	switch c {
	case CueCollapse:
		return "collapse"
	case CueBurst:
		return "burst"
	case CueRestart:
		return "restart"
	default:
		return fmt.Sprintf("cue(%d)", int(c))
	}
}

const (
	collapseDuration = 2 * time.Second
	burstDuration    = 1200 * time.Millisecond
	restartDuration  = 80 * time.Millisecond
)

// Build synthesizes a cue. Every cue ends on its own.
func Build(c Cue, rate beep.SampleRate) (beep.Streamer, error) {
	switch c {
	case CueCollapse:
		glide := NewSweep(660, 110, collapseDuration, WaveSine, rate)
		return newVolume(NewEnvelope(glide, collapseDuration, 300*time.Millisecond, 700*time.Millisecond, rate), 0.35), nil
	case CueBurst:
		// A major chord; each partial is quieter than the one before.
		chord := beep.Mix(
			newVolume(NewTone(523.25, burstDuration, WaveSine, rate), 0.3),
			newVolume(NewTone(659.25, burstDuration, WaveSine, rate), 0.22),
			newVolume(NewTone(783.99, burstDuration, WaveSine, rate), 0.18),
			newVolume(NewTone(1046.5, burstDuration, WaveTriangle, rate), 0.08),
		)
		return NewEnvelope(chord, burstDuration, 10*time.Millisecond, 1100*time.Millisecond, rate), nil
	case CueRestart:
		blip := NewTone(880, restartDuration, WaveSquare, rate)
		return newVolume(NewEnvelope(blip, restartDuration, 5*time.Millisecond, 60*time.Millisecond, rate), 0.15), nil
	default:
		return nil, fmt.Errorf("unknown cue %d", int(c))
	}
}
