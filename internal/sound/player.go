package sound

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/orbit-collapse/internal/config"
)

// levelWindow is how many recent samples Level averages over.
const levelWindow = 1024

// Player mixes cues into a single output: mixer -> tap -> volume -> speaker.
// A nil *Player is valid and silent.
type Player struct {
	rate   beep.SampleRate
	mixer  *beep.Mixer
	tap    *levelTap
	volume *effects.Volume
	lock   func()
	unlock func()
	log    zerolog.Logger
}

func newPlayer(rate beep.SampleRate, volume float64, log zerolog.Logger) *Player {
	mixer := &beep.Mixer{}
	tap := newLevelTap(mixer, config.LevelRingSize)
	return &Player{
		rate:   rate,
		mixer:  mixer,
		tap:    tap,
		volume: newVolume(tap, volume),
		lock:   func() {},
		unlock: func() {},
		log:    log.With().Str("component", "sound").Logger(),
	}
}

// NewPlayer opens the speaker and starts streaming the (initially silent) mix.
func NewPlayer(a config.Audio, log zerolog.Logger) (*Player, error) {
	rate := beep.SampleRate(a.SampleRate)
	p := newPlayer(rate, a.Volume, log)
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p.lock, p.unlock = speaker.Lock, speaker.Unlock
	speaker.Play(p.volume)
	p.log.Info().Int("sample_rate", a.SampleRate).Float64("volume", a.Volume).Msg("audio ready")
	return p, nil
}

// Play queues a cue on the mix.
func (p *Player) Play(c Cue) {
	if p == nil {
		return
	}
	s, err := Build(c, p.rate)
	if err != nil {
		p.log.Warn().Err(err).Msg("cue skipped")
		return
	}
	p.lock()
	p.mixer.Add(s)
	p.unlock()
	p.log.Debug().Stringer("cue", c).Msg("cue queued")
}

// ToggleMute flips the output between silent and audible and returns the new muted state.
func (p *Player) ToggleMute() bool {
	if p == nil {
		return true
	}
	p.lock()
	defer p.unlock()
	p.volume.Silent = !p.volume.Silent
	return p.volume.Silent
}

func (p *Player) Muted() bool {
	if p == nil {
		return true
	}
	p.lock()
	defer p.unlock()
	return p.volume.Silent
}

// Level is the recent loudness of the mix before volume and mute, roughly 0..1.
func (p *Player) Level() float64 {
	if p == nil {
		return 0
	}
	return p.tap.rms(levelWindow)
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.lock()
	p.mixer.Clear()
	p.unlock()
	speaker.Clear()
	speaker.Close()
}
