// Package game draws the scene with Ebitengine and turns input into scene
// events and sound cues.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/orbit-collapse/internal/config"
	"github.com/iburimskiy/orbit-collapse/internal/scene"
	"github.com/iburimskiy/orbit-collapse/internal/sound"
)

// Sound is what the game needs from the audio side. *sound.Player satisfies it,
// including a nil one.
type Sound interface {
	Play(c sound.Cue)
	ToggleMute() bool
	Muted() bool
	Level() float64
}

type Game struct {
	scene  *scene.Scene
	sound  Sound
	face   *labelFace
	noise  *perlin.Perlin
	log    zerolog.Logger
	debug  bool
	cursor ebiten.CursorShapeType
}

// New builds the scene and hooks phase changes up to sound cues.
func New(snd Sound, debug bool, log zerolog.Logger) (*Game, error) {
	if snd == nil {
		snd = (*sound.Player)(nil)
	}
	seed := time.Now().UnixNano()
	sc, err := scene.New(rand.New(rand.NewSource(seed)), log)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	face, err := loadLabelFace()
	if err != nil {
		return nil, err
	}
	g := &Game{
		scene:  sc,
		sound:  snd,
		face:   face,
		noise:  perlin.NewPerlin(2, 2, 3, seed),
		log:    log.With().Str("component", "game").Logger(),
		debug:  debug,
		cursor: ebiten.CursorShapeDefault,
	}
	sc.Controller.Subscribe(g.cue)
	return g, nil
}

func (g *Game) cue(p scene.Phase) {
	switch p {
	case scene.PhaseSuck:
		g.sound.Play(sound.CueCollapse)
	case scene.PhaseScatter:
		g.sound.Play(sound.CueBurst)
	case scene.PhaseReset:
		g.sound.Play(sound.CueRestart)
	}
}

func (g *Game) Update() error {
	justPressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				return true
			}
		}
		return false
	}

	if justPressed(ebiten.KeyEscape, ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyM) {
		muted := g.sound.ToggleMute()
		g.log.Info().Bool("muted", muted).Msg("mute toggled")
	}
	if justPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if !g.scene.Click() {
			g.log.Debug().Stringer("phase", g.scene.Phase()).Msg("click ignored")
		}
	}

	g.scene.Update(1 / float64(ebiten.TPS()))
	g.updateCursor()
	return nil
}

// updateCursor shows a pointer while a click would restart.
func (g *Game) updateCursor() {
	want := ebiten.CursorShapeDefault
	if g.scene.Phase() == scene.PhaseScatter {
		want = ebiten.CursorShapePointer
	}
	if want != g.cursor {
		ebiten.SetCursorShape(want)
		g.cursor = want
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.drawRings(screen)
	g.drawMarker(screen)
	g.drawParticles(screen)
	g.drawLabels(screen)
	if g.debug {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	a := g.scene.Animator
	status := fmt.Sprintf("phase: %s  cycle: %s  hue: %d  ring: %d/%d  particles: %d\nTPS: %.0f  FPS: %.0f  level: %.2f  muted: %v",
		g.scene.Phase(), formatDuration(g.scene.CycleTime()), g.scene.Hue.Base(),
		a.CurrentRing(), config.RingCount, len(a.Particles()),
		ebiten.ActualTPS(), ebiten.ActualFPS(), g.sound.Level(), g.sound.Muted())
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Close stops the scene timers.
func (g *Game) Close() {
	g.scene.Close()
}
