package scene

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/orbit-collapse/internal/anim"
	"github.com/iburimskiy/orbit-collapse/internal/config"
)

// Glyph is one character of a label with its current entrance/exit state.
type Glyph struct {
	Char    rune
	Index   int
	Opacity float64
	Scale   float64
}

// PhraseToggle swaps between two phrases on a fixed interval. The outgoing
// phrase leaves last-glyph-first and only then the new one enters first-glyph-first.
type PhraseToggle struct {
	phrases  [2][]rune
	current  int
	outgoing []rune
	since    float64
	flips    int
	timer    *anim.Interval
}

func NewPhraseToggle(first, second string) *PhraseToggle {
	p := &PhraseToggle{phrases: [2][]rune{[]rune(first), []rune(second)}}
	p.timer = anim.Every(config.PhraseInterval, p.flip)
	return p
}

func (p *PhraseToggle) flip() {
	p.outgoing = p.phrases[p.current]
	p.current = 1 - p.current
	p.since = 0
	p.flips++
}

func (p *PhraseToggle) Update(dt float64) {
	if p.timer.Stopped() {
		return
	}
	p.since += dt
	p.timer.Update(dt)
}

// Stop tears the interval down; the label freezes on its current phrase.
func (p *PhraseToggle) Stop() { p.timer.Stop() }

func (p *PhraseToggle) Stopped() bool { return p.timer.Stopped() }

func (p *PhraseToggle) Text() string { return string(p.phrases[p.current]) }

func (p *PhraseToggle) Flips() int { return p.flips }

func exitDuration(n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(n-1)*config.GlyphStagger + config.GlyphDuration
}

// Glyphs returns what to draw right now: the exiting phrase while it is still
// leaving, otherwise the entering one.
func (p *PhraseToggle) Glyphs() []Glyph {
	if out := exitDuration(len(p.outgoing)); p.outgoing != nil && p.since < out {
		n := len(p.outgoing)
		gs := make([]Glyph, n)
		for i, r := range p.outgoing {
			delay := float64(n-1-i) * config.GlyphStagger
			v := 1 - anim.Progress(p.since, delay, config.GlyphDuration, anim.EaseOut)
			gs[i] = Glyph{Char: r, Index: i, Opacity: v, Scale: v}
		}
		return gs
	}
	start := 0.0
	if p.outgoing != nil {
		start = exitDuration(len(p.outgoing))
	}
	in := p.phrases[p.current]
	gs := make([]Glyph, len(in))
	for i, r := range in {
		delay := start + float64(i)*config.GlyphStagger
		v := anim.Progress(p.since, delay, config.GlyphDuration, anim.EaseOut)
		gs[i] = Glyph{Char: r, Index: i, Opacity: v, Scale: v}
	}
	return gs
}

// Shimmer is a static label whose gradient fill slides across it and back.
type Shimmer struct {
	text    string
	stops   [3]colorful.Color
	elapsed float64
}

func NewShimmer(text string) (*Shimmer, error) {
	base, err := colorful.Hex(config.ShimmerBaseHex)
	if err != nil {
		return nil, fmt.Errorf("shimmer base colour: %w", err)
	}
	accent, err := colorful.Hex(config.ShimmerAccentHex)
	if err != nil {
		return nil, fmt.Errorf("shimmer accent colour: %w", err)
	}
	return &Shimmer{text: text, stops: [3]colorful.Color{base, accent, base}}, nil
}

func (s *Shimmer) Text() string { return s.text }

func (s *Shimmer) Update(dt float64) { s.elapsed += dt }

var shimmerSweep = anim.Track{Values: []float64{0, 1, 0}}

// Position is the gradient offset in [0,1]: 0 -> 1 -> 0 over one period, linear.
func (s *Shimmer) Position() float64 {
	return shimmerSweep.At(anim.Loop(s.elapsed, config.ShimmerPeriod))
}

// ColorAt returns the fill at normalized horizontal position u of the text.
// The gradient is twice the text width and Position slides it by one text width.
func (s *Shimmer) ColorAt(u float64) colorful.Color {
	g := anim.Clamp01((anim.Clamp01(u) + s.Position()) / 2)
	if g <= 0.5 {
		return s.stops[0].BlendLab(s.stops[1], g*2).Clamped()
	}
	return s.stops[1].BlendLab(s.stops[2], (g-0.5)*2).Clamped()
}
