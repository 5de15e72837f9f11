package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/orbit-collapse/internal/config"
)

func TestPhraseToggleAlternates(t *testing.T) {
	p := NewPhraseToggle(config.PhraseFirst, config.PhraseSecond)
	assert.Equal(t, config.PhraseFirst, p.Text())

	var seen []string
	for i := 0; i < 24; i++ { // 12s of half-second frames
		p.Update(0.5)
		if i%8 == 6 {
			assert.Equal(t, i/8, p.Flips(), "no flip before the 4s boundary")
		}
		if i%8 == 7 {
			seen = append(seen, p.Text())
		}
	}
	assert.Equal(t, []string{config.PhraseSecond, config.PhraseFirst, config.PhraseSecond}, seen)
	assert.Equal(t, 3, p.Flips())
}

func TestPhraseToggleFrameSteps(t *testing.T) {
	p := NewPhraseToggle("a", "b")
	for i := 0; i < 239; i++ {
		p.Update(1.0 / 60)
	}
	assert.Equal(t, "a", p.Text())
	p.Update(1.0 / 60)
	assert.Equal(t, "b", p.Text())
}

func TestPhraseEntranceOnStart(t *testing.T) {
	p := NewPhraseToggle(config.PhraseFirst, config.PhraseSecond)
	gs := p.Glyphs()
	require.Len(t, gs, len(config.PhraseFirst))
	for _, g := range gs {
		assert.Equal(t, 0.0, g.Opacity)
	}

	p.Update(0.1)
	gs = p.Glyphs()
	assert.Greater(t, gs[0].Opacity, 0.0)
	assert.Equal(t, 0.0, gs[len(gs)-1].Opacity, "later glyphs wait for their stagger")

	p.Update(1)
	for _, g := range p.Glyphs() {
		assert.Equal(t, 1.0, g.Opacity)
		assert.Equal(t, 1.0, g.Scale)
	}
}

func TestPhraseExitSweepsInReverse(t *testing.T) {
	p := NewPhraseToggle(config.PhraseFirst, config.PhraseSecond)
	p.Update(4)
	require.Equal(t, config.PhraseSecond, p.Text())

	gs := p.Glyphs()
	require.Len(t, gs, len(config.PhraseFirst), "outgoing phrase is still drawn")
	for _, g := range gs {
		assert.Equal(t, 1.0, g.Opacity)
	}

	p.Update(0.15)
	gs = p.Glyphs()
	require.Len(t, gs, len(config.PhraseFirst))
	assert.InDelta(t, 0, gs[len(gs)-1].Opacity, 1e-9, "last glyph leaves first")
	assert.Equal(t, 1.0, gs[0].Opacity, "first glyph leaves last")

	// exit lasts 9*0.05+0.15 = 0.6s, then the new phrase starts entering
	p.Update(0.5)
	gs = p.Glyphs()
	require.Len(t, gs, len([]rune(config.PhraseSecond)))
	assert.Greater(t, gs[0].Opacity, 0.0)
	assert.Less(t, gs[0].Opacity, 1.0)
	assert.Equal(t, 0.0, gs[len(gs)-1].Opacity)
	assert.Equal(t, '(', gs[0].Char)
}

func TestPhraseStop(t *testing.T) {
	p := NewPhraseToggle("a", "b")
	p.Stop()
	p.Update(10)
	assert.Equal(t, "a", p.Text())
	assert.True(t, p.Stopped())
}

func TestShimmerSweep(t *testing.T) {
	s, err := NewShimmer(config.ShimmerText)
	require.NoError(t, err)
	assert.Equal(t, config.ShimmerText, s.Text())
	assert.Equal(t, 0.0, s.Position())

	s.Update(0.75)
	assert.InDelta(t, 0.5, s.Position(), 1e-9)
	s.Update(0.75)
	assert.InDelta(t, 1.0, s.Position(), 1e-9)
	s.Update(1.5)
	assert.InDelta(t, 0.0, s.Position(), 1e-9)
	s.Update(0.75)
	assert.InDelta(t, 0.5, s.Position(), 1e-9, "loops")
}

func TestShimmerColors(t *testing.T) {
	s, err := NewShimmer(config.ShimmerText)
	require.NoError(t, err)

	left := s.ColorAt(0)
	assert.InDelta(t, 1, left.R, 0.01)
	assert.InDelta(t, 1, left.G, 0.01)
	assert.InDelta(t, 1, left.B, 0.01)

	// right edge at position 0 sits on the accent stop
	right := s.ColorAt(1)
	assert.InDelta(t, float64(0x7a)/255, right.R, 0.01)
	assert.InDelta(t, float64(0xb5)/255, right.G, 0.01)
	assert.InDelta(t, 1, right.B, 0.01)

	s.Update(1.5) // position 1: the accent has moved to the left edge
	left = s.ColorAt(0)
	assert.InDelta(t, float64(0x7a)/255, left.R, 0.01)
	right = s.ColorAt(1)
	assert.InDelta(t, 1, right.R, 0.01)
}
