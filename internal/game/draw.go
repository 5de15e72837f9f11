package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/orbit-collapse/internal/config"
	"github.com/iburimskiy/orbit-collapse/internal/scene"
)

const (
	ringSegments = 96
	glowLayers   = 4
	dotSteps     = 14
	labelMargin  = 40
)

var background color.Color = color.Black

func (g *Game) center() (float64, float64) {
	return config.WindowWidth / 2, config.WindowHeight / 2
}

func (g *Game) drawRings(screen *ebiten.Image) {
	a := g.scene.Animator
	if !a.RingsVisible() {
		return
	}
	cx, cy := g.center()
	grp := a.Group()
	// tumble about both axes, projected flat
	sx := math.Cos(grp.RotateY * math.Pi / 180)
	sy := math.Cos(grp.RotateX * math.Pi / 180)

	for i := 0; i < config.RingCount; i++ {
		st := a.Ring(i)
		if st.Opacity <= 0 || st.RX <= 0 {
			continue
		}
		hue := g.scene.Hue.RingHue(i, config.RingCount)
		light, width := ringStyle(st.Active)
		base := hsl(hue, config.RingSaturation, light)

		pts := ellipse(st, cx, cy, sx, sy)
		if st.Active {
			for k := glowLayers; k >= 1; k-- {
				glow := withAlpha(base, st.Opacity*0.12)
				strokeClosed(screen, pts, width+float32(k)*2.5, glow)
			}
		}
		strokeClosed(screen, pts, width, withAlpha(base, st.Opacity))
	}
}

// ringStyle is the lightness and stroke width of a ring; the orbited one is
// brighter and thinner.
func ringStyle(active bool) (light float64, width float32) {
	if active {
		return config.RingLightActive, config.ActiveRingWidth
	}
	return config.RingLightIdle, config.IdleRingWidth
}

// dotStops are the inner and outer colours of a dot's radial gradient.
func dotStops(hue float64) (inner, outer colorful.Color) {
	inner = hsl(hue, config.DotSaturation, config.DotLightInner)
	outer = hsl(scene.OffsetHue(hue, config.GradientHueOffset), config.DotSaturation, config.DotLightOuter)
	return inner, outer
}

// drawGradientDot fills a circle with the dot gradient, lit from the upper right.
func drawGradientDot(screen *ebiten.Image, x, y, r, hue, opacity float64) {
	inner, outer := dotStops(hue)
	hx, hy := x+0.2*r, y-0.2*r
	for k := dotSteps; k >= 1; k-- {
		f := float64(k) / dotSteps
		c := outer.BlendRgb(inner, 1-f)
		px := hx + (x-hx)*f
		py := hy + (y-hy)*f
		vector.DrawFilledCircle(screen, float32(px), float32(py), float32(r*f), withAlpha(c, opacity), true)
	}
}

// ellipse returns ring outline points around (cx, cy) with its own rotation and the group tumble applied.
func ellipse(st scene.RingState, cx, cy, sx, sy float64) [][2]float32 {
	rot := st.Rotation * math.Pi / 180
	sinR, cosR := math.Sincos(rot)
	pts := make([][2]float32, ringSegments)
	for k := range pts {
		theta := 2 * math.Pi * float64(k) / ringSegments
		x := st.RX * math.Cos(theta)
		y := st.RY * math.Sin(theta)
		x, y = x*cosR-y*sinR, x*sinR+y*cosR
		pts[k] = [2]float32{float32(cx + x*sx), float32(cy + y*sy)}
	}
	return pts
}

func strokeClosed(screen *ebiten.Image, pts [][2]float32, width float32, clr color.Color) {
	for k := range pts {
		p, q := pts[k], pts[(k+1)%len(pts)]
		vector.StrokeLine(screen, p[0], p[1], q[0], q[1], width, clr, true)
	}
}

func (g *Game) drawMarker(screen *ebiten.Image) {
	a := g.scene.Animator
	if a.Phase() != scene.PhaseOrbit && a.Phase() != scene.PhaseSuck {
		return
	}
	m := a.Marker()
	r := config.MarkerRadius * m.Scale
	opacity := m.Opacity
	if r <= 0.1 || opacity <= 0 {
		return
	}
	cx, cy := g.center()
	x, y := cx+m.X, cy+m.Y
	hue := float64(g.scene.Hue.Base())

	glow := hsl(hue, config.DotSaturation, config.DotLightGlow)
	for k := glowLayers; k >= 1; k-- {
		spread := 8 + 6*float64(k)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r+spread*m.Scale), withAlpha(glow, opacity*0.08), true)
	}
	drawGradientDot(screen, x, y, r, hue, opacity)
}

func (g *Game) drawParticles(screen *ebiten.Image) {
	a := g.scene.Animator
	if !a.ParticlesVisible() {
		return
	}
	cx, cy := g.center()
	t := a.ScatterElapsed()
	flash := 1 + 2*g.sound.Level()
	n := len(a.Particles())
	for j := 0; j < n; j++ {
		st := a.ParticleAt(j)
		if st.Opacity <= 0 || st.Scale <= 0 {
			continue
		}
		dx := g.noise.Noise2D(float64(j)*0.37, t*0.5) * config.ParticleDrift
		dy := g.noise.Noise2D(float64(j)*0.37+100, t*0.5) * config.ParticleDrift
		x, y := cx+st.X+dx, cy+st.Y+dy
		r := st.Size * st.Scale / 2

		hue := g.scene.Hue.ParticleHue(j, n)
		glow := hsl(hue, config.DotSaturation, config.DotLightGlow)
		for k := 2; k >= 1; k-- {
			spread := (2 + 5*float64(k)) * st.Scale
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r+spread), withAlpha(glow, clamp01(st.Opacity*0.12*flash)), true)
		}
		drawGradientDot(screen, x, y, r, hue, st.Opacity)
	}
}

// drawGlyphs lays a label out monospaced around (cx, cy) and draws each glyph
// scaled about its own center.
func (g *Game) drawGlyphs(screen *ebiten.Image, glyphs []scene.Glyph, cx, cy float64, tint func(i, n int) color.Color) {
	n := len(glyphs)
	left := cx - g.face.width(n)/2
	for _, gl := range glyphs {
		if gl.Opacity <= 0 || gl.Scale <= 0 || gl.Char == ' ' {
			continue
		}
		s := string(gl.Char)
		w := text.Advance(s, g.face.face)
		gx := left + float64(gl.Index)*g.face.advance + (g.face.advance-config.LabelLetterSpacing)/2

		op := &text.DrawOptions{}
		op.GeoM.Translate(-w/2, -g.face.height/2)
		op.GeoM.Scale(gl.Scale, gl.Scale)
		op.GeoM.Translate(gx, cy)
		op.ColorScale.ScaleWithColor(tint(gl.Index, n))
		op.ColorScale.ScaleAlpha(float32(gl.Opacity))
		text.Draw(screen, s, g.face.face, op)
	}
}

func (g *Game) drawLabels(screen *ebiten.Image) {
	cx, cy := g.center()
	// the phrase sits above the canvas and the shimmer below it
	white := func(int, int) color.Color { return color.White }
	g.drawGlyphs(screen, g.scene.Phrase.Glyphs(), cx, cy-config.CanvasHeight/2-labelMargin, white)

	sh := g.scene.Shimmer
	runes := []rune(sh.Text())
	glyphs := make([]scene.Glyph, len(runes))
	for i, r := range runes {
		glyphs[i] = scene.Glyph{Char: r, Index: i, Opacity: 1, Scale: 1}
	}
	g.drawGlyphs(screen, glyphs, cx, cy+config.CanvasHeight/2+labelMargin, func(i, n int) color.Color {
		c := sh.ColorAt((float64(i) + 0.5) / float64(n))
		return withAlpha(c, 1)
	})
}
