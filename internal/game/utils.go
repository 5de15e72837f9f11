package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/crazy3lf/colorconv"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// hsl converts hue (0-360), saturation and lightness (0-1) to a colour.
func hsl(h, s, l float64) colorful.Color {
	r, g, b, err := colorconv.HSLToRGB(h, clamp01(s), clamp01(l))
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// withAlpha turns a colour into a non-premultiplied RGBA with opacity a.
func withAlpha(c colorful.Color, a float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(a)*255 + 0.5)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
