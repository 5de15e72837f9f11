package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"

	"github.com/iburimskiy/orbit-collapse/internal/config"
)

// labelFace is the monospace face both labels are set in.
type labelFace struct {
	face    text.Face
	advance float64 // per glyph, letter spacing included
	height  float64
}

func loadLabelFace() (*labelFace, error) {
	tt, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse gomono: %w", err)
	}
	xf, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    config.LabelFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("gomono face: %w", err)
	}
	face := text.NewGoXFace(xf)
	m := face.Metrics()
	return &labelFace{
		face:    face,
		advance: text.Advance("M", face) + config.LabelLetterSpacing,
		height:  m.HAscent + m.HDescent,
	}, nil
}

// width of n glyphs laid out with letter spacing.
func (f *labelFace) width(n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(n)*f.advance - config.LabelLetterSpacing
}
