package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the HUD and overlay faces
type Fonts struct {
	Small  *text.GoTextFace
	Medium *text.GoTextFace
	Large  *text.GoTextFace
}

// LoadFonts builds the faces from the embedded Go Regular font
func LoadFonts() (*Fonts, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Fonts{
		Small:  &text.GoTextFace{Source: source, Size: 14},
		Medium: &text.GoTextFace{Source: source, Size: 20},
		Large:  &text.GoTextFace{Source: source, Size: 34},
	}, nil
}

// drawText draws s with its top edge at y, aligned around x
func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(dst, s, face, op)
}

// drawTextScaled draws centered text scaled around its own center
func drawTextScaled(dst *ebiten.Image, s string, face *text.GoTextFace, cx, cy, scale float64, clr color.Color) {
	w, h := text.Measure(s, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}
