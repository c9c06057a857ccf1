package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LoadFace parses a TrueType/OpenType font at sizePx pixels. Nil data selects
// Go Regular. Parsing failures fall back to a fixed bitmap face so callers
// always get something to measure with.
func LoadFace(data []byte, sizePx float64) font.Face {
	if len(data) == 0 {
		data = goregular.TTF
	}
	if sizePx < 6 {
		sizePx = 6
	}
	if ttf, err := opentype.Parse(data); err == nil {
		// 72 DPI makes one point one pixel.
		if face, err := opentype.NewFace(ttf, &opentype.FaceOptions{Size: sizePx, DPI: 72, Hinting: font.HintingFull}); err == nil {
			return face
		}
	}
	return basicfont.Face7x13
}

// MeasureText returns the advance width of s and the ascent of face, which is
// the height the value bubble reserves for the label.
func MeasureText(face font.Face, s string) Size {
	if face == nil {
		return Size{}
	}
	adv := font.MeasureString(face, s)
	return Size{
		W: float64(adv) / 64,
		H: float64(face.Metrics().Ascent) / 64,
	}
}

// drawText draws s with its baseline-left at origin.
func drawText(dst *image.RGBA, face font.Face, col color.Color, origin Point, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.NRGBAModel.Convert(col)),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(origin.X * 64), Y: fixed.Int26_6(origin.Y * 64)},
	}
	d.DrawString(s)
}
