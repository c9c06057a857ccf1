package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/vector"

	"github.com/edward-ap/indicatorbar/internal/indicator"
)

// Palette holds the colours of the control.
type Palette struct {
	Background color.Color // unfilled part of the track, grips
	Progress   color.Color // filled part of the track, bubble
	Value      color.Color // label and handle body
	Stroke     color.Color // handle outline
	Surface    color.Color // behind everything; nil leaves dst untouched
}

// DefaultPalette mirrors a gray track with a blue fill and white handle.
func DefaultPalette() Palette {
	return Palette{
		Background: color.NRGBA{0x88, 0x88, 0x88, 0xFF},
		Progress:   color.NRGBA{0x3F, 0x51, 0xB5, 0xFF},
		Value:      color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF},
		Stroke:     color.NRGBA{0x88, 0x88, 0x88, 0xFF},
	}
}

// Disabled returns the palette at reduced opacity.
func (p Palette) Disabled() Palette {
	fade := func(c color.Color) color.Color {
		if c == nil {
			return nil
		}
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		n.A /= 2
		return n
	}
	return Palette{
		Background: fade(p.Background),
		Progress:   fade(p.Progress),
		Value:      fade(p.Value),
		Stroke:     fade(p.Stroke),
		Surface:    p.Surface,
	}
}

// Raster paints frames into RGBA images without any windowing system.
type Raster struct {
	Palette Palette
	Face    font.Face
	Scale   float64
}

// NewRaster returns a raster renderer with the default palette and Go
// Regular at sizePx.
func NewRaster(sizePx float64) *Raster {
	return &Raster{Palette: DefaultPalette(), Face: LoadFace(nil, sizePx), Scale: 1}
}

// HandleHalfWidth reports the clamping margin the controller should use for f
// on a control of the given height.
func (r *Raster) HandleHalfWidth(f indicator.Frame, height float64) float64 {
	m := NewMetrics(height, r.Scale)
	return m.HandleHalfWidth(MeasureText(r.Face, f.Label()).W)
}

// Render paints f into a new image of the given size.
func (r *Raster) Render(f indicator.Frame, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	r.Draw(dst, f)
	return dst
}

// Draw paints f over dst. The control fills dst's bounds.
func (r *Raster) Draw(dst *image.RGBA, f indicator.Frame) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	pal := r.Palette
	if !f.Enabled {
		pal = pal.Disabled()
	}
	if pal.Surface != nil {
		draw.Draw(dst, b, image.NewUniform(pal.Surface), image.Point{}, draw.Src)
	}

	sz := Size{W: float64(b.Dx()), H: float64(b.Dy())}
	m := NewMetrics(sz.H, r.Scale)
	label := f.Label()
	text := MeasureText(r.Face, label)
	l := Compute(f, sz, text, m)

	fillRoundRect(dst, l.Track, pal.Background)
	fillRoundRect(dst, l.Fill, pal.Progress)
	if l.ShowBubble {
		fillRoundRect(dst, l.Bubble, pal.Progress)
		fillPolygon(dst, l.Pointer[:], pal.Progress)
	}
	fillRoundRect(dst, l.Handle, pal.Stroke)
	fillRoundRect(dst, l.Handle.Inset(m.Stroke), pal.Value)
	fillRoundRect(dst, l.GripLeft, pal.Background)
	fillRoundRect(dst, l.GripRight, pal.Background)
	if l.ShowBubble {
		drawText(dst, r.Face, pal.Value, Point{l.TextBox.Min.X, l.TextBox.Max.Y}, label)
	}
}

// fillRoundRect fills r, building the rounded outline from quadratic curves.
func fillRoundRect(dst *image.RGBA, r Rect, col color.Color) {
	b := dst.Bounds()
	r = clipRect(r, b)
	if r.Empty() || col == nil {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	rad := r.Radius
	if m := min(r.Dx(), r.Dy()) / 2; rad > m {
		rad = m
	}
	l, t := float32(r.Min.X), float32(r.Min.Y)
	rt, bt := float32(r.Max.X), float32(r.Max.Y)
	rd := float32(rad)

	z.MoveTo(l+rd, t)
	z.LineTo(rt-rd, t)
	z.QuadTo(rt, t, rt, t+rd)
	z.LineTo(rt, bt-rd)
	z.QuadTo(rt, bt, rt-rd, bt)
	z.LineTo(l+rd, bt)
	z.QuadTo(l, bt, l, bt-rd)
	z.LineTo(l, t+rd)
	z.QuadTo(l, t, l+rd, t)
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(col), b.Min)
}

func fillPolygon(dst *image.RGBA, pts []Point, col color.Color) {
	if len(pts) < 3 || col == nil {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	p0 := clipPoint(pts[0], b)
	z.MoveTo(float32(p0.X), float32(p0.Y))
	for _, p := range pts[1:] {
		p = clipPoint(p, b)
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(col), b.Min)
}

// clipRect keeps r inside the rasterizer's canvas.
func clipRect(r Rect, b image.Rectangle) Rect {
	r.Min = clipPoint(r.Min, b)
	r.Max = clipPoint(r.Max, b)
	return r
}

func clipPoint(p Point, b image.Rectangle) Point {
	return Point{
		X: max(0, min(p.X, float64(b.Dx()))),
		Y: max(0, min(p.Y, float64(b.Dy()))),
	}
}
