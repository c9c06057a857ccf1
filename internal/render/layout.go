// Package render turns an indicator.Frame into drawable geometry and, for
// headless use, paints it into an image. Every backend (the fyne widget and
// the raster renderer) positions its shapes from the same Layout.
package render

import (
	"math"

	"github.com/edward-ap/indicatorbar/internal/indicator"
)

// Point is a position in control-local pixels.
type Point struct{ X, Y float64 }

// Rect is an axis-aligned box with rounded corners.
type Rect struct {
	Min, Max Point
	Radius   float64
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether the box has no area.
func (r Rect) Empty() bool { return r.Dx() <= 0 || r.Dy() <= 0 }

// Inset shrinks the box by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Min:    Point{r.Min.X + d, r.Min.Y + d},
		Max:    Point{r.Max.X - d, r.Max.Y - d},
		Radius: math.Max(0, r.Radius-d),
	}
}

// Size is a width and height in pixels.
type Size struct{ W, H float64 }

// Metrics are the proportions of the control, derived from its height.
type Metrics struct {
	Height    float64
	BarHeight float64
	Rest      float64
	GripWidth float64
	Stroke    float64
}

// NewMetrics derives metrics for a control of the given height. scale is the
// density factor used for the few fixed-size details (grips, stroke).
func NewMetrics(height, scale float64) Metrics {
	if scale <= 0 {
		scale = 1
	}
	if height < 0 {
		height = 0
	}
	return Metrics{
		Height:    height,
		BarHeight: height / 8,
		Rest:      height / 10,
		GripWidth: 3 * scale,
		Stroke:    1 * scale,
	}
}

// HandleHalfWidth is the clamping margin for a value label of the given width:
// half the label plus the bubble padding.
func (m Metrics) HandleHalfWidth(textWidth float64) float64 {
	return textWidth/2 + m.Rest
}

// Layout is the computed geometry of one frame.
type Layout struct {
	Track      Rect
	Fill       Rect
	Handle     Rect
	GripLeft   Rect
	GripRight  Rect
	Bubble     Rect
	Pointer    [3]Point
	TextBox    Rect
	ShowBubble bool
}

// Compute lays out a frame inside a control of size sz, with a value label of
// size text.
func Compute(f indicator.Frame, sz Size, text Size, m Metrics) Layout {
	x := f.X
	h := sz.H
	rest := m.Rest

	barTop := h - m.BarHeight - rest
	barBottom := h - rest
	barRadius := m.BarHeight / 2

	var l Layout
	l.Fill = Rect{Min: Point{0, barTop}, Max: Point{x, barBottom}, Radius: barRadius}
	l.Track = Rect{Min: Point{x, barTop}, Max: Point{sz.W, barBottom}, Radius: barRadius}

	handleTop := h - 2*rest - m.BarHeight
	l.Handle = Rect{
		Min:    Point{x - 2*rest, handleTop},
		Max:    Point{x + 2*rest, h},
		Radius: 0,
	}
	l.Handle.Radius = math.Min(l.Handle.Dx(), l.Handle.Dy()) / 2

	left1 := x - rest*2/3
	left2 := x + rest*2/3
	l.GripLeft = Rect{Min: Point{left1, barTop}, Max: Point{left1 + m.GripWidth, barBottom}, Radius: 2}
	l.GripRight = Rect{Min: Point{left2 - m.GripWidth, barTop}, Max: Point{left2, barBottom}, Radius: 2}

	half := m.HandleHalfWidth(text.W)
	bottom := 2*rest + text.H
	l.Bubble = Rect{
		Min:    Point{x - half, 0},
		Max:    Point{x + half, bottom},
		Radius: math.Min((text.H+rest)/2, half),
	}
	l.Pointer = [3]Point{
		{x - rest*2/3, bottom},
		{x + rest*2/3, bottom},
		{x, bottom + rest},
	}
	l.TextBox = Rect{
		Min: Point{x - text.W/2, rest},
		Max: Point{x + text.W/2, rest + text.H},
	}
	l.ShowBubble = f.BubbleVisible
	return l
}
