package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"github.com/edward-ap/indicatorbar/internal/indicator"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics(80, 2)
	assert.Equal(t, 10.0, m.BarHeight)
	assert.Equal(t, 8.0, m.Rest)
	assert.Equal(t, 6.0, m.GripWidth)
	assert.Equal(t, 2.0, m.Stroke)
	assert.Equal(t, 23.0, m.HandleHalfWidth(30))

	m = NewMetrics(-3, 0)
	assert.Equal(t, 0.0, m.Height)
	assert.Equal(t, 3.0, m.GripWidth)
}

func TestComputeLayout(t *testing.T) {
	f := indicator.Frame{X: 120, Value: 40, BubbleVisible: true}
	m := NewMetrics(100, 1)
	l := Compute(f, Size{W: 300, H: 100}, Size{W: 24, H: 16}, m)

	assert.Equal(t, Rect{Min: Point{0, 77.5}, Max: Point{120, 90}, Radius: 6.25}, l.Fill)
	assert.Equal(t, Rect{Min: Point{120, 77.5}, Max: Point{300, 90}, Radius: 6.25}, l.Track)
	assert.Equal(t, 100.0, l.Handle.Min.X)
	assert.Equal(t, 140.0, l.Handle.Max.X)
	assert.Equal(t, 100.0, l.Handle.Max.Y)

	// bubble is centred on the handle and exactly as wide as the margin
	assert.Equal(t, 120-m.HandleHalfWidth(24), l.Bubble.Min.X)
	assert.Equal(t, 120+m.HandleHalfWidth(24), l.Bubble.Max.X)
	assert.Equal(t, 36.0, l.Bubble.Max.Y)
	assert.Equal(t, Point{120, 46}, l.Pointer[2])
	assert.Equal(t, Rect{Min: Point{108, 10}, Max: Point{132, 26}}, l.TextBox)
	assert.True(t, l.ShowBubble)

	f.BubbleVisible = false
	assert.False(t, Compute(f, Size{W: 300, H: 100}, Size{W: 24, H: 16}, m).ShowBubble)
}

func TestRectHelpers(t *testing.T) {
	r := Rect{Min: Point{10, 10}, Max: Point{30, 20}, Radius: 4}
	assert.Equal(t, 20.0, r.Dx())
	assert.Equal(t, 10.0, r.Dy())
	assert.False(t, r.Empty())
	in := r.Inset(2)
	assert.Equal(t, Rect{Min: Point{12, 12}, Max: Point{28, 18}, Radius: 2}, in)
	assert.True(t, r.Inset(6).Empty())
}

func TestLoadFaceFallsBack(t *testing.T) {
	face := LoadFace([]byte("not a font"), 20)
	assert.Equal(t, basicfont.Face7x13, face)

	face = LoadFace(nil, 20)
	require.NotNil(t, face)
	wide := MeasureText(face, "100")
	narrow := MeasureText(face, "0")
	assert.Greater(t, wide.W, narrow.W)
	assert.Greater(t, wide.H, 0.0)
	assert.Equal(t, Size{}, MeasureText(nil, "1"))
}

func TestRasterPaintsTrackAndBubble(t *testing.T) {
	r := NewRaster(20)
	r.Palette.Surface = color.NRGBA{0, 0, 0, 0xFF}
	f := indicator.Frame{Progress: 0.5, Value: 50, X: 200, TrackWidth: 400, Enabled: true, BubbleVisible: true}
	img := r.Render(f, 400, 100)
	pal := r.Palette

	rgba := func(c color.Color) color.RGBA { return color.RGBAModel.Convert(c).(color.RGBA) }
	assert.Equal(t, rgba(pal.Progress), img.RGBAAt(50, 84), "fill left of handle")
	assert.Equal(t, rgba(pal.Background), img.RGBAAt(350, 84), "track right of handle")
	assert.Equal(t, rgba(pal.Progress), img.RGBAAt(200, 3), "bubble above handle")
	assert.Equal(t, rgba(pal.Surface), img.RGBAAt(20, 3), "nothing far from the bubble")

	f.BubbleVisible = false
	img = r.Render(f, 400, 100)
	assert.Equal(t, rgba(pal.Surface), img.RGBAAt(200, 3), "bubble hidden")
}

func TestRasterDisabledFades(t *testing.T) {
	r := NewRaster(20)
	f := indicator.Frame{X: 200, Value: 50, TrackWidth: 400, Enabled: false}
	img := r.Render(f, 400, 100)
	c := img.RGBAAt(50, 84)
	assert.Less(t, c.A, uint8(0xFF))
	assert.Greater(t, c.A, uint8(0))
}

func TestRasterHandlesEmptyAndOversizedFrames(t *testing.T) {
	r := NewRaster(20)
	assert.NotPanics(t, func() {
		r.Render(indicator.Frame{}, 0, 0)
		r.Render(indicator.Frame{X: -50, Value: 1, BubbleVisible: true, Enabled: true}, 10, 10)
		r.Render(indicator.Frame{X: 5000, Value: 1, BubbleVisible: true, Enabled: true}, 120, 40)
	})
}

func TestRasterHandleHalfWidthGrowsWithDigits(t *testing.T) {
	r := NewRaster(20)
	one := r.HandleHalfWidth(indicator.Frame{Value: 5}, 100)
	three := r.HandleHalfWidth(indicator.Frame{Value: 100}, 100)
	assert.Greater(t, three, one)
	assert.Greater(t, one, 10.0)
}
