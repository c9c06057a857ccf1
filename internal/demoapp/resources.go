package demoapp

import (
	"bytes"
	"image/png"

	"fyne.io/fyne/v2"

	"github.com/edward-ap/indicatorbar/internal/indicator"
	"github.com/edward-ap/indicatorbar/internal/render"
)

// AppIcon is the window and taskbar icon, drawn at startup with the raster
// renderer rather than shipped as a file.
var AppIcon fyne.Resource

func init() {
	AppIcon = renderIcon(64)
}

// renderIcon paints a bar at 70% with its bubble into a square PNG resource.
func renderIcon(size int) fyne.Resource {
	r := render.NewRaster(float64(size) / 4)
	f := indicator.Frame{
		Progress:      0.7,
		Value:         7,
		X:             0.7 * float64(size),
		TrackWidth:    float64(size),
		Enabled:       true,
		BubbleVisible: true,
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.Render(f, size, size)); err != nil {
		return nil
	}
	return fyne.NewStaticResource("indicatorbar.png", buf.Bytes())
}
