package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/indicatorbar/internal/indicator"
	"github.com/edward-ap/indicatorbar/internal/render"
	"github.com/edward-ap/indicatorbar/internal/script"
)

const (
	mousePointer indicator.PointerID = iota
	touchPointer
)

// DefaultFallbackSize is used when the bar is laid out before it has a size.
var DefaultFallbackSize = fyne.NewSize(360, 96)

// IndicatorBar is a horizontal stepped slider with a value bubble that follows
// the handle. Dragging is continuous; the value snaps to a step on release.
//
// Input handlers, setters and the renderer share one lock, so events fed from
// a background goroutine (see Replayer) and live pointer input never touch the
// controller at the same time. OnCommit runs after the lock is released.
type IndicatorBar struct {
	widget.DisableableWidget

	// OnCommit fires once per completed drag with the snapped progress and value.
	OnCommit func(progress float64, value int64)
	// FallbackSize replaces a zero layout size.
	FallbackSize fyne.Size
	// TextSize of the value label; zero uses the theme text size.
	TextSize float32

	mu      sync.Mutex
	ctrl    *indicator.Controller
	pointer indicator.PointerID
	lastX   float64
	pending []commit
}

type commit struct {
	progress float64
	value    int64
}

// NewIndicatorBar creates a bar over [min, max] with the given step.
func NewIndicatorBar(min, max, step int64) (*IndicatorBar, error) {
	c := indicator.NewController()
	if err := c.Configure(min, max, step); err != nil {
		return nil, err
	}
	b := &IndicatorBar{ctrl: c, FallbackSize: DefaultFallbackSize}
	c.OnCommit = b.queueCommit
	c.Changed()
	b.ExtendBaseWidget(b)
	return b, nil
}

// Controller exposes the underlying state machine. Changing it directly
// bypasses the bar's lock; use it from the UI thread only, while no replay runs.
func (b *IndicatorBar) Controller() *indicator.Controller { return b.ctrl }

func (b *IndicatorBar) CreateRenderer() fyne.WidgetRenderer {
	r := &indicatorBarRenderer{
		b:      b,
		track:  canvas.NewRectangle(color.Transparent),
		fill:   canvas.NewRectangle(color.Transparent),
		handle: canvas.NewRectangle(color.Transparent),
		gripL:  canvas.NewRectangle(color.Transparent),
		gripR:  canvas.NewRectangle(color.Transparent),
		bubble: canvas.NewRectangle(color.Transparent),
		label:  canvas.NewText("", color.White),
	}
	r.pointer = canvas.NewRasterWithPixels(r.pointerPixel)
	r.objs = []fyne.CanvasObject{r.track, r.fill, r.bubble, r.pointer, r.handle, r.gripL, r.gripR, r.label}
	r.applyTheme()
	return r
}

// Configure changes the range, keeping the handle where it is.
func (b *IndicatorBar) Configure(min, max, step int64) (err error) {
	b.update(func(c *indicator.Controller) { err = c.Configure(min, max, step) })
	return err
}

// SetProgress moves the handle to p in [0, 1].
func (b *IndicatorBar) SetProgress(p float64) (err error) {
	b.update(func(c *indicator.Controller) { err = c.SetProgress(p) })
	return err
}

// SetValue moves the handle to v in [min, max].
func (b *IndicatorBar) SetValue(v int64) (err error) {
	b.update(func(c *indicator.Controller) { err = c.SetValue(v) })
	return err
}

// SetDisplayPolicy selects when the value bubble is shown.
func (b *IndicatorBar) SetDisplayPolicy(p indicator.DisplayPolicy) {
	b.update(func(c *indicator.Controller) { c.SetDisplayPolicy(p) })
}

func (b *IndicatorBar) Progress() float64 { return b.Frame().Progress }
func (b *IndicatorBar) Value() int64      { return b.Frame().Value }

// Frame returns the current snapshot.
func (b *IndicatorBar) Frame() indicator.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ctrl.Frame()
}

// Range returns the configured range.
func (b *IndicatorBar) Range() indicator.Range {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ctrl.Range()
}

// Enable turns input back on.
func (b *IndicatorBar) Enable() {
	b.update(func(c *indicator.Controller) { c.SetEnabled(true) })
	b.DisableableWidget.Enable()
}

// Disable ignores input; the bar still swallows pointer events.
func (b *IndicatorBar) Disable() {
	b.update(func(c *indicator.Controller) { c.SetEnabled(false) })
	b.DisableableWidget.Disable()
}

// MouseDown starts a gesture for the mouse.
func (b *IndicatorBar) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.down(mousePointer, e.Position)
}

// MouseUp ends a mouse gesture that did not turn into a drag.
func (b *IndicatorBar) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.up(e.Position)
}

// TouchDown starts a gesture for a finger.
func (b *IndicatorBar) TouchDown(e *mobile.TouchEvent) { b.down(touchPointer, e.Position) }

// TouchUp ends a touch gesture.
func (b *IndicatorBar) TouchUp(e *mobile.TouchEvent) { b.up(e.Position) }

// TouchCancel ends a touch gesture the system took away.
func (b *IndicatorBar) TouchCancel(e *mobile.TouchEvent) {
	b.update(func(c *indicator.Controller) {
		b.lastX = float64(e.Position.X)
		c.PointerCancel(touchPointer, b.lastX)
	})
}

// Dragged follows the active pointer.
func (b *IndicatorBar) Dragged(e *fyne.DragEvent) {
	b.update(func(c *indicator.Controller) {
		b.lastX = float64(e.Position.X)
		c.PointerMove(b.pointer, b.lastX)
	})
}

// DragEnd releases at the last dragged position.
func (b *IndicatorBar) DragEnd() {
	b.update(func(c *indicator.Controller) { c.PointerUp(b.pointer, b.lastX) })
}

func (b *IndicatorBar) down(id indicator.PointerID, pos fyne.Position) {
	b.update(func(c *indicator.Controller) {
		b.pointer = id
		b.lastX = float64(pos.X)
		c.PointerDown(id, b.lastX)
	})
}

func (b *IndicatorBar) up(pos fyne.Position) {
	b.update(func(c *indicator.Controller) {
		b.lastX = float64(pos.X)
		c.PointerUp(b.pointer, b.lastX)
	})
}

// dispatch delivers a scripted event as if it came from the pointer.
func (b *IndicatorBar) dispatch(e script.Event) {
	b.update(func(c *indicator.Controller) { script.Dispatch(c, e) })
}

// queueCommit runs under b.mu from inside the controller.
func (b *IndicatorBar) queueCommit(progress float64, value int64) {
	b.pending = append(b.pending, commit{progress, value})
}

// update applies f under the lock, then repaints and delivers commits with
// the lock released so callbacks may call back into the bar.
func (b *IndicatorBar) update(f func(c *indicator.Controller)) {
	b.mu.Lock()
	f(b.ctrl)
	changed := b.ctrl.Changed()
	pending := b.pending
	b.pending = nil
	b.mu.Unlock()

	if changed {
		b.Refresh()
	}
	for _, c := range pending {
		if b.OnCommit != nil {
			b.OnCommit(c.progress, c.value)
		}
	}
}

// MinSize leaves room for the bubble above the track.
func (b *IndicatorBar) MinSize() fyne.Size {
	return fyne.NewSize(160, 72)
}

func (b *IndicatorBar) textSize() float32 {
	if b.TextSize > 0 {
		return b.TextSize
	}
	return theme.TextSize()
}

type indicatorBarRenderer struct {
	b       *IndicatorBar
	track   *canvas.Rectangle
	fill    *canvas.Rectangle
	handle  *canvas.Rectangle
	gripL   *canvas.Rectangle
	gripR   *canvas.Rectangle
	bubble  *canvas.Rectangle
	pointer *canvas.Raster
	label   *canvas.Text
	objs    []fyne.CanvasObject
	pal     render.Palette
}

func (r *indicatorBarRenderer) Layout(sz fyne.Size) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	r.layout(sz)
}

// layout places every object; the caller holds b.mu.
func (r *indicatorBarRenderer) layout(sz fyne.Size) {
	if sz.Width <= 0 || sz.Height <= 0 {
		sz = r.b.FallbackSize
	}
	ctrl := r.b.ctrl
	m := render.NewMetrics(float64(sz.Height), 1)

	// The label width moves the clamping margin, so measure before mapping.
	r.label.Text = ctrl.Frame().Label()
	r.label.TextSize = r.b.textSize()
	ts := fyne.MeasureText(r.label.Text, r.label.TextSize, r.label.TextStyle)
	text := render.Size{W: float64(ts.Width), H: float64(ts.Height)}
	ctrl.Resize(float64(sz.Width), m.HandleHalfWidth(text.W))
	ctrl.Changed()

	l := render.Compute(ctrl.Frame(), render.Size{W: float64(sz.Width), H: float64(sz.Height)}, text, m)
	place(r.track, l.Track)
	place(r.fill, l.Fill)
	place(r.handle, l.Handle)
	place(r.gripL, l.GripLeft)
	place(r.gripR, l.GripRight)
	place(r.bubble, l.Bubble)
	r.handle.StrokeWidth = float32(m.Stroke)

	p := l.Pointer
	r.pointer.Move(fyne.NewPos(float32(p[0].X), float32(p[0].Y)))
	r.pointer.Resize(fyne.NewSize(float32(p[1].X-p[0].X), float32(p[2].Y-p[0].Y)))
	r.label.Move(fyne.NewPos(float32(l.TextBox.Min.X), float32(l.TextBox.Min.Y)))
	r.label.Resize(ts)

	for _, o := range []fyne.CanvasObject{r.bubble, r.pointer, r.label} {
		if l.ShowBubble {
			o.Show()
		} else {
			o.Hide()
		}
	}
}

// pointerPixel draws the downward triangle under the bubble.
func (r *indicatorBarRenderer) pointerPixel(x, y, w, h int) color.Color {
	if w <= 0 || h <= 0 {
		return color.Transparent
	}
	fx := (float64(x) + 0.5) / float64(w)
	fy := (float64(y) + 0.5) / float64(h)
	d := fx - 0.5
	if d < 0 {
		d = -d
	}
	if 2*d <= 1-fy {
		r.b.mu.Lock()
		defer r.b.mu.Unlock()
		return r.pal.Progress
	}
	return color.Transparent
}

func (r *indicatorBarRenderer) applyTheme() {
	pal := render.Palette{
		Background: theme.DisabledColor(),
		Progress:   theme.PrimaryColor(),
		Value:      color.White,
		Stroke:     theme.DisabledColor(),
	}
	if r.b.Disabled() {
		pal = pal.Disabled()
	}
	r.pal = pal
	r.track.FillColor = pal.Background
	r.fill.FillColor = pal.Progress
	r.bubble.FillColor = pal.Progress
	r.handle.FillColor = pal.Value
	r.handle.StrokeColor = pal.Stroke
	r.gripL.FillColor = pal.Background
	r.gripR.FillColor = pal.Background
	r.label.Color = pal.Value
}

func (r *indicatorBarRenderer) MinSize() fyne.Size { return r.b.MinSize() }

func (r *indicatorBarRenderer) Refresh() {
	r.b.mu.Lock()
	r.applyTheme()
	r.layout(r.b.Size())
	r.b.mu.Unlock()
	for _, o := range r.objs {
		canvas.Refresh(o)
	}
}

func (r *indicatorBarRenderer) Destroy() {}

func (r *indicatorBarRenderer) Objects() []fyne.CanvasObject { return r.objs }

// place positions a rectangle from computed geometry.
func place(rect *canvas.Rectangle, g render.Rect) {
	rect.Move(fyne.NewPos(float32(g.Min.X), float32(g.Min.Y)))
	rect.Resize(fyne.NewSize(float32(max(0, g.Dx())), float32(max(0, g.Dy()))))
	rect.CornerRadius = float32(g.Radius)
}
