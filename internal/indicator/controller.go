package indicator

import (
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Controller owns the (progress, value, x) triple of one IndicatorBar and
// drives it from pointer events. Progress is the source of truth; value and x
// are derived from it on every mutation.
//
// A Controller is not safe for concurrent use. Drive it from the UI thread.
type Controller struct {
	// OnCommit is called once per completed gesture, after the triple has
	// been snapped and the controller is idle again.
	OnCommit func(progress float64, value int64)
	// OnReject is called when a second pointer tries to join a gesture.
	OnReject func(id PointerID)
	// Invalidate is called whenever the control needs a repaint.
	Invalidate func()

	rng    Range
	mapper Mapper
	quant  Quantizer

	progress float64
	value    int64
	x        float64

	state   State
	action  Action
	pointer PointerID
	enabled bool
	policy  DisplayPolicy
	changed bool

	log *slog.Logger
}

// NewController returns an enabled, idle controller over the default range
// with the handle in the middle of a not yet laid out track.
func NewController() *Controller {
	c := &Controller{
		enabled: true,
		policy:  HideWhileDragging,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	c.rng, _ = NewRange(DefaultMin, DefaultMax, DefaultStep)
	c.setProgress(DefaultProgress)
	return c
}

// SetLogger replaces the logger; nil restores the discarding default.
func (c *Controller) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c.log = l
}

// Configure validates and installs a new range. Progress is kept; the value is
// re-derived from it so both stay in agreement.
func (c *Controller) Configure(min, max, step int64) error {
	if err := c.rng.Configure(min, max, step); err != nil {
		return err
	}
	c.setProgress(c.progress)
	c.markChanged()
	return nil
}

// SetProgress moves the handle to p, which must lie in [0, 1].
func (c *Controller) SetProgress(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("progress %v not in [0, 1]: %w", p, ErrOutOfRangeProgress)
	}
	c.setProgress(p)
	c.markChanged()
	return nil
}

// SetValue moves the handle to the position of v, which must lie in the range.
// The value is not snapped to a step.
func (c *Controller) SetValue(v int64) error {
	if !c.rng.Contains(v) {
		return fmt.Errorf("value %d not in %s: %w", v, c.rng, ErrOutOfRangeValue)
	}
	c.setProgress(c.rng.ProgressAt(v))
	c.markChanged()
	return nil
}

// Resize updates the layout metrics. Progress is unchanged; the cached handle
// position follows it.
func (c *Controller) Resize(trackWidth, handleHalfWidth float64) {
	c.mapper = Mapper{
		TrackWidth: nonNegative(trackWidth),
		HalfWidth:  nonNegative(handleHalfWidth),
	}
	c.x = c.mapper.XFromProgress(c.progress)
	c.markChanged()
}

// SetEnabled turns input handling on or off. Disabling during a drag drops the
// gesture without a commit.
func (c *Controller) SetEnabled(enabled bool) {
	if c.enabled == enabled {
		return
	}
	c.enabled = enabled
	if !enabled && c.state == StateDragging {
		c.state = StateIdle
		c.action = ActionNone
	}
	c.markChanged()
}

// SetDisplayPolicy selects when the value bubble is visible.
func (c *Controller) SetDisplayPolicy(p DisplayPolicy) {
	if c.policy == p {
		return
	}
	c.policy = p
	c.markChanged()
}

// PointerDown starts a gesture for id. The handle does not move until the
// first move event.
func (c *Controller) PointerDown(id PointerID, x float64) bool {
	if !c.enabled {
		return true
	}
	if c.state == StateDragging && id != c.pointer {
		c.reject(id)
		return true
	}
	c.state = StateDragging
	c.pointer = id
	c.action = ActionDown
	c.markChanged()
	return true
}

// PointerMove follows the pointer continuously. A move without a preceding
// down starts the gesture.
func (c *Controller) PointerMove(id PointerID, x float64) bool {
	if !c.enabled {
		return true
	}
	switch {
	case c.state == StateIdle:
		c.state = StateDragging
		c.pointer = id
	case id != c.pointer:
		c.reject(id)
		return true
	}
	c.action = ActionMove
	c.setProgress(c.mapper.ProgressFromX(x))
	if TraceLoggingEnabled() {
		c.log.Debug("move", "x", x, "handle", c.x, "track", c.mapper.TrackWidth, "progress", c.progress, "value", c.value)
	}
	c.markChanged()
	return true
}

// PointerUp ends the gesture, snaps to the nearest step and commits. x is
// ignored: snapping starts from the position of the last move.
func (c *Controller) PointerUp(id PointerID, x float64) bool {
	return c.release(id, ActionUp)
}

// PointerCancel ends the gesture like PointerUp, committing the snapped
// position of the last move. x is ignored.
func (c *Controller) PointerCancel(id PointerID, x float64) bool {
	return c.release(id, ActionCancel)
}

func (c *Controller) release(id PointerID, action Action) bool {
	if !c.enabled || c.state != StateDragging {
		return true
	}
	if id != c.pointer {
		c.reject(id)
		return true
	}
	c.state = StateIdle
	c.action = action
	c.snap()
	c.markChanged()
	if c.OnCommit != nil {
		c.OnCommit(c.progress, c.value)
	}
	return true
}

// snap quantizes the current progress on the pixel track.
func (c *Controller) snap() {
	w := c.mapper.TrackWidth
	x := c.progress * w
	laidOut := w > 0
	if !laidOut {
		w, x = 1, c.progress
	}
	s, err := c.quant.Snap(x, w, c.rng.StepCount())
	if err != nil {
		c.log.Warn("snap skipped", "err", err)
		return
	}
	if !s.Snapped {
		return
	}
	p := s.Progress
	if laidOut {
		if h := c.mapper.HalfWidth; s.X <= h {
			p = 0
		} else if s.X >= w-h {
			p = 1
		}
	}
	if TraceLoggingEnabled() {
		c.log.Debug("snap", "steps", c.rng.StepCount(), "x", x, "boundary", s.X, "progress", p)
	}
	c.setProgress(p)
}

func (c *Controller) reject(id PointerID) {
	c.log.Warn("pointer rejected", "pointer", int(id), "active", int(c.pointer))
	if c.OnReject != nil {
		c.OnReject(id)
	}
}

func (c *Controller) setProgress(p float64) {
	c.progress = p
	c.value = c.rng.ValueAt(p)
	c.x = c.mapper.XFromProgress(p)
}

func (c *Controller) markChanged() {
	c.changed = true
	if c.Invalidate != nil {
		c.Invalidate()
	}
}

// Changed reports whether the control needs a repaint since the last call to
// Changed.
func (c *Controller) Changed() bool {
	changed := c.changed
	c.changed = false
	return changed
}

func (c *Controller) Range() Range                 { return c.rng }
func (c *Controller) Progress() float64            { return c.progress }
func (c *Controller) Value() int64                 { return c.value }
func (c *Controller) X() float64                   { return c.x }
func (c *Controller) State() State                 { return c.state }
func (c *Controller) Action() Action               { return c.action }
func (c *Controller) Enabled() bool                { return c.enabled }
func (c *Controller) DisplayPolicy() DisplayPolicy { return c.policy }
func (c *Controller) Mapper() Mapper               { return c.mapper }

// BubbleVisible reports whether the value bubble should be drawn now.
func (c *Controller) BubbleVisible() bool {
	if c.policy == AlwaysShow {
		return true
	}
	return !(c.state == StateDragging && c.action == ActionMove)
}

// Frame snapshots everything a renderer needs.
func (c *Controller) Frame() Frame {
	return Frame{
		Progress:        c.progress,
		Value:           c.value,
		X:               c.x,
		TrackWidth:      c.mapper.TrackWidth,
		HandleHalfWidth: c.mapper.HalfWidth,
		State:           c.state,
		Action:          c.action,
		Enabled:         c.enabled,
		BubbleVisible:   c.BubbleVisible(),
	}
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
