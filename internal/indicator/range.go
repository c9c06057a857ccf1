// Package indicator implements the value/position engine behind the
// IndicatorBar control: range validation, pixel <-> progress mapping, step
// snapping and the pointer gesture state machine. It has no GUI dependencies;
// renderers consume the Frame it produces.
package indicator

import (
	"fmt"
	"math"
)

const (
	// DefaultMin, DefaultMax and DefaultStep describe the range a new
	// Controller starts with.
	DefaultMin  int64 = 0
	DefaultMax  int64 = 100
	DefaultStep int64 = 10
	// DefaultProgress places the handle in the middle of the track.
	DefaultProgress = 0.5
)

// Range holds the selectable interval and its step. The zero value is not
// valid; build one with NewRange.
type Range struct {
	min, max, step int64
	stepCount      int64
}

// NewRange validates and returns a Range.
func NewRange(min, max, step int64) (Range, error) {
	var r Range
	if err := r.Configure(min, max, step); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Configure replaces min, max and step. On failure the receiver is unchanged.
func (r *Range) Configure(min, max, step int64) error {
	if step <= 0 {
		return fmt.Errorf("step %d must be positive: %w", step, ErrInvalidRangeConfig)
	}
	if max <= min {
		return fmt.Errorf("max %d must exceed min %d: %w", max, min, ErrInvalidRangeConfig)
	}
	// max > min, so a non-positive difference means the subtraction wrapped.
	span := max - min
	if span <= 0 {
		return fmt.Errorf("span of [%d, %d] overflows int64: %w", min, max, ErrInvalidRangeConfig)
	}
	if span%step != 0 {
		return fmt.Errorf("span %d is not a multiple of step %d: %w", span, step, ErrInvalidRangeConfig)
	}
	r.min, r.max, r.step = min, max, step
	r.stepCount = span / step
	return nil
}

func (r Range) Min() int64       { return r.min }
func (r Range) Max() int64       { return r.max }
func (r Range) Step() int64      { return r.step }
func (r Range) StepCount() int64 { return r.stepCount }

// span is the width of the interval as a float.
func (r Range) span() float64 { return float64(r.max - r.min) }

// ValueAt converts a progress in [0, 1] to a value, rounding to the nearest
// integer and clamping to [Min, Max].
func (r Range) ValueAt(progress float64) int64 {
	if math.IsNaN(progress) {
		return r.min
	}
	v := float64(r.min) + math.Round(progress*r.span())
	if v <= float64(r.min) {
		return r.min
	}
	if v >= float64(r.max) {
		return r.max
	}
	return int64(v)
}

// ProgressAt is the inverse of ValueAt, clamped to [0, 1].
func (r Range) ProgressAt(value int64) float64 {
	if r.max <= r.min {
		return 0
	}
	return clampFloat64(float64(value-r.min)/r.span(), 0, 1)
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v int64) bool { return v >= r.min && v <= r.max }

func (r Range) String() string {
	return fmt.Sprintf("[%d..%d step %d]", r.min, r.max, r.step)
}

// clampFloat64 constrains v to the [min, max] interval.
func clampFloat64(v, min, max float64) float64 {
	if max <= min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
