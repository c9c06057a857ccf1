package indicator

import (
	"fmt"
	"math"
)

// boundaryEpsilon is the tolerance, in steps, within which a position counts
// as already sitting on a step boundary.
const boundaryEpsilon = 1e-9

// Snap is the result of quantizing a pixel position.
type Snap struct {
	// Snapped is false when the input was already on a boundary; the caller
	// keeps its current state in that case.
	Snapped bool
	// Index is the chosen boundary in [0, stepCount].
	Index int64
	// X is the chosen boundary in track pixels, Index * trackWidth/stepCount.
	X float64
	// Progress is Index / stepCount.
	Progress float64
}

// Quantizer snaps continuous positions to the stepCount+1 evenly spaced
// boundaries of a track. It is used on release only; moves stay continuous.
type Quantizer struct{}

// Snap quantizes x on a track of the given width. Positions halfway between
// two boundaries go to the upper one.
func (Quantizer) Snap(x, trackWidth float64, stepCount int64) (Snap, error) {
	if stepCount <= 0 {
		return Snap{}, fmt.Errorf("step count %d: %w", stepCount, ErrDegenerateStep)
	}
	if trackWidth <= 0 || math.IsNaN(trackWidth) {
		// Snapping is scale invariant, so a collapsed track snaps on a unit one.
		trackWidth = 1
		x = 0
	}
	if math.IsNaN(x) {
		x = 0
	}
	x = clampFloat64(x, 0, trackWidth)
	n := float64(stepCount)
	xStep := trackWidth / n

	r := x / xStep
	if k := math.Round(r); math.Abs(r-k) <= boundaryEpsilon {
		idx := int64(k)
		return Snap{Index: idx, X: float64(idx) * xStep, Progress: float64(idx) / n}, nil
	}

	i := math.Floor(r)
	x1 := i * xStep
	x2 := (i + 1) * xStep
	idx := int64(i)
	if x-x1 >= x2-x {
		idx++
	}
	if idx > stepCount {
		idx = stepCount
	}
	return Snap{
		Snapped:  true,
		Index:    idx,
		X:        float64(idx) * xStep,
		Progress: float64(idx) / n,
	}, nil
}
