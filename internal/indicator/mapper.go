package indicator

import "math"

// Mapper converts between a pixel offset along the track and a normalized
// progress. HalfWidth is kept clear at both ends so the value bubble centred
// on the handle never draws past the track edges.
type Mapper struct {
	TrackWidth float64
	HalfWidth  float64
}

// travel is the usable pixel span, zero or negative when the track is too
// narrow for the handle to move.
func (m Mapper) travel() float64 {
	return m.TrackWidth - 2*m.HalfWidth
}

// ProgressFromX maps a raw pointer X to [0, 1]. Input outside the track is
// clamped, never rejected. A track without travel room maps everything to 0.
func (m Mapper) ProgressFromX(rawX float64) float64 {
	span := m.travel()
	if span <= 0 || math.IsNaN(rawX) {
		return 0
	}
	x := clampFloat64(rawX, m.HalfWidth, m.TrackWidth-m.HalfWidth)
	return clampFloat64((x-m.HalfWidth)/span, 0, 1)
}

// XFromProgress maps a progress back to the handle centre in pixels. Without
// travel room the handle sits in the middle of the track.
func (m Mapper) XFromProgress(progress float64) float64 {
	span := m.travel()
	if span <= 0 {
		return m.TrackWidth / 2
	}
	if math.IsNaN(progress) {
		progress = 0
	}
	x := m.HalfWidth + progress*span
	return clampFloat64(x, m.HalfWidth, m.TrackWidth-m.HalfWidth)
}
