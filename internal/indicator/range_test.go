package indicator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRangeRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name           string
		min, max, step int64
	}{
		{name: "step does not divide span", min: 0, max: 100, step: 7},
		{name: "zero step", min: 0, max: 100, step: 0},
		{name: "negative step", min: 0, max: 100, step: -10},
		{name: "max equals min", min: 5, max: 5, step: 1},
		{name: "max below min", min: 10, max: 0, step: 5},
		{name: "span overflows", min: math.MinInt64, max: math.MaxInt64, step: 1},
		{name: "span overflows by one", min: -1, max: math.MaxInt64, step: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRange(tt.min, tt.max, tt.step)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidRangeConfig), "got %v", err)
		})
	}
}

func TestNewRangeAcceptsWidestSpan(t *testing.T) {
	r, err := NewRange(0, math.MaxInt64, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), r.StepCount())
}

func TestRangeConfigureKeepsStateOnError(t *testing.T) {
	r, err := NewRange(0, 100, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), r.StepCount())

	err = r.Configure(0, 100, 7)
	require.ErrorIs(t, err, ErrInvalidRangeConfig)
	assert.Equal(t, int64(0), r.Min())
	assert.Equal(t, int64(100), r.Max())
	assert.Equal(t, int64(10), r.Step())
	assert.Equal(t, int64(10), r.StepCount())

	require.NoError(t, r.Configure(-20, 40, 3))
	assert.Equal(t, int64(20), r.StepCount())
}

func TestRangeValueAt(t *testing.T) {
	r, err := NewRange(-50, 50, 5)
	require.NoError(t, err)
	tests := []struct {
		name     string
		progress float64
		want     int64
	}{
		{name: "start", progress: 0, want: -50},
		{name: "end", progress: 1, want: 50},
		{name: "middle", progress: 0.5, want: 0},
		{name: "rounds to nearest", progress: 0.537, want: 4},
		{name: "below zero clamps", progress: -3, want: -50},
		{name: "above one clamps", progress: 7, want: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ValueAt(tt.progress))
		})
	}
}

func TestRangeProgressAtClamps(t *testing.T) {
	r, err := NewRange(10, 20, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.ProgressAt(-100))
	assert.Equal(t, 1.0, r.ProgressAt(100))
	assert.InDelta(t, 0.3, r.ProgressAt(13), 1e-12)
}

func TestRangeRoundTripOnStepBoundaries(t *testing.T) {
	configs := []struct{ min, max, step int64 }{
		{0, 100, 10},
		{0, 100, 1},
		{-30, 30, 15},
		{7, 1007, 25},
		{0, 3, 3},
		{-1000000, 1000000, 250},
	}
	for _, cfg := range configs {
		r, err := NewRange(cfg.min, cfg.max, cfg.step)
		require.NoError(t, err)
		for v := cfg.min; v <= cfg.max; v += cfg.step {
			require.Equal(t, v, r.ValueAt(r.ProgressAt(v)), "range %s value %d", r, v)
		}
	}
}
