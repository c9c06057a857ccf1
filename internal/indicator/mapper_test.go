package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapperProgressFromXClamps(t *testing.T) {
	m := Mapper{TrackWidth: 200, HalfWidth: 20}
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{name: "far negative", x: -1e9, want: 0},
		{name: "inside left margin", x: 10, want: 0},
		{name: "left margin edge", x: 20, want: 0},
		{name: "centre", x: 100, want: 0.5},
		{name: "right margin edge", x: 180, want: 1},
		{name: "inside right margin", x: 195, want: 1},
		{name: "far beyond track", x: 1e9, want: 1},
		{name: "infinity", x: math.Inf(1), want: 1},
		{name: "nan", x: math.NaN(), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.ProgressFromX(tt.x)
			assert.InDelta(t, tt.want, got, 1e-12)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestMapperWithoutTravelRoom(t *testing.T) {
	tests := []struct {
		name string
		m    Mapper
	}{
		{name: "not laid out", m: Mapper{}},
		{name: "zero width with margin", m: Mapper{TrackWidth: 0, HalfWidth: 12}},
		{name: "exactly two margins", m: Mapper{TrackWidth: 40, HalfWidth: 20}},
		{name: "narrower than margins", m: Mapper{TrackWidth: 30, HalfWidth: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range []float64{-10, 0, 15, 40, 1000} {
				assert.Equal(t, 0.0, tt.m.ProgressFromX(x))
			}
			assert.Equal(t, tt.m.TrackWidth/2, tt.m.XFromProgress(0.7))
		})
	}
}

func TestMapperXFromProgress(t *testing.T) {
	m := Mapper{TrackWidth: 300, HalfWidth: 50}
	assert.Equal(t, 50.0, m.XFromProgress(0))
	assert.Equal(t, 250.0, m.XFromProgress(1))
	assert.Equal(t, 150.0, m.XFromProgress(0.5))
	assert.Equal(t, 50.0, m.XFromProgress(-2))
	assert.Equal(t, 250.0, m.XFromProgress(3))
}

func TestMapperRoundTrip(t *testing.T) {
	mappers := []Mapper{
		{TrackWidth: 200},
		{TrackWidth: 200, HalfWidth: 17.5},
		{TrackWidth: 1080, HalfWidth: 64},
		{TrackWidth: 41, HalfWidth: 20},
	}
	for _, m := range mappers {
		travel := m.TrackWidth - 2*m.HalfWidth
		for i := 0; i <= 1000; i++ {
			p := float64(i) / 1000
			got := m.ProgressFromX(m.XFromProgress(p))
			// one pixel expressed in progress units
			assert.InDelta(t, p, got, 1/travel, "mapper %+v progress %v", m, p)
		}
	}
}
