package script

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edward-ap/indicatorbar/internal/indicator"
)

func TestParseAndRun(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantValue int64
		commits   int
	}{
		{
			name: "release near end snaps to max",
			doc: `
range: {min: 0, max: 100, step: 10}
track: {width: 200}
events:
  - {type: down, x: 100}
  - {type: move, x: 195}
  - {type: up, x: 195}
`,
			wantValue: 100,
			commits:   1,
		},
		{
			name: "release near start snaps to min",
			doc: `
range: {min: 0, max: 100, step: 10}
track: {width: 200}
events:
  - {type: move, x: 4}
  - {type: up, x: 4}
`,
			wantValue: 0,
			commits:   1,
		},
		{
			name: "release between steps snaps to the nearer one",
			doc: `
track: {width: 200}
events:
  - {type: down, x: 100}
  - {type: move, x: 107}
  - {type: up, x: 107}
`,
			wantValue: 50,
			commits:   1,
		},
		{
			name: "disabled control keeps its value",
			doc: `
track: {width: 200}
disabled: true
events:
  - {type: down, x: 10}
  - {type: move, x: 10}
  - {type: up, x: 10}
`,
			wantValue: 50,
			commits:   0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.doc))
			require.NoError(t, err)
			res, err := s.Run()
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, res.Final.Value)
			assert.Len(t, res.Commits, tt.commits)
			assert.Equal(t, len(s.Events), res.Handled, "every event is consumed")
			assert.Equal(t, indicator.StateIdle, res.Final.State)
		})
	}
}

func TestRunRejectsIndivisibleRange(t *testing.T) {
	s, err := Parse([]byte(`
range: {min: 0, max: 100, step: 7}
track: {width: 200}
events: [{type: down, x: 1}]
`))
	require.NoError(t, err)
	_, err = s.Run()
	assert.ErrorIs(t, err, indicator.ErrInvalidRangeConfig)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "no events", doc: "track: {width: 10}\n"},
		{name: "unknown event type", doc: "events: [{type: hover, x: 1}]\n"},
		{name: "unknown key", doc: "speed: 3\nevents: [{type: down, x: 1}]\n"},
		{name: "unknown policy", doc: "policy: sometimes\nevents: [{type: down, x: 1}]\n"},
		{name: "not yaml", doc: "events: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadTestdata(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "release_near_end.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "release near end", s.Name)
	res, err := s.Run()
	require.NoError(t, err)
	require.Len(t, res.Commits, 1)
	assert.Equal(t, Commit{Progress: 1, Value: 100}, res.Commits[0])

	_, err = Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestSecondPointerIsRejected(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "two_pointers.yaml"))
	require.NoError(t, err)
	res, err := s.Run()
	require.NoError(t, err)

	assert.Equal(t, []indicator.PointerID{2, 2}, res.Rejected)
	require.Len(t, res.Commits, 1, "cancel commits like release")
	// 200 on a 400px track with a 20px margin is halfway: value 0
	assert.Equal(t, int64(0), res.Commits[0].Value)
	assert.Equal(t, indicator.ActionCancel, res.Final.Action)
	assert.True(t, res.Final.BubbleVisible, "alwaysShow keeps the bubble")
}

func TestReplayRestoresHooks(t *testing.T) {
	c := indicator.NewController()
	c.Resize(200, 0)
	var outer []int64
	c.OnCommit = func(_ float64, v int64) { outer = append(outer, v) }

	res := Replay(c, []Event{{Type: Move, X: 195}, {Type: Up, X: 195}})
	require.Len(t, res.Commits, 1)
	assert.Equal(t, []int64{100}, outer, "existing hook still fires")

	c.PointerMove(0, 4)
	c.PointerUp(0, 4)
	assert.Equal(t, []int64{100, 0}, outer)
	assert.Len(t, res.Commits, 1, "replay hook is gone")
}
