package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/edward-ap/indicatorbar/internal/indicator"
	"github.com/edward-ap/indicatorbar/internal/render"
)

const nearEndScript = `name: near end
range: {min: 0, max: 100, step: 10}
track: {width: 200}
events:
  - {type: down, x: 100}
  - {type: move, x: 195}
  - {type: up, x: 195}
`

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestSimulateCommand(t *testing.T) {
	path := writeScript(t, nearEndScript)
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"simulate", path})
	require.NoError(t, cmd.Execute())

	var report struct {
		Script  string `yaml:"script"`
		Handled int    `yaml:"handled"`
		Commits []struct {
			Progress float64 `yaml:"progress"`
			Value    int64   `yaml:"value"`
		} `yaml:"commits"`
		Final struct {
			Value int64  `yaml:"value"`
			State string `yaml:"state"`
		} `yaml:"final"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, "near end", report.Script)
	assert.Equal(t, 3, report.Handled)
	require.Len(t, report.Commits, 1)
	assert.Equal(t, int64(100), report.Commits[0].Value)
	assert.Equal(t, int64(100), report.Final.Value)
	assert.Equal(t, indicator.StateIdle.String(), report.Final.State)
}

func TestSimulateErrors(t *testing.T) {
	noop := func(string, ...any) {}
	assert.Error(t, runSimulate(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing.yaml"), noop))

	bad := writeScript(t, "range: {min: 0, max: 100, step: 7}\nevents: [{type: down, x: 1}]\n")
	err := runSimulate(&bytes.Buffer{}, bad, noop)
	assert.ErrorIs(t, err, indicator.ErrInvalidRangeConfig)

	cmd := rootCmd()
	cmd.SetArgs([]string{"simulate"})
	assert.Error(t, cmd.Execute(), "script argument is required")
}

func TestSnapshotWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bar.png")
	var stdout bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"snapshot", "-o", out, "--width", "300", "--height", "80", "--value", "70"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), out)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestSnapshotFrame(t *testing.T) {
	base := snapshotOptions{width: 400, height: 100, min: 0, max: 100, step: 10, value: 70, policy: "hideWhileDragging"}
	r := render.NewRaster(20)

	f, err := snapshotFrame(base, r)
	require.NoError(t, err)
	assert.Equal(t, int64(70), f.Value)
	assert.True(t, f.BubbleVisible)
	assert.Greater(t, f.HandleHalfWidth, 0.0)

	drag := base
	drag.dragging = true
	f, err = snapshotFrame(drag, r)
	require.NoError(t, err)
	assert.Equal(t, indicator.StateDragging, f.State)
	assert.False(t, f.BubbleVisible)
	assert.Equal(t, int64(70), f.Value)

	drag.policy = "alwaysShow"
	f, err = snapshotFrame(drag, r)
	require.NoError(t, err)
	assert.True(t, f.BubbleVisible)

	off := base
	off.disabled = true
	off.dragging = true
	f, err = snapshotFrame(off, r)
	require.NoError(t, err)
	assert.False(t, f.Enabled)
	assert.Equal(t, indicator.StateIdle, f.State)

	for _, bad := range []snapshotOptions{
		{width: 0, height: 10, max: 100, step: 10},
		{width: 10, height: 10, max: 100, step: 7},
		{width: 10, height: 10, max: 100, step: 10, value: 200},
		{width: 10, height: 10, max: 100, step: 10, policy: "never"},
	} {
		_, err := snapshotFrame(bad, r)
		assert.Error(t, err)
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "indicatorbar version dev")
}
