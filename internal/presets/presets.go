// Package presets holds named range configurations for the indicator bar,
// with copy-on-read helpers so callers never alias the bundled defaults.
package presets

import (
	"fmt"
	"math"
	"strings"

	"github.com/edward-ap/indicatorbar/internal/indicator"
)

// RangePreset is a range together with the progress to start from.
type RangePreset struct {
	Name     string  `json:"name" yaml:"name"`
	Min      int64   `json:"min" yaml:"min"`
	Max      int64   `json:"max" yaml:"max"`
	Step     int64   `json:"step" yaml:"step"`
	Progress float64 `json:"progress" yaml:"progress"`
}

// Model keeps the available presets together with the selected one.
type Model struct {
	Presets []RangePreset
	Current RangePreset
}

// Shapes kept small and familiar: percent, a signed balance, a coarse volume
// and a fine 0..1000 scale.
var defaultPresets = []RangePreset{
	{Name: "Percent", Min: 0, Max: 100, Step: 10, Progress: 0.5},
	{Name: "Balance", Min: -50, Max: 50, Step: 5, Progress: 0.5},
	{Name: "Volume", Min: 0, Max: 30, Step: 3, Progress: 0.3},
	{Name: "Fine", Min: 0, Max: 1000, Step: 50, Progress: 0},
}

// DefaultPresets returns a copy of the bundled presets.
func DefaultPresets() []RangePreset {
	out := make([]RangePreset, len(defaultPresets))
	copy(out, defaultPresets)
	return out
}

// Names lists preset names in display order.
func Names() []string {
	out := make([]string, len(defaultPresets))
	for i, p := range defaultPresets {
		out[i] = p.Name
	}
	return out
}

// FindPresetByName performs a case-insensitive lookup across default presets.
func FindPresetByName(name string) (RangePreset, bool) {
	for _, p := range defaultPresets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return RangePreset{}, false
}

// NewModel starts with the default presets, selecting the named one or the
// first when the name is unknown.
func NewModel(selected string) *Model {
	m := &Model{Presets: DefaultPresets()}
	m.Current = m.Presets[0]
	if p, ok := FindPresetByName(selected); ok {
		m.Current = p
	}
	return m
}

// Select makes the named preset current.
func (m *Model) Select(name string) (RangePreset, error) {
	for _, p := range m.Presets {
		if strings.EqualFold(p.Name, name) {
			m.Current = p
			return p, nil
		}
	}
	return m.Current, fmt.Errorf("unknown preset %q", name)
}

// Validate reports whether the preset describes a usable range.
func (p RangePreset) Validate() error {
	if _, err := indicator.NewRange(p.Min, p.Max, p.Step); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	if math.IsNaN(p.Progress) || p.Progress < 0 || p.Progress > 1 {
		return fmt.Errorf("preset %q: %w", p.Name, indicator.ErrOutOfRangeProgress)
	}
	return nil
}

// Target is anything that accepts a range and a progress, such as an
// indicator.Controller or the ui.IndicatorBar.
type Target interface {
	Configure(min, max, step int64) error
	SetProgress(p float64) error
}

// Apply configures t with p. t is left untouched when p is invalid.
func Apply(p RangePreset, t Target) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := t.Configure(p.Min, p.Max, p.Step); err != nil {
		return err
	}
	return t.SetProgress(p.Progress)
}

// Extract captures the range and progress of c as an unnamed preset.
func Extract(c *indicator.Controller) RangePreset {
	r := c.Range()
	return RangePreset{Min: r.Min(), Max: r.Max(), Step: r.Step(), Progress: c.Progress()}
}
