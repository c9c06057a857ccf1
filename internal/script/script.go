// Package script describes pointer gestures in YAML so they can be replayed
// against an indicator.Controller, headless or on a live widget.
//
//	range: {min: 0, max: 100, step: 10}
//	track: {width: 200, handleHalfWidth: 0}
//	events:
//	  - {type: down, x: 100}
//	  - {type: move, x: 195}
//	  - {type: up, x: 195}
package script

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/edward-ap/indicatorbar/internal/indicator"
)

// EventType is the pointer phase of an Event.
type EventType string

const (
	Down   EventType = "down"
	Move   EventType = "move"
	Up     EventType = "up"
	Cancel EventType = "cancel"
)

// Event is one pointer event in track-local pixels.
type Event struct {
	Type    EventType `yaml:"type"`
	Pointer int       `yaml:"pointer,omitempty"`
	X       float64   `yaml:"x"`
}

// RangeSpec is the range a script configures before replaying.
type RangeSpec struct {
	Min  int64 `yaml:"min"`
	Max  int64 `yaml:"max"`
	Step int64 `yaml:"step"`
}

// TrackSpec is the layout a script resizes the controller to.
type TrackSpec struct {
	Width           float64 `yaml:"width"`
	HandleHalfWidth float64 `yaml:"handleHalfWidth,omitempty"`
}

// Script is a replayable gesture session.
type Script struct {
	Name     string     `yaml:"name,omitempty"`
	Range    *RangeSpec `yaml:"range,omitempty"`
	Track    TrackSpec  `yaml:"track"`
	Progress *float64   `yaml:"progress,omitempty"`
	Disabled bool       `yaml:"disabled,omitempty"`
	Policy   string     `yaml:"policy,omitempty"`
	Events   []Event    `yaml:"events"`
}

// Commit is one OnCommit notification.
type Commit struct {
	Progress float64 `yaml:"progress"`
	Value    int64   `yaml:"value"`
}

// Result is what a replay produced.
type Result struct {
	Commits  []Commit              `yaml:"commits"`
	Rejected []indicator.PointerID `yaml:"rejected,omitempty"`
	Handled  int                   `yaml:"handled"`
	Final    indicator.Frame       `yaml:"-"`
}

var errNoEvents = errors.New("script has no events")

// Parse decodes and validates a script. Unknown keys are errors.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("script parse error: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a script file.
func Load(path string) (*Script, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks event types and the optional policy. Range and progress
// errors surface when the script is applied.
func (s *Script) Validate() error {
	if len(s.Events) == 0 {
		return errNoEvents
	}
	for i, e := range s.Events {
		switch e.Type {
		case Down, Move, Up, Cancel:
		default:
			return fmt.Errorf("event %d: unknown type %q", i, e.Type)
		}
	}
	if s.Policy != "" {
		if _, err := indicator.ParseDisplayPolicy(s.Policy); err != nil {
			return err
		}
	}
	return nil
}

// Apply configures c with the script's range, layout, policy, progress and
// enabled state.
func (s *Script) Apply(c *indicator.Controller) error {
	if s.Range != nil {
		if err := c.Configure(s.Range.Min, s.Range.Max, s.Range.Step); err != nil {
			return err
		}
	}
	c.Resize(s.Track.Width, s.Track.HandleHalfWidth)
	if s.Policy != "" {
		p, err := indicator.ParseDisplayPolicy(s.Policy)
		if err != nil {
			return err
		}
		c.SetDisplayPolicy(p)
	}
	if s.Progress != nil {
		if err := c.SetProgress(*s.Progress); err != nil {
			return err
		}
	}
	c.SetEnabled(!s.Disabled)
	return nil
}

// Run applies the script to a fresh controller and replays every event.
func (s *Script) Run() (Result, error) {
	c := indicator.NewController()
	if err := s.Apply(c); err != nil {
		return Result{}, err
	}
	return Replay(c, s.Events), nil
}

// Replay feeds events to c, collecting commits and rejected pointers. Hooks
// already installed on c are restored afterwards.
func Replay(c *indicator.Controller, events []Event) Result {
	var res Result
	prevCommit, prevReject := c.OnCommit, c.OnReject
	defer func() { c.OnCommit, c.OnReject = prevCommit, prevReject }()

	c.OnCommit = func(p float64, v int64) {
		res.Commits = append(res.Commits, Commit{Progress: p, Value: v})
		if prevCommit != nil {
			prevCommit(p, v)
		}
	}
	c.OnReject = func(id indicator.PointerID) {
		res.Rejected = append(res.Rejected, id)
		if prevReject != nil {
			prevReject(id)
		}
	}
	for _, e := range events {
		if Dispatch(c, e) {
			res.Handled++
		}
	}
	res.Final = c.Frame()
	return res
}

// Dispatch delivers one event to c and reports whether it was consumed.
func Dispatch(c *indicator.Controller, e Event) bool {
	id := indicator.PointerID(e.Pointer)
	switch e.Type {
	case Down:
		return c.PointerDown(id, e.X)
	case Move:
		return c.PointerMove(id, e.X)
	case Up:
		return c.PointerUp(id, e.X)
	case Cancel:
		return c.PointerCancel(id, e.X)
	}
	return false
}
