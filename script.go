package bouncer

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidScript is wrapped by every LoadScript error.
var ErrInvalidScript = errors.New("invalid script")

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"wait":       true,
	"screenshot": true,
	"recolor":    true,
	"pause":      true,
	"resume":     true,
	"quit":       true,
}

// Script sequences actions across ticks for unattended runs: waiting,
// screenshots, forced recolors, pausing, and quitting. Attach to a Display
// via SetScript.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script and returns a Script ready to be attached
// to a Display via SetScript.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w: %w", ErrInvalidScript, err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w: no steps", ErrInvalidScript)
	}
	for i, st := range f.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: %w: step %d: unknown action %q", ErrInvalidScript, i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a script to the display. Its step method is called at
// the start of every Display.Update.
func (d *Display) SetScript(s *Script) {
	d.script = s
}

// Done reports whether all steps in the script have been executed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one tick. It returns ErrTerminated when a
// quit step runs.
func (s *Script) step(d *Display) error {
	if s.done {
		return nil
	}
	if s.waitCount > 0 {
		s.waitCount--
		if s.waitCount == 0 && s.cursor >= len(s.steps) {
			s.done = true
		}
		return nil
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return nil
	}

	st := s.steps[s.cursor]
	s.cursor++
	Logger().Debug("script step", "frame", d.frame, "action", st.Action, "label", st.Label)

	switch st.Action {
	case "screenshot":
		d.Screenshot(st.Label)
	case "recolor":
		d.Recolor()
	case "pause":
		d.Pause()
	case "resume":
		d.Resume()
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "quit":
		s.done = true
		return ErrTerminated
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
	return nil
}
