package bouncer

import (
	"errors"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "wait", "frames": 3},
			{"action": "recolor"},
			{"action": "quit"}
		]
	}`)

	s, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(s.steps))
	}
	if s.steps[0].Action != "screenshot" || s.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if s.steps[1].Action != "wait" || s.steps[1].Frames != 3 {
		t.Error("step 1 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty steps", `{"steps": []}`},
		{"missing steps", `{}`},
		{"unknown action", `{"steps": [{"action": "click"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if !errors.Is(err, ErrInvalidScript) {
				t.Errorf("err = %v, want ErrInvalidScript", err)
			}
		})
	}
}

func mustScript(t *testing.T, data string) *Script {
	t.Helper()
	s, err := LoadScript([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestScriptWait(t *testing.T) {
	d := NewDisplay(Config{})
	s := mustScript(t, `{"steps": [{"action": "wait", "frames": 3}]}`)
	d.SetScript(s)

	for i := 0; i < 3; i++ {
		if s.Done() {
			t.Fatalf("done after %d ticks, want 3", i)
		}
		if err := d.Update(1.0 / DefaultTPS); err != nil {
			t.Fatal(err)
		}
	}
	if !s.Done() {
		t.Error("script should be done after the wait elapsed")
	}
}

func TestScriptPauseResumeRecolor(t *testing.T) {
	d := NewDisplay(Config{Seed: 9})
	r := NewRectangle(20, 20, 100, 200, WithPen(offPalette), WithFill(offPalette))
	d.Append(r)
	d.SetScript(mustScript(t, `{"steps": [
		{"action": "pause"},
		{"action": "recolor"},
		{"action": "resume"}
	]}`))

	_ = d.Update(1.0 / DefaultTPS) // pause runs before motion
	if !d.Paused() || r.X != 20 {
		t.Fatalf("after pause: paused=%v X=%d", d.Paused(), r.X)
	}

	_ = d.Update(1.0 / DefaultTPS) // recolor works while paused
	if !d.Config().Palette.Contains(r.PenColor) {
		t.Error("recolor step did not recolor")
	}
	if r.X != 20 {
		t.Errorf("X = %d, want 20 while paused", r.X)
	}

	_ = d.Update(1.0 / DefaultTPS)
	if d.Paused() || r.X != 21 {
		t.Errorf("after resume: paused=%v X=%d, want false 21", d.Paused(), r.X)
	}
}

func TestScriptQuit(t *testing.T) {
	d := NewDisplay(Config{})
	s := mustScript(t, `{"steps": [{"action": "wait", "frames": 2}, {"action": "quit"}, {"action": "recolor"}]}`)
	d.SetScript(s)

	if err := d.Update(0.1); err != nil {
		t.Fatalf("tick 1: %v", err)
	}
	if err := d.Update(0.1); err != nil {
		t.Fatalf("tick 2: %v", err)
	}
	if err := d.Update(0.1); !errors.Is(err, ErrTerminated) {
		t.Fatalf("tick 3 err = %v, want ErrTerminated", err)
	}
	if !s.Done() {
		t.Error("script should be done after quit")
	}
	if err := d.Update(0.1); err != nil {
		t.Errorf("update after quit: %v", err)
	}
}

func TestScriptScreenshotQueues(t *testing.T) {
	d := NewDisplay(Config{Width: 40, Height: 40})
	d.ScreenshotDir = t.TempDir()
	s := mustScript(t, `{"steps": [{"action": "screenshot", "label": "a"}, {"action": "wait", "frames": 1}]}`)

	// Step directly so the queue is visible before Update flushes it.
	if err := s.step(d); err != nil {
		t.Fatal(err)
	}
	if len(d.screenshotQueue) != 1 || d.screenshotQueue[0] != "a" {
		t.Errorf("queue = %v, want [a]", d.screenshotQueue)
	}
}
