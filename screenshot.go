package bouncer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshot queues a labeled screenshot. It is captured at the end of the
// current Update and written as a PNG to ScreenshotDir with a timestamped
// filename.
func (d *Display) Screenshot(label string) {
	d.screenshotQueue = append(d.screenshotQueue, label)
}

// flushScreenshots renders the current state once to an offscreen canvas and
// writes it for every queued label. Failures are logged and dropped.
func (d *Display) flushScreenshots() {
	if len(d.screenshotQueue) == 0 {
		return
	}
	defer func() { d.screenshotQueue = d.screenshotQueue[:0] }()

	if err := os.MkdirAll(d.ScreenshotDir, 0o755); err != nil {
		Logger().Warn("screenshot: mkdir failed", "dir", d.ScreenshotDir, "err", err)
		return
	}

	canvas := NewCanvas(d.cfg.Width, d.cfg.Height)
	defer canvas.Close()

	d.paint(canvas)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range d.screenshotQueue {
		path := filepath.Join(d.ScreenshotDir, fmt.Sprintf("%s_%06d_%s.png", stamp, d.frame, sanitizeLabel(label)))
		if err := canvas.SavePNG(path); err != nil {
			Logger().Warn("screenshot failed", "err", err)
			continue
		}
		Logger().Info("screenshot written", "path", path)
	}
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
