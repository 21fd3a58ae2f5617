package bouncer

import "time"

// frameStats holds per-frame counters. Only logged when debug mode is on.
type frameStats struct {
	drawTime   time.Duration
	shapeCount int
	flips      int
	recolors   int
}

// debugLog writes the frame's stats to the package logger.
func (d *Display) debugLog(stats frameStats) {
	if !d.debug {
		return
	}
	Logger().Debug("frame",
		"frame", d.frame,
		"draw", stats.drawTime,
		"shapes", stats.shapeCount,
		"flips", stats.flips,
		"recolors", stats.recolors,
		"paused", d.paused,
	)
}
