package bouncer

// timerEpsilon absorbs float error from summing per-tick deltas such as
// 1/60, which would otherwise fall just short of a whole interval.
const timerEpsilon = 1e-9

// IntervalTimer calls a function once per fixed interval of elapsed time.
// Time is supplied by the caller through Update, normally one tick's delta,
// so the timer runs on simulated time rather than the wall clock.
type IntervalTimer struct {
	interval float64
	elapsed  float64
	fn       func()
}

// NewIntervalTimer returns a timer firing fn every interval seconds. A
// non-positive interval never fires.
func NewIntervalTimer(interval float64, fn func()) *IntervalTimer {
	return &IntervalTimer{interval: interval, fn: fn}
}

// Interval returns the configured interval in seconds.
func (t *IntervalTimer) Interval() float64 { return t.interval }

// Update adds dt seconds and fires once for every full interval that has
// elapsed, keeping the remainder for later calls. It returns the number of
// times fn was called.
func (t *IntervalTimer) Update(dt float64) int {
	if t.interval <= 0 || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	fired := 0
	for t.elapsed >= t.interval-timerEpsilon {
		t.elapsed -= t.interval
		fired++
		if t.fn != nil {
			t.fn()
		}
	}
	return fired
}

// Reset discards any accumulated time.
func (t *IntervalTimer) Reset() {
	t.elapsed = 0
}
