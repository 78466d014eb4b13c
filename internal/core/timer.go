package core

import "time"

// FrameTimer measures the time between consecutive frames.
// The zero value is ready to use; the first Tick yields a zero delta.
type FrameTimer struct {
	last    time.Time
	delta   time.Duration
	started bool
}

// Tick records a frame at now and returns the elapsed time since the
// previous one in seconds.
func (t *FrameTimer) Tick(now time.Time) float32 {
	if t.started && now.After(t.last) {
		t.delta = now.Sub(t.last)
	} else {
		t.delta = 0
	}
	t.last = now
	t.started = true
	return t.Delta()
}

// Delta returns the last frame delta in seconds.
func (t *FrameTimer) Delta() float32 {
	return float32(t.delta.Seconds())
}

// FPS returns the instantaneous frame rate, or 0 before the second frame.
func (t *FrameTimer) FPS() float32 {
	if t.delta <= 0 {
		return 0
	}
	return float32(time.Second) / float32(t.delta)
}
