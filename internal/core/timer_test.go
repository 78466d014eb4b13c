package core

import (
	"testing"
	"time"
)

func TestFrameTimer(t *testing.T) {
	var ft FrameTimer
	start := time.Unix(100, 0)

	if d := ft.Tick(start); d != 0 {
		t.Errorf("first Tick() = %v, expected 0", d)
	}
	if ft.FPS() != 0 {
		t.Errorf("FPS() before second frame = %v, expected 0", ft.FPS())
	}

	d := ft.Tick(start.Add(250 * time.Millisecond))
	if d != 0.25 {
		t.Errorf("Tick() = %v, expected 0.25", d)
	}
	if ft.FPS() != 4 {
		t.Errorf("FPS() = %v, expected 4", ft.FPS())
	}
}

func TestFrameTimerClockGoingBack(t *testing.T) {
	var ft FrameTimer
	now := time.Unix(100, 0)
	ft.Tick(now)

	if d := ft.Tick(now.Add(-time.Second)); d != 0 {
		t.Errorf("Tick() with an earlier time = %v, expected 0", d)
	}
}
