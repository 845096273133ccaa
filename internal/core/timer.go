package core

import "time"

// FrameTicker paces replay frames at a fixed per-frame interval using an
// accumulator, so a slow draw does not skew the animation rate.
type FrameTicker struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFrameTicker constructs a ticker advancing once per interval. A
// non-positive interval advances on every call.
func NewFrameTicker(interval time.Duration) *FrameTicker {
	ft := &FrameTicker{}
	ft.SetInterval(interval)
	ft.accumulator = ft.interval
	return ft
}

// SetInterval changes the per-frame delay. It is safe to call from the main
// loop.
func (f *FrameTicker) SetInterval(d time.Duration) {
	f.interval = d
}

// ShouldAdvance reports whether the replay should advance by one frame.
func (f *FrameTicker) ShouldAdvance() bool {
	if f.interval <= 0 {
		return true
	}
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.interval {
		f.accumulator -= f.interval
		return true
	}
	return false
}
