package session

import (
	"time"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// FrameScheduler delivers one callback on the next display frame.
type FrameScheduler interface {
	RequestFrame(fn func()) Handle
	CancelFrame(h Handle)
}

// Timers schedules wall-clock callbacks.
type Timers interface {
	After(d time.Duration, fn func()) Handle
	Every(d time.Duration, fn func()) Handle
	Stop(h Handle)
}

// ManualClock is a deterministic FrameScheduler and Timers driven by the
// caller. Nothing runs until Frame or Advance is called, and callbacks
// run on the calling goroutine.
type ManualClock struct {
	now    time.Duration
	nextID Handle

	frames    []scheduled
	timers    []scheduled
	cancelled map[Handle]bool // Frames cancelled while a batch runs
}

type scheduled struct {
	id     Handle
	at     time.Duration
	period time.Duration // Zero for one-shot
	fn     func()
}

// NewManualClock creates a clock at time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) issue() Handle {
	c.nextID++
	return c.nextID
}

// RequestFrame implements FrameScheduler.
func (c *ManualClock) RequestFrame(fn func()) Handle {
	id := c.issue()
	c.frames = append(c.frames, scheduled{id: id, fn: fn})
	return id
}

// CancelFrame implements FrameScheduler.
func (c *ManualClock) CancelFrame(h Handle) {
	c.frames = remove(c.frames, h)
	if c.cancelled != nil {
		c.cancelled[h] = true
	}
}

// After implements Timers.
func (c *ManualClock) After(d time.Duration, fn func()) Handle {
	id := c.issue()
	c.timers = append(c.timers, scheduled{id: id, at: c.now + d, fn: fn})
	return id
}

// Every implements Timers.
func (c *ManualClock) Every(d time.Duration, fn func()) Handle {
	if d <= 0 {
		d = time.Millisecond
	}
	id := c.issue()
	c.timers = append(c.timers, scheduled{id: id, at: c.now + d, period: d, fn: fn})
	return id
}

// Stop implements Timers.
func (c *ManualClock) Stop(h Handle) {
	c.timers = remove(c.timers, h)
}

// PendingFrames returns how many frame callbacks are outstanding.
func (c *ManualClock) PendingFrames() int {
	return len(c.frames)
}

// PendingTimers returns how many timers are outstanding.
func (c *ManualClock) PendingTimers() int {
	return len(c.timers)
}

// Now returns the elapsed manual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Frame runs the callbacks requested before this call. Frames requested
// by those callbacks wait for the next Frame. It returns how many ran.
func (c *ManualClock) Frame() int {
	batch := c.frames
	c.frames = nil
	c.cancelled = make(map[Handle]bool)
	defer func() { c.cancelled = nil }()

	ran := 0
	for _, f := range batch {
		if c.cancelled[f.id] {
			continue
		}
		f.fn()
		ran++
	}
	return ran
}

// Frames calls Frame up to n times, stopping early when nothing is pending.
func (c *ManualClock) Frames(n int) int {
	total := 0
	for range n {
		ran := c.Frame()
		if ran == 0 {
			break
		}
		total += ran
	}
	return total
}

// Advance moves time forward by d, firing due timers in time order.
func (c *ManualClock) Advance(d time.Duration) {
	target := c.now + d
	for {
		idx := c.nextDue(target)
		if idx < 0 {
			break
		}
		t := c.timers[idx]
		c.now = t.at
		if t.period > 0 {
			c.timers[idx].at += t.period
		} else {
			c.timers = append(c.timers[:idx], c.timers[idx+1:]...)
		}
		t.fn()
	}
	c.now = target
}

// nextDue returns the index of the earliest timer due by target, or -1.
// Ties fire in scheduling order.
func (c *ManualClock) nextDue(target time.Duration) int {
	best := -1
	for i, t := range c.timers {
		if t.at > target {
			continue
		}
		if best < 0 || t.at < c.timers[best].at || (t.at == c.timers[best].at && t.id < c.timers[best].id) {
			best = i
		}
	}
	return best
}

func remove(list []scheduled, h Handle) []scheduled {
	for i, s := range list {
		if s.id == h {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
