package session

import (
	"testing"
	"time"
)

func TestManualClockFrames(t *testing.T) {
	c := NewManualClock()
	ran := 0

	var again func()
	again = func() {
		ran++
		c.RequestFrame(again)
	}
	c.RequestFrame(again)

	if c.Frame() != 1 || ran != 1 {
		t.Fatalf("first Frame() ran %d callbacks, expected 1", ran)
	}
	// The re-request waits for the next frame
	if c.PendingFrames() != 1 {
		t.Errorf("PendingFrames() = %d, expected 1", c.PendingFrames())
	}
	if got := c.Frames(5); got != 5 || ran != 6 {
		t.Errorf("Frames(5) ran %d (total %d), expected 5 (total 6)", got, ran)
	}
}

func TestManualClockCancelFrame(t *testing.T) {
	c := NewManualClock()
	ran := false

	h := c.RequestFrame(func() { ran = true })
	c.CancelFrame(h)

	if c.Frame() != 0 || ran {
		t.Error("cancelled frame should never run")
	}

	// Cancelling a later frame from inside the same batch
	var second Handle
	c.RequestFrame(func() { c.CancelFrame(second) })
	second = c.RequestFrame(func() { ran = true })
	c.Frame()
	if ran {
		t.Error("frame cancelled mid-batch should not run")
	}
}

func TestManualClockTimers(t *testing.T) {
	c := NewManualClock()
	var log []string

	every := c.Every(time.Second, func() { log = append(log, "tick") })
	c.After(1500*time.Millisecond, func() { log = append(log, "once") })

	c.Advance(999 * time.Millisecond)
	if len(log) != 0 {
		t.Fatalf("timers fired early: %v", log)
	}

	c.Advance(2 * time.Second)
	expected := []string{"tick", "once", "tick"}
	if len(log) != len(expected) {
		t.Fatalf("fired %v, expected %v", log, expected)
	}
	for i := range expected {
		if log[i] != expected[i] {
			t.Errorf("fired[%d] = %q, expected %q", i, log[i], expected[i])
		}
	}

	c.Stop(every)
	c.Advance(5 * time.Second)
	if len(log) != 3 {
		t.Errorf("stopped timer kept firing: %v", log)
	}
	if c.PendingTimers() != 0 {
		t.Errorf("PendingTimers() = %d, expected 0", c.PendingTimers())
	}
	if c.Now() != 7999*time.Millisecond {
		t.Errorf("Now() = %v, expected 7.999s", c.Now())
	}
}

func TestManualClockStopInsideCallback(t *testing.T) {
	c := NewManualClock()
	fired := 0

	var h Handle
	h = c.Every(time.Second, func() {
		fired++
		if fired == 2 {
			c.Stop(h)
		}
	})

	c.Advance(10 * time.Second)
	if fired != 2 {
		t.Errorf("fired %d times, expected 2", fired)
	}
}
