// Package tui provides the Bubble Tea front end for brick breaker. It
// handles the terminal UI loop, input mapping, and drawing the session
// views.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brick-bazaar/internal/session"
)

// frameMsg delivers a requested frame back to the Update loop.
type frameMsg struct{ id session.Handle }

// timerMsg delivers a countdown timer firing.
type timerMsg struct{ id session.Handle }

type teaTimer struct {
	fn     func()
	period time.Duration
}

// teaScheduler implements session.FrameScheduler and session.Timers on
// top of tea.Tick. Requests are queued as commands and drained after
// each Update, so every callback runs on the Update goroutine. Cancelled
// handles are dropped when their message arrives.
type teaScheduler struct {
	interval time.Duration
	next     session.Handle
	frames   map[session.Handle]func()
	timers   map[session.Handle]teaTimer
	pending  []tea.Cmd
}

func newTeaScheduler(fps int) *teaScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &teaScheduler{
		interval: time.Second / time.Duration(fps),
		frames:   make(map[session.Handle]func()),
		timers:   make(map[session.Handle]teaTimer),
	}
}

func (s *teaScheduler) issue() session.Handle {
	s.next++
	return s.next
}

// RequestFrame implements session.FrameScheduler.
func (s *teaScheduler) RequestFrame(fn func()) session.Handle {
	id := s.issue()
	s.frames[id] = fn
	s.pending = append(s.pending, tickCmd(s.interval, func() tea.Msg { return frameMsg{id} }))
	return id
}

// CancelFrame implements session.FrameScheduler.
func (s *teaScheduler) CancelFrame(h session.Handle) {
	delete(s.frames, h)
}

// After implements session.Timers.
func (s *teaScheduler) After(d time.Duration, fn func()) session.Handle {
	id := s.issue()
	s.timers[id] = teaTimer{fn: fn}
	s.pending = append(s.pending, tickCmd(d, func() tea.Msg { return timerMsg{id} }))
	return id
}

// Every implements session.Timers.
func (s *teaScheduler) Every(d time.Duration, fn func()) session.Handle {
	id := s.issue()
	s.timers[id] = teaTimer{fn: fn, period: d}
	s.pending = append(s.pending, tickCmd(d, func() tea.Msg { return timerMsg{id} }))
	return id
}

// Stop implements session.Timers.
func (s *teaScheduler) Stop(h session.Handle) {
	delete(s.timers, h)
}

// handle runs the callback behind a scheduler message. It reports
// whether msg belonged to the scheduler.
func (s *teaScheduler) handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case frameMsg:
		fn, ok := s.frames[msg.id]
		delete(s.frames, msg.id)
		if ok {
			fn()
		}
		return true
	case timerMsg:
		t, ok := s.timers[msg.id]
		if !ok {
			return true
		}
		if t.period > 0 {
			id := msg.id
			s.pending = append(s.pending, tickCmd(t.period, func() tea.Msg { return timerMsg{id} }))
		} else {
			delete(s.timers, msg.id)
		}
		t.fn()
		return true
	}
	return false
}

// drain returns the commands queued since the last drain.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// pendingFrames returns the number of live frame requests.
func (s *teaScheduler) pendingFrames() int {
	return len(s.frames)
}

// tickCmd returns a Bubble Tea command that sends msg after d.
func tickCmd(d time.Duration, msg func() tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg()
	})
}
