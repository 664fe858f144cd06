// Package session drives a brick breaker run: the countdown, the frame
// loop, win and loss, and the hand-off of simulation events to the
// progression economy.
package session

import (
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-bazaar/internal/config"
	"github.com/vovakirdan/brick-bazaar/internal/core"
	"github.com/vovakirdan/brick-bazaar/internal/games/brickbreaker"
	"github.com/vovakirdan/brick-bazaar/internal/progression"
	"github.com/vovakirdan/brick-bazaar/internal/storage"
)

// State is the machine's position in the run lifecycle.
type State int

const (
	StateIdle State = iota
	StateCountdown
	StateRunning
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCountdown:
		return "countdown"
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the run has finished.
func (s State) Over() bool {
	return s == StateWon || s == StateLost
}

// Overlay messages.
const (
	MessageWon  = "You win!"
	MessageLost = "You lost!"
	goLabel     = "GO!"
)

// Options configures a Machine.
type Options struct {
	Config   config.BrickBreakerConfig
	Economy  *progression.Economy
	Frames   FrameScheduler
	Timers   Timers
	Renderer Renderer            // Optional
	Recorder storage.RunRecorder // Optional
	Player   string              // Name stored with finished runs
	Logger   *log.Logger         // Optional
	Now      func() time.Time    // Optional, for run durations
}

// Machine is the game state machine. All methods and callbacks must run
// on a single goroutine; it is not safe for concurrent use.
type Machine struct {
	cfg      config.BrickBreakerConfig
	economy  *progression.Economy
	frames   FrameScheduler
	timers   Timers
	renderer Renderer
	recorder storage.RunRecorder
	player   string
	log      *log.Logger
	now      func() time.Time

	sim   *brickbreaker.Simulation
	state State
	input core.InputState

	frame     Handle // Outstanding frame request, zero when none
	countdown Handle // Repeating countdown timer
	goDelay   Handle // One-shot delay after "GO!"
	count     int
	label     string

	runStart   time.Time
	runBalls   int
	bazaarOpen bool
	debugOpen  bool
}

// New creates a machine in Idle and renders the initial layout.
func New(opts Options) *Machine {
	m := &Machine{
		cfg:      opts.Config,
		economy:  opts.Economy,
		frames:   opts.Frames,
		timers:   opts.Timers,
		renderer: opts.Renderer,
		recorder: opts.Recorder,
		player:   opts.Player,
		log:      opts.Logger,
		now:      opts.Now,
	}
	if m.renderer == nil {
		m.renderer = nopRenderer{}
	}
	if m.log == nil {
		m.log = log.Default()
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.player == "" {
		m.player = storage.LocalPlayer
	}

	m.sim = brickbreaker.NewSimulation(m.cfg, m.store().BallCount())
	m.render()
	return m
}

func (m *Machine) store() *progression.Store { return m.economy.Store() }

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Sim returns the simulation of the current run.
func (m *Machine) Sim() *brickbreaker.Simulation { return m.sim }

// Economy returns the progression economy.
func (m *Machine) Economy() *progression.Economy { return m.economy }

// Start begins the first run from Idle. It is ignored in other states.
func (m *Machine) Start() {
	if m.state != StateIdle {
		return
	}
	m.store().IncrementTimesPlayed()
	m.cancelFrame()
	m.log.Info("run starting", "player", m.player, "balls", m.sim.BallCount())
	m.beginCountdown()
}

// Retry starts a fresh run after a win or loss. It is ignored otherwise.
func (m *Machine) Retry() {
	if !m.state.Over() {
		return
	}
	m.store().IncrementTimesPlayed()
	m.cancelAll()
	m.sim.Reset(m.store().BallCount())
	m.log.Info("run retrying", "player", m.player, "balls", m.sim.BallCount())
	m.render()
	m.beginCountdown()
}

// Activate is the single "space" action: start from Idle, retry after
// a finished run.
func (m *Machine) Activate() {
	switch {
	case m.state == StateIdle:
		m.Start()
	case m.state.Over():
		m.Retry()
	}
}

// SetInput stores the held paddle directions used by the next frames.
func (m *Machine) SetInput(left, right bool) {
	m.input = core.InputState{Left: left, Right: right}
}

func (m *Machine) beginCountdown() {
	m.state = StateCountdown
	m.count = m.cfg.Countdown.From
	m.label = strconv.Itoa(m.count)
	m.render()
	m.countdown = m.timers.Every(m.cfg.Countdown.Step, m.countdownTick)
}

func (m *Machine) countdownTick() {
	if m.state != StateCountdown {
		return
	}
	m.count--
	if m.count > 0 {
		m.label = strconv.Itoa(m.count)
		m.render()
		return
	}
	m.label = goLabel
	m.timers.Stop(m.countdown)
	m.countdown = 0
	m.render()
	m.goDelay = m.timers.After(m.cfg.Countdown.GoDelay, m.beginRunning)
}

func (m *Machine) beginRunning() {
	m.goDelay = 0
	if m.state != StateCountdown {
		return
	}
	m.state = StateRunning
	m.label = ""
	m.runStart = m.now()
	m.runBalls = m.sim.BallCount()
	m.render()
	m.requestFrame()
}

// requestFrame releases any held frame before asking for the next one.
func (m *Machine) requestFrame() {
	m.cancelFrame()
	m.frame = m.frames.RequestFrame(m.onFrame)
}

func (m *Machine) cancelFrame() {
	if m.frame != 0 {
		m.frames.CancelFrame(m.frame)
		m.frame = 0
	}
}

func (m *Machine) cancelAll() {
	m.cancelFrame()
	if m.countdown != 0 {
		m.timers.Stop(m.countdown)
		m.countdown = 0
	}
	if m.goDelay != 0 {
		m.timers.Stop(m.goDelay)
		m.goDelay = 0
	}
	m.label = ""
}

func (m *Machine) onFrame() {
	m.frame = 0
	if m.state != StateRunning {
		return
	}

	res := m.sim.Step(m.input)

	won, lost := false, false
	for _, ev := range res.Events {
		switch ev.Kind {
		case brickbreaker.EventBrickDestroyed:
			m.economy.BrickDestroyed(ev.Score)
		case brickbreaker.EventSpeedChanged:
			m.log.Debug("speed up", "score", ev.Score, "speed", ev.Speed)
		case brickbreaker.EventGridCleared:
			won = true
		case brickbreaker.EventAllBallsLost:
			lost = true
		}
	}

	switch {
	case won:
		m.finish(StateWon)
	case lost:
		m.finish(StateLost)
	default:
		m.render()
		m.requestFrame()
	}
}

// finish ends the run exactly once: the loop is released before the
// overlay is drawn.
func (m *Machine) finish(outcome State) {
	if m.state.Over() {
		return
	}
	m.cancelAll()
	m.state = outcome
	if outcome == StateWon {
		m.store().IncrementWins()
	}
	m.record(outcome == StateWon)
	m.log.Info("run finished", "player", m.player, "state", outcome, "score", m.sim.Score())
	m.render()
}

func (m *Machine) record(won bool) {
	if m.recorder == nil {
		return
	}
	var dur time.Duration
	if !m.runStart.IsZero() {
		dur = m.now().Sub(m.runStart)
	}
	run := storage.RunRecord{
		Player:    m.player,
		Score:     m.sim.Score(),
		Won:       won,
		Balls:     max(m.runBalls, 1),
		BallsLost: m.sim.BallsLost(),
		Duration:  dur,
	}
	if err := m.recorder.RecordRun(run); err != nil {
		m.log.Warn("cannot record run", "player", m.player, "err", err)
	}
}

// Purchase buys a bazaar item. An extra ball joins the current run
// unless it is already over.
func (m *Machine) Purchase(id string) bool {
	var live progression.BallSpawner
	if !m.state.Over() {
		live = m.sim
	}
	ok := m.economy.Purchase(id, live)
	m.log.Debug("purchase", "player", m.player, "item", id, "ok", ok)
	if ok {
		m.render()
	}
	return ok
}

// Tickle pokes Bricko.
func (m *Machine) Tickle() bool {
	ok := m.economy.Tickle()
	if ok {
		m.render()
	}
	return ok
}

// ToggleBazaar opens or closes the bazaar panel.
func (m *Machine) ToggleBazaar() {
	m.bazaarOpen = !m.bazaarOpen
	m.render()
}

// ToggleDebug opens or closes the debug panel.
func (m *Machine) ToggleDebug() {
	m.debugOpen = !m.debugOpen
	m.render()
}

// View builds the current view.
func (m *Machine) View() View {
	v := View{
		State:      m.state,
		Countdown:  m.label,
		Sim:        m.sim,
		Score:      m.sim.Score(),
		Balls:      m.sim.BallCount(),
		Record:     m.store().Record(),
		Offers:     m.economy.Offers(),
		BazaarOpen: m.bazaarOpen,
		DebugOpen:  m.debugOpen,
	}
	switch m.state {
	case StateWon:
		v.Message = MessageWon
	case StateLost:
		v.Message = MessageLost
	}
	return v
}

func (m *Machine) render() {
	m.renderer.Render(m.View())
}
