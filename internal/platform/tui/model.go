package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-bazaar/internal/config"
	"github.com/vovakirdan/brick-bazaar/internal/core"
	"github.com/vovakirdan/brick-bazaar/internal/progression"
	"github.com/vovakirdan/brick-bazaar/internal/session"
	"github.com/vovakirdan/brick-bazaar/internal/storage"
)

// Options configures a brick breaker TUI session.
type Options struct {
	Config   config.BrickBreakerConfig
	Store    *progression.Store
	Recorder storage.RunRecorder // Optional
	Player   string
	Logger   *log.Logger // Optional
	Runtime  core.RuntimeConfig
}

// viewSink keeps the latest view pushed by the machine.
type viewSink struct {
	view session.View
}

func (s *viewSink) Render(v session.View) { s.view = v }

// Model is the Bubble Tea model for a brick breaker session.
type Model struct {
	machine  *session.Machine
	sched    *teaScheduler
	sink     *viewSink
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	hold     holdInput
	width    int
	height   int
	quitting bool
}

// NewModel creates a session model. The machine starts in Idle.
func NewModel(opts Options) Model {
	rt, def := opts.Runtime, core.DefaultConfig()
	rt.ScreenW = orDefault(rt.ScreenW, def.ScreenW)
	rt.ScreenH = orDefault(rt.ScreenH, def.ScreenH)
	rt.TickRate = orDefault(rt.TickRate, def.TickRate)

	sched := newTeaScheduler(rt.TickRate)
	sink := &viewSink{}
	machine := session.New(session.Options{
		Config:   opts.Config,
		Economy:  progression.NewEconomy(opts.Store, opts.Config.Economy),
		Frames:   sched,
		Timers:   sched,
		Renderer: sink,
		Recorder: opts.Recorder,
		Player:   opts.Player,
		Logger:   opts.Logger,
	})

	h := help.New()
	h.ShowAll = false

	return Model{
		machine: machine,
		sched:   sched,
		sink:    sink,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH-helpRows),
		keys:    DefaultKeyMap(),
		help:    h,
		hold:    newHoldInput(opts.Config.Input.HoldFrames),
		width:   rt.ScreenW,
		height:  rt.ScreenH,
	}
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

// Machine returns the session machine driven by this model.
func (m Model) Machine() *session.Machine {
	return m.machine
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Brick Bazaar")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case frameMsg:
		m.machine.SetInput(m.hold.next())
		m.sched.handle(msg)

	case timerMsg:
		m.sched.handle(msg)
	}

	return m, m.sched.drain()
}

// handleKey processes keyboard input. It returns a command only when
// the key ends the program.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return nil
	case key.Matches(msg, m.keys.Slot):
		m.useSlot(slotIndex(msg))
		return nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.hold.press(action)
	case core.ActionStart:
		m.hold.release()
		m.machine.Activate()
	case core.ActionTickle:
		m.machine.Tickle()
	case core.ActionToggleBazaar:
		m.machine.ToggleBazaar()
	case core.ActionToggleDebug:
		m.machine.ToggleDebug()
	}
	return nil
}

// useSlot runs a debug op when the debug panel is open, or buys the
// matching catalog item when the bazaar is open.
func (m *Model) useSlot(i int) {
	if i < 0 {
		return
	}
	v := m.sink.view
	switch {
	case v.DebugOpen:
		if i < len(session.DebugOps) {
			m.machine.Debug(session.DebugOps[i])
		}
	case v.BazaarOpen:
		items := m.machine.Economy().Items()
		if i < len(items) {
			m.machine.Purchase(items[i].ID)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	drawView(m.screen, m.sink.view)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("brickbreaker_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(m.help.View(m.keys))

	m.screen.Resize(m.width, max(m.height-lipgloss.Height(helpView), 1))
	drawView(m.screen, m.sink.view)

	return RenderScreen(m.screen) + "\n" + helpView
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
