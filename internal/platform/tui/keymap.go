package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brick-bazaar/internal/core"
)

// KeyMap defines the key bindings for a brick breaker session.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Start      key.Binding
	Tickle     key.Binding
	Bazaar     key.Binding
	Debug      key.Binding
	Slot       key.Binding // 1-9: buy in the bazaar, run an op in the debug panel
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.Bazaar, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Start},
		{k.Bazaar, k.Slot, k.Tickle},
		{k.Debug, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start/retry"),
		),
		Tickle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tickle bricko"),
		),
		Bazaar: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "bazaar"),
		),
		Debug: key.NewBinding(
			key.WithKeys("'"),
			key.WithHelp("'", "debug"),
		),
		Slot: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "buy/run"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Tickle):
		return core.ActionTickle
	case key.Matches(msg, k.Bazaar):
		return core.ActionToggleBazaar
	case key.Matches(msg, k.Debug):
		return core.ActionToggleDebug
	}
	return core.ActionNone
}

// slotIndex returns the zero-based slot for a number key, or -1.
func slotIndex(msg tea.KeyMsg) int {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return -1
	}
	return int(s[0] - '1')
}

// holdInput emulates held arrow keys. Terminals report presses and
// auto-repeat but never releases, so a press counts as held for a
// number of frames and is refreshed by repeats.
type holdInput struct {
	frames int
	left   int
	right  int
}

func newHoldInput(frames int) holdInput {
	return holdInput{frames: max(frames, 1)}
}

func (h *holdInput) press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left, h.right = h.frames, 0
	case core.ActionRight:
		h.right, h.left = h.frames, 0
	}
}

// next returns the held directions for the coming frame and ages them.
func (h *holdInput) next() (left, right bool) {
	left, right = h.left > 0, h.right > 0
	if h.left > 0 {
		h.left--
	}
	if h.right > 0 {
		h.right--
	}
	return left, right
}

func (h *holdInput) release() {
	h.left, h.right = 0, 0
}
