package core

// Action represents a semantic game action, abstracted from physical key presses.
// The front-end maps keys to actions; the session layer never sees raw keys.
type Action int

const (
	ActionNone         Action = iota
	ActionLeft                // Left arrow - move paddle left
	ActionRight               // Right arrow - move paddle right
	ActionStart               // Space - start from idle, retry from the overlay
	ActionTickle              // T - poke Bricko
	ActionToggleBazaar        // E - open or close the bazaar
	ActionToggleDebug         // ' - open or close the debug panel
	ActionQuit                // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionTickle:
		return "Tickle"
	case ActionToggleBazaar:
		return "ToggleBazaar"
	case ActionToggleDebug:
		return "ToggleDebug"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputState is the held/not-held status of the two paddle directions.
type InputState struct {
	Left  bool
	Right bool
}

// Direction returns -1, 0 or 1 for the paddle displacement sign.
// Right takes precedence when both directions are held.
func (s InputState) Direction() int {
	if s.Right {
		return 1
	}
	if s.Left {
		return -1
	}
	return 0
}
