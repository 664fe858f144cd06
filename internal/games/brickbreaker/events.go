package brickbreaker

// EventKind identifies what happened during a step.
type EventKind int

const (
	EventBrickDestroyed EventKind = iota // A brick was hit; Score is the new score
	EventBallLost                        // A ball left through the bottom
	EventSpeedChanged                    // All balls were rescaled to Speed
	EventGridCleared                     // Score reached the brick total
	EventAllBallsLost                    // The last ball was lost
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventBallLost:
		return "ball_lost"
	case EventSpeedChanged:
		return "speed_changed"
	case EventGridCleared:
		return "grid_cleared"
	case EventAllBallsLost:
		return "all_balls_lost"
	default:
		return "unknown"
	}
}

// Event is a single simulation outcome.
type Event struct {
	Kind  EventKind
	Col   int     // EventBrickDestroyed
	Row   int     // EventBrickDestroyed
	Score int     // Score after the event
	Speed float64 // EventSpeedChanged
}

// StepResult is returned by Simulation.Step.
type StepResult struct {
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Count returns how many events of the given kind occurred.
func (r StepResult) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
