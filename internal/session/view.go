package session

import (
	"github.com/vovakirdan/brick-bazaar/internal/games/brickbreaker"
	"github.com/vovakirdan/brick-bazaar/internal/progression"
)

// View is everything a renderer needs to draw one frame.
type View struct {
	State     State
	Countdown string // "3", "2", "1", "GO!" while counting down
	Message   string // Overlay text once the run is over

	Sim    *brickbreaker.Simulation // Read-only for renderers
	Score  int
	Balls  int
	Record progression.Record
	Offers []progression.Offer

	BazaarOpen bool
	DebugOpen  bool
}

// Renderer receives a view after every state change and frame.
type Renderer interface {
	Render(v View)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(View)

// Render implements Renderer.
func (f RendererFunc) Render(v View) { f(v) }

type nopRenderer struct{}

func (nopRenderer) Render(View) {}
