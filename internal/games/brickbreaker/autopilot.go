package brickbreaker

import "github.com/vovakirdan/brick-bazaar/internal/core"

// Autopilot returns the input that steers the paddle under the ball
// closest to the bottom, preferring balls that are falling. It drives
// headless runs and demos.
func (s *Simulation) Autopilot() core.InputState {
	var target *Ball
	for i := range s.balls {
		b := &s.balls[i]
		switch {
		case target == nil:
			target = b
		case (b.Vel.Y > 0) != (target.Vel.Y > 0):
			if b.Vel.Y > 0 {
				target = b
			}
		case b.Pos.Y > target.Pos.Y:
			target = b
		}
	}
	if target == nil {
		return core.InputState{}
	}

	center := s.paddle.X + s.paddle.Width/2
	deadzone := s.paddle.Step / 2
	switch {
	case target.Pos.X > center+deadzone:
		return core.InputState{Right: true}
	case target.Pos.X < center-deadzone:
		return core.InputState{Left: true}
	}
	return core.InputState{}
}
