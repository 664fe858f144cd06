package brickbreaker

import (
	"github.com/vovakirdan/brick-bazaar/internal/config"
	"github.com/vovakirdan/brick-bazaar/internal/core"
)

// Simulation is the state of one run: grid, paddle, balls and score.
// It is advanced one frame at a time by Step and is not safe for
// concurrent use.
type Simulation struct {
	cfg    config.BrickBreakerConfig
	bounds bounds

	grid   *Grid
	paddle Paddle
	balls  []Ball

	score     int
	ballsLost int
	speed     float64
	tick      uint64
}

// NewSimulation creates a simulation laid out for a run with ballCount balls.
func NewSimulation(cfg config.BrickBreakerConfig, ballCount int) *Simulation {
	s := &Simulation{
		cfg:    cfg,
		bounds: boundsFor(cfg),
		grid:   NewGrid(cfg),
		paddle: Paddle{
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
			Step:   cfg.Paddle.Step,
		},
	}
	s.Reset(ballCount)
	return s
}

// Reset reinitializes the run: fresh grid, centered paddle, zero score
// and ballCount balls at the spawn point.
func (s *Simulation) Reset(ballCount int) {
	s.grid.Reset()
	s.paddle.X = (s.cfg.Viewport.Width - s.paddle.Width) / 2
	s.score = 0
	s.ballsLost = 0
	s.speed = s.cfg.Speed.Base
	s.tick = 0

	if ballCount < 1 {
		ballCount = 1
	}
	s.balls = s.balls[:0]
	for range ballCount {
		s.AddBall()
	}
}

// AddBall spawns a ball at the spawn point moving up and to the right
// at base speed.
func (s *Simulation) AddBall() {
	base := s.cfg.Speed.Base
	s.balls = append(s.balls, Ball{
		Pos: core.Vec{
			X: s.cfg.Viewport.Width / 2,
			Y: s.cfg.Viewport.Height - s.cfg.Ball.SpawnOffsetY,
		},
		Vel: core.Vec{X: base, Y: -base},
	})
}

// Step advances the simulation by one frame.
func (s *Simulation) Step(in core.InputState) StepResult {
	var res StepResult
	s.tick++

	s.grid.Advance()
	s.collide(&res)

	lost := false
	for i := len(s.balls) - 1; i >= 0; i-- {
		if advanceBall(&s.balls[i], s.paddle, s.bounds) {
			continue
		}
		s.balls = append(s.balls[:i], s.balls[i+1:]...)
		s.ballsLost++
		lost = true
		res.Events = append(res.Events, Event{Kind: EventBallLost, Score: s.score})
	}
	if lost && len(s.balls) == 0 {
		res.Events = append(res.Events, Event{Kind: EventAllBallsLost, Score: s.score})
	}

	s.paddle.move(in, s.bounds.width)
	return res
}

// collide tests every ball against every active brick. A ball may hit
// several bricks in the same frame; each hit flips its vertical velocity.
func (s *Simulation) collide(res *StepResult) {
	total := s.grid.Total()
	for i := range s.balls {
		ball := &s.balls[i]
		s.grid.Each(func(b *Brick) {
			if b.Status != BrickActive || !b.Rect.ContainsStrict(ball.Pos.X, ball.Pos.Y) {
				return
			}
			ball.Vel.Y = -ball.Vel.Y
			s.grid.Hit(b)
			s.score++
			res.Events = append(res.Events, Event{
				Kind:  EventBrickDestroyed,
				Col:   b.Col,
				Row:   b.Row,
				Score: s.score,
			})

			if s.cfg.Speed.IsStep(s.score) {
				s.speed = s.cfg.Speed.At(s.score)
				for j := range s.balls {
					s.balls[j].setSpeed(s.speed)
				}
				res.Events = append(res.Events, Event{Kind: EventSpeedChanged, Score: s.score, Speed: s.speed})
			}
			if s.score == total {
				res.Events = append(res.Events, Event{Kind: EventGridCleared, Score: s.score})
			}
		})
	}
}

// ForceClear destroys every brick and sets the score to the brick total.
func (s *Simulation) ForceClear() {
	s.grid.DestroyAll()
	s.score = s.grid.Total()
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.BrickBreakerConfig { return s.cfg }

// Grid returns the brick grid.
func (s *Simulation) Grid() *Grid { return s.grid }

// Paddle returns the paddle state.
func (s *Simulation) Paddle() Paddle { return s.paddle }

// Balls returns a copy of the live balls.
func (s *Simulation) Balls() []Ball {
	out := make([]Ball, len(s.balls))
	copy(out, s.balls)
	return out
}

// BallCount returns the number of live balls.
func (s *Simulation) BallCount() int { return len(s.balls) }

// Score returns the number of bricks hit this run.
func (s *Simulation) Score() int { return s.score }

// BallsLost returns how many balls fell this run.
func (s *Simulation) BallsLost() int { return s.ballsLost }

// Speed returns the current shared speed magnitude.
func (s *Simulation) Speed() float64 { return s.speed }

// Tick returns the number of steps since the last reset.
func (s *Simulation) Tick() uint64 { return s.tick }
