package brickbreaker

import (
	"github.com/vovakirdan/brick-bazaar/internal/config"
	"github.com/vovakirdan/brick-bazaar/internal/core"
)

// Ball is a moving ball. Position is the center.
type Ball struct {
	Pos core.Vec
	Vel core.Vec
}

// setSpeed rescales both axes to speed, keeping each axis direction.
func (b *Ball) setSpeed(speed float64) {
	b.Vel.X = core.SignF(b.Vel.X) * speed
	b.Vel.Y = core.SignF(b.Vel.Y) * speed
}

// Paddle is the player's paddle resting on the bottom edge.
type Paddle struct {
	X      float64 // Left edge
	Width  float64
	Height float64
	Step   float64
}

// Right returns the x-coordinate of the right edge.
func (p Paddle) Right() float64 {
	return p.X + p.Width
}

// catches reports whether x lies strictly between the paddle edges.
func (p Paddle) catches(x float64) bool {
	return x > p.X && x < p.Right()
}

// move shifts the paddle one step in the input direction and clamps it.
func (p *Paddle) move(in core.InputState, viewportW float64) {
	switch in.Direction() {
	case 1:
		p.X += p.Step
	case -1:
		p.X -= p.Step
	default:
		return
	}
	p.X = core.ClampF(p.X, 0, viewportW-p.Width)
}

// bounds bundles the playfield limits used by ball movement.
type bounds struct {
	width, height, radius float64
}

func boundsFor(cfg config.BrickBreakerConfig) bounds {
	return bounds{
		width:  cfg.Viewport.Width,
		height: cfg.Viewport.Height,
		radius: cfg.Ball.Radius,
	}
}

// advanceBall reflects and moves one ball. It returns false when the
// ball left through the bottom edge and must be removed.
func advanceBall(b *Ball, p Paddle, bd bounds) bool {
	next := b.Pos.Add(b.Vel)

	if next.X > bd.width-bd.radius || next.X < bd.radius {
		b.Vel.X = -b.Vel.X
	}

	if next.Y < bd.radius {
		b.Vel.Y = -b.Vel.Y
	} else if next.Y > bd.height-bd.radius {
		if !p.catches(b.Pos.X) {
			return false
		}
		b.Vel.Y = -b.Vel.Y
	}

	b.Pos = b.Pos.Add(b.Vel)
	return true
}
