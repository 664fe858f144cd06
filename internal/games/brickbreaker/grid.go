// Package brickbreaker implements the brick breaker simulation: the brick
// grid, ball and paddle kinematics, and the per-frame physics step.
// It is pure game logic with no timers, storage or terminal I/O.
package brickbreaker

import (
	"github.com/vovakirdan/brick-bazaar/internal/config"
	"github.com/vovakirdan/brick-bazaar/internal/core"
)

// BrickStatus is the lifecycle stage of a brick.
type BrickStatus int

const (
	BrickActive    BrickStatus = iota // Collidable
	BrickBlinking                     // Hit, flashing before removal; not collidable
	BrickDestroyed                    // Gone for the rest of the run
)

// String returns a human-readable name for the status.
func (s BrickStatus) String() string {
	switch s {
	case BrickActive:
		return "active"
	case BrickBlinking:
		return "blinking"
	case BrickDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Brick is a single grid cell.
type Brick struct {
	Col, Row int
	Rect     core.Rect // Fixed at grid creation
	Status   BrickStatus
	Blink    int // Frames spent blinking
}

// Grid is the brick field, stored column-major.
type Grid struct {
	cols        int
	rows        int
	blinkFrames int
	cells       []Brick
}

// NewGrid lays out a grid centered horizontally in the viewport.
func NewGrid(cfg config.BrickBreakerConfig) *Grid {
	b := cfg.Bricks
	totalWidth := float64(b.Columns)*b.Width + float64(b.Columns-1)*b.Padding
	offsetLeft := (cfg.Viewport.Width - totalWidth) / 2

	blink := b.BlinkFrames
	if blink < 1 {
		blink = 1
	}

	g := &Grid{
		cols:        b.Columns,
		rows:        b.Rows,
		blinkFrames: blink,
		cells:       make([]Brick, b.Columns*b.Rows),
	}
	for c := range b.Columns {
		for r := range b.Rows {
			g.cells[c*b.Rows+r] = Brick{
				Col: c,
				Row: r,
				Rect: core.NewRect(
					float64(c)*(b.Width+b.Padding)+offsetLeft,
					float64(r)*(b.Height+b.Padding)+b.OffsetTop,
					b.Width,
					b.Height,
				),
			}
		}
	}
	return g
}

// Reset makes every brick active again.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].Status = BrickActive
		g.cells[i].Blink = 0
	}
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Total returns the number of bricks in the grid.
func (g *Grid) Total() int { return len(g.cells) }

// CellAt returns the brick at (col, row), or nil when out of range.
func (g *Grid) CellAt(col, row int) *Brick {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return nil
	}
	return &g.cells[col*g.rows+row]
}

// Each calls fn for every brick in column-major order.
func (g *Grid) Each(fn func(b *Brick)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// ActiveCount returns the number of collidable bricks.
func (g *Grid) ActiveCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Status == BrickActive {
			n++
		}
	}
	return n
}

// IsCleared reports whether no brick is active or blinking.
func (g *Grid) IsCleared() bool {
	for i := range g.cells {
		if g.cells[i].Status != BrickDestroyed {
			return false
		}
	}
	return true
}

// Advance moves blinking bricks one frame closer to removal.
func (g *Grid) Advance() {
	for i := range g.cells {
		b := &g.cells[i]
		if b.Status != BrickBlinking {
			continue
		}
		b.Blink++
		if b.Blink >= g.blinkFrames {
			b.Status = BrickDestroyed
		}
	}
}

// Hit starts the blink of an active brick. It reports false for bricks
// that are already blinking or destroyed.
func (g *Grid) Hit(b *Brick) bool {
	if b == nil || b.Status != BrickActive {
		return false
	}
	b.Status = BrickBlinking
	b.Blink = 0
	return true
}

// DestroyAll removes every brick at once.
func (g *Grid) DestroyAll() {
	for i := range g.cells {
		g.cells[i].Status = BrickDestroyed
		g.cells[i].Blink = 0
	}
}
