package brickbreaker

import (
	"math"

	"github.com/vovakirdan/brick-bazaar/internal/core"
)

// Visual characters for rendering
const (
	BrickChar      = '█'
	BlinkChar      = '▒'
	BallChar       = '●'
	PaddleChar     = '▀'
	MinFieldWidth  = 40
	MinFieldHeight = 12
)

// Field is the screen area the playfield is drawn into.
type Field struct {
	X, Y int // Top-left cell
	W, H int // Size in cells
}

// Render draws bricks, paddle and balls into the field, scaling world
// units down to cells.
func (s *Simulation) Render(dst *core.Screen, f Field) {
	if f.W <= 0 || f.H <= 0 {
		return
	}
	sx := s.cfg.Viewport.Width / float64(f.W)
	sy := s.cfg.Viewport.Height / float64(f.H)

	cellX := func(wx float64) int { return f.X + int(math.Floor(wx/sx)) }
	cellY := func(wy float64) int { return f.Y + int(math.Floor(wy/sy)) }

	s.grid.Each(func(b *Brick) {
		var ch rune
		var color core.Color
		switch b.Status {
		case BrickActive:
			ch, color = BrickChar, core.ColorBrick
		case BrickBlinking:
			ch, color = BlinkChar, core.ColorBlink
		default:
			return
		}
		x0, x1 := cellX(b.Rect.X), cellX(b.Rect.Right()-1)
		y0, y1 := cellY(b.Rect.Y), cellY(b.Rect.Bottom()-1)
		dst.FillArea(x0, y0, x1-x0+1, y1-y0+1, ch, color)
	})

	py := f.Y + f.H - 1
	px0, px1 := cellX(s.paddle.X), cellX(s.paddle.Right()-1)
	mid := (px0 + px1) / 2
	for x := px0; x <= px1; x++ {
		color := core.ColorPaddleWarm
		if x > mid {
			color = core.ColorPaddleHot
		}
		dst.SetColored(x, py, PaddleChar, color)
	}

	for _, b := range s.balls {
		bx := core.Clamp(cellX(b.Pos.X), f.X, f.X+f.W-1)
		by := core.Clamp(cellY(b.Pos.Y), f.Y, f.Y+f.H-1)
		dst.SetColored(bx, by, BallChar, core.ColorBall)
	}
}
