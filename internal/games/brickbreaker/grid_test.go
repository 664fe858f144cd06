package brickbreaker

import (
	"testing"

	"github.com/vovakirdan/brick-bazaar/internal/config"
)

func TestNewGridLayout(t *testing.T) {
	g := NewGrid(config.DefaultBrickBreakerConfig())

	if g.Cols() != 25 || g.Rows() != 12 {
		t.Fatalf("grid = %dx%d, expected 25x12", g.Cols(), g.Rows())
	}
	if g.Total() != 300 {
		t.Errorf("Total() = %d, expected 300", g.Total())
	}

	// 25*30 + 24*8 = 942 wide, centered in 1000
	first := g.CellAt(0, 0)
	if first.Rect.X != 29 || first.Rect.Y != 80 {
		t.Errorf("CellAt(0, 0) at (%v, %v), expected (29, 80)", first.Rect.X, first.Rect.Y)
	}
	b := g.CellAt(1, 2)
	if b.Rect.X != 67 || b.Rect.Y != 120 {
		t.Errorf("CellAt(1, 2) at (%v, %v), expected (67, 120)", b.Rect.X, b.Rect.Y)
	}
	last := g.CellAt(24, 11)
	if last.Rect.Right() != 971 {
		t.Errorf("last brick right edge = %v, expected 971", last.Rect.Right())
	}

	if g.ActiveCount() != 300 {
		t.Errorf("ActiveCount() = %d, expected 300", g.ActiveCount())
	}
}

func TestGridCellAtOutOfRange(t *testing.T) {
	g := NewGrid(config.DefaultBrickBreakerConfig())

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {25, 0}, {0, 12}} {
		if g.CellAt(pos[0], pos[1]) != nil {
			t.Errorf("CellAt(%d, %d) should be nil", pos[0], pos[1])
		}
	}
}

func TestGridBlinkLifecycle(t *testing.T) {
	g := NewGrid(config.DefaultBrickBreakerConfig())
	b := g.CellAt(3, 4)

	if !g.Hit(b) {
		t.Fatal("Hit() on active brick should succeed")
	}
	if b.Status != BrickBlinking {
		t.Fatalf("status after hit = %v, expected blinking", b.Status)
	}
	if g.Hit(b) {
		t.Error("Hit() on blinking brick should be rejected")
	}
	if g.ActiveCount() != 299 {
		t.Errorf("ActiveCount() = %d, expected 299", g.ActiveCount())
	}

	g.Advance()
	if b.Status != BrickBlinking || b.Blink != 1 {
		t.Errorf("after one advance: %v/%d, expected blinking/1", b.Status, b.Blink)
	}

	g.Advance()
	if b.Status != BrickDestroyed {
		t.Errorf("after two advances: %v, expected destroyed", b.Status)
	}

	// Destroyed stays destroyed until Reset
	for range 5 {
		g.Advance()
	}
	if b.Status != BrickDestroyed || g.Hit(b) {
		t.Error("destroyed brick should never come back within a run")
	}

	g.Reset()
	if b.Status != BrickActive || b.Blink != 0 {
		t.Errorf("after Reset: %v/%d, expected active/0", b.Status, b.Blink)
	}
}

func TestGridIsCleared(t *testing.T) {
	g := NewGrid(config.DefaultBrickBreakerConfig())

	if g.IsCleared() {
		t.Error("fresh grid should not be cleared")
	}

	g.Each(func(b *Brick) { g.Hit(b) })
	if g.IsCleared() {
		t.Error("grid with blinking bricks should not be cleared")
	}

	g.DestroyAll()
	if !g.IsCleared() {
		t.Error("IsCleared() should be true after DestroyAll")
	}
}

func TestGridEachColumnMajor(t *testing.T) {
	cfg := config.DefaultBrickBreakerConfig()
	cfg.Bricks.Columns = 2
	cfg.Bricks.Rows = 3
	g := NewGrid(cfg)

	var order [][2]int
	g.Each(func(b *Brick) { order = append(order, [2]int{b.Col, b.Row}) })

	expected := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	if len(order) != len(expected) {
		t.Fatalf("Each visited %d bricks, expected %d", len(order), len(expected))
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("Each order[%d] = %v, expected %v", i, order[i], expected[i])
		}
	}
}
