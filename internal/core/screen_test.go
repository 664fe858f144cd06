package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)

	s.SetColored(2, 1, '█', ColorBrick)
	cell := s.GetCell(2, 1)
	if cell.Rune != '█' || cell.Color != ColorBrick {
		t.Errorf("GetCell(2, 1) = %+v, expected brick cell", cell)
	}

	s.Set(2, 1, 'x')
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("Set should reset color to default")
	}

	if got := s.GetCell(-1, -1); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected blank", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillArea(0, 0, 10, 10, 'X', ColorBall)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Score: 7", ColorHUD)

	if got := s.Row(1); !strings.HasPrefix(got, "  Score: 7") {
		t.Errorf("Row(1) = %q, expected it to start with %q", got, "  Score: 7")
	}
	if s.GetCell(2, 1).Color != ColorHUD {
		t.Error("DrawTextColored should color drawn cells")
	}

	// Clipped at the right edge
	s.DrawText(15, 2, "overflow")
	if s.Get(19, 2) != 'f' {
		t.Errorf("Get(19, 2) = %q, expected 'f'", s.Get(19, 2))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "GO!", ColorAccent)

	if got := s.Row(0); got != "    GO!    " {
		t.Errorf("Row(0) = %q, expected centered text", got)
	}
}

func TestScreenFillArea(t *testing.T) {
	s := NewScreen(6, 4)
	s.FillArea(1, 1, 3, 2, '#', ColorBrick)

	expected := []string{
		"      ",
		" ###  ",
		" ###  ",
		"      ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(0, 0, 5, 4, ColorHUD)

	expected := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, 'o', ColorBall)

	s.Resize(8, 2)

	if s.Width() != 8 || s.Height() != 2 {
		t.Fatalf("Resize() dims = %dx%d, expected 8x2", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c.Rune != 'o' || c.Color != ColorBall {
		t.Errorf("GetCell(1, 1) = %+v, expected preserved ball", c)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q, expected %q", got, "abc\ndef")
	}
}
