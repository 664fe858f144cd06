package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brick-bazaar/internal/core"
	"github.com/vovakirdan/brick-bazaar/internal/games/brickbreaker"
	"github.com/vovakirdan/brick-bazaar/internal/session"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorBrick:      lipgloss.NewStyle().Foreground(lipgloss.Color("#0095DD")),
	core.ColorBlink:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorBall:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorPaddleWarm: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorPaddleHot:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorHUD:        lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorAccent:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorDim:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// Layout constants
const (
	hudRows    = 1
	helpRows   = 1
	panelWidth = 30
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// box is a rectangle of cells.
type box struct{ x, y, w, h int }

// layout splits the screen into the playfield and an optional side panel.
type layout struct {
	frame box                // Playfield border
	field brickbreaker.Field // Playfield interior
	panel box                // Zero width when no panel is shown
}

// computeLayout places the playfield below the HUD. An open panel sits
// to the right when there is room and over the playfield otherwise.
func computeLayout(w, h int, withPanel bool) layout {
	var l layout
	l.frame = box{0, hudRows, w, h - hudRows}
	if withPanel {
		if w-panelWidth >= brickbreaker.MinFieldWidth+2 {
			l.frame.w = w - panelWidth
			l.panel = box{l.frame.w, hudRows, panelWidth, h - hudRows}
		} else {
			pw := min(panelWidth, w)
			l.panel = box{w - pw, hudRows, pw, h - hudRows}
		}
	}
	l.field = brickbreaker.Field{
		X: l.frame.x + 1,
		Y: l.frame.y + 1,
		W: l.frame.w - 2,
		H: l.frame.h - 2,
	}
	return l
}

// tooSmall reports whether the screen cannot hold a playable field.
func tooSmall(w, h int) bool {
	return w < brickbreaker.MinFieldWidth+2 || h < brickbreaker.MinFieldHeight+2+hudRows
}

// drawView draws a full session view into screen.
func drawView(screen *core.Screen, v session.View) {
	screen.Clear()
	w, h := screen.Width(), screen.Height()
	if tooSmall(w, h) {
		screen.DrawTextCentered(h/2, "Terminal too small", core.ColorDim)
		return
	}

	l := computeLayout(w, h, v.BazaarOpen || v.DebugOpen)

	drawHUD(screen, v, w)
	screen.DrawBox(l.frame.x, l.frame.y, l.frame.w, l.frame.h, core.ColorDim)
	if v.Sim != nil {
		v.Sim.Render(screen, l.field)
	}
	drawStatus(screen, v, l.field)

	switch {
	case v.DebugOpen:
		drawPanel(screen, l.panel, "DEBUG", debugLines(v))
	case v.BazaarOpen:
		drawPanel(screen, l.panel, "BAZAAR", bazaarLines(v))
	}
}

// drawHUD writes score, balls and unlocked readouts on the top row.
func drawHUD(screen *core.Screen, v session.View, w int) {
	parts := []string{
		fmt.Sprintf("Score: %d", v.Score),
		fmt.Sprintf("Balls: %d", v.Balls),
	}
	if v.Record.HighScore {
		parts = append(parts, fmt.Sprintf("Record: %d", v.Record.BestScore))
	}
	if v.Record.ViewBalance {
		parts = append(parts, fmt.Sprintf("Blocks Broken: %d", v.Record.Balance))
	}
	if v.Record.Bricko {
		parts = append(parts, fmt.Sprintf("[▆] Bricko: %d", v.Record.Tickles))
	}
	screen.DrawTextColored(1, 0, strings.Join(parts, "  "), core.ColorHUD)

	if v.Record.BazaarHint && !v.BazaarOpen {
		hint := "[e] bazaar"
		screen.DrawTextColored(w-utf8.RuneCountInString(hint)-1, 0, hint, core.ColorAccent)
	}
}

// drawStatus writes the idle prompt, countdown label or end overlay in
// the middle of the field.
func drawStatus(screen *core.Screen, v session.View, f brickbreaker.Field) {
	mid := f.Y + f.H/2
	switch v.State {
	case session.StateIdle:
		centerIn(screen, f, mid, "Press space to start", core.ColorHUD)
	case session.StateCountdown:
		centerIn(screen, f, mid, v.Countdown, core.ColorAccent)
	case session.StateWon, session.StateLost:
		centerIn(screen, f, mid-1, v.Message, core.ColorHUD)
		centerIn(screen, f, mid, "Final Score: "+strconv.Itoa(v.Score), core.ColorHUD)
		centerIn(screen, f, mid+2, "space to retry", core.ColorDim)
	}
}

func centerIn(screen *core.Screen, f brickbreaker.Field, y int, text string, c core.Color) {
	x := f.X + (f.W-utf8.RuneCountInString(text))/2
	screen.FillArea(x-1, y, utf8.RuneCountInString(text)+2, 1, ' ', core.ColorDefault)
	screen.DrawTextColored(x, y, text, c)
}

type panelLine struct {
	text  string
	color core.Color
}

func drawPanel(screen *core.Screen, b box, title string, lines []panelLine) {
	if b.w <= 0 {
		return
	}
	screen.FillArea(b.x, b.y, b.w, b.h, ' ', core.ColorDefault)
	screen.DrawBox(b.x, b.y, b.w, b.h, core.ColorDim)
	screen.DrawTextColored(b.x+2, b.y, " "+title+" ", core.ColorHUD)

	maxLen := b.w - 4
	for i, ln := range lines {
		y := b.y + 2 + i
		if y >= b.y+b.h-1 {
			break
		}
		text := ln.text
		if utf8.RuneCountInString(text) > maxLen {
			text = string([]rune(text)[:maxLen])
		}
		screen.DrawTextColored(b.x+2, y, text, ln.color)
	}
}

// bazaarLines lists the catalog. Slot numbers follow catalog order so a
// key always buys the same item.
func bazaarLines(v session.View) []panelLine {
	lines := []panelLine{{fmt.Sprintf("Balls: %d", v.Record.BallCount), core.ColorHUD}}
	if v.Record.ViewBalance {
		lines = append(lines, panelLine{fmt.Sprintf("Blocks Broken: %d", v.Record.Balance), core.ColorHUD})
	}
	lines = append(lines, panelLine{})

	for i, o := range v.Offers {
		switch {
		case o.Owned:
			lines = append(lines, panelLine{fmt.Sprintf("    %s (owned)", o.Item.Name), core.ColorDim})
		case !o.Visible:
			lines = append(lines, panelLine{"    ???", core.ColorDim})
		default:
			color := core.ColorDim
			if o.Affordable {
				color = core.ColorAccent
			}
			lines = append(lines, panelLine{fmt.Sprintf("[%d] %s  %d", i+1, o.Item.Name, o.Item.Cost), color})
		}
	}

	if v.Record.PeruseHint {
		lines = append(lines, panelLine{}, panelLine{"Peruse the wares...", core.ColorDim})
	}
	return lines
}

func debugLines(v session.View) []panelLine {
	lines := []panelLine{
		{fmt.Sprintf("Wins: %d", v.Record.Wins), core.ColorHUD},
		{fmt.Sprintf("Times Played: %d", v.Record.TimesPlayed), core.ColorHUD},
		{fmt.Sprintf("Active Balls: %d", v.Balls), core.ColorHUD},
		{fmt.Sprintf("Bazaar Tip: %t", v.Record.BazaarHint), core.ColorHUD},
		{fmt.Sprintf("Bricko Tickles: %d", v.Record.Tickles), core.ColorHUD},
		{},
	}
	for i, op := range session.DebugOps {
		lines = append(lines, panelLine{fmt.Sprintf("[%d] %s", i+1, op), core.ColorAccent})
	}
	return lines
}
