package pairs

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pairs/internal/core"
)

const cardBackRune = '░'

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderStatus(dst)

	if g.session.Engine().Completed() {
		g.renderComplete(dst)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the title and the time/click panel.
func (g *Game) renderHUD(dst *core.Screen) {
	e := g.session.Engine()

	dst.DrawTextCentered(0, g.title)

	stats := fmt.Sprintf("Time: %d seconds   Clicks: %d   Pairs: %d/%d",
		e.ElapsedSeconds(), e.ClickCount(), e.PairsFound(), e.PairsTotal())
	dst.DrawTextCentered(1, stats)
}

// renderBoard draws every card.
func (g *Game) renderBoard(dst *core.Screen) {
	e := g.session.Engine()
	mismatch := len(e.Flipped()) == 2

	for _, card := range e.Cards() {
		r := g.layout.cardRect(card.ID)

		border := core.ColorGray
		switch {
		case e.IsMatched(card.ID):
			border = core.ColorGreen
		case e.IsFaceUp(card.ID) && mismatch:
			border = core.ColorRed
		case e.IsFaceUp(card.ID):
			border = core.ColorBrightWhite
		}
		if card.ID == g.cursor {
			border = core.ColorBrightYellow
		}

		dst.DrawBoxColored(r, border)

		inner := core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)
		if e.IsFaceUp(card.ID) {
			drawFace(dst, inner, card.Face)
		} else {
			dst.DrawRectColored(inner, cardBackRune, core.ColorBlue)
		}
	}
}

// drawFace writes a face into the inside of a card: glyph on top and label
// on the bottom line, or just the label when there is a single line.
func drawFace(dst *core.Screen, inner core.Rect, f Face) {
	if inner.H <= 0 || inner.W <= 0 {
		return
	}

	label := fit(f.Label, inner.W)
	bottom := inner.Bottom() - 1
	dst.DrawTextColored(inner.X+(inner.W-len([]rune(label)))/2, bottom, label, f.Color)

	if inner.H >= 2 && f.Glyph != "" {
		glyph := fit(f.Glyph, inner.W)
		top := inner.Y + (inner.H-2)/2
		dst.DrawTextColored(inner.X+(inner.W-len([]rune(glyph)))/2, top, glyph, f.Color)
	}
}

// fit truncates s to at most w runes.
func fit(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	return s
}

// renderStatus draws the line below the board.
func (g *Game) renderStatus(dst *core.Screen) {
	e := g.session.Engine()
	y := g.layout.originY + g.layout.height()

	var msg string
	color := core.ColorGray
	switch {
	case e.Completed():
		msg = "All pairs found!"
		color = core.ColorBrightGreen
	case len(e.Flipped()) == 2:
		msg = "No match"
		color = core.ColorRed
	case g.lastMatch != "":
		msg = "Found: " + g.lastMatch
		color = core.ColorGreen
	case g.notice != "" && e.ClickCount() == 0:
		msg = g.notice
		color = core.ColorYellow
	case e.ClickCount() == 0:
		msg = "Flip any card to start the clock"
	default:
		msg = g.Controls()
	}
	msg = fit(msg, g.screenW)

	dst.DrawTextColored((g.screenW-len([]rune(msg)))/2, y, msg, color)
}

// renderComplete draws the end-of-game overlay over the board.
func (g *Game) renderComplete(dst *core.Screen) {
	e := g.session.Engine()
	b := g.layout.bounds()
	cx, cy := b.Center()

	lines := []string{
		"ALL PAIRS FOUND!",
		fmt.Sprintf("Time: %d seconds", e.ElapsedSeconds()),
		fmt.Sprintf("Clicks: %d", e.ClickCount()),
	}
	if d, ok := g.session.ResetIn(); ok {
		secs := int(math.Ceil(d.Seconds()))
		lines = append(lines, fmt.Sprintf("New game in %ds", secs))
	}

	g.drawOverlay(dst, cx, cy, lines...)
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	// Find max line width
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	// Draw box
	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')

	// Draw border
	dst.DrawBoxColored(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH}, core.ColorBrightGreen)

	// Draw text
	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}
