package pairs

import (
	"github.com/vovakirdan/tui-pairs/internal/config"
	"github.com/vovakirdan/tui-pairs/internal/core"
)

const (
	hudHeight    = 2 // Title and stats lines above the board
	statusHeight = 1 // Status line below the board
	cardGap      = 1 // Columns between cards

	compactCardW = 7
	compactCardH = 3
)

// layout positions the card grid on screen.
type layout struct {
	originX, originY int
	cols, rows       int
	cardW, cardH     int
	count            int
}

// fitLayout lays out n cards using the configured card size, dropping to
// compact cards when the screen is too small. ok is false if neither fits.
func fitLayout(n int, board config.BoardConfig, screenW, screenH int) (layout, bool) {
	sizes := [][2]int{
		{board.CardWidth, board.CardHeight},
		{compactCardW, compactCardH},
	}

	for _, size := range sizes {
		l := newLayout(n, board.Columns, size[0], size[1], screenW)
		if l.width() <= screenW && hudHeight+l.height()+statusHeight <= screenH {
			return l, true
		}
	}
	return layout{}, false
}

func newLayout(n, columns, cardW, cardH, screenW int) layout {
	cols := core.Clamp(columns, 1, core.Max(n, 1))
	rows := (n + cols - 1) / cols

	l := layout{
		cols:  cols,
		rows:  rows,
		cardW: cardW,
		cardH: cardH,
		count: n,
	}
	l.originX = core.Max((screenW-l.width())/2, 0)
	l.originY = hudHeight
	return l
}

// width returns the board width in cells.
func (l layout) width() int {
	if l.cols == 0 {
		return 0
	}
	return l.cols*l.cardW + (l.cols-1)*cardGap
}

// height returns the board height in cells.
func (l layout) height() int {
	return l.rows * l.cardH
}

// bounds returns the board rectangle.
func (l layout) bounds() core.Rect {
	return core.NewRect(l.originX, l.originY, l.width(), l.height())
}

// cardRect returns the rectangle card id occupies.
func (l layout) cardRect(id int) core.Rect {
	col := id % l.cols
	row := id / l.cols
	return core.NewRect(
		l.originX+col*(l.cardW+cardGap),
		l.originY+row*l.cardH,
		l.cardW,
		l.cardH,
	)
}

// cardAt returns the card under screen cell (x, y).
// Gaps between cards belong to no card.
func (l layout) cardAt(x, y int) (int, bool) {
	if l.cols == 0 || !l.bounds().Contains(x, y) {
		return 0, false
	}

	relX := x - l.originX
	relY := y - l.originY
	col := relX / (l.cardW + cardGap)
	if relX%(l.cardW+cardGap) >= l.cardW {
		return 0, false
	}
	row := relY / l.cardH

	id := row*l.cols + col
	if id >= l.count {
		return 0, false
	}
	return id, true
}
