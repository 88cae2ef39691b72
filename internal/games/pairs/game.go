// Package pairs implements a memory-matching card game.
// Cards are dealt face down; the player flips two at a time, matching pairs
// stay face up, and a clock and click counter track performance.
package pairs

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/vovakirdan/tui-pairs/internal/clock"
	"github.com/vovakirdan/tui-pairs/internal/config"
	"github.com/vovakirdan/tui-pairs/internal/core"
	"github.com/vovakirdan/tui-pairs/internal/registry"
)

// Game adapts a Session to the platform's fixed-rate game loop.
type Game struct {
	id      string
	title   string
	palette string // Palette name in the config

	cfg     config.PairsConfig
	rng     *rand.Rand
	clk     *clock.Manual
	session *Session
	stepDur time.Duration
	tick    uint64

	cursor int
	layout layout

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	lastMatch string       // Label of the most recent pair, for the status line
	notice    string       // Why the deal fell back to other cards, if it did
	sounds    []core.Sound // Sounds raised during the current step
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a game dealing the animal palette.
func New() *Game {
	return &Game{
		id:      "pairs",
		title:   "Pairs",
		palette: config.PaletteAnimals,
	}
}

// NewFruit creates a game dealing the fruit palette.
func NewFruit() *Game {
	return &Game{
		id:      "pairs_fruit",
		title:   "Pairs (Fruit)",
		palette: config.PaletteFruit,
	}
}

func init() {
	registry.Register("pairs", func() registry.Game {
		return New()
	})
	registry.Register("pairs_fruit", func() registry.Game {
		return NewFruit()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset loads config and deals a new game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		g.ResetWithConfig(rc, config.DefaultPairsConfig())
		g.notice = "Config not loaded (" + err.Error() + "), using built-in decks"
		return
	}
	g.ResetWithConfig(rc, cfg)
}

// ResetWithConfig deals a new game from an already loaded config.
func (g *Game) ResetWithConfig(rc core.RuntimeConfig, cfg config.PairsConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.clk = clock.NewManual()
	g.tick = 0
	g.cursor = 0
	g.lastMatch = ""
	g.notice = ""
	g.sounds = nil

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.stepDur = time.Second / time.Duration(tickRate)

	engine := NewEngine(g.resolvePalette(), g.rng)
	g.session = NewSession(engine, g.clk, Timings{
		MismatchDelay: cfg.Timing.MismatchDelay,
		ResetDelay:    cfg.Timing.ResetDelay,
		TickInterval:  cfg.Timing.TickInterval,
	})
	g.session.OnEvent(g.onEvent)

	g.Resize(rc.ScreenW, rc.ScreenH)
}

// resolvePalette picks this game's palette, falling back to the first
// configured one (by name) and then to the built-in palette of the same name.
// Any fallback is recorded in notice.
func (g *Game) resolvePalette() []Face {
	if p, ok := g.cfg.Palette(g.palette); ok && len(p.Faces) > 0 {
		return PaletteFromConfig(p)
	}

	names := make([]string, 0, len(g.cfg.Palettes))
	for name := range g.cfg.Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if p := g.cfg.Palettes[name]; len(p.Faces) > 0 {
			g.notice = fmt.Sprintf("No %q deck in config, dealing %q", g.palette, name)
			return PaletteFromConfig(p)
		}
	}

	builtIn := config.DefaultPairsConfig().Palettes
	if p, ok := builtIn[g.palette]; ok {
		g.notice = fmt.Sprintf("No decks in config, dealing built-in %q", g.palette)
		return PaletteFromConfig(p)
	}
	g.notice = fmt.Sprintf("No %q deck anywhere, dealing built-in %q", g.palette, config.PaletteAnimals)
	return PaletteFromConfig(builtIn[config.PaletteAnimals])
}

// Notice reports why the current deal is not the deck this game asked for.
// It is empty when the deal is as configured.
func (g *Game) Notice() string {
	return g.notice
}

// Resize re-lays the board for a new screen size without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.session == nil {
		return
	}

	l, ok := fitLayout(g.session.Engine().Len(), g.cfg.Board, w, h)
	g.layout = l
	g.tooSmall = !ok
}

// onEvent collects what the platform needs to hear about.
func (g *Game) onEvent(ev Event) {
	switch ev.Kind {
	case EventPairMatched:
		g.lastMatch = ev.Face.Label
		if ev.Face.Sound != "" {
			g.sounds = append(g.sounds, ev.Face.Sound)
		}
	case EventReset:
		g.lastMatch = ""
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.sounds = g.sounds[:0]

	// A window too small to show the board pauses the game, timers included
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.session.Reset()
		g.cursor = 0
	}

	g.moveCursor(in)

	if in.Has(core.ActionFlip) {
		g.session.FlipCard(g.cursor)
	}

	for _, p := range in.Clicks {
		if id, ok := g.layout.cardAt(p.X, p.Y); ok {
			g.cursor = id
			g.session.FlipCard(id)
		}
	}

	g.clk.Advance(g.stepDur)

	var sounds []core.Sound
	if len(g.sounds) > 0 {
		sounds = make([]core.Sound, len(g.sounds))
		copy(sounds, g.sounds)
	}
	return core.StepResult{State: g.State(), Sounds: sounds}
}

// moveCursor applies one step of cursor movement, staying on the grid.
func (g *Game) moveCursor(in core.InputFrame) {
	n := g.session.Engine().Len()
	cols := g.layout.cols
	if n == 0 || cols == 0 {
		return
	}

	switch {
	case in.Has(core.ActionUp):
		if g.cursor-cols >= 0 {
			g.cursor -= cols
		}
	case in.Has(core.ActionDown):
		if g.cursor+cols < n {
			g.cursor += cols
		}
	case in.Has(core.ActionLeft):
		if g.cursor%cols > 0 {
			g.cursor--
		}
	case in.Has(core.ActionRight):
		if g.cursor%cols < cols-1 && g.cursor+1 < n {
			g.cursor++
		}
	}
}

// Session exposes the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Cursor returns the id of the card under the cursor.
func (g *Game) Cursor() int {
	return g.cursor
}

// CardRect returns where card id is drawn on screen.
func (g *Game) CardRect(id int) (core.Rect, bool) {
	if g.tooSmall || id < 0 || id >= g.session.Engine().Len() {
		return core.Rect{}, false
	}
	return g.layout.cardRect(id), true
}

// State returns the current game state. Score counts found pairs.
func (g *Game) State() core.GameState {
	e := g.session.Engine()
	return core.GameState{
		Score:    e.PairsFound(),
		GameOver: e.Completed(),
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space/Enter/Click: Flip | R: New game | Q: Quit"
}
