package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pairs/internal/audio"
	"github.com/vovakirdan/tui-pairs/internal/core"
	"github.com/vovakirdan/tui-pairs/internal/registry"
)

// soundTimeout bounds how long an external player may run for one cue.
const soundTimeout = 10 * time.Second

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game model.
type Options struct {
	// Logger receives game lifecycle events and sound failures.
	// Nil discards them.
	Logger *log.Logger

	// Cue plays the sounds a game raises. Nil keeps the game silent.
	Cue *audio.Cue

	// AllowBack lets Esc/B leave the game for the menu.
	AllowBack bool

	// Embedded is set when the model runs inside another model, which then
	// decides what to do on back or quit instead of the program exiting.
	Embedded bool

	// Output is where Run renders, stdout when nil. Pass the same Output
	// the bell rings on so the two never interleave.
	Output *Output
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig // Full terminal size
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	opts       Options
	logger     *log.Logger
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		opts:       opts,
		logger:     logger.With("game", game.ID()),
	}
	gc := m.gameConfig()
	m.screen = core.NewScreen(gc.ScreenW, gc.ScreenH)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.gameConfig())
	m.logger.Info("game started", "seed", m.config.Seed)
	if n, ok := m.game.(registry.Noticer); ok && n.Notice() != "" {
		m.logger.Warn("degraded deal", "notice", n.Notice())
	}

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// gameConfig is the runtime config the game sees: the terminal minus the
// help footer.
func (m Model) gameConfig() core.RuntimeConfig {
	gc := m.config
	gc.ScreenH = core.Max(gc.ScreenH-m.footerHeight(), 0)
	return gc
}

func (m Model) footerHeight() int {
	return lipgloss.Height(m.help.View(m.keyMapper.Keys()))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()

	switch {
	case key.Matches(msg, keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Info("saved screenshot", "path", path)
		}
		return m, nil

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil

	case key.Matches(msg, keys.Back):
		if !m.opts.AllowBack {
			return m, nil
		}
		m.backToMenu = true
		m.logger.Info("back to menu")
		return m, m.exit()
	}

	// Map key to action
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("game quit")
		return m, m.exit()
	}

	return m, nil
}

// exit ends the program unless a parent model owns it.
func (m Model) exit() tea.Cmd {
	if m.opts.Embedded {
		return nil
	}
	return tea.Quit
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.relayout()
	return m, nil
}

// relayout resizes the screen buffer and tells the game about it. Games that
// can't re-lay themselves out are reset unless their round is over.
func (m *Model) relayout() {
	gc := m.gameConfig()
	m.screen.Resize(gc.ScreenW, gc.ScreenH)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(gc.ScreenW, gc.ScreenH)
		return
	}
	if !m.gameState.GameOver {
		m.game.Reset(gc)
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Run game simulation
	result := m.game.Step(m.inputFrame)

	if result.State.GameOver && !m.gameState.GameOver {
		m.logger.Info("game completed", "score", result.State.Score)
	}
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking, playing this tick's sounds alongside
	cmds := make([]tea.Cmd, 0, len(result.Sounds)+1)
	cmds = append(cmds, tickCmd(m.config.TickRate))
	for _, s := range result.Sounds {
		cmds = append(cmds, m.playCmd(s))
	}
	return m, tea.Batch(cmds...)
}

// playCmd plays a sound off the update loop. Failures are logged by the cue.
func (m Model) playCmd(s core.Sound) tea.Cmd {
	cue := m.opts.Cue
	if cue == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), soundTimeout)
		defer cancel()
		cue.Play(ctx, string(s))
		return nil
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() (string, error) {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".pairs", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for game.
// Returns true if the user asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	opts.Embedded = false
	model := NewModel(game, cfg, opts)

	progOpts := []tea.ProgramOption{
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to flip
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(model, progOpts...)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
