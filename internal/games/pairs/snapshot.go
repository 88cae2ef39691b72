package pairs

// GameStateType represents the current phase of a game.
type GameStateType string

const (
	StateDealt       GameStateType = "dealt"    // No card flipped yet
	StatePlaying     GameStateType = "playing"  // Clock running
	StateComplete    GameStateType = "complete" // All pairs found, new deal pending
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Generation uint64
	Elapsed    int
	Clicks     int
	Running    bool
	Flipped    []int
	Matched    []int
	Cursor     int
	Faces      []string // Face ID of every card, in deal order
	State      GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	e := g.session.Engine()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case e.Completed():
		state = StateComplete
	case !e.Running():
		state = StateDealt
	}

	cards := e.Cards()
	faces := make([]string, len(cards))
	for i, c := range cards {
		faces[i] = c.Face.ID
	}

	return Snapshot{
		Tick:       g.tick,
		Generation: g.session.Generation(),
		Elapsed:    e.ElapsedSeconds(),
		Clicks:     e.ClickCount(),
		Running:    e.Running(),
		Flipped:    e.Flipped(),
		Matched:    e.Matched(),
		Cursor:     g.cursor,
		Faces:      faces,
		State:      state,
	}
}
