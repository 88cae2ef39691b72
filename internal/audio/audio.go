// Package audio plays the short cues games raise when something happens.
// Playback is fire-and-forget: a failed cue is logged and otherwise ignored,
// so a missing speaker or sound file never interrupts a game.
package audio

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pairs/internal/config"
)

// Player plays a sound identified by a handle, usually a file path.
type Player interface {
	Play(ctx context.Context, sound string) error
}

// bel is the terminal bell control character.
const bel = "\a"

// Bell rings the terminal bell on every cue. The sound handle is ignored.
type Bell struct {
	w io.Writer
}

// NewBell creates a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play writes BEL to the terminal.
func (b *Bell) Play(ctx context.Context, sound string) error {
	if b.w == nil {
		return fmt.Errorf("audio: bell has no terminal")
	}
	if _, err := io.WriteString(b.w, bel); err != nil {
		return fmt.Errorf("audio: ring bell: %w", err)
	}
	return nil
}

// Command plays sounds through an external player such as paplay or afplay.
// The sound path is appended after Args; relative paths resolve against Dir.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// Play runs the player and waits for it to exit.
func (c *Command) Play(ctx context.Context, sound string) error {
	if c.Name == "" {
		return fmt.Errorf("audio: no player command")
	}
	if sound == "" {
		return fmt.Errorf("audio: empty sound handle")
	}

	path := sound
	if c.Dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(c.Dir, path)
	}

	args := append(append([]string(nil), c.Args...), path)
	cmd := exec.CommandContext(ctx, c.Name, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("audio: %s %s: %w (%s)", c.Name, path, err, firstLine(out))
	}
	return nil
}

// Nop discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(context.Context, string) error { return nil }

// New picks a player for cfg. bell is the terminal the Bell player rings;
// when it is nil bell mode falls back to silence.
func New(cfg config.AudioConfig, bell io.Writer) Player {
	switch cfg.Mode {
	case config.AudioCommand:
		return &Command{Name: cfg.Command, Args: cfg.Args, Dir: cfg.AssetsDir}
	case config.AudioBell:
		if bell == nil {
			return Nop{}
		}
		return NewBell(bell)
	default:
		return Nop{}
	}
}

func firstLine(out []byte) string {
	for i, b := range out {
		if b == '\n' {
			return string(out[:i])
		}
	}
	return string(out)
}

// Cue plays sounds without ever failing the caller.
type Cue struct {
	player Player
	logger *log.Logger
}

// NewCue wraps player. A nil logger discards failures silently.
func NewCue(player Player, logger *log.Logger) *Cue {
	if player == nil {
		player = Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Cue{player: player, logger: logger}
}

// Play plays sound and reports whether it succeeded.
// Errors and panics from the player are logged and swallowed.
func (c *Cue) Play(ctx context.Context, sound string) (ok bool) {
	if c == nil {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("sound player panicked", "sound", sound, "panic", r)
			ok = false
		}
	}()

	if err := c.player.Play(ctx, sound); err != nil {
		c.logger.Warn("could not play sound", "sound", sound, "error", err)
		return false
	}
	c.logger.Debug("played sound", "sound", sound)
	return true
}
