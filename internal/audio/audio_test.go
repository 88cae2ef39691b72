package audio

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pairs/internal/config"
)

type failingPlayer struct{ err error }

func (p failingPlayer) Play(context.Context, string) error { return p.err }

type panickingPlayer struct{}

func (panickingPlayer) Play(context.Context, string) error { panic("speaker on fire") }

type recordingPlayer struct{ sounds []string }

func (p *recordingPlayer) Play(_ context.Context, sound string) error {
	p.sounds = append(p.sounds, sound)
	return nil
}

func TestBellWritesBEL(t *testing.T) {
	var buf bytes.Buffer
	if err := NewBell(&buf).Play(context.Background(), "sounds/cat.mp3"); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if buf.String() != "\a" {
		t.Errorf("wrote %q, want BEL", buf.String())
	}
}

func TestBellWithoutTerminal(t *testing.T) {
	if err := NewBell(nil).Play(context.Background(), "x"); err == nil {
		t.Error("expected an error without a terminal")
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name  string
		cmd   Command
		sound string
	}{
		{name: "no command", cmd: Command{}, sound: "a.mp3"},
		{name: "empty sound", cmd: Command{Name: "true"}, sound: ""},
		{name: "missing binary", cmd: Command{Name: "tui-pairs-no-such-player"}, sound: "a.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Play(context.Background(), tt.sound); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNewPicksPlayer(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		name string
		cfg  config.AudioConfig
		bell *bytes.Buffer
		want string
	}{
		{name: "bell", cfg: config.AudioConfig{Mode: config.AudioBell}, bell: &buf, want: "*audio.Bell"},
		{name: "bell without terminal", cfg: config.AudioConfig{Mode: config.AudioBell}, want: "audio.Nop"},
		{name: "command", cfg: config.AudioConfig{Mode: config.AudioCommand, Command: "paplay"}, want: "*audio.Command"},
		{name: "off", cfg: config.AudioConfig{Mode: config.AudioOff}, want: "audio.Nop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Player
			if tt.bell != nil {
				p = New(tt.cfg, tt.bell)
			} else {
				p = New(tt.cfg, nil)
			}
			if got := typeName(p); got != tt.want {
				t.Errorf("New() = %s, want %s", got, tt.want)
			}
		})
	}
}

func typeName(p Player) string {
	switch p.(type) {
	case *Bell:
		return "*audio.Bell"
	case *Command:
		return "*audio.Command"
	case Nop:
		return "audio.Nop"
	default:
		return "unknown"
	}
}

func TestNewCommandUsesConfig(t *testing.T) {
	p := New(config.AudioConfig{
		Mode:      config.AudioCommand,
		Command:   "afplay",
		Args:      []string{"-v", "0.5"},
		AssetsDir: "/opt/pairs",
	}, nil)

	cmd, ok := p.(*Command)
	if !ok {
		t.Fatalf("New() = %T, want *Command", p)
	}
	if cmd.Name != "afplay" || cmd.Dir != "/opt/pairs" || len(cmd.Args) != 2 {
		t.Errorf("command = %+v", cmd)
	}
}

func TestCueSwallowsErrors(t *testing.T) {
	var logs bytes.Buffer
	cue := NewCue(failingPlayer{err: errors.New("device busy")}, log.New(&logs))

	if cue.Play(context.Background(), "sounds/dog.mp3") {
		t.Error("Play() = true for a failing player")
	}
	if !strings.Contains(logs.String(), "device busy") {
		t.Errorf("failure not logged: %q", logs.String())
	}
}

func TestCueSwallowsPanics(t *testing.T) {
	var logs bytes.Buffer
	cue := NewCue(panickingPlayer{}, log.New(&logs))

	if cue.Play(context.Background(), "sounds/cow.mp3") {
		t.Error("Play() = true for a panicking player")
	}
	if !strings.Contains(logs.String(), "panicked") {
		t.Errorf("panic not logged: %q", logs.String())
	}
}

func TestCuePlays(t *testing.T) {
	rec := &recordingPlayer{}
	cue := NewCue(rec, nil)

	if !cue.Play(context.Background(), "sounds/duck.mp3") {
		t.Error("Play() = false")
	}
	if len(rec.sounds) != 1 || rec.sounds[0] != "sounds/duck.mp3" {
		t.Errorf("played %v", rec.sounds)
	}

	var nilCue *Cue
	if nilCue.Play(context.Background(), "x") {
		t.Error("nil cue should not report success")
	}
}
