package tui

import (
	"io"
	"sync"
)

// Output serializes writes to a terminal shared by the renderer and the
// bell. The renderer writes each frame and escape sequence in a single
// Write, so a bell rung from a command lands between them, never inside.
//
// Output also passes through Fd so a program given an *os.File still
// detects its terminal for raw mode and resize signals.
type Output struct {
	mu sync.Mutex
	w  io.Writer
}

// NewOutput wraps w.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// Write writes p to the terminal while no other write is in flight.
func (o *Output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.w.Write(p)
}

// Read never returns data; the output side is write only.
func (o *Output) Read([]byte) (int, error) {
	return 0, io.EOF
}

// Close is a no-op. The wrapped terminal belongs to the caller.
func (o *Output) Close() error {
	return nil
}

// Fd returns the wrapped terminal's file descriptor, or an invalid one when
// it is not a file.
func (o *Output) Fd() uintptr {
	if f, ok := o.w.(interface{ Fd() uintptr }); ok {
		return f.Fd()
	}
	return ^uintptr(0)
}
