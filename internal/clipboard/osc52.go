// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clipboard

import (
	"fmt"
	"io"
	"os"
	"strings"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Terminal asks the terminal emulator to set its clipboard with an OSC 52
// escape sequence. It works over SSH where no desktop clipboard exists, but
// only on terminals that honour the sequence.
type Terminal struct {
	Out io.Writer

	// Screen and Tmux wrap the sequence for the respective multiplexer.
	Screen bool
	Tmux   bool
}

// WriteText implements Writer.
func (t Terminal) WriteText(text string) error {
	if t.Out == nil {
		return fmt.Errorf("osc52: no terminal output")
	}
	seq := osc52.New(text)
	switch {
	case t.Tmux:
		seq = seq.Tmux()
	case t.Screen:
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(t.Out); err != nil {
		return fmt.Errorf("osc52: %w", err)
	}
	return nil
}

// NewTerminal returns a Terminal on out, wrapped for tmux or screen when
// getenv shows the process runs inside one.
func NewTerminal(out io.Writer, getenv func(string) string) Terminal {
	return Terminal{
		Out:    out,
		Tmux:   getenv("TMUX") != "",
		Screen: getenv("STY") != "" || strings.HasPrefix(getenv("TERM"), "screen"),
	}
}

// New returns the default Copier: the desktop clipboard with an OSC 52
// fallback on out.
func New(out io.Writer) *Copier {
	return &Copier{Primary: System{}, Fallback: NewTerminal(out, os.Getenv)}
}
