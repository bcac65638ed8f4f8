package tui

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

type Clipboard interface {
	Copy(text string) error
}

// OSC52Clipboard asks the terminal to set the system clipboard with an OSC 52
// escape sequence, wrapped for tmux or screen when needed.
type OSC52Clipboard struct {
	Out io.Writer
}

func NewOSC52Clipboard() OSC52Clipboard {
	return OSC52Clipboard{Out: os.Stderr}
}

func (c OSC52Clipboard) Copy(text string) error {
	if c.Out == nil {
		return errors.New("no terminal to write to")
	}
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(os.Getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(c.Out)
	return err
}
