// Package clipboard loads image data into the system clipboard, either
// through the native bindings or an external tool.
package clipboard

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/saltytine/csnap/internal/engine"
)

// Writer loads image data into a destination. The OS clipboard is the
// usual implementation; tests substitute Memory.
type Writer interface {
	WriteImage(png []byte) error
	Name() string
}

// Memory is an in-process Writer for tests.
type Memory struct {
	Images [][]byte
}

func (m *Memory) WriteImage(png []byte) error {
	cp := make([]byte, len(png))
	copy(cp, png)
	m.Images = append(m.Images, cp)
	return nil
}

func (m *Memory) Name() string { return "memory" }

// Command writes images by piping PNG bytes into an external clipboard
// tool.
type Command struct {
	tool string
	args []string
}

// NewXClip returns a Command writer for xclip (X11).
func NewXClip() *Command {
	return &Command{tool: "xclip", args: []string{"-selection", "clipboard", "-t", "image/png", "-i"}}
}

// NewWlCopy returns a Command writer for wl-copy (Wayland).
func NewWlCopy() *Command {
	return &Command{tool: "wl-copy", args: []string{"-t", "image/png"}}
}

func (c *Command) Name() string { return c.tool }

// Args exposes the tool invocation for inspection.
func (c *Command) Args() []string { return append([]string{c.tool}, c.args...) }

func (c *Command) WriteImage(png []byte) error {
	bin, err := engine.Look(c.tool)
	if err != nil {
		return err
	}

	cmd := exec.Command(bin, c.args...)
	cmd.Stdin = bytes.NewReader(png)
	// Leave stdout/stderr on /dev/null: xclip forks to serve the
	// selection and hangs the caller if its output fds stay open.
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", c.tool, err)
	}
	return nil
}

// For selects a Writer for the configured tool name. "auto" prefers
// the display server's own tool and falls back to the native bindings.
func For(tool string) (Writer, error) {
	switch tool {
	case "", "auto":
		if os.Getenv("WAYLAND_DISPLAY") != "" {
			if _, err := exec.LookPath("wl-copy"); err == nil {
				return NewWlCopy(), nil
			}
		}
		if _, err := exec.LookPath("xclip"); err == nil {
			return NewXClip(), nil
		}
		return &Native{}, nil
	case "native":
		return &Native{}, nil
	case "xclip":
		return NewXClip(), nil
	case "wl-copy":
		return NewWlCopy(), nil
	}
	return nil, fmt.Errorf("unknown clipboard tool %q", tool)
}
