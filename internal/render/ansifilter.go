package render

import (
	"fmt"
	"strings"

	"github.com/saltytine/csnap/internal/engine"
)

// AnsiFilter converts terminal-escape-coded text to Pango markup by
// shelling out to ansifilter.
type AnsiFilter struct {
	Font     string
	FontSize int
	Run      engine.RunFunc
}

// Filter feeds text through ansifilter and returns the markup.
func (a *AnsiFilter) Filter(text string) (string, error) {
	bin, err := engine.Look("ansifilter")
	if err != nil {
		return "", err
	}

	fontSize := a.FontSize
	if fontSize <= 0 {
		fontSize = 12
	}
	args := []string{
		"--font=" + a.Font,
		fmt.Sprintf("--font-size=%d", fontSize),
		"--pango",
	}

	run := a.Run
	if run == nil {
		run = engine.Execute
	}
	result, err := run(bin, args, []byte(text))
	if err != nil {
		return "", fmt.Errorf("ansifilter: %w", err)
	}
	if result.ExitCode != 0 {
		return "", fmt.Errorf("ansifilter exited %d: %s", result.ExitCode, strings.TrimSpace(result.Stderr))
	}

	return result.Stdout, nil
}
