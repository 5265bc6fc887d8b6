// Package render wraps the external tools that turn markup into
// images: pango-view for rasterising and ansifilter for converting
// terminal escapes.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/saltytine/csnap/internal/engine"
)

// PangoView rasterises Pango markup into a PNG by shelling out to
// pango-view. Markup goes in through a temp file, the image comes back
// through another.
type PangoView struct {
	Font       string
	DPI        int
	Width      int    // > 0 fixes the image width
	Background string // "#rrggbb"
	Foreground string // empty = style colours only
	Run        engine.RunFunc
}

// Render converts one markup snippet into PNG bytes. pango-view is
// known to exit 0 without writing anything when the input exceeds its
// capacity; a missing or empty output file is therefore a hard error,
// never a silent success.
func (p *PangoView) Render(markup string) ([]byte, error) {
	bin, err := engine.Look("pango-view")
	if err != nil {
		return nil, err
	}

	in, err := os.CreateTemp("", "csnap.*.txt")
	if err != nil {
		return nil, fmt.Errorf("create markup temp file: %w", err)
	}
	defer os.Remove(in.Name())

	if _, err := in.WriteString(markup); err != nil {
		in.Close()
		return nil, fmt.Errorf("write markup: %w", err)
	}
	if err := in.Close(); err != nil {
		return nil, fmt.Errorf("close markup temp file: %w", err)
	}

	out, err := os.CreateTemp("", "csnap.*.png")
	if err != nil {
		return nil, fmt.Errorf("create image temp file: %w", err)
	}
	out.Close()
	defer os.Remove(out.Name())

	args := []string{
		"--background=" + p.Background,
		"--markup",
	}
	if p.Width > 0 {
		args = append(args, fmt.Sprintf("--width=%d", p.Width))
	}
	if p.Foreground != "" {
		args = append(args, "--foreground="+p.Foreground)
	}
	args = append(args,
		"--wrap=word-char",
		"--font="+p.Font,
		fmt.Sprintf("--dpi=%d", p.DPI),
		"-qo", out.Name(),
		in.Name(),
	)

	run := p.Run
	if run == nil {
		run = engine.Execute
	}
	result, err := run(bin, args, nil)
	if err != nil {
		return nil, fmt.Errorf("pango-view: %w", err)
	}
	if result.ExitCode != 0 {
		return nil, fmt.Errorf("pango-view exited %d: %s", result.ExitCode, strings.TrimSpace(result.Stderr))
	}

	data, err := os.ReadFile(out.Name())
	if err != nil || len(data) == 0 {
		return nil, fmt.Errorf("pango-view produced no output (input may exceed renderer capacity)")
	}
	return data, nil
}
