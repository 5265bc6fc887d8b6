package engine

import (
	"fmt"
	"os"

	"github.com/saltytine/csnap/internal/shots"
	"github.com/saltytine/csnap/internal/tracking"
	"github.com/saltytine/csnap/internal/utils"
)

// Highlighter turns source text into Pango markup snippets.
type Highlighter interface {
	Highlight(text string) ([]string, error)
}

// EscapeFilter converts terminal-escape-coded text into markup.
type EscapeFilter interface {
	Filter(text string) (string, error)
}

// Renderer rasterises one markup snippet into PNG bytes.
type Renderer interface {
	Render(markup string) ([]byte, error)
}

// ImageWriter loads image data into a destination, normally the OS
// clipboard.
type ImageWriter interface {
	WriteImage(png []byte) error
	Name() string
}

// Request describes one snapshot invocation.
type Request struct {
	Source     string // display name: file path or "stdin"
	Text       string
	Language   string
	Style      string
	OutputBase string // save to OutputBase-N.png instead of clipboard
	Sshoot     bool   // save to the shots dir instead of clipboard
	Ansi       bool   // input carries terminal escapes; use the escape filter
}

// Pipeline runs highlight (or escape-filter), render, and delivery in
// sequence, checking each stage. Stages are injected so tests can
// substitute fakes; the clipboard in particular is never touched after
// a stage failure.
type Pipeline struct {
	Highlighter Highlighter
	Escaper     EscapeFilter
	Renderer    Renderer
	Clipboard   ImageWriter
	Shots       *shots.Saver
	Tracker     *tracking.Tracker
	Verbose     int
}

// Run executes the snapshot pipeline for one request.
func (p *Pipeline) Run(req Request) error {
	timed := tracking.Start(p.Tracker)

	var snippets []string
	if req.Ansi {
		markup, err := p.Escaper.Filter(req.Text)
		if err != nil {
			return fmt.Errorf("escape filter: %w", err)
		}
		snippets = []string{markup}
	} else {
		var err error
		snippets, err = p.Highlighter.Highlight(req.Text)
		if err != nil {
			return fmt.Errorf("highlight: %w", err)
		}
	}

	var images [][]byte
	var totalBytes int64
	for i, snippet := range snippets {
		png, err := p.Renderer.Render(snippet)
		if err != nil {
			return fmt.Errorf("render snippet %d/%d: %w", i+1, len(snippets), err)
		}
		if len(png) == 0 {
			return fmt.Errorf("render snippet %d/%d: renderer produced no output", i+1, len(snippets))
		}
		images = append(images, png)
		totalBytes += int64(len(png))
	}

	destination := "clipboard"
	switch {
	case req.OutputBase != "":
		destination = "file"
		for i, img := range images {
			path := fmt.Sprintf("%s-%d.png", req.OutputBase, i+1)
			if err := os.WriteFile(path, img, 0644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			if p.Verbose > 0 {
				fmt.Fprintf(os.Stderr, "csnap: wrote %s\n", path)
			}
		}

	case req.Sshoot && p.Shots != nil:
		destination = "shots"
		paths, err := p.Shots.Save(images)
		if err != nil {
			return fmt.Errorf("save shots: %w", err)
		}
		if p.Verbose > 0 {
			for _, path := range paths {
				fmt.Fprintf(os.Stderr, "csnap: wrote %s\n", path)
			}
		}

	default:
		if err := p.Clipboard.WriteImage(images[0]); err != nil {
			return fmt.Errorf("clipboard (%s): %w", p.Clipboard.Name(), err)
		}
		if len(images) > 1 {
			fmt.Fprintf(os.Stderr, "csnap: %d images rendered, first copied to clipboard\n", len(images))
		}
	}

	lines := utils.CountLines(req.Text)
	if req.Ansi {
		lines = utils.CountLines(utils.StripANSI(req.Text))
	}
	err := timed.Record(tracking.Snapshot{
		Source:      req.Source,
		Language:    req.Language,
		Style:       req.Style,
		Lines:       lines,
		Images:      len(images),
		Bytes:       totalBytes,
		Destination: destination,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "csnap: tracking error: %v\n", err)
	}

	return nil
}
