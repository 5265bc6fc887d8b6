package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saltytine/csnap/internal/shots"
)

type fakeHighlighter struct {
	snippets []string
	err      error
}

func (f *fakeHighlighter) Highlight(text string) ([]string, error) {
	return f.snippets, f.err
}

type fakeEscaper struct {
	out string
	err error
}

func (f *fakeEscaper) Filter(text string) (string, error) {
	return f.out, f.err
}

type fakeRenderer struct {
	png    []byte
	err    error
	calls  int
	inputs []string
}

func (f *fakeRenderer) Render(markup string) ([]byte, error) {
	f.calls++
	f.inputs = append(f.inputs, markup)
	return f.png, f.err
}

type fakeWriter struct {
	images [][]byte
	err    error
}

func (f *fakeWriter) WriteImage(png []byte) error {
	if f.err != nil {
		return f.err
	}
	f.images = append(f.images, png)
	return nil
}

func (f *fakeWriter) Name() string { return "fake" }

func TestRunCopiesToClipboard(t *testing.T) {
	w := &fakeWriter{}
	p := &Pipeline{
		Highlighter: &fakeHighlighter{snippets: []string{"<span>code</span>"}},
		Renderer:    &fakeRenderer{png: []byte("png")},
		Clipboard:   w,
	}

	err := p.Run(Request{Source: "main.go", Text: "code\n", Language: "Go", Style: "dracula"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.images) != 1 || string(w.images[0]) != "png" {
		t.Errorf("clipboard images = %q", w.images)
	}
}

func TestRunHighlightErrorLeavesClipboardUntouched(t *testing.T) {
	w := &fakeWriter{}
	p := &Pipeline{
		Highlighter: &fakeHighlighter{err: errors.New("bad lexer")},
		Renderer:    &fakeRenderer{png: []byte("png")},
		Clipboard:   w,
	}

	err := p.Run(Request{Source: "x", Text: "code"})
	if err == nil || !strings.Contains(err.Error(), "highlight") {
		t.Fatalf("error = %v", err)
	}
	if len(w.images) != 0 {
		t.Error("clipboard written after highlight failure")
	}
}

func TestRunRenderErrorLeavesClipboardUntouched(t *testing.T) {
	w := &fakeWriter{}
	p := &Pipeline{
		Highlighter: &fakeHighlighter{snippets: []string{"s"}},
		Renderer:    &fakeRenderer{err: errors.New("renderer produced no output")},
		Clipboard:   w,
	}

	err := p.Run(Request{Source: "x", Text: "code"})
	if err == nil || !strings.Contains(err.Error(), "render") {
		t.Fatalf("error = %v", err)
	}
	if len(w.images) != 0 {
		t.Error("clipboard written after render failure")
	}
}

func TestRunEmptyImageIsError(t *testing.T) {
	// A renderer returning zero bytes without an error must still fail
	// the run: no silent success with an unchanged clipboard.
	w := &fakeWriter{}
	p := &Pipeline{
		Highlighter: &fakeHighlighter{snippets: []string{"s"}},
		Renderer:    &fakeRenderer{png: []byte{}},
		Clipboard:   w,
	}

	err := p.Run(Request{Source: "x", Text: "code"})
	if err == nil || !strings.Contains(err.Error(), "no output") {
		t.Fatalf("error = %v", err)
	}
	if len(w.images) != 0 {
		t.Error("clipboard written despite empty image")
	}
}

func TestRunClipboardError(t *testing.T) {
	p := &Pipeline{
		Highlighter: &fakeHighlighter{snippets: []string{"s"}},
		Renderer:    &fakeRenderer{png: []byte("png")},
		Clipboard:   &fakeWriter{err: errors.New("no display")},
	}

	err := p.Run(Request{Source: "x", Text: "code"})
	if err == nil || !strings.Contains(err.Error(), "clipboard") {
		t.Fatalf("error = %v", err)
	}
}

func TestRunMultiSnippetCopiesFirst(t *testing.T) {
	w := &fakeWriter{}
	r := &fakeRenderer{png: []byte("png")}
	p := &Pipeline{
		Highlighter: &fakeHighlighter{snippets: []string{"s1", "s2", "s3"}},
		Renderer:    r,
		Clipboard:   w,
	}

	if err := p.Run(Request{Source: "x", Text: "code"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.calls != 3 {
		t.Errorf("renderer calls = %d, want 3", r.calls)
	}
	if len(w.images) != 1 {
		t.Errorf("clipboard images = %d, want 1", len(w.images))
	}
}

func TestRunOutputFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "snap")
	w := &fakeWriter{}
	p := &Pipeline{
		Highlighter: &fakeHighlighter{snippets: []string{"s1", "s2"}},
		Renderer:    &fakeRenderer{png: []byte("png")},
		Clipboard:   w,
	}

	if err := p.Run(Request{Source: "x", Text: "code", OutputBase: base}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i <= 2; i++ {
		path := fmt.Sprintf("%s-%d.png", base, i)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing %s", path)
		}
	}
	if len(w.images) != 0 {
		t.Error("clipboard written in file mode")
	}
}

func TestRunSshootSaves(t *testing.T) {
	dir := t.TempDir()
	w := &fakeWriter{}
	p := &Pipeline{
		Highlighter: &fakeHighlighter{snippets: []string{"s"}},
		Renderer:    &fakeRenderer{png: []byte("png")},
		Clipboard:   w,
		Shots:       &shots.Saver{Dir: dir},
	}

	if err := p.Run(Request{Source: "x", Text: "code", Sshoot: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d shots, want 1", len(entries))
	}
	if len(w.images) != 0 {
		t.Error("clipboard written in sshoot mode")
	}
}

func TestRunAnsiUsesEscaper(t *testing.T) {
	w := &fakeWriter{}
	r := &fakeRenderer{png: []byte("png")}
	p := &Pipeline{
		Highlighter: &fakeHighlighter{err: errors.New("must not be called")},
		Escaper:     &fakeEscaper{out: "<span>ansi</span>"},
		Renderer:    r,
		Clipboard:   w,
	}

	if err := p.Run(Request{Source: "stdin", Text: "\x1b[31mred\x1b[0m", Ansi: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.inputs) != 1 || r.inputs[0] != "<span>ansi</span>" {
		t.Errorf("renderer inputs = %q", r.inputs)
	}
}

func TestRunAnsiEscaperError(t *testing.T) {
	p := &Pipeline{
		Escaper:   &fakeEscaper{err: errors.New("dependency not found: ansifilter")},
		Renderer:  &fakeRenderer{png: []byte("png")},
		Clipboard: &fakeWriter{},
	}

	err := p.Run(Request{Source: "stdin", Text: "x", Ansi: true})
	if err == nil || !strings.Contains(err.Error(), "ansifilter") {
		t.Fatalf("error = %v", err)
	}
}
