// Package highlight turns source text into Pango markup snippets using
// chroma lexers and styles.
package highlight

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Options controls how text is highlighted and laid out.
type Options struct {
	Lang        string // force a lexer by name; empty = detect
	Style       string
	Title       string // banner above each snippet; empty = none
	LineNumbers bool
	StartLine   int
	MaxLines    int    // split input after this many lines; <= 0 disables
	SplitAt     string // only split at this sequence
}

// Highlighter converts source text into styled Pango markup.
type Highlighter struct {
	opts  Options
	lexer chroma.Lexer
	style *chroma.Style
}

// New builds a Highlighter. The lexer is chosen by opts.Lang, then by
// the file name, then by content analysis of sample, falling back to
// plain text.
func New(path, sample string, opts Options) *Highlighter {
	if opts.StartLine <= 0 {
		opts.StartLine = 1
	}

	var lexer chroma.Lexer
	if opts.Lang != "" {
		lexer = lexers.Get(opts.Lang)
	} else if path != "" {
		lexer = lexers.Match(filepath.Base(path))
	}
	if lexer == nil && sample != "" {
		lexer = lexers.Analyse(sample)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(opts.Style)
	if style == nil {
		style = styles.Fallback
	}

	return &Highlighter{opts: opts, lexer: lexer, style: style}
}

// Language returns the name of the selected lexer.
func (h *Highlighter) Language() string {
	return h.lexer.Config().Name
}

// Background returns the style's background colour as "#rrggbb".
func (h *Highlighter) Background() string {
	entry := h.style.Get(chroma.Background)
	if entry.Background.IsSet() {
		return entry.Background.String()
	}
	return "#ffffff"
}

// CommentColor returns the style's comment colour, used for gutters
// and banners.
func (h *Highlighter) CommentColor() string {
	entry := h.style.Get(chroma.Comment)
	if entry.Colour.IsSet() {
		return entry.Colour.String()
	}
	return "#888888"
}

// Highlight renders text into one or more Pango markup snippets. Large
// inputs are split per Options; line numbering continues across
// snippets.
func (h *Highlighter) Highlight(text string) ([]string, error) {
	chunks := Split(text, h.opts.MaxLines, h.opts.SplitAt)

	gutter := &lineNumberer{
		open:  `<span fgcolor="` + h.CommentColor() + `">`,
		close: "</span>",
		n:     h.opts.StartLine - 1,
	}

	var out []string
	for _, chunk := range chunks {
		markup, err := h.format(chunk)
		if err != nil {
			return nil, err
		}
		if h.opts.LineNumbers {
			markup = numberLines(markup, gutter)
		}
		if h.opts.Title != "" {
			markup = h.banner(h.opts.Title) + markup
		}
		out = append(out, markup)
	}
	return out, nil
}

// format tokenises a chunk and writes styled spans.
func (h *Highlighter) format(text string) (string, error) {
	it, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return "", fmt.Errorf("tokenise: %w", err)
	}

	var b strings.Builder
	for tok := it(); tok != chroma.EOF; tok = it() {
		open, closing := pangoTags(h.style.Get(tok.Type))
		b.WriteString(open)
		b.WriteString(EscapePango(tok.Value))
		b.WriteString(closing)
	}
	return b.String(), nil
}

// banner frames a title in the comment colour, the way the gutter is
// coloured, so it reads as metadata rather than code.
func (h *Highlighter) banner(title string) string {
	rule := strings.Repeat("=", 80)
	return fmt.Sprintf("<span fgcolor=\"%s\">\n%s\n%s\n%s\n</span>\n",
		h.CommentColor(), rule, EscapePango(title), rule)
}

// EscapePango escapes the characters Pango markup treats specially.
func EscapePango(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	return strings.ReplaceAll(s, "<", "&lt;")
}
