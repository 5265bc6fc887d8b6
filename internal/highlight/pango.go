package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
)

// pangoTags converts a resolved style entry into open/close markup tags.
func pangoTags(entry chroma.StyleEntry) (string, string) {
	var open, closing string

	if entry.Colour.IsSet() {
		open += `<span fgcolor="` + entry.Colour.String() + `">`
		closing = "</span>" + closing
	}
	if entry.Bold == chroma.Yes {
		open += "<b>"
		closing = "</b>" + closing
	}
	if entry.Italic == chroma.Yes {
		open += "<i>"
		closing = "</i>" + closing
	}
	if entry.Underline == chroma.Yes {
		open += "<u>"
		closing = "</u>" + closing
	}

	return open, closing
}

// lineNumberer produces gutter cells, keeping its count across snippets.
type lineNumberer struct {
	open  string
	close string
	n     int
}

func (l *lineNumberer) next() string {
	l.n++
	return fmt.Sprintf("%s% 5d %s", l.open, l.n, l.close)
}

// numberLines prefixes every markup line with a gutter cell. Gutter
// spans nest inside any token span that crosses the line break, which
// Pango accepts.
func numberLines(markup string, gutter *lineNumberer) string {
	lines := strings.Split(markup, "\n")
	for i := range lines {
		lines[i] = gutter.next() + lines[i]
	}
	return strings.Join(lines, "\n")
}
