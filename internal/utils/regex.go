package utils

import (
	"regexp"
	"sync"
)

// LazyRegex defers compiling a pattern until it is first needed, so
// runs that never strip escape codes pay nothing for it.
type LazyRegex struct {
	pattern string
	once    sync.Once
	re      *regexp.Regexp
}

// NewLazyRegex wraps pattern without compiling it.
func NewLazyRegex(pattern string) *LazyRegex {
	return &LazyRegex{pattern: pattern}
}

// Re returns the compiled expression, compiling it exactly once.
// An invalid pattern panics on first use.
func (lr *LazyRegex) Re() *regexp.Regexp {
	lr.once.Do(func() {
		lr.re = regexp.MustCompile(lr.pattern)
	})
	return lr.re
}
