package highlight

import (
	"strings"
	"testing"
)

func TestSplitDisabled(t *testing.T) {
	out := Split("a\nb\nc", 0, "\n\n")
	if len(out) != 1 {
		t.Fatalf("got %d chunks, want 1", len(out))
	}
}

func TestSplitUnderLimit(t *testing.T) {
	out := Split("a\nb\nc", 10, "\n\n")
	if len(out) != 1 || out[0] != "a\nb\nc" {
		t.Fatalf("got %v", out)
	}
}

func TestSplitAtSeparator(t *testing.T) {
	text := "a\nb\nc\n\nd\ne"
	out := Split(text, 2, "\n\n")
	if len(out) != 2 {
		t.Fatalf("got %d chunks: %q", len(out), out)
	}
	if out[0] != "a\nb\nc" {
		t.Errorf("first chunk = %q", out[0])
	}
	if strings.Join(out, "") != text {
		t.Errorf("chunks do not reassemble input: %q", out)
	}
}

func TestSplitNoSeparatorAfterLimit(t *testing.T) {
	text := "a\nb\nc\nd\ne"
	out := Split(text, 2, "\n\n")
	if len(out) != 1 {
		t.Fatalf("expected single chunk when no separator exists, got %q", out)
	}
}

func TestSplitMultipleChunks(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		b.WriteString("l1\nl2\nl3\n\n")
	}
	text := b.String()
	out := Split(text, 3, "\n\n")
	if len(out) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(out))
	}
	if strings.Join(out, "") != text {
		t.Error("chunks do not reassemble input")
	}
}

func TestSplitEmptyInput(t *testing.T) {
	out := Split("", 5, "\n\n")
	if len(out) != 1 || out[0] != "" {
		t.Fatalf("got %q", out)
	}
}
