package profile

import "testing"

func TestParseValid(t *testing.T) {
	data := []byte(`
name: review
description: numbered light render
style: friendly
font: mono
dpi: 100
width: 1000
line_numbers: true
max_lines: 500
split_at: "\n\n"
`)
	p, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "review" {
		t.Errorf("name = %q", p.Name)
	}
	if p.Style != "friendly" {
		t.Errorf("style = %q", p.Style)
	}
	if p.DPI != 100 {
		t.Errorf("dpi = %d", p.DPI)
	}
	if !p.LineNumbers {
		t.Error("expected line_numbers true")
	}
	if p.SplitAt != "\n\n" {
		t.Errorf("split_at = %q", p.SplitAt)
	}
}

func TestParseMissingName(t *testing.T) {
	_, err := Parse([]byte(`style: dracula`))
	if err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestParseNegativeDPI(t *testing.T) {
	_, err := Parse([]byte("name: bad\ndpi: -1"))
	if err == nil {
		t.Fatal("expected error for negative dpi")
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("{not yaml"))
	if err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}
