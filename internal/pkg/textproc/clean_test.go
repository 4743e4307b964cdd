package textproc

import (
	"strings"
	"testing"
)

func TestCleanCollapsesWhitespace(t *testing.T) {
	got := Clean("hello   world\t\tagain")
	if got != "hello world again" {
		t.Errorf("want %q got %q", "hello world again", got)
	}
}

func TestCleanPreservesParagraphBreaks(t *testing.T) {
	got := Clean("first paragraph\n\n\n\nsecond paragraph")
	if got != "first paragraph\n\nsecond paragraph" {
		t.Errorf("paragraph break not preserved: %q", got)
	}
}

func TestCleanStripsControlCharacters(t *testing.T) {
	got := Clean("bad\x00bytes\x07here")
	if got != "badbyteshere" {
		t.Errorf("control characters not stripped: %q", got)
	}
}

func TestCleanCollapsesPunctuationRuns(t *testing.T) {
	cases := map[string]string{
		"wait.....":   "wait...",
		"what??!!":    "what?!",
		"no!!! way??": "no! way?",
	}
	for in, want := range cases {
		if got := Clean(in); got != want {
			t.Errorf("Clean(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"  spaced   out  ",
		"a\r\nb\rc",
		"one\n\n\n\ntwo...!!??",
		"--- Page 2 ---\nsome text",
		"Rows: 10, Columns: 2",
	}
	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestCleanKeepsPageMarkers(t *testing.T) {
	got := Clean("\n--- Page 2 ---\ncontent here\n")
	if !strings.Contains(got, "--- Page 2 ---") {
		t.Errorf("page marker lost: %q", got)
	}
}
