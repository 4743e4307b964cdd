package textproc

import (
	"strings"
	"testing"
)

func TestTruncateShortTextUnchanged(t *testing.T) {
	if got := Truncate("short", 100); got != "short" {
		t.Errorf("short text must pass through, got %q", got)
	}
}

func TestTruncateLengthBound(t *testing.T) {
	long := strings.Repeat("word ", 2000)
	for _, max := range []int{100, 500, 1500} {
		got := Truncate(long, max)
		if len(got) > max+len(ellipsis) {
			t.Errorf("Truncate(_, %d) returned %d chars", max, len(got))
		}
		if !strings.HasSuffix(got, ellipsis) {
			t.Errorf("truncated text must end with ellipsis, got %q", got[len(got)-10:])
		}
	}
}

func TestTruncateIdempotent(t *testing.T) {
	inputs := []string{
		strings.Repeat("alpha beta gamma. ", 300),
		strings.Repeat("para one\n\n", 100),
		strings.Repeat("x", 5000),
	}
	for _, in := range inputs {
		for _, max := range []int{120, 1500} {
			once := Truncate(in, max)
			twice := Truncate(once, max)
			if once != twice {
				t.Errorf("Truncate not idempotent at max=%d: %q != %q", max, once, twice)
			}
		}
	}
}

func TestTruncateKeepsWholeSections(t *testing.T) {
	first := strings.Repeat("a", 200)
	second := strings.Repeat("b", 2000)
	got := Truncate(first+"\n\n"+second, 1000)
	if !strings.HasPrefix(got, first) {
		t.Errorf("first section should survive intact")
	}
	if strings.Contains(got, strings.Repeat("b", 1000)) {
		t.Errorf("overflowing section should not be kept whole")
	}
}

func TestTruncateFallsBackToSentences(t *testing.T) {
	text := "First sentence here. Second sentence here. " + strings.Repeat("tail words ", 300)
	got := Truncate(text, 200)
	if !strings.Contains(got, "First sentence here") {
		t.Errorf("sentence accumulation should keep leading sentences, got %q", got)
	}
}
