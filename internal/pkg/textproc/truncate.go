package textproc

import (
	"regexp"
	"strings"
)

const ellipsis = "..."

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// Truncate shortens text to at most maxLength characters while preserving
// structure: whole paragraphs are kept while they fit, then sentences of the
// first overflowing paragraph, then a plain word-boundary slice as the last
// resort. A truncated result always ends with an ellipsis marker and is
// itself short enough that re-truncation is a no-op.
func Truncate(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}

	var b strings.Builder
	for _, section := range strings.Split(text, "\n\n") {
		if b.Len()+len(section) <= maxLength-100 {
			b.WriteString(section)
			b.WriteString("\n\n")
			continue
		}
		for _, sentence := range sentenceSplitRe.Split(section, -1) {
			if strings.TrimSpace(sentence) == "" {
				continue
			}
			if b.Len()+len(sentence) > maxLength-50 {
				break
			}
			b.WriteString(sentence)
			b.WriteString(". ")
		}
		break
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		cut := maxLength - len(ellipsis)
		if cut < 0 {
			cut = 0
		}
		words := strings.Fields(text[:cut])
		if len(words) > 1 {
			words = words[:len(words)-1]
		}
		out = strings.Join(words, " ")
	}
	return out + ellipsis
}
