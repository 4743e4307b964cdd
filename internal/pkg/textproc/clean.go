// Package textproc normalizes extracted file content before it enters the
// context budget: whitespace cleanup, frequency-based keyword extraction and
// structure-aware truncation.
package textproc

import (
	"regexp"
	"strings"
)

var (
	// Conservative allow-list: word characters, whitespace and common
	// punctuation. Everything else (control characters, stray symbols
	// from PDF extraction) is dropped.
	disallowedRe = regexp.MustCompile(`[^\w \t\n.,!?;:\-()\[\]"'/@%$#&*+=|\\]`)

	spaceRunRe = regexp.MustCompile(`[ \t]+`)
	lineEdgeRe = regexp.MustCompile(`[ \t]*\n[ \t]*`)
	blankRunRe = regexp.MustCompile(`\n{3,}`)

	dotRunRe      = regexp.MustCompile(`\.{3,}`)
	bangRunRe     = regexp.MustCompile(`!{2,}`)
	questionRunRe = regexp.MustCompile(`\?{2,}`)
)

// Clean normalizes raw extracted text: collapses whitespace runs to single
// spaces, keeps paragraph breaks as at most a double newline, strips
// characters outside the allow-list and collapses repeated punctuation.
// Clean is idempotent.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = disallowedRe.ReplaceAllString(text, "")
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = lineEdgeRe.ReplaceAllString(text, "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")

	text = dotRunRe.ReplaceAllString(text, "...")
	text = bangRunRe.ReplaceAllString(text, "!")
	text = questionRunRe.ReplaceAllString(text, "?")

	return strings.TrimSpace(text)
}
