package retrieval

import (
	"regexp"
	"strings"
)

// filenamePatterns is checked in order; the first capture wins. Quoted
// forms allow spaces in the name, the bare form does not, so a filename
// embedded in a sentence is isolated rather than swallowing the words
// before it.
var filenamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)['"]([\w\s\-.]+\.(?:pdf|docx?|txt|csv|md))['"]`),
	regexp.MustCompile(`(?i)file\s+['"]([\w\s\-.]+)['"]`),
	regexp.MustCompile(`(?i)document\s+['"]([\w\s\-.]+)['"]`),
	regexp.MustCompile(`(?i)\b([\w-]+\.(?:pdf|docx?|txt|csv|md))\b`),
}

// ExtractFilename pulls an explicit filename reference out of a query.
// Returns "" when the query names no file.
func ExtractFilename(query string) string {
	for _, re := range filenamePatterns {
		if m := re.FindStringSubmatch(query); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
