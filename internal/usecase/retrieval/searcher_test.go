package retrieval

import (
	"strings"
	"testing"

	"github.com/driveassist/backend/internal/entity"
)

func TestBuildQueryComposesTermsAndFormats(t *testing.T) {
	got := BuildQuery("project report.pdf", nil)

	if !strings.Contains(got, "(name contains 'project' or name contains 'report')") {
		t.Errorf("missing name disjunction: %q", got)
	}
	if strings.Contains(got, "pdf'") && strings.Contains(got, "name contains 'pdf'") {
		t.Errorf("extension should be stripped before term extraction: %q", got)
	}
	for _, f := range entity.SupportedFormats() {
		if !strings.Contains(got, "mimeType='"+string(f)+"'") {
			t.Errorf("missing format %s in %q", f, got)
		}
	}
	if !strings.HasSuffix(got, "trashed=false") {
		t.Errorf("query must end with trashed filter: %q", got)
	}
}

func TestBuildQueryEmptyQuery(t *testing.T) {
	got := BuildQuery("", nil)

	if strings.Contains(got, "name contains") {
		t.Errorf("empty query must not produce name terms: %q", got)
	}
	if !strings.Contains(got, "mimeType=") || !strings.Contains(got, "trashed=false") {
		t.Errorf("empty query still needs format and trashed filters: %q", got)
	}
}

func TestBuildQueryDropsShortTerms(t *testing.T) {
	got := BuildQuery("my go cv notes", nil)

	for _, short := range []string{"'my'", "'go'", "'cv'"} {
		if strings.Contains(got, short) {
			t.Errorf("short term %s must be dropped: %q", short, got)
		}
	}
	if !strings.Contains(got, "name contains 'notes'") {
		t.Errorf("long term missing: %q", got)
	}
}

func TestBuildQuerySpecificFormat(t *testing.T) {
	got := BuildQuery("budget", []entity.Format{entity.FormatCSV})

	if !strings.Contains(got, "(mimeType='text/csv')") {
		t.Errorf("expected single csv filter: %q", got)
	}
	if strings.Contains(got, string(entity.FormatPDF)) {
		t.Errorf("unrequested formats must not appear: %q", got)
	}
}

func TestStripExtension(t *testing.T) {
	cases := map[string]string{
		"resume.pdf":    "resume",
		"notes.TXT":     "notes",
		"report.docx":   "report",
		"plain":         "plain",
		"archive.tar":   "archive.tar",
		"readme.md":     "readme",
		"data.csv":      "data",
		"old.doc":       "old",
		" spaced.pdf ":  "spaced",
		"v1.2.notes.md": "v1.2.notes",
	}
	for in, want := range cases {
		if got := stripExtension(in); got != want {
			t.Errorf("stripExtension(%q) = %q, want %q", in, got, want)
		}
	}
}
