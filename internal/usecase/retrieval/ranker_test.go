package retrieval

import (
	"testing"

	"github.com/driveassist/backend/internal/entity"
)

func recs(names ...string) []entity.FileRecord {
	out := make([]entity.FileRecord, len(names))
	for i, n := range names {
		out[i] = entity.FileRecord{ID: n, Name: n}
	}
	return out
}

func names(files []entity.FileRecord) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}

func TestRankByQueryPrefersTermOverlap(t *testing.T) {
	files := recs("meeting_notes.txt", "resume.pdf", "budget.csv")

	ranked := RankByQuery(files, "show me my resume")

	if ranked[0].Name != "resume.pdf" {
		t.Errorf("expected resume.pdf first, got %v", names(ranked))
	}
}

func TestRankByQueryPDFBonus(t *testing.T) {
	files := recs("report.docx", "report.pdf")

	ranked := RankByQuery(files, "open the report pdf")

	if ranked[0].Name != "report.pdf" {
		t.Errorf("pdf query must favor pdf file, got %v", names(ranked))
	}
}

func TestRankByQueryStableOnTies(t *testing.T) {
	files := recs("alpha.txt", "beta.txt", "gamma.txt")

	ranked := RankByQuery(files, "unrelated question")

	for i, want := range []string{"alpha.txt", "beta.txt", "gamma.txt"} {
		if ranked[i].Name != want {
			t.Fatalf("tie order not preserved: %v", names(ranked))
		}
	}
}

func TestRelevanceScoreSubstringBonus(t *testing.T) {
	files := recs("notes.txt", "projectplan.docx")

	ranked := RankByQuery(files, "project plan")

	if ranked[0].Name != "projectplan.docx" {
		t.Errorf("alphanumeric containment must win, got %v", names(ranked))
	}
}

func TestFilenameSimilarity(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"resume.pdf", "resume.pdf", 1},
		{"resume.pdf", "resume", 0.5},
		{"resume.pdf", "", 0},
		{"", "resume", 0},
		{"a b.txt", "c d.txt", 1.0 / 5.0},
	}
	for _, c := range cases {
		if got := FilenameSimilarity(c.a, c.b); got != c.want {
			t.Errorf("FilenameSimilarity(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestRankByFilename(t *testing.T) {
	files := recs("cover_letter.docx", "2024 resume.pdf", "resume.pdf")

	ranked := RankByFilename(files, "resume")

	if ranked[0].Name != "resume.pdf" {
		t.Errorf("closest name must rank first, got %v", names(ranked))
	}
	if ranked[2].Name != "cover_letter.docx" {
		t.Errorf("unrelated name must rank last, got %v", names(ranked))
	}
}
