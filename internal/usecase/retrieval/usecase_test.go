package retrieval_test

import (
	"context"
	"strings"
	"testing"

	"github.com/driveassist/backend/internal/config"
	"github.com/driveassist/backend/internal/entity"
	"github.com/driveassist/backend/internal/integration/drive"
	"github.com/driveassist/backend/internal/pkg/extract"
	"github.com/driveassist/backend/internal/usecase/retrieval"
	"go.uber.org/zap"
)

func testConfig() config.RetrievalConfig {
	return config.RetrievalConfig{
		SearchLimit:      10,
		MaxContextFiles:  3,
		MinContentLength: 50,
		PerFileChars:     1500,
		OrderBy:          "modifiedTime desc",
		HighConfidence:   0.7,
	}
}

func newUsecase(t *testing.T, files ...drive.MockFile) *retrieval.Usecase {
	t.Helper()
	logger := zap.NewNop()
	client := drive.NewMockClient(logger, files...)
	extractor := extract.NewExtractor(client, logger)
	return retrieval.NewUsecase(client, extractor, testConfig(), logger)
}

func textFile(id, name, modified, content string) drive.MockFile {
	return drive.MockFile{
		Record: entity.FileRecord{
			ID:           id,
			Name:         name,
			Format:       entity.FormatPlainText,
			ModifiedTime: modified,
		},
		Content: []byte(content),
	}
}

const longBody = "This body is comfortably longer than the minimum content " +
	"threshold so the assembler will not discard it as an empty or stub file."

func TestGetRelevantContextNoFiles(t *testing.T) {
	uc := newUsecase(t)

	bundle := uc.GetRelevantContext(context.Background(), "what is in my drive?")

	if !bundle.Empty() {
		t.Errorf("expected empty bundle, got %+v", bundle)
	}
}

func TestGetRelevantContextNamedFileShortCircuits(t *testing.T) {
	uc := newUsecase(t,
		textFile("f1", "resume.pdf", "2024-03-01T00:00:00Z", "Resume of a software engineer. "+longBody),
		textFile("f2", "old resume.pdf", "2024-01-01T00:00:00Z", "An older resume revision. "+longBody),
	)

	bundle := uc.GetRelevantContext(context.Background(), "Summarize my resume.pdf")

	if len(bundle.Sources) != 1 {
		t.Fatalf("expected exactly one source, got %d", len(bundle.Sources))
	}
	if bundle.Sources[0].Name != "resume.pdf" {
		t.Errorf("expected resume.pdf, got %s", bundle.Sources[0].Name)
	}
	if !strings.Contains(bundle.CombinedText, "--- Content from file: resume.pdf (Text File) ---") {
		t.Errorf("missing section header:\n%s", bundle.CombinedText)
	}
}

func TestGetRelevantContextCapsFileCount(t *testing.T) {
	uc := newUsecase(t,
		textFile("f1", "project alpha.txt", "2024-04-01T00:00:00Z", "Alpha status notes. "+longBody),
		textFile("f2", "project beta.txt", "2024-03-01T00:00:00Z", "Beta status notes. "+longBody),
		textFile("f3", "project gamma.txt", "2024-02-01T00:00:00Z", "Gamma status notes. "+longBody),
		textFile("f4", "project delta.txt", "2024-01-01T00:00:00Z", "Delta status notes. "+longBody),
	)

	bundle := uc.GetRelevantContext(context.Background(), "summarize the quarterly project reports")

	if len(bundle.Sources) != 3 {
		t.Fatalf("expected 3 sources, got %d: %+v", len(bundle.Sources), bundle.Sources)
	}
	for _, s := range bundle.Sources {
		if s.Name == "project delta.txt" {
			t.Errorf("oldest file should be cut by the context cap")
		}
	}
}

func TestGetRelevantContextSkipsShortContent(t *testing.T) {
	uc := newUsecase(t,
		textFile("f1", "short notes.txt", "2024-04-01T00:00:00Z", "too short"),
		textFile("f2", "long notes.txt", "2024-03-01T00:00:00Z", "Detailed meeting notes. "+longBody),
	)

	bundle := uc.GetRelevantContext(context.Background(), "find my notes")

	if len(bundle.Sources) != 1 || bundle.Sources[0].Name != "long notes.txt" {
		t.Fatalf("expected only long notes.txt, got %+v", bundle.Sources)
	}
}

func TestGetRelevantContextFallsBackToListing(t *testing.T) {
	uc := newUsecase(t,
		textFile("f1", "journal.txt", "2024-04-01T00:00:00Z", "Daily journal entries. "+longBody),
	)

	bundle := uc.GetRelevantContext(context.Background(), "xylophone")

	if len(bundle.Sources) != 1 {
		t.Fatalf("keyword miss must fall back to an unfiltered listing, got %+v", bundle.Sources)
	}
}

func TestSearchFilesClampsLimit(t *testing.T) {
	uc := newUsecase(t,
		textFile("f1", "a.txt", "2024-04-01T00:00:00Z", "x"),
		textFile("f2", "b.txt", "2024-03-01T00:00:00Z", "x"),
	)

	files, err := uc.SearchFiles(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("expected both files, got %d", len(files))
	}
}
