package extract

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/driveassist/backend/internal/entity"
	"go.uber.org/zap"
)

type fakeDownloader struct {
	media   map[string][]byte
	exports map[string][]byte
	err     error
}

func (f *fakeDownloader) DownloadMedia(_ context.Context, fileID string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.media[fileID]
	if !ok {
		return nil, errors.New("file not found")
	}
	return data, nil
}

func (f *fakeDownloader) ExportMedia(_ context.Context, fileID, _ string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.exports[fileID]
	if !ok {
		return nil, errors.New("file not found")
	}
	return data, nil
}

func newTestExtractor(d *fakeDownloader) *Extractor {
	return NewExtractor(d, zap.NewNop())
}

func TestExtractPlainText(t *testing.T) {
	e := newTestExtractor(&fakeDownloader{media: map[string][]byte{
		"f1": []byte("plain   text \x00content here"),
	}})

	got, err := e.Extract(context.Background(), entity.FileRecord{ID: "f1", Name: "notes.txt", Format: entity.FormatPlainText})
	if err != nil {
		t.Fatal(err)
	}
	if got != "plain text content here" {
		t.Errorf("want cleaned text, got %q", got)
	}
}

func TestExtractGoogleDocUsesExport(t *testing.T) {
	e := newTestExtractor(&fakeDownloader{exports: map[string][]byte{
		"doc1": []byte("exported doc body"),
	}})

	got, err := e.Extract(context.Background(), entity.FileRecord{ID: "doc1", Name: "Plan", Format: entity.FormatGoogleDoc})
	if err != nil {
		t.Fatal(err)
	}
	if got != "exported doc body" {
		t.Errorf("want exported body, got %q", got)
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	e := newTestExtractor(&fakeDownloader{})

	_, err := e.Extract(context.Background(), entity.FileRecord{ID: "x", Name: "pic.png", Format: "image/png"})
	if !errors.Is(err, entity.ErrUnsupportedFormat) {
		t.Errorf("want ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtractDownloadFailure(t *testing.T) {
	e := newTestExtractor(&fakeDownloader{err: errors.New("network down")})

	_, err := e.Extract(context.Background(), entity.FileRecord{ID: "x", Name: "a.txt", Format: entity.FormatPlainText})
	if err == nil {
		t.Fatal("want error on download failure")
	}
}

func TestExtractCSVSummary(t *testing.T) {
	csvData := "Name,Score\n"
	for _, row := range []string{
		"alice,90", "bob,85", "carol,78", "dave,92", "erin,88",
		"frank,70", "grace,95", "heidi,81", "ivan,76", "judy,89",
	} {
		csvData += row + "\n"
	}
	e := newTestExtractor(&fakeDownloader{media: map[string][]byte{
		"csv1": []byte(csvData),
	}})

	got, err := e.Extract(context.Background(), entity.FileRecord{ID: "csv1", Name: "scores.csv", Format: entity.FormatCSV})
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"Rows: 10, Columns: 2", "Name, Score", "Score: count=10"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
	// Name is a string column and must not get a statistics line.
	if strings.Contains(got, "Name: count=") {
		t.Errorf("non-numeric column got statistics:\n%s", got)
	}
	if !strings.Contains(got, "Sample Data (first 5 rows):") {
		t.Errorf("summary missing sample preview:\n%s", got)
	}
}

func TestExtractCSVMalformed(t *testing.T) {
	e := newTestExtractor(&fakeDownloader{media: map[string][]byte{
		"bad": []byte("a,\"unterminated\nb,c"),
	}})

	_, err := e.Extract(context.Background(), entity.FileRecord{ID: "bad", Name: "bad.csv", Format: entity.FormatCSV})
	if err == nil {
		t.Fatal("want parse error for malformed csv")
	}
}

func TestExtractMarkdownStripsTags(t *testing.T) {
	e := newTestExtractor(&fakeDownloader{media: map[string][]byte{
		"md1": []byte("# Heading\n\nSome *emphasis* and a [link](http://example.com)."),
	}})

	got, err := e.Extract(context.Background(), entity.FileRecord{ID: "md1", Name: "readme.md", Format: entity.FormatMarkdown})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "<") || strings.Contains(got, ">") {
		t.Errorf("html tags leaked: %q", got)
	}
	for _, want := range []string{"Heading", "emphasis", "link"} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown text %q lost: %q", want, got)
		}
	}
}

func TestJoinPagesLabelsOnlyNonEmpty(t *testing.T) {
	got := joinPages([]string{"", "middle page text", "   "})

	if !strings.Contains(got, "--- Page 2 ---") {
		t.Errorf("page 2 marker missing: %q", got)
	}
	for _, absent := range []string{"--- Page 1 ---", "--- Page 3 ---"} {
		if strings.Contains(got, absent) {
			t.Errorf("empty page got a marker: %q", got)
		}
	}
	if strings.Count(got, "--- Page 2 ---") != 1 {
		t.Errorf("want exactly one page 2 marker: %q", got)
	}
}

func TestJoinPagesAllEmpty(t *testing.T) {
	if got := joinPages([]string{"", "  ", ""}); got != "" {
		t.Errorf("all-empty document should yield empty text, got %q", got)
	}
}
