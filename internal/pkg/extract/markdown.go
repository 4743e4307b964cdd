package extract

import (
	"bytes"
	"context"
	"fmt"
	"regexp"

	"github.com/driveassist/backend/internal/entity"
	"github.com/yuin/goldmark"
)

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// extractMarkdown renders the document to HTML and strips the tags. The
// conversion is lossy: HTML entities are left as-is.
func extractMarkdown(ctx context.Context, e *Extractor, rec entity.FileRecord) (string, error) {
	data, err := e.downloader.DownloadMedia(ctx, rec.ID)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := goldmark.Convert(data, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	return htmlTagRe.ReplaceAllString(buf.String(), ""), nil
}
