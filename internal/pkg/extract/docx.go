package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/driveassist/backend/internal/entity"
	"github.com/unidoc/unioffice/document"
)

func extractDOCX(ctx context.Context, e *Extractor, rec entity.FileRecord) (string, error) {
	data, err := e.downloader.DownloadMedia(ctx, rec.ID)
	if err != nil {
		return "", err
	}

	doc, err := document.Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer doc.Close()

	var b strings.Builder
	for _, para := range doc.Paragraphs() {
		for _, run := range para.Runs() {
			b.WriteString(run.Text())
		}
		b.WriteString("\n")
	}

	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", entity.ErrEmptyContent
	}
	return text, nil
}
