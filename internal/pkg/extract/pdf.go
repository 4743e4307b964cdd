package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/driveassist/backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

func extractPDF(ctx context.Context, e *Extractor, rec entity.FileRecord) (string, error) {
	data, err := e.downloader.DownloadMedia(ctx, rec.ID)
	if err != nil {
		return "", err
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			ctxzap.Warn(ctx, "pdf page extraction failed",
				zap.String("file", rec.Name),
				zap.Int("page", i),
				zap.Error(err),
			)
			pages = append(pages, "")
			continue
		}
		if strings.TrimSpace(content) == "" {
			ctxzap.Warn(ctx, "no text found on pdf page",
				zap.String("file", rec.Name),
				zap.Int("page", i),
			)
		}
		pages = append(pages, content)
	}

	text := joinPages(pages)
	if text == "" {
		return "", entity.ErrEmptyContent
	}
	return text, nil
}

// joinPages labels each page with its 1-based number and drops pages that
// yielded no text. An all-empty document returns "".
func joinPages(pages []string) string {
	var b strings.Builder
	for i, page := range pages {
		page = strings.TrimSpace(page)
		if page == "" {
			continue
		}
		fmt.Fprintf(&b, "\n--- Page %d ---\n", i+1)
		b.WriteString(page)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
