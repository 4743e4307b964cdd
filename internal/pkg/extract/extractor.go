// Package extract converts Drive files into plain text, one strategy per
// declared format. Failures are per-file: a bad download or a malformed
// document skips that file and never aborts a multi-file extraction loop.
package extract

import (
	"context"
	"strings"

	"github.com/driveassist/backend/internal/entity"
	"github.com/driveassist/backend/internal/pkg/textproc"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Downloader is the slice of the storage provider the extractor needs:
// raw media download plus native-document export.
type Downloader interface {
	DownloadMedia(ctx context.Context, fileID string) ([]byte, error)
	ExportMedia(ctx context.Context, fileID, targetMIME string) ([]byte, error)
}

type extractFunc func(ctx context.Context, e *Extractor, rec entity.FileRecord) (string, error)

// Extractor dispatches on the declared format of a file and returns its
// normalized text content.
type Extractor struct {
	downloader Downloader
	logger     *zap.Logger
	strategies map[entity.Format]extractFunc
}

func NewExtractor(downloader Downloader, logger *zap.Logger) *Extractor {
	e := &Extractor{
		downloader: downloader,
		logger:     logger,
	}
	e.strategies = map[entity.Format]extractFunc{
		entity.FormatGoogleDoc: extractGoogleDoc,
		entity.FormatPlainText: extractPlainText,
		entity.FormatCSV:       extractCSV,
		entity.FormatPDF:       extractPDF,
		entity.FormatMarkdown:  extractMarkdown,
		entity.FormatWordDoc:   extractDOCX,
	}
	return e
}

// Extract returns the cleaned text content of a file.
// entity.ErrUnsupportedFormat is returned for formats outside the registry
// and entity.ErrEmptyContent when a strategy produced no usable text; both
// are skip conditions for callers, not hard failures.
func (e *Extractor) Extract(ctx context.Context, rec entity.FileRecord) (string, error) {
	strategy, ok := e.strategies[rec.Format]
	if !ok {
		ctxzap.Warn(ctx, "unsupported file format",
			zap.String("file", rec.Name),
			zap.String("mime_type", string(rec.Format)),
		)
		return "", entity.ErrUnsupportedFormat
	}

	text, err := strategy(ctx, e, rec)
	if err != nil {
		return "", err
	}

	text = textproc.Clean(text)
	if text == "" {
		return "", entity.ErrEmptyContent
	}

	ctxzap.Info(ctx, "content extracted",
		zap.String("file", rec.Name),
		zap.String("type", rec.Format.DisplayName()),
		zap.Int("chars", len(text)),
	)
	return text, nil
}

func extractGoogleDoc(ctx context.Context, e *Extractor, rec entity.FileRecord) (string, error) {
	data, err := e.downloader.ExportMedia(ctx, rec.ID, string(entity.FormatPlainText))
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

func extractPlainText(ctx context.Context, e *Extractor, rec entity.FileRecord) (string, error) {
	data, err := e.downloader.DownloadMedia(ctx, rec.ID)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), ""), nil
}
