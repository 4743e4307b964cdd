package retrieval

import (
	"context"

	"github.com/driveassist/backend/internal/entity"
)

// StorageClient is the narrow capability slice of the storage provider the
// pipeline depends on. The drive package provides the real implementation
// and an in-memory mock.
type StorageClient interface {
	ListFiles(ctx context.Context, query string, pageSize int64, orderBy string) ([]entity.FileRecord, error)
	DownloadMedia(ctx context.Context, fileID string) ([]byte, error)
	ExportMedia(ctx context.Context, fileID, targetMIME string) ([]byte, error)
}

// ContentExtractor converts one file into normalized text.
type ContentExtractor interface {
	Extract(ctx context.Context, rec entity.FileRecord) (string, error)
}
