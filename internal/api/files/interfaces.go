package files

import (
	"context"

	"github.com/driveassist/backend/internal/entity"
)

// FileSearchUsecase lists files matching a query without extracting them.
type FileSearchUsecase interface {
	SearchFiles(ctx context.Context, query string, limit int) ([]entity.FileRecord, error)
}
