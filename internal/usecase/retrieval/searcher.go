package retrieval

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/driveassist/backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

var (
	extensionRe = regexp.MustCompile(`(?i)\.(pdf|docx?|txt|csv|md)$`)
	termRe      = regexp.MustCompile(`\w+`)
)

// Searcher issues file listing calls against the storage provider.
type Searcher struct {
	storage StorageClient
	orderBy string
}

func NewSearcher(storage StorageClient, orderBy string) *Searcher {
	return &Searcher{storage: storage, orderBy: orderBy}
}

// BuildQuery composes the provider's boolean query expression: a
// disjunction of `name contains` terms, a disjunction of MIME type filters
// (the full registry when formats is empty) and a hard trashed=false.
func BuildQuery(query string, formats []entity.Format) string {
	var parts []string

	cleaned := extensionRe.ReplaceAllString(strings.TrimSpace(query), "")
	var nameConds []string
	for _, term := range termRe.FindAllString(cleaned, -1) {
		if len(term) <= 2 {
			continue
		}
		nameConds = append(nameConds, fmt.Sprintf("name contains '%s'", term))
	}
	if len(nameConds) > 0 {
		parts = append(parts, "("+strings.Join(nameConds, " or ")+")")
	}

	if len(formats) == 0 {
		formats = entity.SupportedFormats()
	}
	typeConds := make([]string, 0, len(formats))
	for _, f := range formats {
		typeConds = append(typeConds, fmt.Sprintf("mimeType='%s'", f))
	}
	parts = append(parts, "("+strings.Join(typeConds, " or ")+")")

	parts = append(parts, "trashed=false")
	return strings.Join(parts, " and ")
}

// Search issues exactly one listing call. Callers treat an error as "no
// context found", never as a hard failure.
func (s *Searcher) Search(ctx context.Context, query string, formats []entity.Format, limit int) ([]entity.FileRecord, error) {
	composed := BuildQuery(query, formats)
	ctxzap.Debug(ctx, "searching drive",
		zap.String("raw_query", query),
		zap.String("composed_query", composed),
		zap.Int("limit", limit),
	)

	records, err := s.storage.ListFiles(ctx, composed, int64(limit), s.orderBy)
	if err != nil {
		ctxzap.Error(ctx, "drive search failed", zap.Error(err))
		return nil, err
	}

	ctxzap.Info(ctx, "search complete",
		zap.String("raw_query", query),
		zap.Int("files", len(records)),
	)
	return records, nil
}

// stripExtension removes a trailing recognized file extension.
func stripExtension(name string) string {
	return extensionRe.ReplaceAllString(strings.TrimSpace(name), "")
}
