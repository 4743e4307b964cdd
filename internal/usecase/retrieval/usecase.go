// Package retrieval implements the context pipeline: find candidate files
// on Drive, rank them against the query, extract and trim their content,
// and assemble a per-request context bundle.
package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/driveassist/backend/internal/config"
	"github.com/driveassist/backend/internal/entity"
	"github.com/driveassist/backend/internal/pkg/textproc"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const keywordSearchCount = 3

type Usecase struct {
	searcher  *Searcher
	extractor ContentExtractor
	cfg       config.RetrievalConfig
	logger    *zap.Logger
}

func NewUsecase(storage StorageClient, extractor ContentExtractor, cfg config.RetrievalConfig, logger *zap.Logger) *Usecase {
	return &Usecase{
		searcher:  NewSearcher(storage, cfg.OrderBy),
		extractor: extractor,
		cfg:       cfg,
		logger:    logger,
	}
}

// GetRelevantContext assembles the file context for one query. Every
// failure downgrades to a smaller or empty bundle, never to an error: a
// query with no usable files still gets an answer, just without context.
func (u *Usecase) GetRelevantContext(ctx context.Context, query string) entity.ContextBundle {
	target := ExtractFilename(query)
	if target != "" {
		ctxzap.Info(ctx, "query names a file", zap.String("filename", target))
	}

	candidates := u.findCandidates(ctx, query, target)
	if len(candidates) == 0 {
		ctxzap.Info(ctx, "no candidate files found", zap.String("query", query))
		return entity.ContextBundle{}
	}

	if target != "" {
		candidates = RankByFilename(candidates, stripExtension(target))
	} else {
		candidates = RankByQuery(candidates, query)
	}

	var (
		sections []string
		sources  []entity.SourceRef
	)
	for _, rec := range candidates {
		if len(sections) >= u.cfg.MaxContextFiles {
			break
		}

		content, err := u.extractor.Extract(ctx, rec)
		if err != nil {
			ctxzap.Warn(ctx, "skipping file",
				zap.String("file_id", rec.ID),
				zap.String("file_name", rec.Name),
				zap.Error(err),
			)
			continue
		}
		if len(strings.TrimSpace(content)) <= u.cfg.MinContentLength {
			ctxzap.Debug(ctx, "content too short, skipping",
				zap.String("file_name", rec.Name),
				zap.Int("length", len(content)),
			)
			continue
		}

		content = textproc.Truncate(content, u.cfg.PerFileChars)
		sections = append(sections, fmt.Sprintf("--- Content from file: %s (%s) ---\n%s\n",
			rec.Name, rec.Format.DisplayName(), content))
		sources = append(sources, entity.SourceRef{
			ID:   rec.ID,
			Name: rec.Name,
			Type: rec.Format.DisplayName(),
			URL:  rec.ViewURL,
		})

		// An exact-enough match for a named file makes the rest of the
		// candidates noise: promote it and stop.
		if target != "" && FilenameSimilarity(rec.Name, target) > u.cfg.HighConfidence {
			last := len(sections) - 1
			sections = append([]string{sections[last]}, sections[:last]...)
			sources = append([]entity.SourceRef{sources[last]}, sources[:last]...)
			ctxzap.Info(ctx, "high-confidence filename match, stopping early",
				zap.String("file_name", rec.Name),
			)
			break
		}
	}

	ctxzap.Info(ctx, "context assembled",
		zap.Int("files_used", len(sources)),
		zap.Int("candidates", len(candidates)),
	)
	return entity.ContextBundle{
		CombinedText: strings.Join(sections, "\n"),
		Sources:      sources,
	}
}

// findCandidates tries progressively broader searches until one returns
// files: the named file, the name's words, the query's top keywords, and
// finally an unfiltered listing.
func (u *Usecase) findCandidates(ctx context.Context, query, target string) []entity.FileRecord {
	if target != "" {
		if files, err := u.searcher.Search(ctx, target, nil, u.cfg.SearchLimit); err == nil && len(files) > 0 {
			return files
		}
		if base := stripExtension(target); strings.ContainsAny(base, " _-") {
			if files, err := u.searcher.Search(ctx, base, nil, u.cfg.SearchLimit); err == nil && len(files) > 0 {
				return files
			}
		}
	}

	keywords := textproc.ExtractKeywords(query, keywordSearchCount)
	if len(keywords) > 0 {
		if files, err := u.searcher.Search(ctx, strings.Join(keywords, " "), nil, u.cfg.SearchLimit); err == nil && len(files) > 0 {
			return files
		}
	}

	files, err := u.searcher.Search(ctx, "", nil, u.cfg.SearchLimit)
	if err != nil {
		return nil
	}
	return files
}

// SearchFiles lists files matching the query without extracting content.
func (u *Usecase) SearchFiles(ctx context.Context, query string, limit int) ([]entity.FileRecord, error) {
	if limit <= 0 || limit > u.cfg.SearchLimit {
		limit = u.cfg.SearchLimit
	}
	return u.searcher.Search(ctx, query, nil, limit)
}
