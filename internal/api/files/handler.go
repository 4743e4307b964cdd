package files

import (
	"net/http"
	"strconv"

	"github.com/driveassist/backend/internal/entity"
	"github.com/driveassist/backend/internal/pkg/logger"
	"github.com/driveassist/backend/internal/pkg/response"
	"github.com/driveassist/backend/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase   FileSearchUsecase
	validator *validator.Validator
}

func NewHandler(usecase FileSearchUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// SearchFiles handles GET /files/search?q=...&limit=... - List matching files
func (h *Handler) SearchFiles(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "SearchFiles")

	query := r.URL.Query().Get("q")
	if err := h.validator.ValidateSearchQuery(query); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	ctxzap.Info(ctx, "searching files", zap.String("query", query), zap.Int("limit", limit))

	records, err := h.usecase.SearchFiles(ctx, query, limit)
	if err != nil {
		ctxzap.Error(ctx, "file search failed", zap.Error(err))
		response.Error(w, http.StatusBadGateway, "file search failed")
		return
	}

	if records == nil {
		records = []entity.FileRecord{}
	}
	response.Success(w, entity.FileSearchResponse{
		Files: records,
		Count: len(records),
	})
}
