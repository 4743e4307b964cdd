package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/driveassist/backend/internal/entity"
	"github.com/driveassist/backend/internal/pkg/logger"
	"github.com/driveassist/backend/internal/pkg/response"
	"github.com/driveassist/backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase   ChatUsecase
	sessions  SessionRepository
	validator *validator.Validator
}

func NewHandler(usecase ChatUsecase, sessions SessionRepository, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		sessions:  sessions,
		validator: validator,
	}
}

// ProcessQuery handles POST /chat - one conversational turn
func (h *Handler) ProcessQuery(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ProcessQuery")

	var req entity.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateChatRequest(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctxzap.Info(ctx, "processing chat message",
		zap.String("session_id", req.SessionID),
		zap.Int("message_chars", len(req.Message)),
	)

	resp, err := h.usecase.ProcessQuery(ctx, req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "chat message processed",
		zap.String("session_id", resp.SessionID),
		zap.Bool("context_used", resp.ContextUsed),
		zap.Int("sources", len(resp.Sources)),
	)

	response.Success(w, resp)
}

// ClearSession handles DELETE /chat/{session_id} - Drop a session's history
func (h *Handler) ClearSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", sessionID),
		zap.String("action", "ClearSession"),
	)

	h.sessions.Clear(ctx, sessionID)
	response.NoContent(w)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrEmptyMessage) || errors.Is(err, entity.ErrMessageTooLong) {
		ctxzap.Warn(ctx, "rejected chat request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	ctxzap.Error(ctx, "failed to process chat message", zap.Error(err))
	response.Error(w, http.StatusInternalServerError, "internal server error")
}
