package chat

import (
	"context"

	"github.com/driveassist/backend/internal/entity"
)

// LLMConnector produces one completion for an ordered message list.
type LLMConnector interface {
	Complete(ctx context.Context, messages []entity.ChatMessage) (*entity.Completion, error)
}

// ContextProvider assembles the file context for a query. It never fails:
// an unusable query yields an empty bundle.
type ContextProvider interface {
	GetRelevantContext(ctx context.Context, query string) entity.ContextBundle
}

// HistoryRepository stores per-session conversation turns.
type HistoryRepository interface {
	History(ctx context.Context, sessionID string) []entity.ChatMessage
	Append(ctx context.Context, sessionID string, messages ...entity.ChatMessage)
}
