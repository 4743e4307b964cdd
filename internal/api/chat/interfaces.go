package chat

import (
	"context"

	"github.com/driveassist/backend/internal/entity"
)

// ChatUsecase handles one conversational turn.
type ChatUsecase interface {
	ProcessQuery(ctx context.Context, req entity.ChatRequest) (*entity.ChatResponse, error)
}

// SessionRepository exposes session maintenance operations.
type SessionRepository interface {
	Clear(ctx context.Context, sessionID string)
}
