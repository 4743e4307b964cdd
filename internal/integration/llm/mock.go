package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/driveassist/backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector is a canned completion source for local runs and tests.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{logger: logger}
}

func (m *MockConnector) Complete(ctx context.Context, messages []entity.ChatMessage) (*entity.Completion, error) {
	ctxzap.Info(ctx, "[MOCK] generating completion", zap.Int("messages", len(messages)))

	var lastUser string
	for _, msg := range messages {
		if msg.Role == entity.RoleUser {
			lastUser = msg.Content
		}
	}

	text := "This is a mock response."
	if strings.Contains(lastUser, "Context from Google Drive files:") {
		text = "This is a mock response grounded in the provided file context."
	}
	text += fmt.Sprintf(" (echo: %.60s)", lastUser)

	return &entity.Completion{
		Text:         text,
		Model:        "mock/echo-1",
		TokensUsed:   len(lastUser) / 4,
		FinishReason: "stop",
	}, nil
}
