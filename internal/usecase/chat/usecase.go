// Package chat orchestrates one conversational turn: retrieve file
// context, build the prompt with session history, call the model and
// record the exchange.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/driveassist/backend/internal/config"
	"github.com/driveassist/backend/internal/entity"
	"github.com/driveassist/backend/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const systemPrompt = "You are a helpful AI assistant with access to the user's Google Drive files. " +
	"When context from files is provided, use it to give accurate, detailed answers. " +
	"Always cite the specific files you reference in your response."

const contextTemplate = "Context from Google Drive files:\n\n%s\n\n---\n\nUser Question: %s\n\nPlease answer based on the provided context from the files."

type Usecase struct {
	llm      LLMConnector
	provider ContextProvider
	history  HistoryRepository
	cfg      config.SessionConfig
	logger   *zap.Logger
}

func NewUsecase(llm LLMConnector, provider ContextProvider, history HistoryRepository, cfg config.SessionConfig, logger *zap.Logger) *Usecase {
	return &Usecase{
		llm:      llm,
		provider: provider,
		history:  history,
		cfg:      cfg,
		logger:   logger,
	}
}

// ProcessQuery handles one user message and returns the assistant's reply.
// A missing session ID starts a new session.
func (u *Usecase) ProcessQuery(ctx context.Context, req entity.ChatRequest) (*entity.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, entity.ErrEmptyMessage
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	ctx = logger.WithSession(ctx, sessionID)

	bundle := u.provider.GetRelevantContext(ctx, message)

	userContent := message
	if !bundle.Empty() {
		userContent = fmt.Sprintf(contextTemplate, bundle.CombinedText, message)
	}

	messages := []entity.ChatMessage{{Role: entity.RoleSystem, Content: systemPrompt}}
	messages = append(messages, u.recentHistory(ctx, sessionID)...)
	messages = append(messages, entity.ChatMessage{Role: entity.RoleUser, Content: userContent})

	completion, err := u.llm.Complete(ctx, messages)
	if err != nil {
		ctxzap.Error(ctx, "completion failed", zap.Error(err))
		return nil, fmt.Errorf("process query: %w", err)
	}

	// History keeps the raw user message, not the context-injected prompt,
	// so later turns do not replay stale file content.
	u.history.Append(ctx, sessionID,
		entity.ChatMessage{Role: entity.RoleUser, Content: message},
		entity.ChatMessage{Role: entity.RoleAssistant, Content: completion.Text},
	)

	sources := bundle.Sources
	if sources == nil {
		sources = []entity.SourceRef{}
	}

	return &entity.ChatResponse{
		SessionID:    sessionID,
		Response:     completion.Text,
		ContextUsed:  !bundle.Empty(),
		Sources:      sources,
		Model:        completion.Model,
		TokensUsed:   completion.TokensUsed,
		FinishReason: completion.FinishReason,
	}, nil
}

// recentHistory returns the trailing window of the session's transcript.
func (u *Usecase) recentHistory(ctx context.Context, sessionID string) []entity.ChatMessage {
	history := u.history.History(ctx, sessionID)
	if u.cfg.HistoryWindow > 0 && len(history) > u.cfg.HistoryWindow {
		history = history[len(history)-u.cfg.HistoryWindow:]
	}
	return history
}
