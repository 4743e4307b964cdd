package repository

import (
	"context"
	"sync"

	"github.com/driveassist/backend/internal/config"
	"github.com/driveassist/backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// SessionHistoryRepository defines the interface for conversation history persistence
type SessionHistoryRepository interface {
	History(ctx context.Context, sessionID string) []entity.ChatMessage
	Append(ctx context.Context, sessionID string, messages ...entity.ChatMessage)
	Clear(ctx context.Context, sessionID string)
}

var _ SessionHistoryRepository = &SessionHistoryCache{}

// SessionHistoryCache implements SessionHistoryRepository with an in-memory
// TTL cache. Sessions expire after the configured idle period; each append
// refreshes the expiration.
type SessionHistoryCache struct {
	cache *gocache.Cache
	limit int
	mu    sync.Mutex
}

func NewSessionHistoryCache(cfg config.SessionConfig) *SessionHistoryCache {
	return &SessionHistoryCache{
		cache: gocache.New(cfg.TTL, cfg.CleanupInterval),
		limit: cfg.HistoryLimit,
	}
}

func (r *SessionHistoryCache) History(ctx context.Context, sessionID string) []entity.ChatMessage {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.cache.Get(sessionID)
	if !ok {
		return nil
	}
	history := stored.([]entity.ChatMessage)

	out := make([]entity.ChatMessage, len(history))
	copy(out, history)
	return out
}

func (r *SessionHistoryCache) Append(ctx context.Context, sessionID string, messages ...entity.ChatMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var history []entity.ChatMessage
	if stored, ok := r.cache.Get(sessionID); ok {
		history = stored.([]entity.ChatMessage)
	}

	history = append(history, messages...)
	if len(history) > r.limit {
		history = history[len(history)-r.limit:]
	}

	r.cache.Set(sessionID, history, gocache.DefaultExpiration)

	ctxzap.Debug(ctx, "session history updated",
		zap.String("session_id", sessionID),
		zap.Int("turns", len(history)),
	)
}

func (r *SessionHistoryCache) Clear(ctx context.Context, sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Delete(sessionID)
	ctxzap.Info(ctx, "session history cleared", zap.String("session_id", sessionID))
}
