package shell

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/FACorreiaa/go-nammaguide/internal/app/observability/metrics"
	"github.com/FACorreiaa/go-nammaguide/internal/pkg/cache"
)

// Store keeps one Controller per session and drops it after ttl without use.
type Store struct {
	controllers *cache.UnifiedCache[*Controller]
	newFn       func() *Controller
	logger      *zap.Logger
}

func NewStore(ttl time.Duration, newFn func() *Controller, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	controllers := cache.NewUnifiedCache[*Controller](ttl, "sessions", logger)
	controllers.OnEvict(func(key string, _ *Controller) {
		metrics.Get().ActiveSessions.Add(context.Background(), -1)
		logger.Debug("Session expired", zap.String("session_id", key))
	})
	return &Store{controllers: controllers, newFn: newFn, logger: logger}
}

// Controller returns the controller for sessionID, creating it on first use.
func (s *Store) Controller(sessionID string) *Controller {
	ctrl, created := s.controllers.GetOrCreate(sessionID, s.newFn)
	if created {
		metrics.Get().ActiveSessions.Add(context.Background(), 1)
		s.logger.Debug("Session started", zap.String("session_id", sessionID))
	}
	return ctrl
}

// Len is the number of live sessions.
func (s *Store) Len() int {
	return s.controllers.Size()
}
