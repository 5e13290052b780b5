package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portsgw "github.com/SscSPs/fx_wallet_backend/internal/core/ports/gateways"
	"github.com/SscSPs/fx_wallet_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Events portsgw.EventSource
	Now    func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// CurrentTime returns the service clock in UTC.
func (s *BaseService) CurrentTime() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// PublishChange announces a change if an event source is configured.
// audience names the users that may see changes to user-scoped tables.
// Failures are logged and never returned to the caller.
func (s *BaseService) PublishChange(ctx context.Context, table string, op domain.ChangeOperation, key string, audience ...string) {
	if s.Events == nil {
		return
	}
	change := domain.TableChange{Table: table, Operation: op, Key: key, Audience: audience, OccurredAt: s.CurrentTime()}
	if err := s.Events.Publish(ctx, change); err != nil {
		s.LogError(ctx, err, "Failed to publish table change", slog.String("table", table), slog.String("key", key))
	}
}

// requireUser rejects calls without an authenticated user.
func requireUser(userID string) error {
	if userID == "" {
		return apperrors.NewValidationError("user ID is required")
	}
	return nil
}
