// Package notify delivers fire-and-forget user notifications (toasts).
package notify

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

// Level distinguishes success from failure notifications.
type Level string

const (
	LevelSuccess Level = "success"
	LevelFailure Level = "failure"
)

// Notifier shows a short message to the user. Implementations must not block.
type Notifier interface {
	Success(ctx context.Context, msg string)
	Failure(ctx context.Context, msg string)
}

// Log writes notifications to a logger.
type Log struct {
	log *slog.Logger
}

// NewLog creates a Notifier that logs.
func NewLog(log *slog.Logger) *Log {
	return &Log{log: log.With("component", "notify")}
}

func (l *Log) Success(ctx context.Context, msg string) {
	l.log.InfoContext(ctx, "notification", slog.String("kind", string(LevelSuccess)), slog.String("message", msg))
}

func (l *Log) Failure(ctx context.Context, msg string) {
	l.log.WarnContext(ctx, "notification", slog.String("kind", string(LevelFailure)), slog.String("message", msg))
}

// Func adapts a function to Notifier.
type Func func(ctx context.Context, level Level, msg string)

func (f Func) Success(ctx context.Context, msg string) { f(ctx, LevelSuccess, msg) }

func (f Func) Failure(ctx context.Context, msg string) { f(ctx, LevelFailure, msg) }

// Discard drops every notification.
var Discard Notifier = Func(func(context.Context, Level, string) {})

// FailureMessage turns an error into a short user-facing notification.
func FailureMessage(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		if len(verr.Errors) > 0 {
			return verr.Errors[0].Field + ": " + verr.Errors[0].Message
		}
		return "Invalid input"
	case errors.Is(err, domain.ErrConfirmationRequired):
		return "Please confirm the deletion"
	case errors.Is(err, domain.ErrUnauthorized):
		return "Please sign in first"
	case errors.Is(err, domain.ErrForbidden):
		return "Only the store owner can do that"
	case errors.Is(err, domain.ErrVotingDisabled):
		return "Voting is turned off here"
	case errors.Is(err, domain.ErrNotFound):
		return "That no longer exists"
	case errors.Is(err, domain.ErrConflict):
		return "Someone else changed this, please reload"
	default:
		return "Something went wrong, please try again"
	}
}
