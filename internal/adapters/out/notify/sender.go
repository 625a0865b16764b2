// Package notify delivers customer notifications for reservation lifecycle
// events. The Dispatcher implements ports.Notifier: it accepts notifications
// without blocking the caller and hands them to a Sender on a background
// worker with bounded retries.
package notify

import (
	"context"
	"log/slog"

	"reservation/internal/core/ports"
)

// Sender performs one delivery attempt for a notification, typically over an
// SMS or email gateway.
type Sender interface {
	Send(ctx context.Context, n ports.Notification) error
}

// LogSender writes notifications to the log instead of sending them. Used in
// local development and as a stand-in until a gateway is wired up.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{
		logger: logger.With("component", "log_sender"),
	}
}

func (s *LogSender) Send(ctx context.Context, n ports.Notification) error {
	for _, r := range n.Recipients {
		s.logger.InfoContext(ctx, "Notification sent",
			"event", string(n.Event),
			"refCode", n.RefCode,
			"recipient", r.Name,
			"phone", r.PhoneNumber,
			"message", n.Message,
		)
	}

	return nil
}
