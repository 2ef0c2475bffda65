package notify

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"github.com/aussiebroadwan/yup/pkg/slogx"
)

// LogNotifier writes notifications to the request logger. It serves every
// channel and is the default when no SMTP or broker is configured.
type LogNotifier struct {
	Level slog.Level
}

func (l LogNotifier) Notify(ctx context.Context, n domain.Notification) error {
	slogx.FromContext(ctx).Log(ctx, l.Level, "notification",
		slog.String("kind", string(n.Kind)),
		slog.String("channel", string(n.Channel)),
		slog.String("to", n.To),
		slog.String("subject", n.Subject),
		slog.String("event_id", n.EventID),
	)
	return nil
}
