package notification

import (
	"context"
	"log/slog"
)

// LogNotifier writes notifications to a slog logger, errors at error level,
// warnings at warn level and everything else at info
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a LogNotifier; a nil logger uses slog.Default
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

// Notify logs the message
func (n *LogNotifier) Notify(ctx context.Context, kind Kind, message string) {
	n.logger.Log(ctx, levelFor(kind), message, "notification_kind", string(kind))
}

func levelFor(kind Kind) slog.Level {
	switch kind {
	case KindError:
		return slog.LevelError
	case KindWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
