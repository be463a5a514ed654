package copier

import (
	"go.uber.org/zap"
)

// LoggerNotifier shows notifications as info-level log messages.
type LoggerNotifier struct {
	logger *zap.Logger
}

// NewLoggerNotifier constructs a LoggerNotifier. A nil logger discards messages.
func NewLoggerNotifier(logger *zap.Logger) *LoggerNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggerNotifier{logger: logger}
}

// ShowInfo logs message at info level.
func (notifier *LoggerNotifier) ShowInfo(message string) {
	notifier.logger.Info(message)
}

var _ Notifier = (*LoggerNotifier)(nil)
