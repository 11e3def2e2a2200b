package events

import (
	"github.com/foodops/stockbook/pkg/mlog"
)

// LoggerSubscriber forwards the bus's log events to the application logger. It
// ignores every non-log event and never fails.
type LoggerSubscriber struct {
	logger mlog.Logger
}

// NewLoggerSubscriber creates the forwarding subscriber.
func NewLoggerSubscriber(logger mlog.Logger) *LoggerSubscriber {
	return &LoggerSubscriber{logger: logger}
}

// Key identifies the logger subscriber. One per bus is enough.
func (s *LoggerSubscriber) Key() string {
	return "logger"
}

// Handle forwards log payloads to the matching logger level.
func (s *LoggerSubscriber) Handle(kind Kind, payload any) error {
	p, ok := payload.(LogPayload)
	if !ok {
		return nil
	}

	switch kind {
	case LogDebug:
		s.logger.Debug(p.Message)
	case LogInfo:
		s.logger.Info(p.Message)
	case LogWarning:
		s.logger.Warn(p.Message)
	case LogError:
		s.logger.Error(p.Message)
	}

	return nil
}
