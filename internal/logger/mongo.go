package logger

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
)

// NewCommandMonitor returns a Mongo command monitor that logs every
// command through zerolog.
//
// Started commands are logged at debug level. Succeeded commands are
// logged at debug, or at warn when they exceed slowThreshold (zero
// disables slow detection). Failed commands are logged at error.
//
// This is noisy, so it is only installed in the local environment.
func NewCommandMonitor(logger zerolog.Logger, slowThreshold time.Duration) *event.CommandMonitor {
	log := logger.With().Str("component", "mongo").Logger()

	return &event.CommandMonitor{
		Started: func(_ context.Context, e *event.CommandStartedEvent) {
			log.Debug().
				Int64("request_id", e.RequestID).
				Str("command", e.CommandName).
				Str("database", e.DatabaseName).
				Msg("mongo command started")
		},
		Succeeded: func(_ context.Context, e *event.CommandSucceededEvent) {
			evt := log.Debug()
			if slowThreshold > 0 && e.Duration >= slowThreshold {
				evt = log.Warn().Bool("slow", true)
			}
			evt.
				Int64("request_id", e.RequestID).
				Str("command", e.CommandName).
				Dur("duration", e.Duration).
				Msg("mongo command succeeded")
		},
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			log.Error().
				Int64("request_id", e.RequestID).
				Str("command", e.CommandName).
				Dur("duration", e.Duration).
				Str("failure", e.Failure).
				Msg("mongo command failed")
		},
	}
}
