package logger

import (
	"context"
	log "log/slog"

	"go.mongodb.org/mongo-driver/event"
)

// NewMongoMonitor 记录 Mongo 命令执行情况
func NewMongoMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(ctx context.Context, e *event.CommandSucceededEvent) {
			log.InfoContext(ctx, "MONGO_CMD",
				log.String("command", e.CommandName),
				log.Duration("latency", e.Duration),
			)
		},
		Failed: func(ctx context.Context, e *event.CommandFailedEvent) {
			log.ErrorContext(ctx, "MONGO_CMD_ERROR",
				log.String("command", e.CommandName),
				log.Duration("latency", e.Duration),
				log.String("err", e.Failure),
			)
		},
	}
}
