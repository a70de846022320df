package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// OperationEvent captures lightweight execution telemetry for one engine
// operation (a move or bulk reorder).
type OperationEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// OperationObserver receives engine operation events.
type OperationObserver interface {
	ObserveOperation(ctx context.Context, event OperationEvent)
}

// NoopOperationObserver ignores all events.
type NoopOperationObserver struct{}

func (NoopOperationObserver) ObserveOperation(context.Context, OperationEvent) {}

type logOperationObserver struct {
	logger *slog.Logger
}

// NewLogOperationObserver writes engine operation events to the provided writer.
func NewLogOperationObserver(w io.Writer) OperationObserver {
	if w == nil {
		return NoopOperationObserver{}
	}
	return &logOperationObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logOperationObserver) ObserveOperation(ctx context.Context, event OperationEvent) {
	attrs := make([]any, 0, 8+len(event.Fields)*2)
	attrs = append(attrs,
		"operation", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "menu_operation", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "menu_operation", attrs...)
}

func operationObserverOrNoop(observers []OperationObserver) OperationObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopOperationObserver{}
}
