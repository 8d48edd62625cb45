package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// PipelineEvent captures lightweight execution telemetry for one
// scan-filter-aggregate run.
type PipelineEvent struct {
	Month    string
	Sources  int
	Decoded  int
	Failed   int
	Duration time.Duration
	Err      error
}

// PipelineObserver receives aggregation pipeline events.
type PipelineObserver interface {
	ObservePipeline(ctx context.Context, event PipelineEvent)
}

// NoopPipelineObserver ignores all events.
type NoopPipelineObserver struct{}

func (NoopPipelineObserver) ObservePipeline(context.Context, PipelineEvent) {}

type logPipelineObserver struct {
	logger *slog.Logger
}

// NewLogPipelineObserver writes pipeline events to the provided writer.
func NewLogPipelineObserver(w io.Writer) PipelineObserver {
	if w == nil {
		return NoopPipelineObserver{}
	}
	return &logPipelineObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logPipelineObserver) ObservePipeline(ctx context.Context, event PipelineEvent) {
	attrs := []any{
		"month", event.Month,
		"sources", event.Sources,
		"decoded", event.Decoded,
		"failed", event.Failed,
		"duration_ms", event.Duration.Milliseconds(),
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "work_stats_pipeline", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "work_stats_pipeline", attrs...)
}

func pipelineObserverOrNoop(observers []PipelineObserver) PipelineObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopPipelineObserver{}
}
