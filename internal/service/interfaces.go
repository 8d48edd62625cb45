// Package service wires the annotation pipeline and the note store into the
// use cases the CLI exposes.
package service

import (
	"context"

	"github.com/nost-not/nost/internal/domain"
)

// NoteService manages daily note files.
type NoteService interface {
	// Create creates today's note, optionally under a custom title, and
	// returns its path. Creating an existing note is a no-op.
	Create(ctx context.Context, title string) (string, error)
	// GetOrCreate returns today's note path, creating the note if needed.
	GetOrCreate(ctx context.Context) (string, error)
}

// WorkService records work sessions and aggregates them into statistics.
type WorkService interface {
	// StartWork appends a session-start annotation tagged with the given
	// workday to today's note and returns the note path.
	StartWork(ctx context.Context, workday string) (string, error)
	// EndWork closes the active session. A session left open from an
	// earlier workday is split at midnight: it is closed at the end of its
	// own workday and a fresh session is opened at the start of today.
	EndWork(ctx context.Context) (string, error)
	// MonthlyStats aggregates the work annotations of a YYYY-MM month.
	MonthlyStats(ctx context.Context, month string) (domain.PeriodStats, error)
}
