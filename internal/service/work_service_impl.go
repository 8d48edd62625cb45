package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nost-not/nost/internal/annotation"
	"github.com/nost-not/nost/internal/domain"
	"github.com/nost-not/nost/internal/notestore"
	"github.com/nost-not/nost/internal/work"
)

type workService struct {
	store    *notestore.Store
	notes    NoteService
	scanner  *annotation.Scanner
	observer PipelineObserver
	now      func() time.Time
}

// NewWorkService returns a WorkService recording sessions through the given
// store. Decode diagnostics go to the logger; pipeline telemetry to the
// first non-nil observer, if any.
func NewWorkService(store *notestore.Store, notes NoteService, logger *slog.Logger, observers ...PipelineObserver) WorkService {
	return &workService{
		store:    store,
		notes:    notes,
		scanner:  annotation.NewScanner(logger),
		observer: pipelineObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *workService) StartWork(ctx context.Context, workday string) (string, error) {
	path, err := s.notes.GetOrCreate(ctx)
	if err != nil {
		return "", err
	}

	line := annotation.Encode(s.now(), domain.EventStartWork, uuid.New(), workday)
	if err := s.store.Append(path, line); err != nil {
		return "", err
	}
	return path, nil
}

func (s *workService) EndWork(ctx context.Context) (string, error) {
	now := s.now()
	today := now.Format("2006-01-02")

	last, err := s.store.LastWorkAnnotation()
	if err != nil {
		return "", err
	}

	path, err := s.notes.GetOrCreate(ctx)
	if err != nil {
		return "", err
	}

	if last != nil && last.Record.Event == domain.EventStartWork {
		active := last.Record.Day()
		if active != today {
			if err := s.splitOvernight(last, active, today, now, path); err != nil {
				return "", err
			}
		}
	}

	line := annotation.Encode(now, domain.EventStopWork, uuid.New(), today)
	if err := s.store.Append(path, line); err != nil {
		return "", err
	}
	return path, nil
}

// splitOvernight closes a session left open from an earlier workday at the
// end of that workday and reopens it at the start of today, so each half is
// attributed to its own day.
func (s *workService) splitOvernight(last *notestore.LastAnnotation, active, today string, now time.Time, todayNote string) error {
	day, err := time.ParseInLocation("2006-01-02", active, now.Location())
	if err != nil {
		// unusable workday tag; leave the session for the stop to close
		return nil
	}

	endOfDay := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 999999999, now.Location())
	stop := annotation.Encode(endOfDay, domain.EventStopWork, uuid.New(), active)
	if err := s.store.Append(last.Path, stop); err != nil {
		return err
	}

	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := annotation.Encode(startOfToday, domain.EventStartWork, uuid.New(), today)
	return s.store.Append(todayNote, start)
}

func (s *workService) MonthlyStats(ctx context.Context, month string) (domain.PeriodStats, error) {
	started := s.now()

	sources, err := s.store.ReadAll(s.store.MonthDir(month))
	if err != nil {
		s.observer.ObservePipeline(ctx, PipelineEvent{
			Month:    month,
			Duration: time.Since(started),
			Err:      err,
		})
		return domain.PeriodStats{}, err
	}

	records, failures := s.scanner.Scan(sources)
	filtered := annotation.FilterByEvents(records, domain.EventStartWork, domain.EventStopWork)
	stats := work.ComputePeriodStats(filtered)

	s.observer.ObservePipeline(ctx, PipelineEvent{
		Month:    month,
		Sources:  len(sources),
		Decoded:  len(records),
		Failed:   len(failures),
		Duration: time.Since(started),
	})
	return stats, nil
}
