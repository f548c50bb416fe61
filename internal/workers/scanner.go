package workers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/wchklaus97/remind-me/internal/dates"
	"github.com/wchklaus97/remind-me/internal/persistence"
	"github.com/wchklaus97/remind-me/internal/queue"
)

// Scanner watches the reminder collection for active reminders crossing their
// due date and enqueues a notification job for each crossing. A reminder is
// notified at most once per process: completed-then-reopened reminders are
// picked up again because the notified set is keyed by id and cleared when a
// reminder disappears or is no longer past due.
type Scanner struct {
	engine     *persistence.Engine
	jobQueue   queue.JobQueue
	logger     *zap.Logger
	interval   time.Duration
	staleAfter time.Duration

	notified map[string]bool
}

// NewScanner creates a due-reminder scanner
func NewScanner(engine *persistence.Engine, jobQueue queue.JobQueue, logger *zap.Logger, interval, staleAfter time.Duration) *Scanner {
	return &Scanner{
		engine:     engine,
		jobQueue:   jobQueue,
		logger:     logger,
		interval:   interval,
		staleAfter: staleAfter,
		notified:   make(map[string]bool),
	}
}

// Run scans on every tick until the context is cancelled
func (s *Scanner) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("due_scanner_started",
		zap.Duration("interval", s.interval),
		zap.Duration("stale_after", s.staleAfter),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("due_scanner_stopped")
			return
		case <-ticker.C:
			s.ScanOnce(ctx)
		}
	}
}

// ScanOnce performs one pass over the reminder collection and enqueues a job
// for every active reminder that is newly past its due date. Enqueue failures
// are logged and retried on the next tick; they never stop the scan.
func (s *Scanner) ScanOnce(ctx context.Context) int {
	reminders, _ := s.engine.LoadReminders(ctx)

	seen := make(map[string]bool, len(reminders))
	enqueued := 0

	for _, r := range reminders {
		due := !r.Completed && dates.IsOverdue(r.DueDate)
		if due {
			seen[r.ID] = true
		}
		if !due || s.notified[r.ID] {
			continue
		}

		job := queue.NewDueReminderJob(r, s.staleAfter)
		if err := s.jobQueue.Enqueue(ctx, job); err != nil {
			s.logger.Warn("due_job_enqueue_failed",
				zap.String("reminder_id", r.ID),
				zap.Error(err),
			)
			continue
		}

		s.notified[r.ID] = true
		enqueued++
		s.logger.Info("due_job_enqueued",
			zap.String("reminder_id", r.ID),
			zap.String("job_id", job.ID.String()),
			zap.String("due_date", r.DueDate),
		)
	}

	// Forget reminders that are no longer due so a reopened or rescheduled
	// reminder gets notified again when it next crosses its due date.
	for id := range s.notified {
		if !seen[id] {
			delete(s.notified, id)
		}
	}

	return enqueued
}
