package workers

import (
	"context"

	"go.uber.org/zap"

	"github.com/wchklaus97/remind-me/internal/queue"
)

// Notifier consumes due-reminder jobs and delivers them. Delivery here means
// emitting a structured notification record; a push or email channel would
// hang off the same consume loop.
type Notifier struct {
	jobQueue queue.JobQueue
	logger   *zap.Logger
	prefetch int
}

// NewNotifier creates a new notifier
func NewNotifier(jobQueue queue.JobQueue, logger *zap.Logger, prefetch int) *Notifier {
	return &Notifier{jobQueue: jobQueue, logger: logger, prefetch: prefetch}
}

// Run consumes jobs until the context is cancelled or the message channel
// closes.
func (n *Notifier) Run(ctx context.Context) error {
	messages, errs, err := n.jobQueue.Consume(ctx, n.prefetch)
	if err != nil {
		return err
	}

	n.logger.Info("notifier_started", zap.Int("prefetch", n.prefetch))

	for {
		select {
		case <-ctx.Done():
			n.logger.Info("notifier_stopped")
			return ctx.Err()
		case consumeErr, ok := <-errs:
			if !ok {
				return nil
			}
			n.logger.Error("notifier_consume_error", zap.Error(consumeErr))
		case msg, ok := <-messages:
			if !ok {
				n.logger.Info("notifier_channel_closed")
				return nil
			}
			n.handle(msg)
		}
	}
}

func (n *Notifier) handle(msg queue.MessageInterface) {
	job := msg.GetJob()
	if job == nil || job.Type != queue.JobTypeDueReminder {
		// Not a job this worker understands. Dead-letter it.
		if err := msg.Nack(false); err != nil {
			n.logger.Warn("notifier_nack_failed", zap.Error(err))
		}
		return
	}

	if job.Expired() {
		n.logger.Info("due_notification_dropped_stale",
			zap.String("reminder_id", job.ReminderID),
			zap.String("job_id", job.ID.String()),
		)
		if err := msg.Nack(false); err != nil {
			n.logger.Warn("notifier_nack_failed", zap.Error(err))
		}
		return
	}

	n.logger.Info("reminder_due",
		zap.String("reminder_id", job.ReminderID),
		zap.String("title", job.Title),
		zap.String("due_date", job.DueDate),
		zap.String("job_id", job.ID.String()),
	)

	if err := msg.Ack(); err != nil {
		n.logger.Warn("notifier_ack_failed",
			zap.String("job_id", job.ID.String()),
			zap.Error(err),
		)
	}
}
