package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/wchklaus97/remind-me/internal/models"
	"github.com/wchklaus97/remind-me/internal/persistence"
	"github.com/wchklaus97/remind-me/internal/queue"
	"github.com/wchklaus97/remind-me/internal/storage"
)

type fakeQueue struct {
	jobs    []*queue.Job
	failing bool
}

func (q *fakeQueue) Enqueue(_ context.Context, job *queue.Job) error {
	if q.failing {
		return errors.New("broker unavailable")
	}
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeQueue) Consume(context.Context, int) (<-chan *queue.Message, <-chan error, error) {
	return nil, nil, errors.New("not implemented")
}

func (q *fakeQueue) Close() error { return nil }

type fakeMessage struct {
	job    *queue.Job
	acked  bool
	nacked bool
}

func (m *fakeMessage) Ack() error         { m.acked = true; return nil }
func (m *fakeMessage) Nack(bool) error    { m.nacked = true; return nil }
func (m *fakeMessage) GetJob() *queue.Job { return m.job }

func newTestEngine(t *testing.T, reminders []models.Reminder) *persistence.Engine {
	t.Helper()

	engine := persistence.NewEngine(storage.NewMemoryStore(), zap.NewNop())
	if err := engine.SaveReminders(context.Background(), reminders); err != nil {
		t.Fatalf("SaveReminders() error = %v", err)
	}
	return engine
}

func TestScanOnceEnqueuesDueReminders(t *testing.T) {
	t.Parallel()

	past := time.Now().Add(-time.Hour).Format(time.RFC3339)
	future := time.Now().Add(time.Hour).Format(time.RFC3339)

	engine := newTestEngine(t, []models.Reminder{
		{ID: "due-active", Title: "Due", DueDate: past},
		{ID: "due-completed", Title: "Done", DueDate: past, Completed: true},
		{ID: "future", Title: "Later", DueDate: future},
		{ID: "undated", Title: "Someday"},
	})

	q := &fakeQueue{}
	scanner := NewScanner(engine, q, zap.NewNop(), time.Minute, time.Hour)

	enqueued := scanner.ScanOnce(context.Background())
	if enqueued != 1 {
		t.Fatalf("ScanOnce() enqueued %d jobs, want 1", enqueued)
	}

	job := q.jobs[0]
	if job.ReminderID != "due-active" {
		t.Errorf("job reminder id = %q, want due-active", job.ReminderID)
	}
	if job.Type != queue.JobTypeDueReminder {
		t.Errorf("job type = %q, want %q", job.Type, queue.JobTypeDueReminder)
	}
	if job.NotAfter == nil {
		t.Error("job has no delivery window")
	}
}

func TestScanOnceDoesNotDoubleNotify(t *testing.T) {
	t.Parallel()

	past := time.Now().Add(-time.Hour).Format(time.RFC3339)
	engine := newTestEngine(t, []models.Reminder{
		{ID: "r1", Title: "Due", DueDate: past},
	})

	q := &fakeQueue{}
	scanner := NewScanner(engine, q, zap.NewNop(), time.Minute, time.Hour)

	ctx := context.Background()
	if got := scanner.ScanOnce(ctx); got != 1 {
		t.Fatalf("first scan enqueued %d, want 1", got)
	}
	if got := scanner.ScanOnce(ctx); got != 0 {
		t.Fatalf("second scan enqueued %d, want 0", got)
	}
}

func TestScanOnceRenotifiesAfterReopen(t *testing.T) {
	t.Parallel()

	past := time.Now().Add(-time.Hour).Format(time.RFC3339)
	reminder := models.Reminder{ID: "r1", Title: "Due", DueDate: past}
	engine := newTestEngine(t, []models.Reminder{reminder})

	q := &fakeQueue{}
	scanner := NewScanner(engine, q, zap.NewNop(), time.Minute, time.Hour)
	ctx := context.Background()

	scanner.ScanOnce(ctx)

	// Complete the reminder, scan, then reopen it. The completed scan must
	// clear the notified mark so the reopened reminder fires again.
	reminder.Completed = true
	if err := engine.SaveReminders(ctx, []models.Reminder{reminder}); err != nil {
		t.Fatalf("SaveReminders() error = %v", err)
	}
	if got := scanner.ScanOnce(ctx); got != 0 {
		t.Fatalf("completed scan enqueued %d, want 0", got)
	}

	reminder.Completed = false
	if err := engine.SaveReminders(ctx, []models.Reminder{reminder}); err != nil {
		t.Fatalf("SaveReminders() error = %v", err)
	}
	if got := scanner.ScanOnce(ctx); got != 1 {
		t.Fatalf("reopened scan enqueued %d, want 1", got)
	}
}

func TestScanOnceRetriesFailedEnqueue(t *testing.T) {
	t.Parallel()

	past := time.Now().Add(-time.Hour).Format(time.RFC3339)
	engine := newTestEngine(t, []models.Reminder{
		{ID: "r1", Title: "Due", DueDate: past},
	})

	q := &fakeQueue{failing: true}
	scanner := NewScanner(engine, q, zap.NewNop(), time.Minute, time.Hour)
	ctx := context.Background()

	if got := scanner.ScanOnce(ctx); got != 0 {
		t.Fatalf("failing scan enqueued %d, want 0", got)
	}

	// The broker comes back; the same reminder must be retried.
	q.failing = false
	if got := scanner.ScanOnce(ctx); got != 1 {
		t.Fatalf("recovered scan enqueued %d, want 1", got)
	}
}

func TestNotifierHandleAcksDueJob(t *testing.T) {
	t.Parallel()

	n := NewNotifier(&fakeQueue{}, zap.NewNop(), 1)
	job := queue.NewDueReminderJob(models.Reminder{ID: "r1", Title: "Due"}, time.Hour)

	msg := &fakeMessage{job: job}
	n.handle(msg)

	if !msg.acked || msg.nacked {
		t.Errorf("handle() acked=%v nacked=%v, want acked only", msg.acked, msg.nacked)
	}
}

func TestNotifierHandleDropsStaleJob(t *testing.T) {
	t.Parallel()

	n := NewNotifier(&fakeQueue{}, zap.NewNop(), 1)
	job := queue.NewDueReminderJob(models.Reminder{ID: "r1", Title: "Due"}, time.Hour)
	expired := time.Now().Add(-time.Minute)
	job.NotAfter = &expired

	msg := &fakeMessage{job: job}
	n.handle(msg)

	if msg.acked || !msg.nacked {
		t.Errorf("handle() acked=%v nacked=%v, want nacked only", msg.acked, msg.nacked)
	}
}

func TestNotifierHandleRejectsUnknownJob(t *testing.T) {
	t.Parallel()

	n := NewNotifier(&fakeQueue{}, zap.NewNop(), 1)
	job := queue.NewDueReminderJob(models.Reminder{ID: "r1"}, 0)
	job.Type = "mystery"

	msg := &fakeMessage{job: job}
	n.handle(msg)

	if msg.acked || !msg.nacked {
		t.Errorf("handle() acked=%v nacked=%v, want nacked only", msg.acked, msg.nacked)
	}
}
