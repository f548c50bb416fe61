package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/wchklaus97/remind-me/internal/models"
)

// JobType represents the type of job
type JobType string

const (
	// JobTypeDueReminder is a notification job for a reminder whose due date
	// has passed while it was still active.
	JobTypeDueReminder JobType = "due_reminder"
)

// Job represents a notification job in the queue
type Job struct {
	ID         uuid.UUID  `json:"id"`
	Type       JobType    `json:"type"`
	ReminderID string     `json:"reminder_id"`
	Title      string     `json:"title"`
	DueDate    string     `json:"due_date"`
	NotAfter   *time.Time `json:"not_after,omitempty"` // Latest time the notification is still worth delivering
	CreatedAt  time.Time  `json:"created_at"`
	RetryCount int        `json:"retry_count"`
	MaxRetries int        `json:"max_retries"`
}

// NewDueReminderJob creates a notification job for a due reminder. The job
// expires after staleAfter: a notification about a reminder that went due
// hours ago is noise, not help.
func NewDueReminderJob(r models.Reminder, staleAfter time.Duration) *Job {
	job := &Job{
		ID:         uuid.New(),
		Type:       JobTypeDueReminder,
		ReminderID: r.ID,
		Title:      r.Title,
		DueDate:    r.DueDate,
		CreatedAt:  time.Now(),
		RetryCount: 0,
		MaxRetries: 3,
	}
	if staleAfter > 0 {
		notAfter := job.CreatedAt.Add(staleAfter)
		job.NotAfter = &notAfter
	}
	return job
}

// Expired reports whether the job's delivery window has passed.
func (j *Job) Expired() bool {
	return j.NotAfter != nil && time.Now().After(*j.NotAfter)
}

// CanRetry checks if the job can be retried
func (j *Job) CanRetry() bool {
	return j.RetryCount < j.MaxRetries
}

// IncrementRetry increments the retry count
func (j *Job) IncrementRetry() {
	j.RetryCount++
}
