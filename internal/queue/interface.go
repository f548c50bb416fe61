package queue

import (
	"context"
)

// MessageInterface defines the interface for queue messages
// This enables better testability by allowing mock implementations
type MessageInterface interface {
	Ack() error
	Nack(requeue bool) error
	GetJob() *Job
}

// JobQueue is the interface for notification job queues
type JobQueue interface {
	// Enqueue adds a job to the queue
	Enqueue(ctx context.Context, job *Job) error

	// Consume returns a channel of messages from the queue.
	// Messages are delivered asynchronously as they arrive and the caller is
	// responsible for acknowledging each one. Prefetch controls how many
	// unacknowledged messages the consumer can hold. The returned channels
	// are closed when the context is cancelled or an error occurs.
	Consume(ctx context.Context, prefetchCount int) (<-chan *Message, <-chan error, error)

	// Close closes the queue connection
	Close() error
}
