// Package async runs email ingestion on a bounded worker pool so webhook
// handlers can acknowledge providers immediately.
package async

import (
	"context"
	"errors"
	"sync"
	"time"

	"log/slog"

	"github.com/careflow-uk/fostermatch/internal/email"
	"github.com/careflow-uk/fostermatch/internal/entity"
)

// ErrShuttingDown is returned for enqueues after Shutdown has begun.
var ErrShuttingDown = errors.New("ingestion queue is shutting down")

// Ingestor is the slice of the email processor the workers call.
type Ingestor interface {
	Process(ctx context.Context, mail *entity.ParsedEmail) (email.ProcessResult, error)
}

// EmailQueue fans parsed emails out to ingestion workers.
type EmailQueue struct {
	proc    Ingestor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan *entity.ParsedEmail
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*EmailQueue)

func WithWorkers(n int) Option {
	return func(q *EmailQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *EmailQueue) {
		if n > 0 {
			q.ch = make(chan *entity.ParsedEmail, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *EmailQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewEmailQueue(proc Ingestor, logger *slog.Logger, opts ...Option) *EmailQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &EmailQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 2 * time.Minute,
		ch:      make(chan *entity.ParsedEmail, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *EmailQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("ingestion worker started", "worker_id", workerID)

				for mail := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					res, err := q.proc.Process(ctx, mail)
					cancel()

					switch {
					case err != nil:
						q.logger.Error("ingestion failed", "worker_id", workerID, "message_id", mail.MessageID, "error", err)
					case res.Duplicate:
						q.logger.Info("duplicate skipped", "worker_id", workerID, "message_id", mail.MessageID)
					default:
						q.logger.Info("ingestion complete", "worker_id", workerID, "message_id", mail.MessageID, "referral_id", res.ReferralID, "status", res.Status)
					}
				}

				q.logger.Info("ingestion worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue queues a parsed email, blocking when the buffer is full so webhook
// handlers apply backpressure instead of dropping mail.
func (q *EmailQueue) Enqueue(mail *entity.ParsedEmail) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "message_id", mail.MessageID)
		return ErrShuttingDown
	}
	select {
	case q.ch <- mail:
		q.logger.Info("queued email", "message_id", mail.MessageID)
	default:
		q.logger.Warn("queue full, applying backpressure", "message_id", mail.MessageID)
		q.ch <- mail
	}
	return nil
}

// Shutdown stops intake and drains in-flight work until ctx expires.
func (q *EmailQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
