package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careflow-uk/fostermatch/internal/email"
	"github.com/careflow-uk/fostermatch/internal/entity"
)

type countingIngestor struct {
	mu        sync.Mutex
	processed []string
	block     chan struct{}
}

func (c *countingIngestor) Process(_ context.Context, mail *entity.ParsedEmail) (email.ProcessResult, error) {
	if c.block != nil {
		<-c.block
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.processed = append(c.processed, mail.MessageID)
	return email.ProcessResult{}, nil
}

func (c *countingIngestor) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.processed)
}

func mail(id string) *entity.ParsedEmail {
	return &entity.ParsedEmail{MessageID: id, ReceivedAt: time.Now()}
}

func TestEmailQueue_ProcessesAllEnqueued(t *testing.T) {
	ing := &countingIngestor{}
	q := NewEmailQueue(ing, nil, WithWorkers(2), WithQueueSize(16))

	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, q.Enqueue(mail(id)))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Equal(t, 4, ing.count())
}

func TestEmailQueue_EnqueueAfterShutdownFails(t *testing.T) {
	ing := &countingIngestor{}
	q := NewEmailQueue(ing, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	err := q.Enqueue(mail("late"))
	assert.ErrorIs(t, err, ErrShuttingDown)
}

func TestEmailQueue_ShutdownDrainsInFlight(t *testing.T) {
	ing := &countingIngestor{block: make(chan struct{})}
	q := NewEmailQueue(ing, nil, WithWorkers(1), WithQueueSize(4))

	require.NoError(t, q.Enqueue(mail("slow")))

	done := make(chan struct{})
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		q.Shutdown(ctx)
		close(done)
	}()

	// shutdown must wait for the in-flight job
	select {
	case <-done:
		t.Fatal("shutdown returned before in-flight work finished")
	case <-time.After(50 * time.Millisecond):
	}

	close(ing.block)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not complete after work finished")
	}
	assert.Equal(t, 1, ing.count())
}

func TestEmailQueue_ShutdownIdempotent(t *testing.T) {
	q := NewEmailQueue(&countingIngestor{}, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx)
}
