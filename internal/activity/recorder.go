// Package activity provides the fire-and-forget mutation log sink. Business
// operations record through a bounded queue drained by one background
// goroutine, so a slow or failing log store can never add latency to, or
// change the outcome of, the operation that triggered the record.
package activity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
	"github.com/dench1k1ng/final-web-backend/internal/core/ports"
)

const insertTimeout = 5 * time.Second

type Recorder struct {
	repo    ports.ActivityRepository
	queue   chan domain.ActivityEntry
	done    chan struct{}
	wg      sync.WaitGroup
	closing sync.Once
}

var _ ports.ActivityRecorder = (*Recorder)(nil)

// NewRecorder starts the drain goroutine. queueSize bounds how many pending
// entries may pile up before new ones are dropped.
func NewRecorder(repo ports.ActivityRepository, queueSize int) *Recorder {
	if queueSize <= 0 {
		queueSize = 256
	}
	r := &Recorder{
		repo:  repo,
		queue: make(chan domain.ActivityEntry, queueSize),
		done:  make(chan struct{}),
	}
	r.wg.Add(1)
	go r.drain()
	return r
}

// Record enqueues an activity entry. It never blocks: when the queue is full
// the entry is dropped and the drop is logged.
func (r *Recorder) Record(action domain.ActivityAction, entityType domain.ActivityEntity, entityName, userID string) {
	entry := domain.ActivityEntry{
		ID:         uuid.NewString(),
		Action:     action,
		EntityType: entityType,
		EntityName: entityName,
		UserID:     userID,
		CreatedAt:  time.Now(),
	}

	select {
	case r.queue <- entry:
	default:
		zap.L().Warn("activity queue full, dropping entry",
			zap.String("action", string(action)),
			zap.String("entity_type", string(entityType)),
			zap.String("entity_name", entityName),
		)
	}
}

// Close stops accepting entries and waits for the queue to drain.
func (r *Recorder) Close() {
	r.closing.Do(func() {
		close(r.done)
	})
	r.wg.Wait()
}

func (r *Recorder) drain() {
	defer r.wg.Done()
	for {
		select {
		case entry := <-r.queue:
			r.insert(entry)
		case <-r.done:
			for {
				select {
				case entry := <-r.queue:
					r.insert(entry)
				default:
					return
				}
			}
		}
	}
}

func (r *Recorder) insert(entry domain.ActivityEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
	defer cancel()

	if err := r.repo.Insert(ctx, &entry); err != nil {
		zap.L().Warn("failed to record activity",
			zap.String("action", string(entry.Action)),
			zap.String("entity_type", string(entry.EntityType)),
			zap.Error(err),
		)
	}
}
