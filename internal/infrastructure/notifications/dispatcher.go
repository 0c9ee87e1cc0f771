// Package notifications delivers user notifications off the request path.
package notifications

import (
	"context"
	"log"
	"sync"
	"time"

	"startlabx/internal/domain/entities"
	"startlabx/internal/infrastructure/metrics"
	"startlabx/internal/usecase/interfaces"
)

const deliveryTimeout = 5 * time.Second

// Dispatcher queues notifications on a bounded channel and persists them from a
// single worker goroutine, then hands them to the optional publisher. Notify
// never blocks: when the queue is full or the dispatcher is closed the
// notification is dropped and counted.
type Dispatcher struct {
	repo      interfaces.INotificationRepository
	publisher interfaces.INotificationPublisher

	mu     sync.RWMutex
	closed bool
	queue  chan entities.Notification
	done   chan struct{}
}

var _ interfaces.INotifier = (*Dispatcher)(nil)

// NewDispatcher starts the worker. publisher may be nil.
func NewDispatcher(repo interfaces.INotificationRepository, publisher interfaces.INotificationPublisher, buffer int) *Dispatcher {
	if buffer < 1 {
		buffer = 1
	}
	d := &Dispatcher{
		repo:      repo,
		publisher: publisher,
		queue:     make(chan entities.Notification, buffer),
		done:      make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) Notify(_ context.Context, n entities.Notification) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(n, "closed")
		return
	}
	select {
	case d.queue <- n:
		metrics.NotificationQueueDepth.Inc()
	default:
		d.drop(n, "queue_full")
	}
}

// Close stops accepting notifications and waits for the queued ones to be
// delivered, or for ctx to end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for n := range d.queue {
		metrics.NotificationQueueDepth.Dec()
		d.deliver(n)
	}
}

func (d *Dispatcher) deliver(n entities.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	if _, err := d.repo.Create(ctx, n); err != nil {
		log.Printf("[notification][dispatcher] persist failed id=%s user_id=%s type=%s err=%v", n.ID, n.UserID, n.Type, err)
		metrics.NotificationsDropped.WithLabelValues("persist_failed").Inc()
		return
	}
	metrics.NotificationsDelivered.Inc()

	if d.publisher == nil {
		return
	}
	if err := d.publisher.Publish(ctx, n); err != nil {
		log.Printf("[notification][dispatcher] publish failed id=%s user_id=%s err=%v", n.ID, n.UserID, err)
	}
}

func (d *Dispatcher) drop(n entities.Notification, reason string) {
	log.Printf("[notification][dispatcher] dropped id=%s user_id=%s type=%s reason=%s", n.ID, n.UserID, n.Type, reason)
	metrics.NotificationsDropped.WithLabelValues(reason).Inc()
}
