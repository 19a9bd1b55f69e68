package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	ResourceDashboard     = "/dashboard"
	resourceAccountPrefix = "/account/"
)

// AccountResource returns the cache key of an account's detail view.
func AccountResource(accountID uuid.UUID) string {
	return resourceAccountPrefix + accountID.String()
}

// InvalidationEvent tells presentation layers that a cached view is stale.
type InvalidationEvent struct {
	Resource   string    `json:"resource"`
	UserID     uuid.UUID `json:"user_id"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}

// InProcessInvalidator fans events out to in-process subscribers. Slow
// subscribers drop events rather than block the publisher.
type InProcessInvalidator struct {
	mu          sync.RWMutex
	subscribers map[int]chan InvalidationEvent
	nextID      int
	dropped     atomic.Int64
}

func NewInProcessInvalidator() *InProcessInvalidator {
	return &InProcessInvalidator{
		subscribers: make(map[int]chan InvalidationEvent),
	}
}

// Subscribe registers a buffered channel. The returned function unsubscribes
// and closes the channel.
func (n *InProcessInvalidator) Subscribe(buffer int) (<-chan InvalidationEvent, func()) {
	if buffer < 1 {
		buffer = 1
	}

	n.mu.Lock()
	id := n.nextID
	n.nextID++
	ch := make(chan InvalidationEvent, buffer)
	n.subscribers[id] = ch
	n.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subscribers, id)
			n.mu.Unlock()
			close(ch)
		})
	}
}

func (n *InProcessInvalidator) Notify(ctx context.Context, event InvalidationEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, ch := range n.subscribers {
		select {
		case ch <- event:
		default:
			n.dropped.Add(1)
		}
	}
	return nil
}

// Dropped reports how many deliveries were skipped because a subscriber was full.
func (n *InProcessInvalidator) Dropped() int64 {
	return n.dropped.Load()
}

// RedisInvalidator appends events to a capped Redis stream.
type RedisInvalidator struct {
	client         redis.Cmdable
	stream         string
	maxLen         int64
	circuitBreaker CircuitBreakerInterface
}

func NewRedisInvalidator(client redis.Cmdable, stream string, maxLen int64, circuitBreaker CircuitBreakerInterface) *RedisInvalidator {
	return &RedisInvalidator{
		client:         client,
		stream:         stream,
		maxLen:         maxLen,
		circuitBreaker: circuitBreaker,
	}
}

func (n *RedisInvalidator) Notify(ctx context.Context, event InvalidationEvent) error {
	if n.circuitBreaker != nil && n.circuitBreaker.IsOpen() {
		return ErrCircuitBreakerOpen
	}

	err := n.client.XAdd(ctx, &redis.XAddArgs{
		Stream: n.stream,
		MaxLen: n.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"resource":    event.Resource,
			"user_id":     event.UserID.String(),
			"reason":      event.Reason,
			"occurred_at": event.OccurredAt.UTC().Format(time.RFC3339Nano),
		},
	}).Err()
	if err != nil {
		if n.circuitBreaker != nil {
			n.circuitBreaker.RecordFailure()
		}
		return fmt.Errorf("failed to publish invalidation to %s: %w", n.stream, err)
	}

	if n.circuitBreaker != nil {
		n.circuitBreaker.RecordSuccess()
	}
	return nil
}

// FanoutInvalidator delivers each event to every notifier and joins the errors.
type FanoutInvalidator struct {
	notifiers []InvalidationNotifierInterface
}

func NewFanoutInvalidator(notifiers ...InvalidationNotifierInterface) *FanoutInvalidator {
	return &FanoutInvalidator{notifiers: notifiers}
}

func (n *FanoutInvalidator) Notify(ctx context.Context, event InvalidationEvent) error {
	var errs []error
	for _, notifier := range n.notifiers {
		if err := notifier.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
