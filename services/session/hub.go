package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"xoadvisor/models"
	"xoadvisor/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Hub fans session events out to subscribers. With a Redis client attached,
// events travel through the shared channel so every instance delivers them;
// without one they are delivered in process.
type Hub struct {
	mu      sync.RWMutex
	subs    map[uint64]func(models.SessionEvent)
	nextID  uint64
	rdb     *redis.Client
	channel string
}

// NewHub creates a hub. rdb may be nil.
func NewHub(rdb *redis.Client) *Hub {
	return &Hub{
		subs:    make(map[uint64]func(models.SessionEvent)),
		rdb:     rdb,
		channel: utils.SessionEventsChannel,
	}
}

// Subscribe registers fn for every event and returns its cancel function.
// fn must not block.
func (h *Hub) Subscribe(fn func(models.SessionEvent)) (cancel func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Publish announces ev.
func (h *Hub) Publish(ctx context.Context, ev models.SessionEvent) error {
	if h.rdb == nil {
		h.dispatch(ev)
		return nil
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal session event: %w", err)
	}
	if err := h.rdb.Publish(ctx, h.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish session event: %w", err)
	}
	return nil
}

// Start subscribes to the Redis channel and relays messages to local
// subscribers until ctx is done. It returns once the subscription is live.
func (h *Hub) Start(ctx context.Context) error {
	if h.rdb == nil {
		return nil
	}
	ps := h.rdb.Subscribe(ctx, h.channel)
	if _, err := ps.Receive(ctx); err != nil {
		ps.Close()
		return fmt.Errorf("failed to subscribe to %s: %w", h.channel, err)
	}

	ch := ps.Channel()
	go func() {
		defer ps.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var ev models.SessionEvent
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					utils.GetLogger().Warn("Dropping malformed session event", zap.Error(err))
					continue
				}
				h.dispatch(ev)
			}
		}
	}()
	return nil
}

func (h *Hub) dispatch(ev models.SessionEvent) {
	h.mu.RLock()
	fns := make([]func(models.SessionEvent), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}
