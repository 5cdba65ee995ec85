package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"xoadvisor/models"
	"xoadvisor/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorder struct {
	mu     sync.Mutex
	events []models.SessionEvent
}

func (r *recorder) add(ev models.SessionEvent) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestMain(m *testing.M) {
	utils.SetLogger(zap.NewNop())
	m.Run()
}

func TestHub_LocalDelivery(t *testing.T) {
	hub := NewHub(nil)
	rec := &recorder{}
	cancel := hub.Subscribe(rec.add)

	require.NoError(t, hub.Publish(context.Background(), models.SessionEvent{Type: models.SessionSignedIn, UserID: "u1"}))
	assert.Equal(t, 1, rec.count())

	cancel()
	cancel()
	require.NoError(t, hub.Publish(context.Background(), models.SessionEvent{Type: models.SessionSignedOut, UserID: "u1"}))
	assert.Equal(t, 1, rec.count())
}

func TestHub_RedisBridgeReachesEveryInstance(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	newClient := func() *redis.Client { return redis.NewClient(&redis.Options{Addr: mr.Addr()}) }
	a, b := NewHub(newClient()), NewHub(newClient())
	require.NoError(t, a.Start(ctx))
	require.NoError(t, b.Start(ctx))

	recA, recB := &recorder{}, &recorder{}
	a.Subscribe(recA.add)
	b.Subscribe(recB.add)

	require.NoError(t, a.Publish(ctx, models.SessionEvent{Type: models.SessionSignedOut, UserID: "u1", SessionID: "s1"}))

	assert.Eventually(t, func() bool { return recA.count() == 1 && recB.count() == 1 }, 2*time.Second, 10*time.Millisecond)
	recB.mu.Lock()
	assert.Equal(t, "s1", recB.events[0].SessionID)
	assert.Equal(t, models.SessionSignedOut, recB.events[0].Type)
	recB.mu.Unlock()
}
