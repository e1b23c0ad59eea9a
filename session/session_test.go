package session

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/raushankrgupta/skincare-storefront/catalog"
	"github.com/raushankrgupta/skincare-storefront/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	m := NewManager(storage.NewMemoryStorage(), Options{})
	a := m.Create(ctx)
	b := m.Create(ctx)
	require.NotEqual(t, a.ID, b.ID)

	p, _ := catalog.GetProductByID("1")
	a.Cart.AddItem(ctx, p, 2)
	assert.Equal(t, 2, a.Cart.TotalItems())
	assert.Zero(t, b.Cart.TotalItems())
}

func TestSharedDirectoryAcrossSessions(t *testing.T) {
	ctx := context.Background()
	m := NewManager(storage.NewMemoryStorage(), Options{})
	_, err := m.Create(ctx).Auth.SignUp(ctx, "Rina", "rina@example.com", "pw")
	require.NoError(t, err)

	other := m.Create(ctx)
	_, err = other.Auth.SignIn(ctx, "rina@example.com", "pw")
	assert.NoError(t, err)
}

func TestGetRehydratesFromStorage(t *testing.T) {
	ctx := context.Background()
	base := storage.NewMemoryStorage()
	m := NewManager(base, Options{})
	sf := m.Create(ctx)
	p, _ := catalog.GetProductByID("2")
	sf.Cart.AddItem(ctx, p, 3)
	sf.Wishlist.AddToWishlist(ctx, p)

	restarted := NewManager(base, Options{})
	again, err := restarted.Get(ctx, sf.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, again.Cart.TotalItems())
	assert.True(t, again.Wishlist.IsInWishlist("2"))

	same, err := restarted.Get(ctx, sf.ID)
	require.NoError(t, err)
	assert.Same(t, again, same)

	_, err = restarted.Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestWatchRunsOncePerKey(t *testing.T) {
	m := NewManager(storage.NewMemoryStorage(), Options{})
	sf := m.Create(context.Background())

	var runs atomic.Int32
	started := sf.Watch("YLS1", func(ctx context.Context) {
		runs.Add(1)
		<-ctx.Done()
	})
	assert.True(t, started)
	assert.False(t, sf.Watch("YLS1", func(context.Context) { runs.Add(1) }))

	m.Drop(sf.ID)
	assert.Eventually(t, func() bool {
		return sf.Watch("YLS1", func(context.Context) {})
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
	assert.Zero(t, m.Len())
}

func TestEvictIdle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	base := storage.NewMemoryStorage()
	m := NewManager(base, Options{Now: func() time.Time { return now }})

	idle := m.Create(ctx)
	p, _ := catalog.GetProductByID("4")
	idle.Cart.AddItem(ctx, p, 2)
	busy := m.Create(ctx)
	busy.Watch("payment:YLS1", func(ctx context.Context) { <-ctx.Done() })
	defer busy.Close()

	now = now.Add(30 * time.Minute)
	active := m.Create(ctx)
	assert.Zero(t, m.EvictIdle(time.Hour))

	now = now.Add(45 * time.Minute)
	assert.Equal(t, 1, m.EvictIdle(time.Hour))
	assert.Equal(t, 2, m.Len())

	_, err := m.Get(ctx, active.ID)
	require.NoError(t, err)

	back, err := m.Get(ctx, idle.ID)
	require.NoError(t, err)
	assert.NotSame(t, idle, back)
	assert.Equal(t, 2, back.Cart.TotalItems())
}
