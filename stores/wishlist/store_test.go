package wishlist

import (
	"context"
	"testing"

	"github.com/raushankrgupta/skincare-storefront/catalog"
	"github.com/raushankrgupta/skincare-storefront/models"
	"github.com/raushankrgupta/skincare-storefront/notify"
	"github.com/raushankrgupta/skincare-storefront/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(t *testing.T, id string) models.Product {
	t.Helper()
	p, ok := catalog.GetProductByID(id)
	require.True(t, ok)
	return p
}

func TestAddTwiceKeepsOneEntry(t *testing.T) {
	ctx := context.Background()
	rec := &notify.Recorder{}
	s := NewStore(storage.NewMemoryStorage(), rec)

	p := product(t, "5")
	s.AddToWishlist(ctx, p)
	s.AddToWishlist(ctx, p)

	assert.Equal(t, 1, s.Count())
	notices := rec.Drain()
	require.Len(t, notices, 2)
	assert.Equal(t, notify.LevelSuccess, notices[0].Level)
	assert.Equal(t, "Vitamin C Serum ditambahkan ke wishlist", notices[0].Title)
	assert.Equal(t, notify.LevelInfo, notices[1].Level)
	assert.Equal(t, "Vitamin C Serum sudah ada di wishlist", notices[1].Title)
}

func TestToggleTwiceRestoresMembership(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.NewMemoryStorage(), nil)
	a, b := product(t, "1"), product(t, "2")
	s.AddToWishlist(ctx, a)

	for _, p := range []models.Product{a, b} {
		before := s.IsInWishlist(p.ID)
		s.ToggleWishlist(ctx, p)
		assert.NotEqual(t, before, s.IsInWishlist(p.ID))
		s.ToggleWishlist(ctx, p)
		assert.Equal(t, before, s.IsInWishlist(p.ID))
	}
	assert.Equal(t, 1, s.Count())
}

func TestRemoveMissingIsSilent(t *testing.T) {
	rec := &notify.Recorder{}
	s := NewStore(storage.NewMemoryStorage(), rec)
	s.RemoveFromWishlist(context.Background(), "404")
	assert.Empty(t, rec.Drain())
}

func TestPersistAndReload(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStorage()
	s := NewStore(mem, nil)
	s.AddToWishlist(ctx, product(t, "1"))
	s.AddToWishlist(ctx, product(t, "7"))
	s.RemoveFromWishlist(ctx, "1")

	reloaded := NewStore(mem, nil)
	reloaded.Load(ctx)
	require.Equal(t, 1, reloaded.Count())
	assert.True(t, reloaded.IsInWishlist("7"))
	assert.Equal(t, s.Items(), reloaded.Items())

	rec := &notify.Recorder{}
	s.notifier = rec
	s.ClearWishlist(ctx)
	assert.Equal(t, "Wishlist berhasil dikosongkan", rec.Drain()[0].Title)
	cleared := NewStore(mem, nil)
	cleared.Load(ctx)
	assert.Zero(t, cleared.Count())
}

func TestLoadDropsDuplicatesAndCorruption(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStorage()
	require.NoError(t, storage.SaveJSON(ctx, mem, storage.KeyWishlistItems,
		[]models.Product{product(t, "1"), product(t, "1"), product(t, "2")}))

	s := NewStore(mem, nil)
	s.Load(ctx)
	assert.Equal(t, 2, s.Count())

	require.NoError(t, mem.Set(ctx, storage.KeyWishlistItems, []byte("nope")))
	corrupt := NewStore(mem, nil)
	corrupt.Load(ctx)
	assert.Zero(t, corrupt.Count())
}
