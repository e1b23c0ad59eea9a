package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/raushankrgupta/skincare-storefront/logx"
	"github.com/raushankrgupta/skincare-storefront/models"
	"github.com/raushankrgupta/skincare-storefront/storage"
)

type Store struct {
	mu      sync.Mutex
	state   State
	storage storage.Storage
}

func NewStore(s storage.Storage) *Store {
	return &Store{state: State{Items: []models.CartItem{}}, storage: s}
}

// Load rehydrates the cart from storage. Unreadable data leaves the cart empty.
func (s *Store) Load(ctx context.Context) {
	var items []models.CartItem
	err := storage.LoadJSON(ctx, s.storage, storage.KeyCartItems, &items)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return
	case err != nil:
		logx.Warn().Err(err).Msg("error loading cart from storage")
		items = nil
	}

	s.mu.Lock()
	s.state = Reduce(s.state, LoadCart{Items: items})
	s.mu.Unlock()
}

func (s *Store) dispatch(ctx context.Context, a Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	items := clone(s.state.Items)
	s.mu.Unlock()

	if err := storage.SaveJSON(ctx, s.storage, storage.KeyCartItems, items); err != nil {
		logx.Error().Err(err).Msg("error saving cart to storage")
	}
}

func (s *Store) AddItem(ctx context.Context, product models.Product, quantity int) {
	s.dispatch(ctx, AddItem{Product: product, Quantity: quantity})
}

func (s *Store) UpdateQuantity(ctx context.Context, itemID string, quantity int) {
	s.dispatch(ctx, UpdateQuantity{ItemID: itemID, Quantity: quantity})
}

func (s *Store) RemoveItem(ctx context.Context, itemID string) {
	s.dispatch(ctx, RemoveItem{ItemID: itemID})
}

func (s *Store) ClearCart(ctx context.Context) {
	s.dispatch(ctx, ClearCart{})
}

// Items returns a copy of the cart lines.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.state.Items)
}

func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TotalItems()
}

func (s *Store) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TotalPrice()
}
