// Package wishlist keeps the products a session has marked as favourites.
package wishlist

import (
	"context"
	"errors"
	"sync"

	"github.com/raushankrgupta/skincare-storefront/logx"
	"github.com/raushankrgupta/skincare-storefront/models"
	"github.com/raushankrgupta/skincare-storefront/notify"
	"github.com/raushankrgupta/skincare-storefront/storage"
)

type Store struct {
	mu       sync.Mutex
	items    []models.Product
	storage  storage.Storage
	notifier notify.Notifier
}

func NewStore(s storage.Storage, n notify.Notifier) *Store {
	if n == nil {
		n = notify.Discard{}
	}
	return &Store{items: []models.Product{}, storage: s, notifier: n}
}

// Load reads the persisted wishlist, dropping duplicate ids. Errors leave it empty.
func (s *Store) Load(ctx context.Context) {
	var items []models.Product
	err := storage.LoadJSON(ctx, s.storage, storage.KeyWishlistItems, &items)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logx.Warn().Err(err).Msg("error loading wishlist from storage")
		}
		return
	}

	seen := make(map[string]bool, len(items))
	unique := make([]models.Product, 0, len(items))
	for _, p := range items {
		if p.ID == "" || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		unique = append(unique, p)
	}

	s.mu.Lock()
	s.items = unique
	s.mu.Unlock()
}

// commit replaces the list and mirrors it to storage.
func (s *Store) commit(ctx context.Context, items []models.Product) {
	s.items = items
	snapshot := make([]models.Product, len(items))
	copy(snapshot, items)

	if err := storage.SaveJSON(ctx, s.storage, storage.KeyWishlistItems, snapshot); err != nil {
		logx.Error().Err(err).Msg("error saving wishlist to storage")
	}
}

func (s *Store) indexOf(id string) int {
	for i, p := range s.items {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// AddToWishlist appends product unless it is already present.
func (s *Store) AddToWishlist(ctx context.Context, product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(product.ID) >= 0 {
		s.notifier.Notify(notify.Info(product.Name + " sudah ada di wishlist"))
		return
	}

	items := make([]models.Product, 0, len(s.items)+1)
	items = append(items, s.items...)
	s.commit(ctx, append(items, product))
	s.notifier.Notify(notify.Success(product.Name + " ditambahkan ke wishlist"))
}

func (s *Store) RemoveFromWishlist(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	removed := s.items[i]

	items := make([]models.Product, 0, len(s.items)-1)
	items = append(items, s.items[:i]...)
	items = append(items, s.items[i+1:]...)
	s.commit(ctx, items)
	s.notifier.Notify(notify.Success(removed.Name + " dihapus dari wishlist"))
}

// ToggleWishlist removes product when present, adds it otherwise. It reports
// whether the product is in the wishlist afterwards.
func (s *Store) ToggleWishlist(ctx context.Context, product models.Product) bool {
	if s.IsInWishlist(product.ID) {
		s.RemoveFromWishlist(ctx, product.ID)
		return false
	}
	s.AddToWishlist(ctx, product)
	return true
}

func (s *Store) IsInWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(productID) >= 0
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) Items() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) ClearWishlist(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(ctx, []models.Product{})
	s.notifier.Notify(notify.Success("Wishlist berhasil dikosongkan"))
}
