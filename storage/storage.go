// Package storage is the persisted key/value layer standing in for browser local storage.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Keys written by the stores.
const (
	KeyAuthUser      = "auth_user"
	KeyUsersDB       = "users_db"
	KeyWishlistItems = "wishlist_items"
	KeyCartItems     = "cart_items"
	KeyUserOrders    = "user_orders"
)

var (
	ErrNotFound = errors.New("storage: key not found")
	ErrCorrupt  = errors.New("storage: value is not valid json")
)

type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// OrderSnapshotKey is the key of the checkout snapshot read by the payment step.
func OrderSnapshotKey(orderID string) string {
	return "order_" + orderID
}

// LoadJSON decodes the value at key into v. It returns ErrNotFound when the key is
// absent and an error wrapping ErrCorrupt when the stored bytes do not decode.
func LoadJSON(ctx context.Context, s Storage, key string, v any) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return nil
}

func SaveJSON(ctx context.Context, s Storage, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
