package order

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/raushankrgupta/skincare-storefront/events"
	"github.com/raushankrgupta/skincare-storefront/logx"
	"github.com/raushankrgupta/skincare-storefront/models"
	"github.com/raushankrgupta/skincare-storefront/storage"
)

var (
	ErrOrderNotFound     = errors.New("order: not found")
	ErrInvalidStatus     = errors.New("order: unknown status")
	ErrInvalidTransition = errors.New("order: status transition not allowed")
)

type Store struct {
	mu        sync.Mutex
	state     State
	storage   storage.Storage
	publisher events.Publisher
	strict    bool
	now       func() time.Time
}

type Option func(*Store)

// WithStrictTransitions rejects status changes CanTransition does not allow.
func WithStrictTransitions() Option {
	return func(s *Store) { s.strict = true }
}

func WithPublisher(p events.Publisher) Option {
	return func(s *Store) { s.publisher = p }
}

func NewStore(st storage.Storage, opts ...Option) *Store {
	s := &Store{
		state:     State{Orders: []models.Order{}},
		storage:   st,
		publisher: events.Noop{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// stored reads user_orders. Unreadable data counts as no orders.
func (s *Store) stored(ctx context.Context) []models.Order {
	var orders []models.Order
	err := storage.LoadJSON(ctx, s.storage, storage.KeyUserOrders, &orders)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logx.Warn().Err(err).Msg("error reading stored orders")
		}
		return []models.Order{}
	}
	return orders
}

// persist applies a to the stored list independently of memory and returns the
// new stored list.
func (s *Store) persist(ctx context.Context, orderID string, a Action) []models.Order {
	next := Reduce(State{Orders: s.stored(ctx)}, a).Orders
	if err := storage.SaveJSON(ctx, s.storage, storage.KeyUserOrders, next); err != nil {
		logx.Error().Err(err).Str("order_id", orderID).Msg("error saving orders")
	}
	return next
}

func (s *Store) publish(ctx context.Context, t events.Type, o models.Order) {
	ev := events.OrderEvent{Type: t, Order: o, OccurredAt: s.now()}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		logx.Error().Err(err).Str("order_id", o.OrderID).Str("event", string(t)).Msg("error publishing order event")
	}
}

// CreateOrder assigns an internal id, stores the order first in the list and makes
// it the current order.
func (s *Store) CreateOrder(ctx context.Context, draft models.Order) models.Order {
	o := draft.Clone()
	o.ID = uuid.NewString()
	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = s.now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.persist(ctx, o.OrderID, CreateOrder{Order: o})
	s.state = Reduce(s.state, CreateOrder{Order: o})
	s.publish(ctx, events.OrderCreated, o)
	return o.Clone()
}

func (s *Store) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.mutate(ctx, orderID, status, UpdateOrderStatus{OrderID: orderID, Status: status}, events.OrderStatusUpdated)
}

// AddPaymentProof records the uploaded proof and marks the order paid.
func (s *Store) AddPaymentProof(ctx context.Context, orderID, proof string) (models.Order, error) {
	return s.mutate(ctx, orderID, models.OrderStatusPaid,
		AddPaymentProof{OrderID: orderID, PaymentProof: proof}, events.OrderPaymentProof)
}

// AddTrackingNumber records the courier reference and marks the order shipped.
func (s *Store) AddTrackingNumber(ctx context.Context, orderID, tracking string) (models.Order, error) {
	return s.mutate(ctx, orderID, models.OrderStatusShipped,
		AddTrackingNumber{OrderID: orderID, TrackingNumber: tracking}, events.OrderTrackingNumber)
}

func (s *Store) mutate(ctx context.Context, orderID string, to models.OrderStatus, a Action, t events.Type) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, inMemory := find(s.state.Orders, orderID)
	if s.strict && inMemory && !CanTransition(current.Status, to) {
		return models.Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, to)
	}

	stored := s.persist(ctx, orderID, a)
	s.state = Reduce(s.state, a)

	updated, ok := find(s.state.Orders, orderID)
	if !ok {
		if updated, ok = find(stored, orderID); !ok {
			return models.Order{}, ErrOrderNotFound
		}
	}
	s.publish(ctx, t, updated)
	return updated.Clone(), nil
}

func (s *Store) SetCurrentOrder(o *models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, SetCurrentOrder{Order: o})
}

func (s *Store) Current() (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Current == nil {
		return models.Order{}, false
	}
	return s.state.Current.Clone(), true
}

// LoadOrders replaces the in-memory list with the stored one.
func (s *Store) LoadOrders(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, SetLoading{Loading: true})
	s.state = Reduce(s.state, LoadOrders{Orders: s.stored(ctx)})
	s.state = Reduce(s.state, SetLoading{Loading: false})
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Loading
}

func (s *Store) GetOrderByID(orderID string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := find(s.state.Orders, orderID)
	return o.Clone(), ok
}

func (s *Store) GetOrdersByStatus(status models.OrderStatus) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Order{}
	for _, o := range s.state.Orders {
		if o.Status == status {
			out = append(out, o.Clone())
		}
	}
	return out
}

// Orders returns every order, newest first.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.state.Orders))
	for i, o := range s.state.Orders {
		out[i] = o.Clone()
	}
	return out
}
