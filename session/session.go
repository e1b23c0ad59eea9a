// Package session keeps one storefront (stores plus namespaced storage) per client session.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/raushankrgupta/skincare-storefront/events"
	"github.com/raushankrgupta/skincare-storefront/logx"
	"github.com/raushankrgupta/skincare-storefront/notify"
	"github.com/raushankrgupta/skincare-storefront/storage"
	"github.com/raushankrgupta/skincare-storefront/stores/auth"
	"github.com/raushankrgupta/skincare-storefront/stores/cart"
	"github.com/raushankrgupta/skincare-storefront/stores/order"
	"github.com/raushankrgupta/skincare-storefront/stores/wishlist"
)

var ErrInvalidID = errors.New("session: invalid id")

// Storefront is the state of one session, the server-side stand-in for a browser tab.
type Storefront struct {
	ID       string
	Storage  storage.Storage
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Auth     *auth.Store
	Orders   *order.Store
	Notices  *notify.Recorder

	mu       sync.Mutex
	timerMu  sync.Mutex
	timers   map[string]context.CancelFunc
	lastSeen time.Time // guarded by Manager.mu
}

// Lock serializes requests on the same session.
func (s *Storefront) Lock()   { s.mu.Lock() }
func (s *Storefront) Unlock() { s.mu.Unlock() }

// Watch registers a background job for key unless one is already running.
// It reports whether start was called.
func (s *Storefront) Watch(key string, start func(ctx context.Context)) bool {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	if _, ok := s.timers[key]; ok {
		return false
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.timers[key] = cancel
	go func() {
		start(ctx)
		s.timerMu.Lock()
		delete(s.timers, key)
		s.timerMu.Unlock()
		cancel()
	}()
	return true
}

func (s *Storefront) watching() bool {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	return len(s.timers) > 0
}

// Close stops every background job of the session.
func (s *Storefront) Close() {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	for _, cancel := range s.timers {
		cancel()
	}
}

type Options struct {
	AuthDelay         time.Duration
	Matcher           auth.PasswordMatcher
	StrictTransitions bool
	Publisher         events.Publisher
	Now               func() time.Time
}

type Manager struct {
	mu        sync.Mutex
	sessions  map[string]*Storefront
	storage   storage.Storage
	directory *auth.Directory
	opts      Options
}

// NewManager builds sessions over base. The user directory lives un-namespaced in base
// so every session sees the same registered users.
func NewManager(base storage.Storage, opts Options) *Manager {
	if opts.Publisher == nil {
		opts.Publisher = events.Noop{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Manager{
		sessions:  make(map[string]*Storefront),
		storage:   base,
		directory: auth.NewDirectory(base, opts.Matcher),
		opts:      opts,
	}
}

// Create starts a new empty session.
func (m *Manager) Create(ctx context.Context) *Storefront {
	id := uuid.NewString()
	sf := m.build(ctx, id)

	m.mu.Lock()
	sf.lastSeen = m.opts.Now()
	m.sessions[id] = sf
	m.mu.Unlock()
	logx.Debug().Str("session_id", id).Msg("session created")
	return sf
}

// Get returns the session, rehydrating it from storage when this process has not
// seen it yet.
func (m *Manager) Get(ctx context.Context, id string) (*Storefront, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if sf, ok := m.sessions[id]; ok {
		sf.lastSeen = m.opts.Now()
		return sf, nil
	}
	sf := m.build(ctx, id)
	sf.lastSeen = m.opts.Now()
	m.sessions[id] = sf
	return sf, nil
}

// Drop forgets a session in memory; its persisted data stays.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	sf, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		sf.Close()
	}
}

// EvictIdle forgets sessions not requested for longer than idle. Sessions with a
// running payment countdown stay until it ends. Persisted data is kept, so an
// evicted session rehydrates on its next request.
func (m *Manager) EvictIdle(idle time.Duration) int {
	cutoff := m.opts.Now().Add(-idle)

	m.mu.Lock()
	var evicted []*Storefront
	for id, sf := range m.sessions {
		if sf.lastSeen.After(cutoff) || sf.watching() {
			continue
		}
		delete(m.sessions, id)
		evicted = append(evicted, sf)
	}
	m.mu.Unlock()

	for _, sf := range evicted {
		sf.Close()
	}
	if len(evicted) > 0 {
		logx.Debug().Int("evicted", len(evicted)).Msg("idle sessions evicted")
	}
	return len(evicted)
}

// RunEviction calls EvictIdle every interval until ctx is done.
func (m *Manager) RunEviction(ctx context.Context, idle, interval time.Duration) {
	if idle <= 0 || interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.EvictIdle(idle)
		}
	}
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) build(ctx context.Context, id string) *Storefront {
	ns := storage.Namespace(m.storage, storage.SessionPrefix(id))
	rec := &notify.Recorder{}

	orderOpts := []order.Option{order.WithPublisher(m.opts.Publisher)}
	if m.opts.StrictTransitions {
		orderOpts = append(orderOpts, order.WithStrictTransitions())
	}

	sf := &Storefront{
		ID:       id,
		Storage:  ns,
		Cart:     cart.NewStore(ns),
		Wishlist: wishlist.NewStore(ns, notify.Fanout{rec, notify.Log{}}),
		Auth:     auth.NewStore(ns, m.directory, auth.WithDelay(m.opts.AuthDelay)),
		Orders:   order.NewStore(ns, orderOpts...),
		Notices:  rec,
		timers:   make(map[string]context.CancelFunc),
	}

	sf.Cart.Load(ctx)
	sf.Wishlist.Load(ctx)
	sf.Auth.Load(ctx)
	sf.Orders.LoadOrders(ctx)
	return sf
}
