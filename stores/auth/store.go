// Package auth is the mock account system: a shared user directory and a
// per-session signed-in user.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/raushankrgupta/skincare-storefront/logx"
	"github.com/raushankrgupta/skincare-storefront/models"
	"github.com/raushankrgupta/skincare-storefront/storage"
)

const (
	MsgSignUpSuccess = "Pendaftaran berhasil"
	MsgSignInSuccess = "Berhasil masuk"
	MsgSignUpFailed  = "Terjadi kesalahan saat mendaftar"
	MsgSignInFailed  = "Terjadi kesalahan saat masuk"

	MsgDuplicateEmail     = "Email sudah terdaftar"
	MsgInvalidCredentials = "Email atau kata sandi salah"

	DefaultDelay = time.Second
)

var (
	ErrDuplicateEmail     = errors.New("auth: email already registered")
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
)

type Store struct {
	mu        sync.Mutex
	user      *models.User
	directory *Directory
	storage   storage.Storage
	delay     time.Duration
	now       func() time.Time
}

type Option func(*Store)

// WithDelay sets the simulated round trip before sign-up and sign-in resolve.
func WithDelay(d time.Duration) Option {
	return func(s *Store) { s.delay = d }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(session storage.Storage, dir *Directory, opts ...Option) *Store {
	s := &Store{directory: dir, storage: session, delay: DefaultDelay, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load restores the signed-in user. Unreadable data is removed and the session stays signed out.
func (s *Store) Load(ctx context.Context) {
	var u models.User
	err := storage.LoadJSON(ctx, s.storage, storage.KeyAuthUser, &u)
	switch {
	case err == nil:
		s.mu.Lock()
		s.user = &u
		s.mu.Unlock()
	case errors.Is(err, storage.ErrNotFound):
	default:
		logx.Warn().Err(err).Msg("error loading user from storage")
		if err := s.storage.Remove(ctx, storage.KeyAuthUser); err != nil {
			logx.Error().Err(err).Msg("error removing auth_user")
		}
	}
}

func (s *Store) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// SignUp registers a new account and signs it in.
func (s *Store) SignUp(ctx context.Context, name, email, password string) (models.User, error) {
	if err := s.wait(ctx); err != nil {
		return models.User{}, err
	}

	now := s.now()
	user := models.User{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Name:      name,
		Email:     email,
		CreatedAt: now.UTC(),
	}
	if err := s.directory.Add(ctx, user, password); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("sign up: %w", err)
	}

	s.setUser(ctx, user)
	return user, nil
}

// SignIn signs in the account whose email (any case) and password match.
func (s *Store) SignIn(ctx context.Context, email, password string) (models.User, error) {
	if err := s.wait(ctx); err != nil {
		return models.User{}, err
	}

	user, ok, err := s.directory.Find(ctx, email, password)
	if err != nil {
		return models.User{}, fmt.Errorf("sign in: %w", err)
	}
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}

	s.setUser(ctx, user)
	return user, nil
}

func (s *Store) setUser(ctx context.Context, user models.User) {
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	if err := storage.SaveJSON(ctx, s.storage, storage.KeyAuthUser, user); err != nil {
		logx.Error().Err(err).Msg("error saving auth_user")
	}
}

func (s *Store) SignOut(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.storage.Remove(ctx, storage.KeyAuthUser); err != nil {
		logx.Error().Err(err).Msg("error removing auth_user")
	}
}

// CurrentUser returns the signed-in user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *Store) IsAuthenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}
