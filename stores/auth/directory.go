package auth

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/raushankrgupta/skincare-storefront/errx"
	"github.com/raushankrgupta/skincare-storefront/logx"
	"github.com/raushankrgupta/skincare-storefront/models"
	"github.com/raushankrgupta/skincare-storefront/storage"
)

// Directory is the registered-user list under users_db, shared by every session.
type Directory struct {
	mu      sync.Mutex
	storage storage.Storage
	matcher PasswordMatcher
}

func NewDirectory(s storage.Storage, m PasswordMatcher) *Directory {
	if m == nil {
		m = PlainMatcher{}
	}
	return &Directory{storage: s, matcher: m}
}

// users reads users_db. Missing or unreadable data is an empty directory; backend
// failures come back wrapped by errx.WrapStorage.
func (d *Directory) users(ctx context.Context) ([]models.StoredUser, error) {
	var users []models.StoredUser
	err := storage.LoadJSON(ctx, d.storage, storage.KeyUsersDB, &users)
	switch {
	case err == nil:
		return users, nil
	case errors.Is(err, storage.ErrNotFound):
		return nil, nil
	case errors.Is(err, storage.ErrCorrupt):
		logx.Warn().Err(err).Msg("users_db is unreadable, treating as empty")
		return nil, nil
	default:
		return nil, errx.WrapStorage(err)
	}
}

// Find returns the user whose email matches case-insensitively and whose
// password matches under the directory's matcher.
func (d *Directory) Find(ctx context.Context, email, password string) (models.User, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	users, err := d.users(ctx)
	if err != nil {
		return models.User{}, false, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) && d.matcher.Match(u.Password, password) {
			return u.User, true, nil
		}
	}
	return models.User{}, false, nil
}

// Add registers user with password unless the email is taken.
func (d *Directory) Add(ctx context.Context, user models.User, password string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	users, err := d.users(ctx)
	if err != nil {
		return err
	}
	if indexByEmail(users, user.Email) >= 0 {
		return ErrDuplicateEmail
	}

	stored, err := d.matcher.Hash(password)
	if err != nil {
		return err
	}
	users = append(users, models.StoredUser{User: user, Password: stored})
	return errx.WrapStorage(storage.SaveJSON(ctx, d.storage, storage.KeyUsersDB, users))
}

// Len is the number of registered users.
func (d *Directory) Len(ctx context.Context) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	users, err := d.users(ctx)
	return len(users), err
}

func indexByEmail(users []models.StoredUser, email string) int {
	for i, u := range users {
		if strings.EqualFold(u.Email, email) {
			return i
		}
	}
	return -1
}
