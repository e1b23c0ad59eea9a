package auth

import "golang.org/x/crypto/bcrypt"

// PasswordMatcher decides how passwords are stored in the directory and compared.
type PasswordMatcher interface {
	Hash(password string) (string, error)
	Match(stored, given string) bool
}

// PlainMatcher stores passwords as given and compares them exactly.
type PlainMatcher struct{}

func (PlainMatcher) Hash(password string) (string, error) { return password, nil }

func (PlainMatcher) Match(stored, given string) bool { return stored == given }

type BcryptMatcher struct {
	Cost int
}

func (b BcryptMatcher) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptMatcher) Match(stored, given string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
}
