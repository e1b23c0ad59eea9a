package models

import "time"

// User represents the signed-in user as seen by the session
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// StoredUser is the user directory record. Password holds whatever the configured
// matcher stores: plaintext by default, a bcrypt hash when hashing is enabled.
type StoredUser struct {
	User
	Password string `json:"password"`
}
