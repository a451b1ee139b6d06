package user

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("user not found")

// User is the persisted account record. PasswordHash holds the
// client-computed SHA-256/base64 digest, not a server-side hash, and must
// never be serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName,omitempty"`
	LastName     string    `json:"lastName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
