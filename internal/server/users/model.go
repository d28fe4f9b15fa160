package users

import "time"

// User is a registered account. PasswordHash is a bcrypt hash; the plain
// password is never stored.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
