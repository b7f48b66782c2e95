package domain

import "time"

// User is the auth account behind a profile. Deleting a user cascades to
// the profile, swipes, matches and messages referencing it.
type User struct {
	ID           string    `json:"id" db:"id"`
	Phone        string    `json:"phone" db:"phone"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
