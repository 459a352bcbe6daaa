// Package models contains plain data structures persisted by the server.
package models

import "time"

// User is an identity record. Email is the login key and is unique across
// all users. PasswordHash is an opaque bcrypt hash, never the plaintext.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
