package model

import "time"

// User represents a registered ledger owner. PasswordHash is an opaque,
// pre-hashed credential; the plaintext password never reaches this system.
type User struct {
	CreatedAt    time.Time
	Name         string
	Email        string
	PasswordHash string
	Designation  string
	ID           int64
}
