package users

import "time"

// User is a stored credential record. Username is persisted already
// normalized (lower-cased, trimmed); hash and salt are produced by the
// cryptox package and never change after registration.
type User struct {
	ID           string
	Username     string
	PasswordHash []byte
	PasswordSalt []byte
	CreatedAt    time.Time
}
