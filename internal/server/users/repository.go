package users

import (
	"context"
)

// Repository is the credential store consumed by the Service. Usernames
// passed in are expected to be normalized already.
//
// Create must enforce uniqueness at the storage layer and return
// common.ErrorLoginAlreadyExists when an insert loses a race, regardless
// of any prior Exists check.
type Repository interface {
	Exists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}
