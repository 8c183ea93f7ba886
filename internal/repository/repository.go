// Package repository declares the storage interfaces the services depend
// on. Services receive these interfaces — never the concrete SQLite type —
// so tests can substitute in-memory fakes and the storage backend can be
// swapped without touching business logic.
package repository

import (
	"context"

	"github.com/z1f7/832301306-contacts-backend/internal/model"
)

// UserRepository stores registered accounts.
type UserRepository interface {
	// CreateUser inserts the user and fills in user.ID. Returns
	// apperror.ErrConflict when the username is already taken.
	CreateUser(ctx context.Context, user *model.User) error

	// FindByCredentials returns the user whose username AND password
	// digest both match. Returns apperror.ErrInvalidCredentials when no
	// row matches — callers cannot tell a missing user from a wrong
	// password.
	FindByCredentials(ctx context.Context, username, passwordDigest string) (*model.User, error)
}

// ContactRepository stores phone-book entries.
type ContactRepository interface {
	// Create inserts the contact and fills in contact.ID. The owner id is
	// not checked against the users table.
	Create(ctx context.Context, contact *model.Contact) error

	// ListByOwner returns the owner's contacts in insertion order. An
	// owner with no contacts yields an empty slice, not an error.
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Contact, error)

	// Update replaces name, phone and email of the contact with
	// contact.ID. Returns apperror.ErrNotFound when no row matched.
	Update(ctx context.Context, contact *model.Contact) error

	// Delete removes the contact by id. Deleting an id that does not
	// exist is not an error.
	Delete(ctx context.Context, id int64) error

	// CountByOwner returns how many contacts the owner has; zero is valid.
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
}
