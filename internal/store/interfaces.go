package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/vnshop/identity/models"
)

// UserDirectory is the abstract user repository consumed by the service
// layer. Uniqueness of username, email, phone and provider ids is enforced
// by the storage backend; violations surface as [ErrAlreadyExists].
type UserDirectory interface {
	// FindByID returns the user with the given internal id, or
	// [ErrNotFound].
	FindByID(ctx context.Context, id int64) (models.User, error)

	// FindByEmail returns the user owning the given email, or
	// [ErrNotFound].
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// FindByUsername returns the user owning the given handle, or
	// [ErrNotFound].
	FindByUsername(ctx context.Context, username string) (models.User, error)

	// FindOne returns the first user matching the partial field-equality
	// predicate (allowlisted columns only), or [ErrNotFound].
	// A nil value matches SQL NULL.
	FindOne(ctx context.Context, where map[string]any) (models.User, error)

	// Create persists a new user and returns it with server-assigned
	// fields populated. Uniqueness violations surface as
	// [ErrAlreadyExists].
	Create(ctx context.Context, user models.User) (models.User, error)

	// Save writes back all mutable fields of an existing user.
	Save(ctx context.Context, user models.User) (models.User, error)

	// UpdateFields applies a partial update (allowlisted columns only) to
	// the user with the given id. A nil value writes SQL NULL.
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
}
