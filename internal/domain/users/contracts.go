package users

import (
	"context"
)

// UserService defines CRUD operations over users offered to the API layer.
type UserService interface {
	// Create persists a new user and returns it with the generated id.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByID retrieves a user by id. Returns ErrNotFound if no such user exists.
	GetByID(ctx context.Context, id uint) (*User, error)

	// Update replaces a user's name and email. Returns ErrNotFound if the id
	// does not refer to an existing user.
	Update(ctx context.Context, user *User) error

	// DeleteByID removes a user by id. Returns ErrNotFound if the id does not
	// refer to an existing user.
	DeleteByID(ctx context.Context, id uint) error

	// List retrieves all users.
	List(ctx context.Context) ([]*User, error)
}

// UserRepository defines the interface for User-related database operations
type UserRepository interface {
	// Create adds a new User to the database and fills in the generated id
	Create(ctx context.Context, user *User) error
	// GetByID retrieves a User from the database by id
	GetByID(ctx context.Context, id uint) (*User, error)
	// UpdateByID updates a User in the database by id
	UpdateByID(ctx context.Context, user *User) error
	// DeleteByID deletes a User from the database by id
	DeleteByID(ctx context.Context, id uint) error
	// List lists all Users in the database
	List(ctx context.Context) ([]*User, error)
}
