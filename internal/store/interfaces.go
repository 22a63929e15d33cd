package store

import (
	"context"

	"github.com/MKhiriev/go-book-catalog/models"
)

// UserRepository is the persistence boundary for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns ErrUsernameAlreadyExists when the username
	// is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername retrieves a user by exact username match.
	// Returns ErrNoUserWasFound when no such user exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// BookRepository is the persistence boundary for catalog records.
// Every method performs a single logical read or write; there are no
// multi-statement transactions.
type BookRepository interface {
	CreateBook(ctx context.Context, input models.BookInput) (models.Book, error)
	GetBook(ctx context.Context, id int64) (models.Book, error)

	// UpdateBook replaces every client-supplied field of the book with the
	// given id and returns the updated record.
	UpdateBook(ctx context.Context, id int64, input models.BookInput) (models.Book, error)

	DeleteBook(ctx context.Context, id int64) error

	// ListBooks returns one page of books matching query along with the
	// total number of matching records irrespective of pagination.
	ListBooks(ctx context.Context, query models.ListQuery) ([]models.Book, int64, error)
}

// Storages aggregates every repository backed by the shared database
// connection.
type Storages struct {
	UserRepository UserRepository
	BookRepository BookRepository
}
