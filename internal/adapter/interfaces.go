// Package adapter provides a typed HTTP client for the book catalog API,
// used by the bookctl command-line tool and suitable for embedding in other
// Go programs.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-book-catalog/models"
)

// CatalogClient is the client-side view of the book catalog API.
// Implementations hold the bearer token captured at login and attach it to
// every catalog call.
type CatalogClient interface {
	Register(ctx context.Context, creds models.Credentials) error
	Login(ctx context.Context, creds models.Credentials) (string, error)

	SetToken(token string)
	Token() string

	CreateBook(ctx context.Context, input models.BookInput) (models.Book, error)
	GetBook(ctx context.Context, id int64) (models.Book, error)
	UpdateBook(ctx context.Context, id int64, input models.BookInput) (models.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	ListBooks(ctx context.Context, query models.ListQuery) (models.ListBooksResponse, error)
}
