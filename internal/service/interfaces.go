package service

import (
	"context"

	"github.com/MKhiriev/go-book-catalog/models"
)

// AuthService handles user registration, credential verification, and
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// BookService orchestrates catalog operations over the book repository.
type BookService interface {
	CreateBook(ctx context.Context, input models.BookInput) (models.Book, error)
	GetBook(ctx context.Context, id int64) (models.Book, error)
	UpdateBook(ctx context.Context, id int64, input models.BookInput) (models.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	ListBooks(ctx context.Context, query models.ListQuery) (models.ListBooksResponse, error)
}
