package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/store"
	"github.com/MKhiriev/go-book-catalog/models"
)

// bookService is the concrete implementation of BookService.
// Each operation performs at most one or two repository calls; there is no
// cross-operation state, so the service is safe for concurrent use.
type bookService struct {
	bookRepository store.BookRepository
	logger         *logger.Logger
}

// NewBookService constructs a BookService wired to the given BookRepository.
func NewBookService(bookRepository store.BookRepository, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		logger:         logger,
	}
}

func (b *bookService) CreateBook(ctx context.Context, input models.BookInput) (models.Book, error) {
	log := logger.FromContext(ctx)

	if input.Title == "" || input.Author == "" || input.Genre == "" || input.Year == 0 {
		log.Error().Any("input", input).Msg("invalid book data provided")
		return models.Book{}, ErrInvalidDataProvided
	}

	book, err := b.bookRepository.CreateBook(ctx, input)
	if err != nil {
		log.Err(err).Str("title", input.Title).Msg("book creation ended with error")
		return models.Book{}, fmt.Errorf("book creation ended with error: %w", err)
	}

	return book, nil
}

func (b *bookService) GetBook(ctx context.Context, id int64) (models.Book, error) {
	book, err := b.bookRepository.GetBook(ctx, id)
	if err != nil {
		return models.Book{}, fmt.Errorf("book lookup ended with error: %w", err)
	}

	return book, nil
}

func (b *bookService) UpdateBook(ctx context.Context, id int64, input models.BookInput) (models.Book, error) {
	log := logger.FromContext(ctx)

	if input.Title == "" || input.Author == "" || input.Genre == "" || input.Year == 0 {
		log.Error().Int64("id", id).Any("input", input).Msg("invalid book data provided")
		return models.Book{}, ErrInvalidDataProvided
	}

	book, err := b.bookRepository.UpdateBook(ctx, id, input)
	if err != nil {
		return models.Book{}, fmt.Errorf("book update ended with error: %w", err)
	}

	return book, nil
}

func (b *bookService) DeleteBook(ctx context.Context, id int64) error {
	if err := b.bookRepository.DeleteBook(ctx, id); err != nil {
		return fmt.Errorf("book deletion ended with error: %w", err)
	}

	return nil
}

// ListBooks resolves the sort parameters to their defaults and returns one
// page of the catalog together with the total matching count.
//
// An unrecognised SortBy silently falls back to "title" and anything but
// "desc" sorts ascending; unlike pagination these are not client errors.
func (b *bookService) ListBooks(ctx context.Context, query models.ListQuery) (models.ListBooksResponse, error) {
	log := logger.FromContext(ctx)

	if query.Page < 1 || query.Limit < 1 {
		log.Error().Int("page", query.Page).Int("limit", query.Limit).Msg("invalid pagination parameters")
		return models.ListBooksResponse{}, ErrInvalidDataProvided
	}

	query.SortBy = resolveSortBy(query.SortBy)
	query.SortOrder = resolveSortOrder(query.SortOrder)

	books, totalCount, err := b.bookRepository.ListBooks(ctx, query)
	if err != nil {
		log.Err(err).Str("search", query.Search).Msg("book listing ended with error")
		return models.ListBooksResponse{}, fmt.Errorf("book listing ended with error: %w", err)
	}

	return models.ListBooksResponse{
		Data:       books,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalCount: totalCount,
	}, nil
}

func resolveSortBy(sortBy string) string {
	switch sortBy {
	case "title", "author", "genre", "year":
		return sortBy
	default:
		return "title"
	}
}

func resolveSortOrder(sortOrder string) string {
	if strings.EqualFold(sortOrder, "desc") {
		return "desc"
	}
	return "asc"
}
