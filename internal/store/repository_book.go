package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/models"
)

// bookRepository is the PostgreSQL-backed implementation of [BookRepository].
// It executes all catalog CRUD operations directly against the "books" table
// using the shared [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (book id, query parameters, etc.).
type bookRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBook inserts a new catalog record and returns it with the
// server-assigned id.
func (r *bookRepository) CreateBook(ctx context.Context, input models.BookInput) (models.Book, error) {
	log := logger.FromContext(ctx)

	var book models.Book
	row := r.db.QueryRowContext(ctx, createBook, input.Title, input.Author, input.Genre, input.Year)

	if err := row.Scan(&book.ID, &book.Title, &book.Author, &book.Genre, &book.Year); err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Str("title", input.Title).Msg("error creating book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return book, nil
}

// GetBook retrieves a single record by id.
// Returns [ErrBookNotFound] when the id does not exist.
func (r *bookRepository) GetBook(ctx context.Context, id int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	var book models.Book
	row := r.db.QueryRowContext(ctx, getBookByID, id)

	if err := row.Scan(&book.ID, &book.Title, &book.Author, &book.Genre, &book.Year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}

		log.Err(err).Str("func", "*bookRepository.GetBook").Int64("id", id).Msg("error getting book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return book, nil
}

// UpdateBook replaces every client-supplied field of the record with the
// given id and returns the updated row.
// Returns [ErrBookNotFound] when the id does not exist.
func (r *bookRepository) UpdateBook(ctx context.Context, id int64, input models.BookInput) (models.Book, error) {
	log := logger.FromContext(ctx)

	var book models.Book
	row := r.db.QueryRowContext(ctx, updateBookByID, input.Title, input.Author, input.Genre, input.Year, id)

	if err := row.Scan(&book.ID, &book.Title, &book.Author, &book.Genre, &book.Year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}

		log.Err(err).Str("func", "*bookRepository.UpdateBook").Int64("id", id).Msg("error updating book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return book, nil
}

// DeleteBook removes the record with the given id.
// Returns [ErrBookNotFound] when no row was deleted.
func (r *bookRepository) DeleteBook(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteBookByID, id)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Int64("id", id).Msg("error deleting book")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Int64("id", id).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}

// ListBooks returns one page of records matching query plus the total count
// of matching records independent of pagination. The page query and the
// count query share the same search filter but are two separate logical
// reads; no transactional snapshot spans them.
func (r *bookRepository) ListBooks(ctx context.Context, query models.ListQuery) ([]models.Book, int64, error) {
	log := logger.FromContext(ctx)

	listSQL, listArgs, err := buildListBooksQuery(query)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("failed to build list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Str("search", query.Search).Msg("failed to execute list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0, query.Limit)

	for rows.Next() {
		var book models.Book

		if scanErr := rows.Scan(&book.ID, &book.Title, &book.Author, &book.Genre, &book.Year); scanErr != nil {
			log.Err(scanErr).Str("func", "*bookRepository.ListBooks").Msg("failed to scan book row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		books = append(books, book)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*bookRepository.ListBooks").Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	countSQL, countArgs, err := buildCountBooksQuery(query)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("failed to build count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var totalCount int64
	if err = r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("failed to execute count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return books, totalCount, nil
}
