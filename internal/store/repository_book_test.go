package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/models"
)

func newTestBookRepo(t *testing.T) (*bookRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &bookRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func bookRows(books ...models.Book) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title", "author", "genre", "year"})
	for _, b := range books {
		rows.AddRow(b.ID, b.Title, b.Author, b.Genre, b.Year)
	}
	return rows
}

func TestCreateBook_Success(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()
	input := models.BookInput{Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi", Year: 1965}

	mock.ExpectQuery("INSERT INTO books").
		WithArgs(input.Title, input.Author, input.Genre, input.Year).
		WillReturnRows(bookRows(models.Book{ID: 1, Title: input.Title, Author: input.Author, Genre: input.Genre, Year: input.Year}))

	created, err := repo.CreateBook(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Title != input.Title {
		t.Errorf("expected title %s, got %s", input.Title, created.Title)
	}
}

func TestCreateBook_DBError(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO books").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateBook(ctx, models.BookInput{Title: "Dune"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetBook_Success(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, title, author, genre, year").
		WithArgs(int64(5)).
		WillReturnRows(bookRows(models.Book{ID: 5, Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi", Year: 1965}))

	book, err := repo.GetBook(ctx, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.ID != 5 {
		t.Errorf("expected ID=5, got %d", book.ID)
	}
}

func TestGetBook_NotFound(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, title, author, genre, year").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetBook(ctx, 99)
	if !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestUpdateBook_Success(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()
	input := models.BookInput{Title: "Dune Messiah", Author: "Frank Herbert", Genre: "Sci-Fi", Year: 1969}

	mock.ExpectQuery("UPDATE books").
		WithArgs(input.Title, input.Author, input.Genre, input.Year, int64(5)).
		WillReturnRows(bookRows(models.Book{ID: 5, Title: input.Title, Author: input.Author, Genre: input.Genre, Year: input.Year}))

	updated, err := repo.UpdateBook(ctx, 5, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "Dune Messiah" {
		t.Errorf("expected updated title, got %s", updated.Title)
	}
}

func TestUpdateBook_NotFound(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE books").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateBook(ctx, 99, models.BookInput{Title: "T", Author: "A", Genre: "G", Year: 2000})
	if !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestDeleteBook_Success(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM books").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteBook(ctx, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteBook_NotFound(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM books").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteBook(ctx, 99)
	if !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestListBooks_Success(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()
	query := models.ListQuery{Page: 1, Limit: 10, SortBy: "title", SortOrder: "asc"}

	mock.ExpectQuery("SELECT id, title, author, genre, year FROM books").
		WillReturnRows(bookRows(
			models.Book{ID: 1, Title: "A Clockwork Orange", Author: "Anthony Burgess", Genre: "Dystopia", Year: 1962},
			models.Book{ID: 2, Title: "Brave New World", Author: "Aldous Huxley", Genre: "Dystopia", Year: 1932},
		))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM books")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	books, total, err := repo.ListBooks(ctx, query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != 2 {
		t.Errorf("expected 2 books in page, got %d", len(books))
	}
	if total != 25 {
		t.Errorf("expected totalCount=25, got %d", total)
	}
}

func TestListBooks_SearchArgsSharedByBothQueries(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()
	query := models.ListQuery{Page: 1, Limit: 10, SortBy: "year", SortOrder: "desc", Search: "dune"}
	pattern := "%dune%"

	mock.ExpectQuery("SELECT id, title, author, genre, year FROM books").
		WithArgs(pattern, pattern, pattern).
		WillReturnRows(bookRows(models.Book{ID: 1, Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi", Year: 1965}))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM books")).
		WithArgs(pattern, pattern, pattern).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	books, total, err := repo.ListBooks(ctx, query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != 1 || total != 1 {
		t.Errorf("expected one matching book, got %d books / total %d", len(books), total)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestListBooks_EmptyPage(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()
	query := models.ListQuery{Page: 100, Limit: 10}

	mock.ExpectQuery("SELECT id, title, author, genre, year FROM books").
		WillReturnRows(bookRows())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM books")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	books, total, err := repo.ListBooks(ctx, query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("expected empty page, got %d books", len(books))
	}
	if total != 12 {
		t.Errorf("expected totalCount=12, got %d", total)
	}
}

func TestListBooks_ListQueryError(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, title, author, genre, year FROM books").
		WillReturnError(errors.New("db network error"))

	_, _, err := repo.ListBooks(ctx, models.ListQuery{Page: 1, Limit: 10})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestListBooks_CountQueryError(t *testing.T) {
	repo, mock, db := newTestBookRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, title, author, genre, year FROM books").
		WillReturnRows(bookRows(models.Book{ID: 1, Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi", Year: 1965}))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM books")).
		WillReturnError(errors.New("db network error"))

	_, _, err := repo.ListBooks(ctx, models.ListQuery{Page: 1, Limit: 10})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
