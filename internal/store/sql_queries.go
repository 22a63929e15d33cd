package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-book-catalog/models"
)

const (
	createUser = `INSERT INTO users (username, password)
    VALUES ($1, $2)
    RETURNING user_id, username, password, created_at;`

	findUserByUsername = `SELECT user_id, username, password, created_at
    FROM users
    WHERE username = $1;`

	createBook = `INSERT INTO books (title, author, genre, year)
    VALUES ($1, $2, $3, $4)
    RETURNING id, title, author, genre, year;`

	getBookByID = `SELECT id, title, author, genre, year
    FROM books
    WHERE id = $1;`

	updateBookByID = `UPDATE books
    SET title = $1, author = $2, genre = $3, year = $4
    WHERE id = $5
    RETURNING id, title, author, genre, year;`

	deleteBookByID = `DELETE FROM books
    WHERE id = $1;`
)

// sortColumns whitelists the columns a listing may be ordered by. Anything
// outside the whitelist silently resolves to "title": the column name is
// interpolated into the ORDER BY clause and must never come from user input
// unchecked.
var sortColumns = map[string]string{
	"title":  "title",
	"author": "author",
	"genre":  "genre",
	"year":   "year",
}

// resolveSort returns the safe ORDER BY column and direction for query.
func resolveSort(query models.ListQuery) (column, direction string) {
	column, ok := sortColumns[query.SortBy]
	if !ok {
		column = "title"
	}

	direction = "ASC"
	if strings.EqualFold(query.SortOrder, "desc") {
		direction = "DESC"
	}

	return column, direction
}

// likeEscaper neutralises ILIKE metacharacters so the search term matches as
// a literal substring. Backslash is Postgres's default LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchFilter builds the optional case-insensitive OR filter over title,
// author, and genre. Returns nil when query.Search is empty.
func searchFilter(query models.ListQuery) sq.Sqlizer {
	if query.Search == "" {
		return nil
	}

	pattern := "%" + likeEscaper.Replace(query.Search) + "%"
	return sq.Or{
		sq.ILike{"title": pattern},
		sq.ILike{"author": pattern},
		sq.ILike{"genre": pattern},
	}
}

// buildListBooksQuery builds the paginated, sorted, optionally filtered
// SELECT for the listing endpoint.
func buildListBooksQuery(query models.ListQuery) (string, []any, error) {
	column, direction := resolveSort(query)

	builder := sq.
		Select("id", "title", "author", "genre", "year").
		From("books").
		PlaceholderFormat(sq.Dollar).
		OrderBy(column + " " + direction).
		Limit(uint64(query.Limit)).
		Offset(uint64(query.Offset()))

	if filter := searchFilter(query); filter != nil {
		builder = builder.Where(filter)
	}

	return builder.ToSql()
}

// buildCountBooksQuery builds the COUNT over the same search filter as
// buildListBooksQuery, without pagination, so totalCount reflects the full
// matching set.
func buildCountBooksQuery(query models.ListQuery) (string, []any, error) {
	builder := sq.
		Select("COUNT(*)").
		From("books").
		PlaceholderFormat(sq.Dollar)

	if filter := searchFilter(query); filter != nil {
		builder = builder.Where(filter)
	}

	return builder.ToSql()
}
