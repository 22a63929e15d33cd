package models

// Book represents a single catalog record.
// All fields except ID are supplied by the client; ID is assigned by the
// database and is immutable after creation.
type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
	Year   int    `json:"year"`
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}

// BookInput holds the fields a client must supply when creating or replacing
// a book. Year is typed as an int so "numeric" is enforced at decode time.
type BookInput struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
	Year   int    `json:"year"`
}

// ListQuery describes a paginated, sorted, optionally filtered book listing.
// SortBy and SortOrder are expected to be resolved (whitelisted) before the
// query reaches the storage layer.
type ListQuery struct {
	// Page is the 1-based page number.
	Page int

	// Limit is the page size.
	Limit int

	// SortBy is one of: title, author, genre, year.
	SortBy string

	// SortOrder is "asc" or "desc".
	SortOrder string

	// Search is an optional case-insensitive substring matched against
	// title, author, and genre. Empty means no filter.
	Search string
}

// Offset returns the row offset implied by Page and Limit.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
