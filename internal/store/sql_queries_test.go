package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-book-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_resolveSort(t *testing.T) {
	tests := []struct {
		name          string
		sortBy        string
		sortOrder     string
		wantColumn    string
		wantDirection string
	}{
		{"explicit title asc", "title", "asc", "title", "ASC"},
		{"author desc", "author", "desc", "author", "DESC"},
		{"genre", "genre", "", "genre", "ASC"},
		{"year desc uppercase", "year", "DESC", "year", "DESC"},
		{"unknown column falls back to title", "price", "asc", "title", "ASC"},
		{"empty sortBy falls back to title", "", "", "title", "ASC"},
		{"injection attempt falls back to title", "title; DROP TABLE books", "asc", "title", "ASC"},
		{"unknown direction falls back to asc", "title", "sideways", "title", "ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			column, direction := resolveSort(models.ListQuery{SortBy: tt.sortBy, SortOrder: tt.sortOrder})
			assert.Equal(t, tt.wantColumn, column)
			assert.Equal(t, tt.wantDirection, direction)
		})
	}
}

func Test_buildListBooksQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildListBooksQuery(models.ListQuery{
		Page:      2,
		Limit:     10,
		SortBy:    "year",
		SortOrder: "desc",
	})
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from books")
	require.Contains(t, q, "order by year desc")
	require.Contains(t, q, "limit 10")
	require.Contains(t, q, "offset 10")

	// columns presence
	for _, c := range []string{"id", "title", "author", "genre", "year"} {
		require.Contains(t, q, c)
	}

	// no filter clause without a search term
	require.NotContains(t, q, "where")
	require.NotContains(t, q, "ilike")
}

func Test_buildListBooksQuery_WithSearch(t *testing.T) {
	query, args, err := buildListBooksQuery(models.ListQuery{
		Page:   1,
		Limit:  5,
		Search: "tolkien",
	})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "where")
	require.Contains(t, q, "ilike")
	require.Contains(t, q, " or ")

	// placeholder format should be $1..$3 (Postgres)
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")
	require.Contains(t, query, "$3")

	// one pattern per searched column, all identical
	require.Len(t, args, 3)
	for _, arg := range args {
		assert.Equal(t, "%tolkien%", arg)
	}
}

func Test_buildListBooksQuery_EscapesSearchWildcards(t *testing.T) {
	tests := []struct {
		name        string
		search      string
		wantPattern string
	}{
		{"percent matches literally", "100%", `%100\%%`},
		{"underscore matches literally", "a_b", `%a\_b%`},
		{"backslash matches literally", `back\slash`, `%back\\slash%`},
		{"plain term untouched", "dune", "%dune%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, args, err := buildListBooksQuery(models.ListQuery{Page: 1, Limit: 10, Search: tt.search})
			require.NoError(t, err)

			require.Len(t, args, 3)
			for _, arg := range args {
				assert.Equal(t, tt.wantPattern, arg)
			}
		})
	}
}

func Test_buildListBooksQuery_Pagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantLimit  string
		wantOffset string
	}{
		{"first page", 1, 10, "LIMIT 10", "OFFSET 0"},
		{"third page", 3, 20, "LIMIT 20", "OFFSET 40"},
		{"limit of one", 5, 1, "LIMIT 1", "OFFSET 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _, err := buildListBooksQuery(models.ListQuery{Page: tt.page, Limit: tt.limit})
			require.NoError(t, err)
			assert.Contains(t, query, tt.wantLimit)
			assert.Contains(t, query, tt.wantOffset)
		})
	}
}

func Test_buildCountBooksQuery(t *testing.T) {
	query, args, err := buildCountBooksQuery(models.ListQuery{Page: 4, Limit: 10})
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "count(*)")
	require.Contains(t, q, "from books")

	// the count ignores pagination entirely
	require.NotContains(t, q, "limit")
	require.NotContains(t, q, "offset")
	require.NotContains(t, q, "order by")
}

func Test_buildCountBooksQuery_SharesSearchFilter(t *testing.T) {
	listSQL, listArgs, err := buildListBooksQuery(models.ListQuery{Page: 1, Limit: 10, Search: "dune"})
	require.NoError(t, err)

	countSQL, countArgs, err := buildCountBooksQuery(models.ListQuery{Page: 1, Limit: 10, Search: "dune"})
	require.NoError(t, err)

	// the same placeholders and the same arguments in both queries
	require.Equal(t, listArgs, countArgs)
	assert.Contains(t, strings.ToLower(countSQL), "ilike")
	assert.Contains(t, strings.ToLower(listSQL), "ilike")
}
