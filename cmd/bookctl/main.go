// Command bookctl is a thin command-line client for the book catalog API.
// Every subcommand maps to a single API call; the bearer token printed by
// "bookctl login" is passed to catalog commands via --token or BOOKCTL_TOKEN.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-book-catalog/internal/adapter"
	"github.com/MKhiriev/go-book-catalog/models"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	serverAddr string
	token      string

	bookTitle  string
	bookAuthor string
	bookGenre  string
	bookYear   int

	listPage      int
	listLimit     int
	listSortBy    string
	listSortOrder string
	listSearch    string
)

func newClient() adapter.CatalogClient {
	if token == "" {
		token = os.Getenv("BOOKCTL_TOKEN")
	}

	return adapter.NewHTTPCatalogClient(adapter.HTTPClientConfig{
		BaseURL: serverAddr,
		Token:   token,
	})
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "bookctl",
		Short:        "Command-line client for the book catalog API",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", os.Getenv("BOOKCTL_ADDR"), "API base URL (default http://localhost:8080)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "bearer token (env: BOOKCTL_TOKEN)")

	registerCmd := &cobra.Command{
		Use:   "register <username> <password>",
		Short: "Register a new user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := newClient().Register(cmd.Context(), models.Credentials{Username: args[0], Password: args[1]})
			if err != nil {
				return err
			}

			fmt.Println("User registered successfully")
			return nil
		},
	}

	loginCmd := &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Login and print a bearer token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := newClient().Login(cmd.Context(), models.Credentials{Username: args[0], Password: args[1]})
			if err != nil {
				return err
			}

			fmt.Println(tok)
			return nil
		},
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := newClient().CreateBook(cmd.Context(), models.BookInput{
				Title:  bookTitle,
				Author: bookAuthor,
				Genre:  bookGenre,
				Year:   bookYear,
			})
			if err != nil {
				return err
			}

			return printJSON(book)
		},
	}
	addBookFlags(addCmd)

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			book, err := newClient().GetBook(cmd.Context(), id)
			if err != nil {
				return err
			}

			return printJSON(book)
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a book's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			book, err := newClient().UpdateBook(cmd.Context(), id, models.BookInput{
				Title:  bookTitle,
				Author: bookAuthor,
				Genre:  bookGenre,
				Year:   bookYear,
			})
			if err != nil {
				return err
			}

			return printJSON(book)
		},
	}
	addBookFlags(updateCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err = newClient().DeleteBook(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Println("Book deleted")
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List books with pagination, sorting, and search",
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := newClient().ListBooks(cmd.Context(), models.ListQuery{
				Page:      listPage,
				Limit:     listLimit,
				SortBy:    listSortBy,
				SortOrder: listSortOrder,
				Search:    listSearch,
			})
			if err != nil {
				return err
			}

			return printJSON(listing)
		},
	}
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number (1-based)")
	listCmd.Flags().IntVar(&listLimit, "limit", 10, "page size")
	listCmd.Flags().StringVar(&listSortBy, "sort-by", "", "sort field: title|author|genre|year")
	listCmd.Flags().StringVar(&listSortOrder, "sort-order", "", "sort direction: asc|desc")
	listCmd.Flags().StringVar(&listSearch, "search", "", "case-insensitive substring filter")

	rootCmd.AddCommand(registerCmd, loginCmd, addCmd, getCmd, updateCmd, deleteCmd, listCmd)

	return rootCmd
}

func addBookFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&bookTitle, "title", "", "book title")
	cmd.Flags().StringVar(&bookAuthor, "author", "", "book author")
	cmd.Flags().StringVar(&bookGenre, "genre", "", "book genre")
	cmd.Flags().IntVar(&bookYear, "year", 0, "publication year")
}

func parseID(arg string) (int64, error) {
	var id int64
	if _, err := fmt.Sscanf(arg, "%d", &id); err != nil || id < 1 {
		return 0, fmt.Errorf("invalid book id %q", arg)
	}
	return id, nil
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
