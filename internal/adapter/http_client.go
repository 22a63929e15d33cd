package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-book-catalog/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig configures the catalog HTTP client.
type HTTPClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type httpCatalogClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPCatalogClient constructs a [CatalogClient] talking to the server at
// cfg.BaseURL. A token captured earlier (e.g. from a previous login) may be
// supplied via cfg.Token.
func NewHTTPCatalogClient(cfg HTTPClientConfig) CatalogClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpCatalogClient{client: cli, token: cfg.Token}
}

func (h *httpCatalogClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpCatalogClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpCatalogClient) Register(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCatalogClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&loginResp).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(loginResp.Token)
	return loginResp.Token, nil
}

func (h *httpCatalogClient) CreateBook(ctx context.Context, input models.BookInput) (models.Book, error) {
	var book models.Book

	resp, err := h.authorized(ctx).
		SetBody(input).
		SetResult(&book).
		Post("/books")
	if err != nil {
		return models.Book{}, fmt.Errorf("create book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Book{}, err
	}

	return book, nil
}

func (h *httpCatalogClient) GetBook(ctx context.Context, id int64) (models.Book, error) {
	var book models.Book

	resp, err := h.authorized(ctx).
		SetResult(&book).
		Get("/books/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Book{}, fmt.Errorf("get book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Book{}, err
	}

	return book, nil
}

func (h *httpCatalogClient) UpdateBook(ctx context.Context, id int64, input models.BookInput) (models.Book, error) {
	var book models.Book

	resp, err := h.authorized(ctx).
		SetBody(input).
		SetResult(&book).
		Put("/books/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Book{}, fmt.Errorf("update book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Book{}, err
	}

	return book, nil
}

func (h *httpCatalogClient) DeleteBook(ctx context.Context, id int64) error {
	resp, err := h.authorized(ctx).
		Delete("/books/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete book request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCatalogClient) ListBooks(ctx context.Context, query models.ListQuery) (models.ListBooksResponse, error) {
	var listing models.ListBooksResponse

	req := h.authorized(ctx).
		SetQueryParam("page", strconv.Itoa(query.Page)).
		SetQueryParam("limit", strconv.Itoa(query.Limit)).
		SetResult(&listing)

	if query.SortBy != "" {
		req.SetQueryParam("sortBy", query.SortBy)
	}
	if query.SortOrder != "" {
		req.SetQueryParam("sortOrder", query.SortOrder)
	}
	if query.Search != "" {
		req.SetQueryParam("search", query.Search)
	}

	resp, err := req.Get("/books")
	if err != nil {
		return models.ListBooksResponse{}, fmt.Errorf("list books request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ListBooksResponse{}, err
	}

	return listing, nil
}

// authorized prepares a request carrying the stored bearer token.
func (h *httpCatalogClient) authorized(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+h.Token())
}

// mapHTTPError converts a non-2xx response to a sentinel error wrapped with
// the server-provided message when one is present.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	var sentinel error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	default:
		sentinel = ErrServer
	}

	var errResp models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("%w: %s", sentinel, errResp.Error)
	}

	return fmt.Errorf("%w: status %d", sentinel, resp.StatusCode())
}
