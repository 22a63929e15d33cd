package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/store"
	"github.com/MKhiriev/go-book-catalog/internal/utils"
	"github.com/MKhiriev/go-book-catalog/internal/validators"
	"github.com/MKhiriev/go-book-catalog/models"
	"github.com/go-chi/chi/v5"
)

// createBook handles POST /books.
func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input models.BookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if v := validators.ValidateBookInput(input); !v.Valid() {
		log.Error().Any("errors", v.Errors()).Msg("book validation failed")
		utils.WriteJSON(w, validators.ValidationErrorsResponse{Errors: v.Errors()}, http.StatusBadRequest)
		return
	}

	book, err := h.services.BookService.CreateBook(ctx, input)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during book creation")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgServerError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, book, http.StatusCreated)
}

// getBook handles GET /books/{id}.
func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := bookIDFromRequest(r)
	if !ok {
		utils.WriteJSON(w, models.ErrorResponse{Error: msgBookNotFound}, http.StatusNotFound)
		return
	}

	book, err := h.services.BookService.GetBook(ctx, id)
	if err != nil {
		h.respondBookError(w, log, err, "book lookup failed")
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

// updateBook handles PUT /books/{id}. The record is replaced in full; the
// field rules are the same as for creation.
func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := bookIDFromRequest(r)
	if !ok {
		utils.WriteJSON(w, models.ErrorResponse{Error: msgBookNotFound}, http.StatusNotFound)
		return
	}

	var input models.BookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if v := validators.ValidateBookInput(input); !v.Valid() {
		log.Error().Any("errors", v.Errors()).Msg("book validation failed")
		utils.WriteJSON(w, validators.ValidationErrorsResponse{Errors: v.Errors()}, http.StatusBadRequest)
		return
	}

	book, err := h.services.BookService.UpdateBook(ctx, id, input)
	if err != nil {
		h.respondBookError(w, log, err, "book update failed")
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

// deleteBook handles DELETE /books/{id}.
func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := bookIDFromRequest(r)
	if !ok {
		utils.WriteJSON(w, models.ErrorResponse{Error: msgBookNotFound}, http.StatusNotFound)
		return
	}

	if err := h.services.BookService.DeleteBook(ctx, id); err != nil {
		h.respondBookError(w, log, err, "book deletion failed")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgBookDeleted}, http.StatusOK)
}

// listBooks handles GET /books.
//
// page and limit are mandatory positive integers; anything else is a 400
// before the store is touched. sortBy/sortOrder fall back to their defaults
// inside the service and search is passed through as-is.
func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query, ok := listQueryFromRequest(r)
	if !ok {
		log.Error().
			Str("page", r.URL.Query().Get("page")).
			Str("limit", r.URL.Query().Get("limit")).
			Msg("invalid pagination parameters")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidPagination}, http.StatusBadRequest)
		return
	}

	listing, err := h.services.BookService.ListBooks(ctx, query)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during book listing")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgServerError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, listing, http.StatusOK)
}

// respondBookError maps service/store failures of the single-book operations
// to their HTTP responses: a missing record is a 404, everything else is an
// opaque 500 with the original error logged server-side.
func (h *Handler) respondBookError(w http.ResponseWriter, log *logger.Logger, err error, msg string) {
	if errors.Is(err, store.ErrBookNotFound) {
		log.Err(err).Msg("book not found")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgBookNotFound}, http.StatusNotFound)
		return
	}

	log.Err(err).Msg(msg)
	utils.WriteJSON(w, models.ErrorResponse{Error: msgServerError}, http.StatusInternalServerError)
}

// bookIDFromRequest parses the {id} URL parameter. A non-numeric id cannot
// refer to any record, so callers treat ok == false the same as a missing
// book.
func bookIDFromRequest(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// listQueryFromRequest parses and validates the listing query parameters.
// ok == false means page or limit is missing, non-numeric, or below 1.
func listQueryFromRequest(r *http.Request) (models.ListQuery, bool) {
	params := r.URL.Query()

	page, err := strconv.Atoi(params.Get("page"))
	if err != nil || page < 1 {
		return models.ListQuery{}, false
	}

	limit, err := strconv.Atoi(params.Get("limit"))
	if err != nil || limit < 1 {
		return models.ListQuery{}, false
	}

	return models.ListQuery{
		Page:      page,
		Limit:     limit,
		SortBy:    params.Get("sortBy"),
		SortOrder: params.Get("sortOrder"),
		Search:    params.Get("search"),
	}, true
}
