package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"bookreviews/internal/entity"
	"bookreviews/internal/httpx"
	"bookreviews/internal/usecase"
)

type BookHandler struct {
	books *usecase.BookService
}

func NewBookHandler(books *usecase.BookService) *BookHandler {
	return &BookHandler{books: books}
}

// List handles GET /books with author/genre filters, sortBy/sortOrder
// and offset pagination.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r, "page", "limit", 10)
	params := usecase.ListParams{
		Author:    r.URL.Query().Get("author"),
		Genre:     r.URL.Query().Get("genre"),
		SortBy:    r.URL.Query().Get("sortBy"),
		SortOrder: r.URL.Query().Get("sortOrder"),
		Page:      page,
		Limit:     limit,
	}

	books, pagination, err := h.books.List(r.Context(), params)
	if err != nil {
		log.Printf("list books: %v", err)
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(r, w, map[string]any{
		"books":      books,
		"pagination": pagination,
	}, nil)
}

type createBookReq struct {
	Title         string `json:"title" validate:"required,max=200"`
	Author        string `json:"author" validate:"required,max=100"`
	Genre         string `json:"genre" validate:"required,max=50"`
	Description   string `json:"description" validate:"max=2000"`
	ISBN          string `json:"isbn" validate:"omitempty,isbn"`
	PublishedYear int    `json:"publishedYear" validate:"omitempty,gte=1000,lte=2100"`
	Publisher     string `json:"publisher" validate:"max=100"`
	Pages         int    `json:"pages" validate:"omitempty,gte=1"`
	CoverImage    string `json:"coverImage"`
}

// Create handles POST /books (authenticated).
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req createBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	book := &entity.Book{
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		Description:   req.Description,
		ISBN:          req.ISBN,
		PublishedYear: req.PublishedYear,
		Publisher:     req.Publisher,
		Pages:         req.Pages,
		CoverImage:    req.CoverImage,
		AddedBy:       entity.PublicUser{ID: userID},
	}
	if err := h.books.Add(r.Context(), book); err != nil {
		if errors.Is(err, usecase.ErrAlreadyExists) {
			httpx.JSONError(r, w, http.StatusConflict, "ALREADY_EXISTS", "A book with this ISBN already exists", nil)
			return
		}
		log.Printf("create book: %v", err)
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(r, w, book)
}

// Detail handles GET /books/{id}, returning the book plus a
// newest-first page of its reviews.
func (h *BookHandler) Detail(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")
	if bookID == "" {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid book id", nil)
		return
	}

	reviewPage, reviewLimit := pageParams(r, "reviewPage", "reviewLimit", 5)
	book, reviews, pagination, err := h.books.Detail(r.Context(), bookID, reviewPage, reviewLimit)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		log.Printf("book detail: %v", err)
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(r, w, map[string]any{
		"book":             book,
		"reviews":          reviews,
		"reviewPagination": pagination,
	}, nil)
}

// Search handles GET /search?q=... over title and author, best-rated
// first.
func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	page, limit := pageParams(r, "page", "limit", 10)

	books, pagination, err := h.books.Search(r.Context(), query, page, limit)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Search query is required", nil)
			return
		}
		log.Printf("search books: %v", err)
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(r, w, map[string]any{
		"query":      query,
		"books":      books,
		"pagination": pagination,
	}, nil)
}
