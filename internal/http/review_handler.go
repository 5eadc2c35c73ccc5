package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"bookreviews/internal/httpx"
	"bookreviews/internal/usecase"
)

type ReviewHandler struct {
	reviews *usecase.ReviewService
}

func NewReviewHandler(reviews *usecase.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type createReviewReq struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=1000"`
}

// Create handles POST /books/{id}/reviews (authenticated).
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	bookID := r.PathValue("id")
	if bookID == "" {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid book id", nil)
		return
	}

	var req createReviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	review, err := h.reviews.Create(r.Context(), bookID, userID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, usecase.ErrAlreadyExists):
			httpx.JSONError(r, w, http.StatusConflict, "ALREADY_EXISTS", "You have already reviewed this book", nil)
		case errors.Is(err, usecase.ErrInvalidInput):
			httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Rating must be between 1 and 5", nil)
		default:
			log.Printf("create review: %v", err)
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccessCreated(r, w, review)
}

type updateReviewReq struct {
	Rating  *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment *string `json:"comment" validate:"omitempty,max=1000"`
}

// Update handles PUT /reviews/{id} (authenticated). Only rating and
// comment may change; any other field in the body is ignored.
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	reviewID := r.PathValue("id")
	if reviewID == "" {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid review id", nil)
		return
	}

	var req updateReviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	review, err := h.reviews.Update(r.Context(), reviewID, userID, usecase.ReviewPatch{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Review not found", nil)
		case errors.Is(err, usecase.ErrForbidden):
			httpx.JSONError(r, w, http.StatusForbidden, "FORBIDDEN", "You can only update your own reviews", nil)
		case errors.Is(err, usecase.ErrInvalidInput):
			httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Rating must be between 1 and 5", nil)
		default:
			log.Printf("update review: %v", err)
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccess(r, w, review, nil)
}

// Delete handles DELETE /reviews/{id} (authenticated).
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	reviewID := r.PathValue("id")
	if reviewID == "" {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid review id", nil)
		return
	}

	if err := h.reviews.Delete(r.Context(), reviewID, userID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Review not found", nil)
		case errors.Is(err, usecase.ErrForbidden):
			httpx.JSONError(r, w, http.StatusForbidden, "FORBIDDEN", "You can only delete your own reviews", nil)
		default:
			log.Printf("delete review: %v", err)
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccess(r, w, map[string]any{"message": "Review deleted successfully"}, nil)
}
