package usecase

import (
	"bookreviews/internal/entity"
	"context"
)

// ReviewPatch enumerates the only fields a review's author may change.
type ReviewPatch struct {
	Rating  *int
	Comment *string
}

type ReviewService struct {
	reviews    ReviewRepository
	books      BookRepository
	aggregator *RatingAggregator
}

func NewReviewService(reviews ReviewRepository, books BookRepository, aggregator *RatingAggregator) *ReviewService {
	return &ReviewService{reviews: reviews, books: books, aggregator: aggregator}
}

// Create adds the caller's review for a book. The one-review-per-
// (book, user) rule is enforced by the unique index on the reviews
// table, so two concurrent creates cannot both succeed; the loser
// surfaces as ErrAlreadyExists.
func (s *ReviewService) Create(ctx context.Context, bookID, userID string, rating int, comment string) (entity.Review, error) {
	if rating < 1 || rating > 5 {
		return entity.Review{}, ErrInvalidInput
	}
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		return entity.Review{}, err
	}
	rev := entity.Review{
		BookID:  bookID,
		User:    entity.PublicUser{ID: userID},
		Rating:  rating,
		Comment: comment,
	}
	if err := s.reviews.Create(ctx, &rev); err != nil {
		return entity.Review{}, err
	}
	if err := s.aggregator.Recompute(ctx, bookID); err != nil {
		return entity.Review{}, err
	}
	return s.reviews.GetByID(ctx, rev.ID)
}

// Update applies an allow-listed patch to the caller's own review.
func (s *ReviewService) Update(ctx context.Context, reviewID, callerID string, patch ReviewPatch) (entity.Review, error) {
	rev, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return entity.Review{}, err
	}
	if rev.User.ID != callerID {
		return entity.Review{}, ErrForbidden
	}
	if patch.Rating != nil {
		if *patch.Rating < 1 || *patch.Rating > 5 {
			return entity.Review{}, ErrInvalidInput
		}
		rev.Rating = *patch.Rating
	}
	if patch.Comment != nil {
		rev.Comment = *patch.Comment
	}
	if err := s.reviews.Update(ctx, &rev); err != nil {
		return entity.Review{}, err
	}
	if err := s.aggregator.Recompute(ctx, rev.BookID); err != nil {
		return entity.Review{}, err
	}
	return rev, nil
}

// Delete removes the caller's own review.
func (s *ReviewService) Delete(ctx context.Context, reviewID, callerID string) error {
	rev, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if rev.User.ID != callerID {
		return ErrForbidden
	}
	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}
	return s.aggregator.Recompute(ctx, rev.BookID)
}
