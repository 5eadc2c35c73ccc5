package usecase

import (
	"context"
	"math"
)

// RatingAggregator keeps a book's averageRating and totalReviews
// consistent with its review set. It always recomputes from the full
// set rather than patching incrementally, so concurrent mutations can
// only race toward a value that some snapshot of the reviews produced.
type RatingAggregator struct {
	reviews ReviewRepository
	books   BookRepository
}

func NewRatingAggregator(reviews ReviewRepository, books BookRepository) *RatingAggregator {
	return &RatingAggregator{reviews: reviews, books: books}
}

// Recompute reads the current review set for the book and writes the
// derived aggregate back. Zero reviews reset both fields to 0. A book
// that no longer exists is a no-op.
func (a *RatingAggregator) Recompute(ctx context.Context, bookID string) error {
	average, count, err := a.reviews.AggregateByBook(ctx, bookID)
	if err != nil {
		return err
	}
	if count == 0 {
		return a.books.UpdateRating(ctx, bookID, 0, 0)
	}
	return a.books.UpdateRating(ctx, bookID, roundRating(average), count)
}

// roundRating rounds half-up at the tenths digit: 4.75 -> 4.8.
func roundRating(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}
