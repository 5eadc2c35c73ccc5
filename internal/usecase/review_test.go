package usecase_test

import (
	"context"
	"testing"

	"bookreviews/internal/entity"
	"bookreviews/internal/store/mocks"
	"bookreviews/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newReviewService(t *testing.T) (*usecase.ReviewService, *mocks.MockReviewRepository, *mocks.MockBookRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	reviews := mocks.NewMockReviewRepository(ctrl)
	books := mocks.NewMockBookRepository(ctrl)
	aggregator := usecase.NewRatingAggregator(reviews, books)
	return usecase.NewReviewService(reviews, books, aggregator), reviews, books
}

func TestReviewService_Create(t *testing.T) {
	ctx := context.Background()
	const (
		bookID = "book-1"
		userID = "user-1"
	)

	t.Run("success recomputes the book rating before returning", func(t *testing.T) {
		svc, reviews, books := newReviewService(t)

		books.EXPECT().GetByID(ctx, bookID).Return(entity.Book{ID: bookID}, nil)
		reviews.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, rev *entity.Review) error {
				rev.ID = "review-1"
				return nil
			})
		reviews.EXPECT().AggregateByBook(ctx, bookID).Return(4.0, 1, nil)
		books.EXPECT().UpdateRating(ctx, bookID, 4.0, 1).Return(nil)
		reviews.EXPECT().GetByID(ctx, "review-1").Return(entity.Review{
			ID:     "review-1",
			BookID: bookID,
			User:   entity.PublicUser{ID: userID},
			Rating: 4,
		}, nil)

		rev, err := svc.Create(ctx, bookID, userID, 4, "great read")
		assert.NoError(t, err)
		assert.Equal(t, "review-1", rev.ID)
	})

	t.Run("duplicate review surfaces conflict", func(t *testing.T) {
		svc, reviews, books := newReviewService(t)

		books.EXPECT().GetByID(ctx, bookID).Return(entity.Book{ID: bookID}, nil)
		reviews.EXPECT().Create(ctx, gomock.Any()).Return(usecase.ErrAlreadyExists)

		_, err := svc.Create(ctx, bookID, userID, 4, "")
		assert.ErrorIs(t, err, usecase.ErrAlreadyExists)
	})

	t.Run("unknown book", func(t *testing.T) {
		svc, _, books := newReviewService(t)

		books.EXPECT().GetByID(ctx, "missing").Return(entity.Book{}, usecase.ErrNotFound)

		_, err := svc.Create(ctx, "missing", userID, 4, "")
		assert.ErrorIs(t, err, usecase.ErrNotFound)
	})

	t.Run("rating out of range", func(t *testing.T) {
		svc, _, _ := newReviewService(t)

		for _, rating := range []int{0, 6, -1} {
			_, err := svc.Create(ctx, bookID, userID, rating, "")
			assert.ErrorIs(t, err, usecase.ErrInvalidInput)
		}
	})
}

func TestReviewService_Update(t *testing.T) {
	ctx := context.Background()
	existing := entity.Review{
		ID:      "review-1",
		BookID:  "book-1",
		User:    entity.PublicUser{ID: "user-1"},
		Rating:  3,
		Comment: "fine",
	}
	intp := func(v int) *int { return &v }
	strp := func(v string) *string { return &v }

	t.Run("owner patches rating and comment, rating recomputed", func(t *testing.T) {
		svc, reviews, books := newReviewService(t)

		reviews.EXPECT().GetByID(ctx, "review-1").Return(existing, nil)
		reviews.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, rev *entity.Review) error {
				assert.Equal(t, 5, rev.Rating)
				assert.Equal(t, "changed my mind", rev.Comment)
				return nil
			})
		reviews.EXPECT().AggregateByBook(ctx, "book-1").Return(5.0, 1, nil)
		books.EXPECT().UpdateRating(ctx, "book-1", 5.0, 1).Return(nil)

		rev, err := svc.Update(ctx, "review-1", "user-1", usecase.ReviewPatch{
			Rating:  intp(5),
			Comment: strp("changed my mind"),
		})
		assert.NoError(t, err)
		assert.Equal(t, 5, rev.Rating)
	})

	t.Run("partial patch keeps the other field", func(t *testing.T) {
		svc, reviews, books := newReviewService(t)

		reviews.EXPECT().GetByID(ctx, "review-1").Return(existing, nil)
		reviews.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, rev *entity.Review) error {
				assert.Equal(t, 3, rev.Rating)
				assert.Equal(t, "edited", rev.Comment)
				return nil
			})
		reviews.EXPECT().AggregateByBook(ctx, "book-1").Return(3.0, 1, nil)
		books.EXPECT().UpdateRating(ctx, "book-1", 3.0, 1).Return(nil)

		_, err := svc.Update(ctx, "review-1", "user-1", usecase.ReviewPatch{Comment: strp("edited")})
		assert.NoError(t, err)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		svc, reviews, _ := newReviewService(t)

		reviews.EXPECT().GetByID(ctx, "review-1").Return(existing, nil)

		_, err := svc.Update(ctx, "review-1", "someone-else", usecase.ReviewPatch{Rating: intp(1)})
		assert.ErrorIs(t, err, usecase.ErrForbidden)
	})

	t.Run("missing review", func(t *testing.T) {
		svc, reviews, _ := newReviewService(t)

		reviews.EXPECT().GetByID(ctx, "missing").Return(entity.Review{}, usecase.ErrNotFound)

		_, err := svc.Update(ctx, "missing", "user-1", usecase.ReviewPatch{})
		assert.ErrorIs(t, err, usecase.ErrNotFound)
	})

	t.Run("patched rating out of range", func(t *testing.T) {
		svc, reviews, _ := newReviewService(t)

		reviews.EXPECT().GetByID(ctx, "review-1").Return(existing, nil)

		_, err := svc.Update(ctx, "review-1", "user-1", usecase.ReviewPatch{Rating: intp(9)})
		assert.ErrorIs(t, err, usecase.ErrInvalidInput)
	})
}

func TestReviewService_Delete(t *testing.T) {
	ctx := context.Background()
	existing := entity.Review{
		ID:     "review-1",
		BookID: "book-1",
		User:   entity.PublicUser{ID: "user-1"},
		Rating: 5,
	}

	t.Run("owner delete recomputes, empty set resets aggregate", func(t *testing.T) {
		svc, reviews, books := newReviewService(t)

		reviews.EXPECT().GetByID(ctx, "review-1").Return(existing, nil)
		reviews.EXPECT().Delete(ctx, "review-1").Return(nil)
		reviews.EXPECT().AggregateByBook(ctx, "book-1").Return(0.0, 0, nil)
		books.EXPECT().UpdateRating(ctx, "book-1", 0.0, 0).Return(nil)

		assert.NoError(t, svc.Delete(ctx, "review-1", "user-1"))
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		svc, reviews, _ := newReviewService(t)

		reviews.EXPECT().GetByID(ctx, "review-1").Return(existing, nil)

		assert.ErrorIs(t, svc.Delete(ctx, "review-1", "intruder"), usecase.ErrForbidden)
	})

	t.Run("missing review", func(t *testing.T) {
		svc, reviews, _ := newReviewService(t)

		reviews.EXPECT().GetByID(ctx, "missing").Return(entity.Review{}, usecase.ErrNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, "missing", "user-1"), usecase.ErrNotFound)
	})
}

// Mirrors the scenario from the API docs: two reviewers, then one
// deletes, and the aggregate follows each step.
func TestReviewService_AggregateFollowsMutations(t *testing.T) {
	ctx := context.Background()
	svc, reviews, books := newReviewService(t)
	const bookID = "book-B"

	// U1 rates 4: average 4, one review.
	books.EXPECT().GetByID(ctx, bookID).Return(entity.Book{ID: bookID}, nil)
	reviews.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rev *entity.Review) error {
			rev.ID = "r1"
			return nil
		})
	reviews.EXPECT().AggregateByBook(ctx, bookID).Return(4.0, 1, nil)
	books.EXPECT().UpdateRating(ctx, bookID, 4.0, 1).Return(nil)
	reviews.EXPECT().GetByID(ctx, "r1").Return(entity.Review{ID: "r1", BookID: bookID, User: entity.PublicUser{ID: "u1"}, Rating: 4}, nil)

	_, err := svc.Create(ctx, bookID, "u1", 4, "")
	assert.NoError(t, err)

	// U2 rates 5: average 4.5, two reviews.
	books.EXPECT().GetByID(ctx, bookID).Return(entity.Book{ID: bookID}, nil)
	reviews.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rev *entity.Review) error {
			rev.ID = "r2"
			return nil
		})
	reviews.EXPECT().AggregateByBook(ctx, bookID).Return(4.5, 2, nil)
	books.EXPECT().UpdateRating(ctx, bookID, 4.5, 2).Return(nil)
	reviews.EXPECT().GetByID(ctx, "r2").Return(entity.Review{ID: "r2", BookID: bookID, User: entity.PublicUser{ID: "u2"}, Rating: 5}, nil)

	_, err = svc.Create(ctx, bookID, "u2", 5, "")
	assert.NoError(t, err)

	// U1 deletes: only the 5 remains.
	reviews.EXPECT().GetByID(ctx, "r1").Return(entity.Review{ID: "r1", BookID: bookID, User: entity.PublicUser{ID: "u1"}, Rating: 4}, nil)
	reviews.EXPECT().Delete(ctx, "r1").Return(nil)
	reviews.EXPECT().AggregateByBook(ctx, bookID).Return(5.0, 1, nil)
	books.EXPECT().UpdateRating(ctx, bookID, 5.0, 1).Return(nil)

	assert.NoError(t, svc.Delete(ctx, "r1", "u1"))
}
