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

func newBookService(t *testing.T) (*usecase.BookService, *mocks.MockBookRepository, *mocks.MockReviewRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	books := mocks.NewMockBookRepository(ctrl)
	reviews := mocks.NewMockReviewRepository(ctrl)
	return usecase.NewBookService(books, reviews), books, reviews
}

func TestBookService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("empty query is invalid input, not an empty success", func(t *testing.T) {
		svc, _, _ := newBookService(t)

		for _, q := range []string{"", "   ", "\t\n"} {
			_, _, err := svc.Search(ctx, q, 1, 10)
			assert.ErrorIs(t, err, usecase.ErrInvalidInput)
		}
	})

	t.Run("query is trimmed and offset derived from the page", func(t *testing.T) {
		svc, books, _ := newBookService(t)

		books.EXPECT().Search(ctx, "tolkien", 10, 10).
			Return([]entity.Book{{ID: "b1"}}, 11, nil)

		result, pagination, err := svc.Search(ctx, "  tolkien ", 2, 10)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, 2, pagination.CurrentPage)
		assert.Equal(t, 2, pagination.TotalPages)
		assert.Equal(t, 11, pagination.TotalItems)
		assert.False(t, pagination.HasNext)
		assert.True(t, pagination.HasPrev)
	})
}

func TestBookService_List(t *testing.T) {
	ctx := context.Background()
	svc, books, _ := newBookService(t)

	params := usecase.ListParams{Author: "tolkien", SortBy: "publishedYear", SortOrder: "asc", Page: 1, Limit: 10}
	books.EXPECT().List(ctx, params).Return([]entity.Book{{ID: "b1"}, {ID: "b2"}}, 2, nil)

	result, pagination, err := svc.List(ctx, params)
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, usecase.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 2}, pagination)
}

func TestBookService_Detail(t *testing.T) {
	ctx := context.Background()

	t.Run("book with a page of reviews", func(t *testing.T) {
		svc, books, reviews := newBookService(t)

		books.EXPECT().GetByID(ctx, "b1").Return(entity.Book{ID: "b1", AverageRating: 4.5, TotalReviews: 2}, nil)
		reviews.EXPECT().ListByBook(ctx, "b1", 5, 0).
			Return([]entity.Review{{ID: "r1"}, {ID: "r2"}}, 2, nil)

		book, revs, pagination, err := svc.Detail(ctx, "b1", 1, 5)
		assert.NoError(t, err)
		assert.Equal(t, "b1", book.ID)
		assert.Len(t, revs, 2)
		assert.Equal(t, 1, pagination.TotalPages)
	})

	t.Run("missing book", func(t *testing.T) {
		svc, books, _ := newBookService(t)

		books.EXPECT().GetByID(ctx, "missing").Return(entity.Book{}, usecase.ErrNotFound)

		_, _, _, err := svc.Detail(ctx, "missing", 1, 5)
		assert.ErrorIs(t, err, usecase.ErrNotFound)
	})

	t.Run("out of range review page is an empty success", func(t *testing.T) {
		svc, books, reviews := newBookService(t)

		books.EXPECT().GetByID(ctx, "b1").Return(entity.Book{ID: "b1"}, nil)
		reviews.EXPECT().ListByBook(ctx, "b1", 5, 45).Return([]entity.Review{}, 2, nil)

		_, revs, pagination, err := svc.Detail(ctx, "b1", 10, 5)
		assert.NoError(t, err)
		assert.Empty(t, revs)
		assert.False(t, pagination.HasNext)
	})
}
