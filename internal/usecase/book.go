package usecase

import (
	"bookreviews/internal/entity"
	"context"
	"strings"
)

// ListParams carries the query knobs for GET /books. SortBy names a
// JSON field; the store maps it onto an allow-listed column and falls
// back to newest-first when it names anything else.
type ListParams struct {
	Author    string
	Genre     string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

type BookService struct {
	books   BookRepository
	reviews ReviewRepository
}

func NewBookService(books BookRepository, reviews ReviewRepository) *BookService {
	return &BookService{books: books, reviews: reviews}
}

func (s *BookService) Add(ctx context.Context, b *entity.Book) error {
	return s.books.Create(ctx, b)
}

func (s *BookService) List(ctx context.Context, p ListParams) ([]entity.Book, Pagination, error) {
	books, total, err := s.books.List(ctx, p)
	if err != nil {
		return nil, Pagination{}, err
	}
	return books, NewPagination(p.Page, p.Limit, total), nil
}

// Search matches a case-insensitive substring against title or author,
// best-rated first. An empty query after trimming is invalid input,
// never an empty success.
func (s *BookService) Search(ctx context.Context, query string, page, limit int) ([]entity.Book, Pagination, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, Pagination{}, ErrInvalidInput
	}
	books, total, err := s.books.Search(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, Pagination{}, err
	}
	return books, NewPagination(page, limit, total), nil
}

// Detail returns the book together with a newest-first page of its
// reviews.
func (s *BookService) Detail(ctx context.Context, bookID string, reviewPage, reviewLimit int) (entity.Book, []entity.Review, Pagination, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return entity.Book{}, nil, Pagination{}, err
	}
	reviews, total, err := s.reviews.ListByBook(ctx, bookID, reviewLimit, (reviewPage-1)*reviewLimit)
	if err != nil {
		return entity.Book{}, nil, Pagination{}, err
	}
	return book, reviews, NewPagination(reviewPage, reviewLimit, total), nil
}
