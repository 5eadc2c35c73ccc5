package usecase

import (
	"bookreviews/internal/entity"
	"context"
)

//go:generate mockgen -destination ../store/mocks/mock_repositories.go -package mocks bookreviews/internal/usecase UserRepository,BookRepository,ReviewRepository

type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (entity.User, error)
	GetByID(ctx context.Context, id string) (entity.User, error)
}

type BookRepository interface {
	Create(ctx context.Context, b *entity.Book) error
	GetByID(ctx context.Context, id string) (entity.Book, error)
	List(ctx context.Context, p ListParams) ([]entity.Book, int, error)
	Search(ctx context.Context, query string, limit, offset int) ([]entity.Book, int, error)
	// UpdateRating writes the derived aggregate fields. Updating a book
	// that no longer exists is not an error.
	UpdateRating(ctx context.Context, bookID string, average float64, total int) error
}

type ReviewRepository interface {
	Create(ctx context.Context, rev *entity.Review) error
	GetByID(ctx context.Context, id string) (entity.Review, error)
	Update(ctx context.Context, rev *entity.Review) error
	Delete(ctx context.Context, id string) error
	ListByBook(ctx context.Context, bookID string, limit, offset int) ([]entity.Review, int, error)
	// AggregateByBook returns the raw mean and count over the book's
	// current review set. A book with no reviews yields (0, 0, nil).
	AggregateByBook(ctx context.Context, bookID string) (average float64, count int, err error)
}
