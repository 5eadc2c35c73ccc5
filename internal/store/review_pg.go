package store

import (
	"context"
	"database/sql"
	"errors"

	"bookreviews/internal/entity"
	"bookreviews/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewPG struct {
	db *pgxpool.Pool
}

func NewReviewPG(db *pgxpool.Pool) *ReviewPG {
	return &ReviewPG{db: db}
}

func (r *ReviewPG) Create(ctx context.Context, rev *entity.Review) error {
	const query = `
	INSERT INTO reviews (id, book_id, user_id, rating, comment)
	VALUES (gen_random_uuid(), $1, $2, $3, $4)
	RETURNING id, helpful, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, rev.BookID, rev.User.ID, rev.Rating, rev.Comment).
		Scan(&rev.ID, &rev.Helpful, &rev.CreatedAt, &rev.UpdatedAt)
	if err != nil {
		return uniqueViolation(err)
	}
	return nil
}

func (r *ReviewPG) GetByID(ctx context.Context, id string) (entity.Review, error) {
	const query = `
	SELECT rv.id, rv.book_id, rv.rating, rv.comment, rv.helpful,
		rv.created_at, rv.updated_at,
		u.id, u.firstname, u.lastname, u.email
	FROM reviews rv
	JOIN users u ON u.id = rv.user_id
	WHERE rv.id = $1
	LIMIT 1
	`
	var rev entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rev.ID, &rev.BookID, &rev.Rating, &rev.Comment, &rev.Helpful,
		&rev.CreatedAt, &rev.UpdatedAt,
		&rev.User.ID, &rev.User.Firstname, &rev.User.Lastname, &rev.User.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Review{}, usecase.ErrNotFound
		}
		return entity.Review{}, err
	}
	return rev, nil
}

func (r *ReviewPG) Update(ctx context.Context, rev *entity.Review) error {
	const query = `
	UPDATE reviews
	SET rating = $2, comment = $3, updated_at = now()
	WHERE id = $1
	RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query, rev.ID, rev.Rating, rev.Comment).Scan(&rev.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return usecase.ErrNotFound
	}
	return err
}

func (r *ReviewPG) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *ReviewPG) ListByBook(ctx context.Context, bookID string, limit, offset int) ([]entity.Review, int, error) {
	const query = `
	SELECT rv.id, rv.book_id, rv.rating, rv.comment, rv.helpful,
		rv.created_at, rv.updated_at,
		u.id, u.firstname, u.lastname, u.email
	FROM reviews rv
	JOIN users u ON u.id = rv.user_id
	WHERE rv.book_id = $1
	ORDER BY rv.created_at DESC
	LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, bookID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reviews := []entity.Review{}
	for rows.Next() {
		var rev entity.Review
		if err := rows.Scan(
			&rev.ID, &rev.BookID, &rev.Rating, &rev.Comment, &rev.Helpful,
			&rev.CreatedAt, &rev.UpdatedAt,
			&rev.User.ID, &rev.User.Firstname, &rev.User.Lastname, &rev.User.Email,
		); err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE book_id = $1`, bookID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *ReviewPG) AggregateByBook(ctx context.Context, bookID string) (float64, int, error) {
	const query = `
	SELECT AVG(rating)::FLOAT, COUNT(*)
	FROM reviews
	WHERE book_id = $1
	`
	var average sql.NullFloat64
	var count int
	if err := r.db.QueryRow(ctx, query, bookID).Scan(&average, &count); err != nil {
		return 0, 0, err
	}
	if !average.Valid {
		return 0, 0, nil
	}
	return average.Float64, count, nil
}
