package store

import (
	"context"
	"errors"
	"fmt"

	"bookreviews/internal/entity"
	"bookreviews/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

const bookColumns = `
	b.id, b.title, b.author, b.genre, b.description, b.isbn,
	b.published_year, b.publisher, b.pages, b.cover_image,
	b.average_rating, b.total_reviews, b.created_at, b.updated_at,
	u.id, u.firstname, u.lastname, u.email
`

// sortColumns maps the JSON field names accepted by sortBy onto real
// columns. Anything else falls back to newest-first.
var sortColumns = map[string]string{
	"title":         "b.title",
	"author":        "b.author",
	"genre":         "b.genre",
	"publishedYear": "b.published_year",
	"publisher":     "b.publisher",
	"pages":         "b.pages",
	"averageRating": "b.average_rating",
	"createdAt":     "b.created_at",
}

func scanBook(row pgx.Row) (entity.Book, error) {
	var b entity.Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Genre, &b.Description, &b.ISBN,
		&b.PublishedYear, &b.Publisher, &b.Pages, &b.CoverImage,
		&b.AverageRating, &b.TotalReviews, &b.CreatedAt, &b.UpdatedAt,
		&b.AddedBy.ID, &b.AddedBy.Firstname, &b.AddedBy.Lastname, &b.AddedBy.Email,
	)
	return b, err
}

func (r *BookPG) Create(ctx context.Context, b *entity.Book) error {
	const query = `
	INSERT INTO books (id, title, author, genre, description, isbn,
		published_year, publisher, pages, cover_image, added_by)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		b.Title, b.Author, b.Genre, b.Description, b.ISBN,
		b.PublishedYear, b.Publisher, b.Pages, b.CoverImage, b.AddedBy.ID,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return uniqueViolation(err)
	}
	return nil
}

func (r *BookPG) GetByID(ctx context.Context, id string) (entity.Book, error) {
	query := `
	SELECT ` + bookColumns + `
	FROM books b
	JOIN users u ON u.id = b.added_by
	WHERE b.id = $1
	LIMIT 1
	`
	b, err := scanBook(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}
	return b, nil
}

func (r *BookPG) List(ctx context.Context, p usecase.ListParams) ([]entity.Book, int, error) {
	orderBy := "b.created_at DESC"
	if col, ok := sortColumns[p.SortBy]; ok {
		dir := "DESC"
		if p.SortOrder == "asc" {
			dir = "ASC"
		}
		orderBy = col + " " + dir
	}

	const where = `
	WHERE ($1 = '' OR b.author ILIKE '%' || $1 || '%')
	AND ($2 = '' OR b.genre ILIKE '%' || $2 || '%')
	`

	query := fmt.Sprintf(`
	SELECT %s
	FROM books b
	JOIN users u ON u.id = b.added_by
	%s
	ORDER BY %s
	LIMIT $3 OFFSET $4
	`, bookColumns, where, orderBy)

	offset := (p.Page - 1) * p.Limit
	rows, err := r.db.Query(ctx, query, p.Author, p.Genre, p.Limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	books := []entity.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM books b ` + where
	if err := r.db.QueryRow(ctx, countQuery, p.Author, p.Genre).Scan(&total); err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *BookPG) Search(ctx context.Context, query string, limit, offset int) ([]entity.Book, int, error) {
	const where = `
	WHERE b.title ILIKE '%' || $1 || '%'
	OR b.author ILIKE '%' || $1 || '%'
	`

	sql := `
	SELECT ` + bookColumns + `
	FROM books b
	JOIN users u ON u.id = b.added_by
	` + where + `
	ORDER BY b.average_rating DESC, b.created_at DESC
	LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, sql, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	books := []entity.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM books b ` + where
	if err := r.db.QueryRow(ctx, countQuery, query).Scan(&total); err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *BookPG) UpdateRating(ctx context.Context, bookID string, average float64, total int) error {
	const query = `
	UPDATE books
	SET average_rating = $2, total_reviews = $3, updated_at = now()
	WHERE id = $1
	`
	// A vanished book matches zero rows, which is fine: the review
	// mutation that triggered the recompute must not fail for it.
	_, err := r.db.Exec(ctx, query, bookID, average, total)
	return err
}
