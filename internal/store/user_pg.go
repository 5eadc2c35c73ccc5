package store

import (
	"context"
	"errors"

	"bookreviews/internal/entity"
	"bookreviews/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserPG struct {
	db *pgxpool.Pool
}

func NewUserPG(db *pgxpool.Pool) *UserPG {
	return &UserPG{db: db}
}

func (r *UserPG) Create(ctx context.Context, user *entity.User) error {
	const query = `
	INSERT INTO users (id, firstname, lastname, email, password)
	VALUES (gen_random_uuid(), $1, $2, $3, $4)
	RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, user.Firstname, user.Lastname, user.Email, user.Password).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return uniqueViolation(err)
	}
	return nil
}

func (r *UserPG) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	const query = `
	SELECT id, firstname, lastname, email, password, created_at, updated_at
	FROM users
	WHERE email = $1
	LIMIT 1
	`
	var user entity.User
	err := r.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Firstname, &user.Lastname, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, usecase.ErrNotFound
		}
		return entity.User{}, err
	}
	return user, nil
}

func (r *UserPG) GetByID(ctx context.Context, id string) (entity.User, error) {
	const query = `
	SELECT id, firstname, lastname, email, password, created_at, updated_at
	FROM users
	WHERE id = $1
	LIMIT 1
	`
	var user entity.User
	err := r.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Firstname, &user.Lastname, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, usecase.ErrNotFound
		}
		return entity.User{}, err
	}
	return user, nil
}
