package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaytee124/jobserverapi/pkg/auth"
)

// UserRepository implements auth.UserRepository backed by PostgreSQL (pgx).
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) (*UserRepository, error) {
	repo := &UserRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *UserRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			user_type TEXT NOT NULL,
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			date_of_birth TEXT NOT NULL DEFAULT '',
			gender TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL UNIQUE,
			phone_number TEXT NOT NULL DEFAULT '',
			origin TEXT NOT NULL DEFAULT '',
			company_name TEXT,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func (r *UserRepository) Create(ctx context.Context, u auth.User) (string, error) {
	id := uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, user_type, first_name, last_name, date_of_birth, gender,
			email, phone_number, origin, company_name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, id, string(u.UserType), u.FirstName, u.LastName, u.DateOfBirth, u.Gender,
		u.Email, u.PhoneNumber, u.Origin, u.CompanyName, u.PasswordHash, u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return "", auth.ErrUserAlreadyExists
		}
		return "", err
	}
	return id.String(), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_type, first_name, last_name, date_of_birth, gender,
			email, phone_number, origin, company_name, password_hash, created_at
		FROM users WHERE email = $1
	`, email)
	var (
		u         auth.User
		id        uuid.UUID
		userType  string
		createdAt time.Time
	)
	err := row.Scan(&id, &userType, &u.FirstName, &u.LastName, &u.DateOfBirth, &u.Gender,
		&u.Email, &u.PhoneNumber, &u.Origin, &u.CompanyName, &u.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, err
	}
	u.ID = id.String()
	u.UserType = auth.UserType(userType)
	u.CreatedAt = createdAt.UTC()
	return u, nil
}
