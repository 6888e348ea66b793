// Package repository provides persistence implementations for the user and
// expense services using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/expensio/expensio/internal/models"
)

// ErrEmailTaken reports an insert that hit the unique constraint on email.
var ErrEmailTaken = errors.New("email already registered")

// ErrUserNotFound reports a lookup for an email with no matching row.
var ErrUserNotFound = errors.New("user not found")

// uniqueViolation is the Postgres error code for unique_violation.
const uniqueViolation = "23505"

// PostgresUserRepository implements credential persistence against PostgreSQL.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository with the
// given database connection.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// CreateUser inserts a new user row and returns it with the assigned id.
// A duplicate email is reported as ErrEmailTaken rather than the raw
// constraint violation.
func (r *PostgresUserRepository) CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	var id int64
	err := r.DB.QueryRowContext(
		ctx,
		`INSERT INTO users (username, email, password) VALUES ($1, $2, $3) RETURNING id`,
		username, email, passwordHash,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}

	return &models.User{ID: id, Username: username, Email: email, PasswordHash: passwordHash}, nil
}

// GetUserByEmail fetches the user row keyed by email.
// Returns ErrUserNotFound if no such user exists.
func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, username, email, password FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return &u, nil
}
