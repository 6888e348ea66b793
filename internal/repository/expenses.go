package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/expensio/expensio/internal/models"
)

// PostgresExpenseRepository implements expense persistence against PostgreSQL.
// Every query filters by the owning user's id, so one user can never observe
// or remove another's rows.
type PostgresExpenseRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresExpenseRepository creates a new PostgresExpenseRepository using
// the provided *sql.DB.
func NewPostgresExpenseRepository(db *sql.DB) *PostgresExpenseRepository {
	return &PostgresExpenseRepository{DB: db}
}

// GetExpensesByUser fetches all expenses owned by userID, newest first.
// Newest-first means id descending; expenses carry no timestamp column.
func (r *PostgresExpenseRepository) GetExpensesByUser(ctx context.Context, userID int64) ([]models.Expense, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, title, amount FROM expenses WHERE user_id = $1 ORDER BY id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("GetExpensesByUser: %w", err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Amount); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return expenses, nil
}

// InsertExpense adds one expense row owned by userID. The amount is stored
// as supplied; no sign or range checks are applied.
func (r *PostgresExpenseRepository) InsertExpense(ctx context.Context, userID int64, title string, amount float64) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO expenses (user_id, title, amount) VALUES ($1, $2, $3)`,
		userID, title, amount,
	)
	if err != nil {
		return fmt.Errorf("InsertExpense: %w", err)
	}
	return nil
}

// DeleteExpense removes the expense only if it belongs to userID. Deleting a
// non-existent or non-owned id removes nothing and returns no error.
func (r *PostgresExpenseRepository) DeleteExpense(ctx context.Context, userID, expenseID int64) error {
	_, err := r.DB.ExecContext(
		ctx,
		`DELETE FROM expenses WHERE id = $1 AND user_id = $2`,
		expenseID, userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteExpense: %w", err)
	}
	return nil
}
