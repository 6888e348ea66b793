package service

import (
	"context"

	"github.com/expensio/expensio/internal/models"
)

// ExpenseRepository defines the persistence operations needed by the
// ExpenseService. Every operation is scoped to an owning user id.
type ExpenseRepository interface {
	// GetExpensesByUser retrieves all expenses owned by userID, newest first.
	GetExpensesByUser(ctx context.Context, userID int64) ([]models.Expense, error)
	// InsertExpense adds one expense row owned by userID.
	InsertExpense(ctx context.Context, userID int64, title string, amount float64) error
	// DeleteExpense removes the expense only if owned by userID.
	// A non-existent or non-owned id is a silent no-op.
	DeleteExpense(ctx context.Context, userID, expenseID int64) error
}

// ExpenseService implements expense CRUD, always scoped to the caller's
// authenticated user id.
type ExpenseService struct {
	// repo is the underlying persistence repository.
	repo ExpenseRepository
}

// NewExpenseService constructs an ExpenseService with the provided repository.
func NewExpenseService(repo ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// List returns every expense owned by userID, id descending. The full set is
// returned on each call; there is no pagination.
func (s *ExpenseService) List(ctx context.Context, userID int64) ([]models.Expense, error) {
	return s.repo.GetExpensesByUser(ctx, userID)
}

// Create inserts one expense owned by userID. Title and amount are stored as
// supplied; negative or zero amounts are accepted.
func (s *ExpenseService) Create(ctx context.Context, userID int64, title string, amount float64) error {
	return s.repo.InsertExpense(ctx, userID, title, amount)
}

// Delete removes the expense if it belongs to userID. Deleting an id that
// does not exist or belongs to someone else succeeds without effect.
func (s *ExpenseService) Delete(ctx context.Context, userID, expenseID int64) error {
	return s.repo.DeleteExpense(ctx, userID, expenseID)
}
