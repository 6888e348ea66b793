package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/expensio/expensio/internal/middleware"
	"github.com/expensio/expensio/internal/models"
)

// ExpenseService defines the interface for expense operations required by
// the HTTP handlers. Every call is scoped to the authenticated user id
// established by the auth middleware.
type ExpenseService interface {
	// List returns all expenses owned by userID, newest first.
	List(ctx context.Context, userID int64) ([]models.Expense, error)
	// Create inserts one expense owned by userID.
	Create(ctx context.Context, userID int64, title string, amount float64) error
	// Delete removes the expense if owned by userID; otherwise a no-op.
	Delete(ctx context.Context, userID, expenseID int64) error
}

// ExpenseHandler handles HTTP requests for the expense routes.
type ExpenseHandler struct {
	// ExpenseService performs the underlying expense operations.
	ExpenseService ExpenseService
	// Logger records real store failures; response bodies stay generic.
	Logger *zap.Logger
}

// CreateExpenseRequest represents the JSON payload for adding an expense.
// Amount is accepted as-is; negative values are not rejected.
type CreateExpenseRequest struct {
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
}

// List handles GET /expenses. It responds with the caller's full expense
// list, id descending. An empty list encodes as [].
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	expenses, err := h.ExpenseService.List(r.Context(), userID)
	if err != nil {
		h.Logger.Error("list expenses failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, expenses)
}

// Create handles POST /expenses. On success it acknowledges with
// {"success":true}; the created record is not returned and callers
// re-fetch the list.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.ExpenseService.Create(r.Context(), userID, req.Title, req.Amount); err != nil {
		h.Logger.Error("create expense failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Delete handles DELETE /expenses/{id}. Deleting an id that does not exist
// or is owned by another user returns the same success acknowledgement as a
// real delete.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	expenseID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.ExpenseService.Delete(r.Context(), userID, expenseID); err != nil {
		h.Logger.Error("delete expense failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
