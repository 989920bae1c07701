package handler

import (
	"errors"
	"net/http"
	"time"

	expensesdomain "finance-flow/internal/domain/expenses"
	"finance-flow/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type createExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Currency    string  `json:"currency"`
}

type expenseResponse struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toExpenseResponse(expense expensesdomain.Expense) expenseResponse {
	return expenseResponse{
		ID:          expense.ID,
		UserID:      expense.UserID,
		Amount:      expense.Amount,
		Description: expense.Description,
		Category:    expense.Category,
		Date:        expense.Date.Format(dateLayout),
		Currency:    expense.Currency,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}

func (h *Handlers) ListExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no_user", "no user identity")
		return
	}

	// First touch of a fresh user seeds the default categories.
	if err := h.Expenses.EnsureDefaultCategories(r.Context(), userID); err != nil {
		h.log.InternalError("expenses.list: seed default categories failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	query := r.URL.Query()
	from, err := parseDateParam(query.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid from date")
		return
	}
	to, err := parseDateParam(query.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid to date")
		return
	}

	items, err := h.Expenses.ListExpenses(r.Context(), userID, expensesdomain.ListFilter{From: from, To: to})
	if err != nil {
		h.log.InternalError("expenses.list: list failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]expenseResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toExpenseResponse(item))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no_user", "no user identity")
		return
	}

	var req createExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	date, err := parseDateRequired(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date is required (YYYY-MM-DD)")
		return
	}

	created, err := h.Expenses.CreateExpense(r.Context(), expensesdomain.CreateExpenseInput{
		UserID:      userID,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        date,
		Currency:    req.Currency,
	})
	if err != nil {
		if writeExpenseValidationError(w, err) {
			h.log.BusinessError("expenses.create: validation failed", err, "user_id", userID)
			return
		}
		h.log.InternalError("expenses.create: create failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toExpenseResponse(*created))
}

func (h *Handlers) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no_user", "no user identity")
		return
	}

	expenseID, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	if err := h.Expenses.DeleteExpense(r.Context(), userID, expenseID); err != nil {
		if errors.Is(err, expensesdomain.ErrExpenseNotFound) {
			h.log.BusinessError("expenses.delete: expense not found", err, "user_id", userID, "expense_id", expenseID)
			writeError(w, http.StatusNotFound, "expense_not_found", "expense not found")
			return
		}
		h.log.InternalError("expenses.delete: delete failed", err, "user_id", userID, "expense_id", expenseID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeExpenseValidationError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, expensesdomain.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, "invalid_request", "amount must be positive")
	case errors.Is(err, expensesdomain.ErrDescriptionRequired):
		writeError(w, http.StatusBadRequest, "invalid_request", "description is required")
	case errors.Is(err, expensesdomain.ErrCategoryRequired):
		writeError(w, http.StatusBadRequest, "invalid_request", "category is required")
	case errors.Is(err, expensesdomain.ErrDateRequired):
		writeError(w, http.StatusBadRequest, "invalid_request", "date is required")
	default:
		return false
	}
	return true
}
