package handler

import (
	"errors"
	"net/http"
	"time"

	expensesdomain "finance-flow/internal/domain/expenses"
	"finance-flow/internal/transport/httpserver/middleware"
)

type createCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type categoryResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCategoryResponse(category expensesdomain.Category) categoryResponse {
	return categoryResponse{
		ID:        category.ID,
		UserID:    category.UserID,
		Name:      category.Name,
		Color:     category.Color,
		Icon:      category.Icon,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no_user", "no user identity")
		return
	}

	if err := h.Expenses.EnsureDefaultCategories(r.Context(), userID); err != nil {
		h.log.InternalError("categories.list: seed default categories failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	categories, err := h.Expenses.ListCategories(r.Context(), userID)
	if err != nil {
		h.log.InternalError("categories.list: list failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, toCategoryResponse(category))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no_user", "no user identity")
		return
	}

	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	created, err := h.Expenses.CreateCategory(r.Context(), expensesdomain.CreateCategoryInput{
		UserID: userID,
		Name:   req.Name,
		Color:  req.Color,
		Icon:   req.Icon,
	})
	if err != nil {
		switch {
		case errors.Is(err, expensesdomain.ErrCategoryNameRequired):
			h.log.BusinessError("categories.create: validation failed", err, "user_id", userID)
			writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		case errors.Is(err, expensesdomain.ErrCategoryColorRequired):
			h.log.BusinessError("categories.create: validation failed", err, "user_id", userID)
			writeError(w, http.StatusBadRequest, "invalid_request", "color is required")
		default:
			h.log.InternalError("categories.create: create failed", err, "user_id", userID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(*created))
}
