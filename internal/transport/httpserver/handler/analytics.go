package handler

import (
	"net/http"

	"finance-flow/internal/transport/httpserver/middleware"
)

func (h *Handlers) SpendingByCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no_user", "no user identity")
		return
	}

	rows, err := h.Analytics.SpendingByCategory(r.Context(), userID)
	if err != nil {
		h.log.InternalError("analytics.by_category: aggregation failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

func (h *Handlers) SpendingTrends(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no_user", "no user identity")
		return
	}

	points, err := h.Analytics.SpendingTrends(r.Context(), userID)
	if err != nil {
		h.log.InternalError("analytics.trends: aggregation failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, points)
}

func (h *Handlers) Insights(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no_user", "no user identity")
		return
	}

	insights, err := h.Analytics.Insights(r.Context(), userID)
	if err != nil {
		h.log.InternalError("analytics.insights: aggregation failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, insights)
}

func (h *Handlers) Tips(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no_user", "no user identity")
		return
	}

	tips, err := h.Analytics.Tips(r.Context(), userID)
	if err != nil {
		h.log.InternalError("analytics.tips: aggregation failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, tips)
}
