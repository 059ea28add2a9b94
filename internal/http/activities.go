package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"activities-service/internal/metrics"
)

func (h *Handler) handleListActivities(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activities_list"

	ctx := r.Context()
	activities, err := h.Activities.List(ctx)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(activities)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_signup"

	name := decodeParam(chi.URLParam(r, "name"))
	if err := ValidateActivityName(name); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	// email приходит query-параметром, как у исходного сервиса
	email := r.URL.Query().Get("email")
	if err := ValidateEmail(email); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	msg, err := h.Activities.Signup(ctx, name, email)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	metrics.SignupsTotal.WithLabelValues(name).Inc()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(messageResponse{Message: msg})
}

func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_unregister"

	name := decodeParam(chi.URLParam(r, "name"))
	if err := ValidateActivityName(name); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	email := decodeParam(chi.URLParam(r, "email"))
	if err := ValidateEmail(email); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	msg, err := h.Activities.Unregister(ctx, name, email)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	metrics.UnregistrationsTotal.WithLabelValues(name).Inc()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(messageResponse{Message: msg})
}
