// Package api provides HTTP handlers for the feedback and analytics API.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/personachat/personachat/internal/domain"
	"github.com/personachat/personachat/internal/store"
)

// Handler serves the feedback, analytics and health endpoints.
type Handler struct {
	store store.Store
}

// NewHandler creates a new Handler.
func NewHandler(st store.Store) *Handler {
	return &Handler{store: st}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers the feedback, analytics and health routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/feedback", func(r chi.Router) {
		r.Post("/", h.HandleAppendFeedback)
		r.Get("/", h.HandleListFeedback)
	})
	r.Get("/api/analytics", h.HandleAnalytics)
	r.Get("/api/healthz", h.HandleHealth)
}

// feedbackRequest is the payload the UI submits after showing a response.
type feedbackRequest struct {
	Persona      string `json:"persona"`
	Style        string `json:"style"`
	Rating       string `json:"rating"`
	Comment      string `json:"comment"`
	UserMsg      string `json:"user_msg"`
	AssistantMsg string `json:"assistant_msg"`
}

// HandleAppendFeedback persists one feedback record.
func (h *Handler) HandleAppendFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !domain.ValidRating(req.Rating) {
		Error(w, http.StatusBadRequest, "rating must be 👍 or 👎")
		return
	}

	rec := &domain.FeedbackRecord{
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Persona:      req.Persona,
		Style:        req.Style,
		Rating:       req.Rating,
		Comment:      req.Comment,
		UserMsg:      req.UserMsg,
		AssistantMsg: req.AssistantMsg,
	}

	if err := h.store.AppendFeedback(r.Context(), rec); err != nil {
		slog.Error("Failed to save feedback", "error", err)
		Error(w, http.StatusInternalServerError, "failed to save feedback")
		return
	}

	slog.Info("Feedback recorded", "id", rec.ID, "rating", rec.Rating, "persona", rec.Persona)
	JSON(w, http.StatusCreated, rec)
}

// HandleListFeedback returns every stored feedback record.
func (h *Handler) HandleListFeedback(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.AllFeedback(r.Context())
	if err != nil {
		slog.Error("Failed to load feedback", "error", err)
		Error(w, http.StatusInternalServerError, "failed to load feedback")
		return
	}
	if records == nil {
		records = []*domain.FeedbackRecord{}
	}
	JSON(w, http.StatusOK, map[string]interface{}{"records": records})
}

// analyticsResponse bundles the aggregate summary with the raw records so the
// analytics page needs a single request.
type analyticsResponse struct {
	domain.FeedbackSummary
	Records []*domain.FeedbackRecord `json:"records"`
}

// HandleAnalytics returns the feedback summary for the analytics page.
func (h *Handler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.AllFeedback(r.Context())
	if err != nil {
		slog.Error("Failed to load feedback for analytics", "error", err)
		Error(w, http.StatusInternalServerError, "failed to load feedback")
		return
	}
	if records == nil {
		records = []*domain.FeedbackRecord{}
	}

	JSON(w, http.StatusOK, analyticsResponse{
		FeedbackSummary: domain.SummarizeFeedback(records),
		Records:         records,
	})
}

// HandleHealth reports liveness and database connectivity.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		slog.Error("Health check failed", "error", err)
		JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
