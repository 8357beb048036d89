package agent

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/personachat/personachat/internal/api"
	"github.com/personachat/personachat/internal/domain"
	"github.com/personachat/personachat/internal/identity"
)

// maxRequestBodySize caps chat request bodies (1MB).
const maxRequestBodySize = 1 << 20

// Handler exposes the agent over HTTP.
type Handler struct {
	registry *Registry
}

// NewHandler creates an agent HTTP handler.
func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

// RegisterRoutes registers the agent routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/agent", func(r chi.Router) {
		r.Get("/options", h.HandleOptions)
		r.Post("/chat", h.HandleChat)
		r.Post("/clear", h.HandleClear)
		r.Get("/history", h.HandleHistory)
		r.Delete("/session", h.HandleDeleteSession)
	})
}

type personaOption struct {
	Name    string `json:"name"`
	Priming string `json:"priming"`
}

// HandleOptions lists the selectable personas and styles so the UI does not
// hardcode them.
func (h *Handler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	personas := make([]personaOption, 0, len(domain.Personas()))
	for _, p := range domain.Personas() {
		personas = append(personas, personaOption{Name: string(p), Priming: p.Priming()})
	}
	styles := make([]personaOption, 0, len(domain.Styles()))
	for _, s := range domain.Styles() {
		styles = append(styles, personaOption{Name: string(s), Priming: s.Priming()})
	}
	api.JSON(w, http.StatusOK, map[string][]personaOption{
		"personas": personas,
		"styles":   styles,
	})
}

// HandleChat processes one user message and returns the structured result.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	sessionID := identity.SessionIDFromContext(r.Context())
	if userID == "" {
		api.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		api.Error(w, http.StatusBadRequest, "message is required")
		return
	}

	persona := domain.ParsePersona(req.Persona)
	style := domain.ParseStyle(req.Style)

	slog.Info("Chat request",
		"user_id", userID,
		"session_id", sessionID,
		"persona", persona,
		"message_length", len(req.Message),
	)

	result := h.registry.Process(r.Context(), userID, sessionID, persona, style, req.Message)
	api.JSON(w, http.StatusOK, result)
}

// HandleClear empties the caller's conversation memory.
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	sessionID := identity.SessionIDFromContext(r.Context())
	if userID == "" {
		api.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	cleared := h.registry.ClearMemory(userID, sessionID)
	api.JSON(w, http.StatusOK, map[string]bool{"cleared": cleared})
}

// HandleHistory returns the caller's conversation log for UI rehydration.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	sessionID := identity.SessionIDFromContext(r.Context())
	if userID == "" {
		api.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	messages := h.registry.History(userID, sessionID)
	if messages == nil {
		messages = []domain.Message{}
	}
	api.JSON(w, http.StatusOK, map[string][]domain.Message{"messages": messages})
}

// HandleDeleteSession tears down the caller's agent and memory.
func (h *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	sessionID := identity.SessionIDFromContext(r.Context())
	if userID == "" {
		api.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	removed := h.registry.Remove(userID, sessionID)
	api.JSON(w, http.StatusOK, map[string]bool{"removed": removed})
}
