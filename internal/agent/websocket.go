package agent

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/personachat/personachat/internal/domain"
	"github.com/personachat/personachat/internal/identity"
)

// WebSocketHandler serves the chat over a persistent WebSocket connection.
// Each text frame carries the same JSON request/response shapes as the HTTP
// chat endpoint; frames are answered in order, one response per request.
type WebSocketHandler struct {
	registry *Registry
	isDev    bool
}

// NewWebSocketHandler creates a WebSocket chat handler.
func NewWebSocketHandler(registry *Registry, isDev bool) *WebSocketHandler {
	return &WebSocketHandler{registry: registry, isDev: isDev}
}

// wsError is the error frame sent for malformed requests. The connection
// stays open; only transport failures end the session.
type wsError struct {
	Error string `json:"error"`
}

func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	sessionID := identity.SessionIDFromContext(r.Context())
	if userID == "" {
		http.Error(w, `{"error": "unauthorized"}`, http.StatusUnauthorized)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: h.isDev,
	})
	if err != nil {
		slog.Warn("WebSocket accept failed", "user_id", userID, "error", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "handler exited")

	connID := uuid.NewString()
	slog.Info("WebSocket chat connected", "conn_id", connID, "user_id", userID, "session_id", sessionID)

	ctx := r.Context()
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || ctx.Err() != nil {
				slog.Info("WebSocket chat closed", "conn_id", connID, "user_id", userID)
			} else {
				slog.Debug("WebSocket read error", "conn_id", connID, "error", err)
			}
			return
		}

		var req ChatRequest
		if err := json.Unmarshal(data, &req); err != nil {
			h.writeJSON(conn, r, wsError{Error: "invalid request"})
			continue
		}
		if strings.TrimSpace(req.Message) == "" {
			h.writeJSON(conn, r, wsError{Error: "message is required"})
			continue
		}

		persona := domain.ParsePersona(req.Persona)
		style := domain.ParseStyle(req.Style)

		result := h.registry.Process(ctx, userID, sessionID, persona, style, req.Message)
		h.writeJSON(conn, r, result)
	}
}

func (h *WebSocketHandler) writeJSON(conn *websocket.Conn, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("WebSocket marshal failed", "error", err)
		return
	}
	if err := conn.Write(r.Context(), websocket.MessageText, data); err != nil {
		slog.Debug("WebSocket write error", "error", err)
	}
}
