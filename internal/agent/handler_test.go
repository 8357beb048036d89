package agent

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/personachat/personachat/internal/identity"
)

func newTestRouter(lookup CountryLookup) chi.Router {
	r := chi.NewRouter()
	r.Use(identity.Middleware(true))
	NewHandler(NewRegistry(smartFactory(lookup))).RegisterRoutes(r)
	return r
}

func TestHandleChat(t *testing.T) {
	router := newTestRouter(&fakeLookup{summary: "📍 **Brazil**"})

	body := `{"persona": "Analista", "style": "Formal", "message": "Me fale sobre o Brasil"}`
	req := httptest.NewRequest(http.MethodPost, "/api/agent/chat", strings.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var result IntentResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result.Intent != CountryIntent("brasil") {
		t.Errorf("Expected country_info:brasil, got %q", result.Intent)
	}
	if !strings.HasPrefix(result.Response, "📊 Análise de dados do país solicitado:") {
		t.Errorf("Expected Analista preamble, got %q", result.Response)
	}
}

func TestHandleOptions(t *testing.T) {
	router := newTestRouter(&fakeLookup{})

	req := httptest.NewRequest(http.MethodGet, "/api/agent/options", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var payload struct {
		Personas []struct {
			Name    string `json:"name"`
			Priming string `json:"priming"`
		} `json:"personas"`
		Styles []struct {
			Name string `json:"name"`
		} `json:"styles"`
	}
	if err := json.NewDecoder(w.Body).Decode(&payload); err != nil {
		t.Fatalf("Failed to decode options: %v", err)
	}
	if len(payload.Personas) != 4 {
		t.Fatalf("Expected 4 personas, got %d", len(payload.Personas))
	}
	if payload.Personas[0].Name != "Professor" {
		t.Errorf("Expected Professor first, got %q", payload.Personas[0].Name)
	}
	if payload.Personas[0].Priming == "" {
		t.Error("Expected a priming text for Professor")
	}
	if len(payload.Styles) != 4 {
		t.Fatalf("Expected 4 styles, got %d", len(payload.Styles))
	}
}

func TestHandleChat_EmptyMessage(t *testing.T) {
	router := newTestRouter(&fakeLookup{})

	req := httptest.NewRequest(http.MethodPost, "/api/agent/chat", strings.NewReader(`{"message": "  "}`))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestHandleChat_InvalidBody(t *testing.T) {
	router := newTestRouter(&fakeLookup{})

	req := httptest.NewRequest(http.MethodPost, "/api/agent/chat", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestHandleHistory_FollowsCookieIdentity(t *testing.T) {
	router := newTestRouter(&fakeLookup{})

	chatReq := httptest.NewRequest(http.MethodPost, "/api/agent/chat",
		strings.NewReader(`{"persona": "Professor", "message": "Olá, como vai?"}`))
	chatW := httptest.NewRecorder()
	router.ServeHTTP(chatW, chatReq)

	if chatW.Code != http.StatusOK {
		t.Fatalf("Chat request failed with status %d", chatW.Code)
	}

	// Re-use the anon cookie so the second request hits the same session.
	histReq := httptest.NewRequest(http.MethodGet, "/api/agent/history", nil)
	for _, c := range chatW.Result().Cookies() {
		histReq.AddCookie(c)
	}
	histW := httptest.NewRecorder()
	router.ServeHTTP(histW, histReq)

	var payload struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(histW.Body).Decode(&payload); err != nil {
		t.Fatalf("Failed to decode history: %v", err)
	}
	if len(payload.Messages) != 2 {
		t.Fatalf("Expected 2 messages in history, got %d", len(payload.Messages))
	}
	if payload.Messages[0].Content != "Olá, como vai?" {
		t.Errorf("Unexpected first message: %q", payload.Messages[0].Content)
	}
}

func TestHandleHistory_EmptyForNewSession(t *testing.T) {
	router := newTestRouter(&fakeLookup{})

	req := httptest.NewRequest(http.MethodGet, "/api/agent/history", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"messages":[]`) {
		t.Errorf("Expected empty messages array, got %s", w.Body.String())
	}
}

func TestHandleClearAndDeleteSession(t *testing.T) {
	router := newTestRouter(&fakeLookup{})

	chatReq := httptest.NewRequest(http.MethodPost, "/api/agent/chat",
		strings.NewReader(`{"message": "olá"}`))
	chatW := httptest.NewRecorder()
	router.ServeHTTP(chatW, chatReq)
	cookies := chatW.Result().Cookies()

	clearReq := httptest.NewRequest(http.MethodPost, "/api/agent/clear", nil)
	for _, c := range cookies {
		clearReq.AddCookie(c)
	}
	clearW := httptest.NewRecorder()
	router.ServeHTTP(clearW, clearReq)

	if !strings.Contains(clearW.Body.String(), `"cleared":true`) {
		t.Errorf("Expected cleared=true, got %s", clearW.Body.String())
	}

	delReq := httptest.NewRequest(http.MethodDelete, "/api/agent/session", nil)
	for _, c := range cookies {
		delReq.AddCookie(c)
	}
	delW := httptest.NewRecorder()
	router.ServeHTTP(delW, delReq)

	if !strings.Contains(delW.Body.String(), `"removed":true`) {
		t.Errorf("Expected removed=true, got %s", delW.Body.String())
	}
}
