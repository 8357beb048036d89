package agent

import (
	"context"
	"log/slog"
	"sync"

	"github.com/personachat/personachat/internal/domain"
)

// Factory builds a fresh responder for a persona/style pair.
type Factory func(persona domain.Persona, style domain.Style) Responder

// Registry owns one responder (and hence one session memory) per
// user/session pair. Responders are created on first use; changing persona
// or style discards the previous responder and starts a fresh one with empty
// memory, mirroring how a persona switch resets the conversation.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
	factory Factory
}

type registryEntry struct {
	mu        sync.Mutex // serializes access to the responder's memory
	persona   domain.Persona
	style     domain.Style
	responder Responder
}

// NewRegistry creates an empty registry backed by the given factory.
func NewRegistry(factory Factory) *Registry {
	return &Registry{
		entries: make(map[string]*registryEntry),
		factory: factory,
	}
}

func sessionKey(userID, sessionID string) string {
	return userID + ":" + sessionID
}

// acquire returns the entry for a session, creating or replacing it so its
// responder matches the requested persona and style.
func (r *Registry) acquire(userID, sessionID string, persona domain.Persona, style domain.Style) *registryEntry {
	key := sessionKey(userID, sessionID)

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[key]
	if ok && e.persona == persona && e.style == style {
		return e
	}

	if ok {
		slog.Info("Agent session replaced", "user_id", userID, "session_id", sessionID, "persona", persona)
	} else {
		slog.Info("Agent session created", "user_id", userID, "session_id", sessionID, "persona", persona)
	}

	e = &registryEntry{
		persona:   persona,
		style:     style,
		responder: r.factory(persona, style),
	}
	r.entries[key] = e
	return e
}

// Process routes one user message through the session's responder.
func (r *Registry) Process(ctx context.Context, userID, sessionID string, persona domain.Persona, style domain.Style, userText string) *IntentResult {
	e := r.acquire(userID, sessionID, persona, style)

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.responder.ProcessMessage(ctx, userText)
}

// ClearMemory empties the session's conversation memory. It reports whether
// a session existed; clearing a missing session is a no-op.
func (r *Registry) ClearMemory(userID, sessionID string) bool {
	r.mu.Lock()
	e, ok := r.entries[sessionKey(userID, sessionID)]
	r.mu.Unlock()
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.responder.Memory().Clear()
	return true
}

// History returns a copy of the session's conversation log, or nil if the
// session does not exist.
func (r *Registry) History(userID, sessionID string) []domain.Message {
	r.mu.Lock()
	e, ok := r.entries[sessionKey(userID, sessionID)]
	r.mu.Unlock()
	if !ok {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.responder.Memory().Messages()
}

// Remove tears down the session's responder entirely.
func (r *Registry) Remove(userID, sessionID string) bool {
	key := sessionKey(userID, sessionID)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; !ok {
		return false
	}
	delete(r.entries, key)
	slog.Info("Agent session removed", "user_id", userID, "session_id", sessionID)
	return true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
