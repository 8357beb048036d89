package agent

import (
	"strings"

	"github.com/personachat/personachat/internal/domain"
)

// DefaultMaxTurns is the number of user/assistant exchanges kept in memory.
const DefaultMaxTurns = 10

// contextWindow is how many messages the windowed context renders: the most
// recent three exchanges.
const contextWindow = 6

// SessionMemory is a capped ordered log of role-tagged messages. One memory
// instance is owned by exactly one agent and accessed sequentially.
type SessionMemory struct {
	maxTurns int
	messages []domain.Message
}

// NewSessionMemory creates a memory that retains at most 2×maxTurns messages.
func NewSessionMemory(maxTurns int) *SessionMemory {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &SessionMemory{maxTurns: maxTurns}
}

// Append adds one message, evicting the oldest entries once the log exceeds
// 2×maxTurns. It always succeeds.
func (m *SessionMemory) Append(role domain.Role, content string) {
	m.messages = append(m.messages, domain.Message{Role: role, Content: content})
	if limit := 2 * m.maxTurns; len(m.messages) > limit {
		m.messages = append(m.messages[:0:0], m.messages[len(m.messages)-limit:]...)
	}
}

// Context renders the most recent limit messages as alternating
// "Usuário:"/"Assistente:" lines in chronological order. The result is
// advisory text only; nothing downstream parses it.
func (m *SessionMemory) Context(limit int) string {
	start := len(m.messages) - limit
	if start < 0 {
		start = 0
	}

	var b strings.Builder
	for _, msg := range m.messages[start:] {
		if msg.Role == domain.RoleUser {
			b.WriteString("Usuário: ")
		} else {
			b.WriteString("Assistente: ")
		}
		b.WriteString(msg.Content)
		b.WriteByte('\n')
	}
	return b.String()
}

// Clear resets the log to empty. Idempotent.
func (m *SessionMemory) Clear() {
	m.messages = nil
}

// Messages returns a copy of the current log in chronological order.
func (m *SessionMemory) Messages() []domain.Message {
	out := make([]domain.Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// Len returns the number of messages currently retained.
func (m *SessionMemory) Len() int {
	return len(m.messages)
}
