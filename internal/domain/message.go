package domain

// Role tags who produced a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single role-tagged conversation entry. Immutable once created;
// owned exclusively by the session memory log.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
