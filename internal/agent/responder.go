package agent

import (
	"context"

	"github.com/personachat/personachat/internal/domain"
)

// CountryLookup fetches a formatted country summary by pre-normalized name.
// Implemented by the REST Countries client.
type CountryLookup interface {
	FetchCountrySummary(ctx context.Context, name string) (string, error)
}

// Responder produces one structured reply per user message. ProcessMessage
// never fails: lookup errors become response content, so callers need no
// error path.
type Responder interface {
	ProcessMessage(ctx context.Context, userText string) *IntentResult
	Memory() *SessionMemory
	Persona() domain.Persona
	Style() domain.Style
}

var (
	_ Responder = (*SmartAgent)(nil)
	_ Responder = (*MockModel)(nil)
)
