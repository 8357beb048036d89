// Package agent implements the conversational session and intent routing core.
package agent

import "strings"

// Intent is the classified purpose of a user message: either general chat or
// a country-information query tagged with the matched spelling.
type Intent string

// IntentGeneralChat marks a message with no recognized country token.
const IntentGeneralChat Intent = "general_chat"

const countryIntentPrefix = "country_info:"

// CountryIntent builds the tagged intent for a matched country spelling.
func CountryIntent(country string) Intent {
	return Intent(countryIntentPrefix + country)
}

// Country returns the matched country spelling for a country-info intent.
func (i Intent) Country() (string, bool) {
	if rest, ok := strings.CutPrefix(string(i), countryIntentPrefix); ok {
		return rest, true
	}
	return "", false
}

// ChatRequest is the payload accepted by the chat endpoints. UserID and
// SessionID are injected from the request identity, never from the body.
type ChatRequest struct {
	Persona   string `json:"persona"`
	Style     string `json:"style"`
	Message   string `json:"message"`
	UserID    string `json:"-"`
	SessionID string `json:"-"`
}

// IntentResult is the structured outcome of processing one user message.
// Produced fresh per call; only Response is folded back into session memory.
type IntentResult struct {
	Intent    Intent `json:"intent"`
	APIUsed   bool   `json:"api_used"`
	APIResult string `json:"api_result,omitempty"`
	Response  string `json:"response"`
	Thinking  string `json:"thinking"`
}
