package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/personachat/personachat/internal/domain"
)

// knownCountries is the fixed scan list, carrying both local and English
// spellings where they differ. Declaration order decides which match wins
// when a message mentions more than one entry.
var knownCountries = []string{
	"brasil", "brazil", "frança", "france", "japão", "japan", "alemanha", "germany",
	"itália", "italy", "espanha", "spain", "portugal", "argentina", "chile",
	"méxico", "mexico", "canadá", "canada", "eua", "usa", "china", "índia", "india",
}

// countryEnglish translates local spellings to the canonical lookup key.
// Entries absent from the map pass through unchanged.
var countryEnglish = map[string]string{
	"brasil":   "brazil",
	"frança":   "france",
	"japão":    "japan",
	"alemanha": "germany",
	"itália":   "italy",
	"espanha":  "spain",
	"eua":      "united states",
}

// SmartAgent routes user messages between country lookups and general chat,
// answering in the voice of its configured persona. Persona and style are
// fixed for the agent's lifetime; a persona change means a new agent with a
// fresh memory.
type SmartAgent struct {
	persona domain.Persona
	style   domain.Style
	memory  *SessionMemory
	lookup  CountryLookup
}

// NewSmartAgent creates an agent with an empty session memory.
func NewSmartAgent(persona domain.Persona, style domain.Style, lookup CountryLookup, maxTurns int) *SmartAgent {
	return &SmartAgent{
		persona: persona,
		style:   style,
		memory:  NewSessionMemory(maxTurns),
		lookup:  lookup,
	}
}

// DetectIntent classifies the message by scanning the known-country list in
// declaration order against the lowercased input. No match means general chat.
func (a *SmartAgent) DetectIntent(userText string) Intent {
	lower := strings.ToLower(userText)
	for _, c := range knownCountries {
		if strings.Contains(lower, c) {
			return CountryIntent(c)
		}
	}
	return IntentGeneralChat
}

// ProcessMessage appends the user message, classifies it, optionally calls
// the lookup client, renders the persona response and appends it. It never
// returns an error: a failed lookup is surfaced as response content.
func (a *SmartAgent) ProcessMessage(ctx context.Context, userText string) *IntentResult {
	a.memory.Append(domain.RoleUser, userText)

	intent := a.DetectIntent(userText)
	result := &IntentResult{Intent: intent}

	if matched, ok := intent.Country(); ok {
		key := matched
		if en, ok := countryEnglish[matched]; ok {
			key = en
		}

		result.Thinking = fmt.Sprintf("🤔 Detectei que você está perguntando sobre um país: %s. Vou buscar informações atualizadas usando a API externa.", matched)
		result.APIUsed = true

		summary, err := a.lookup.FetchCountrySummary(ctx, key)
		if err != nil {
			summary = fmt.Sprintf("❌ Não foi possível obter informações para '%s'. Erro: %v", key, err)
		}
		result.APIResult = summary
		result.Response = countryResponse(a.persona, summary)
	} else {
		// The windowed context is assembled for continuity but the canned
		// replies do not consume it yet.
		// TODO: feed the context window into generalResponse.
		_ = a.memory.Context(contextWindow)
		result.Thinking = "💭 Pergunta geral detectada. Usando contexto da conversa anterior."
		result.Response = generalResponse(a.persona, userText)
	}

	a.memory.Append(domain.RoleAssistant, result.Response)
	return result
}

// Memory returns the agent's session memory.
func (a *SmartAgent) Memory() *SessionMemory { return a.memory }

// Persona returns the configured persona.
func (a *SmartAgent) Persona() domain.Persona { return a.persona }

// Style returns the configured style.
func (a *SmartAgent) Style() domain.Style { return a.style }
