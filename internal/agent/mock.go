package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/personachat/personachat/internal/domain"
)

// mockCountryTokens are the only literals the mock model recognizes.
var mockCountryTokens = []string{"brasil", "france", "japan"}

// MockModel is an offline stand-in for a hosted language model. It matches a
// handful of literal country names inside the latest question and otherwise
// answers with a canned general reply. Selected with AGENT_MODE=mock; useful
// for demoing the UI without the keyword router.
type MockModel struct {
	persona domain.Persona
	style   domain.Style
	memory  *SessionMemory
	lookup  CountryLookup
}

// NewMockModel creates a mock responder with an empty session memory.
func NewMockModel(persona domain.Persona, style domain.Style, lookup CountryLookup, maxTurns int) *MockModel {
	return &MockModel{
		persona: persona,
		style:   style,
		memory:  NewSessionMemory(maxTurns),
		lookup:  lookup,
	}
}

// ProcessMessage mimics a model deciding between a tool call and a direct
// answer. Like the smart agent, it never returns an error.
func (m *MockModel) ProcessMessage(ctx context.Context, userText string) *IntentResult {
	m.memory.Append(domain.RoleUser, userText)

	lower := strings.ToLower(userText)
	result := &IntentResult{Intent: IntentGeneralChat}

	for _, token := range mockCountryTokens {
		if !strings.Contains(lower, token) {
			continue
		}

		key := token
		if en, ok := countryEnglish[token]; ok {
			key = en
		}

		result.Intent = CountryIntent(token)
		result.Thinking = "Pensamento: O usuário está perguntando sobre um país. Devo usar a ferramenta get_country_info."
		result.APIUsed = true

		summary, err := m.lookup.FetchCountrySummary(ctx, key)
		if err != nil {
			summary = fmt.Sprintf("❌ Não foi possível obter informações para '%s'. Erro: %v", key, err)
		}
		result.APIResult = summary
		result.Response = countryResponse(m.persona, summary)
		break
	}

	if result.Intent == IntentGeneralChat {
		result.Thinking = "Pensamento: O usuário está fazendo uma pergunta geral. Não preciso de ferramentas."
		result.Response = fmt.Sprintf("Entendi sua pergunta sobre '%s'. Como um modelo de linguagem avançado, posso ajudar com informações gerais, mas para dados em tempo real, minhas ferramentas são mais úteis.", userText)
	}

	m.memory.Append(domain.RoleAssistant, result.Response)
	return result
}

// Memory returns the mock model's session memory.
func (m *MockModel) Memory() *SessionMemory { return m.memory }

// Persona returns the configured persona.
func (m *MockModel) Persona() domain.Persona { return m.persona }

// Style returns the configured style.
func (m *MockModel) Style() domain.Style { return m.style }
