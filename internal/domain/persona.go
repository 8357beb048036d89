// Package domain contains core domain types for the persona chat application.
package domain

// Persona selects the response voice the agent answers with.
type Persona string

const (
	PersonaProfessor Persona = "Professor"
	PersonaSuporte   Persona = "Suporte Técnico"
	PersonaContador  Persona = "Contador de Histórias"
	PersonaAnalista  Persona = "Analista"
)

// ParsePersona maps a raw selector string to a known persona.
// Unrecognized values fall back to Analista, the catch-all voice.
func ParsePersona(s string) Persona {
	switch s {
	case string(PersonaProfessor):
		return PersonaProfessor
	case string(PersonaSuporte):
		return PersonaSuporte
	case string(PersonaContador):
		return PersonaContador
	default:
		return PersonaAnalista
	}
}

// Priming returns the system-level priming text associated with the persona.
// The offline agent stores it with the configuration; it is not fed to a model.
func (p Persona) Priming() string {
	switch p {
	case PersonaProfessor:
		return "Explique com exemplos simples e analogias, seja didático e paciente."
	case PersonaSuporte:
		return "Seja objetivo, passo a passo, com troubleshooting e validações."
	case PersonaContador:
		return "Use narrativa leve, metáforas curtas e exemplos envolventes."
	default:
		return "Forneça dados estruturados, análise objetiva e insights acionáveis."
	}
}

// Style is a secondary tone selector. It is stored alongside the persona but
// has no effect on the offline agent's reply selection.
type Style string

const (
	StyleFormal   Style = "Formal"
	StyleTecnico  Style = "Técnico"
	StyleSimples  Style = "Simples"
	StyleEmpatico Style = "Empático"
)

// ParseStyle maps a raw selector string to a known style, defaulting to Formal.
func ParseStyle(s string) Style {
	switch s {
	case string(StyleTecnico):
		return StyleTecnico
	case string(StyleSimples):
		return StyleSimples
	case string(StyleEmpatico):
		return StyleEmpatico
	default:
		return StyleFormal
	}
}

// Priming returns the tone instruction associated with the style.
func (s Style) Priming() string {
	switch s {
	case StyleTecnico:
		return "Use termos técnicos quando necessário, inclua listas numeradas e considerações práticas."
	case StyleSimples:
		return "Frases curtas, vocabulário simples, vá direto ao ponto."
	case StyleEmpatico:
		return "Seja caloroso, encorajador e demonstre compreensão emocional."
	default:
		return "Escreva em tom profissional, claro e direto, evitando coloquialismos."
	}
}

// Personas lists all selectable personas in presentation order.
func Personas() []Persona {
	return []Persona{PersonaProfessor, PersonaSuporte, PersonaContador, PersonaAnalista}
}

// Styles lists all selectable styles in presentation order.
func Styles() []Style {
	return []Style{StyleFormal, StyleTecnico, StyleSimples, StyleEmpatico}
}
