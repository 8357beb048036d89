package agent

import (
	"fmt"

	"github.com/personachat/personachat/internal/domain"
)

// countryResponse wraps a country summary (or lookup failure text) in the
// persona's fixed preamble and postamble. The switch is exhaustive over the
// four personas; the zero/unknown case answers as Analista.
func countryResponse(p domain.Persona, summary string) string {
	switch p {
	case domain.PersonaProfessor:
		return fmt.Sprintf("Como educador, vou compartilhar informações interessantes sobre este país:\n\n%s\n\n📚 Essas informações são atualizadas e obtidas em tempo real. Que aspecto específico você gostaria de explorar mais?", summary)
	case domain.PersonaSuporte:
		return fmt.Sprintf("✅ Dados obtidos com sucesso da API RestCountries:\n\n%s\n\n🔧 Status: Consulta realizada com sucesso. Precisa de mais alguma informação técnica?", summary)
	case domain.PersonaContador:
		return fmt.Sprintf("Que interessante! Deixe-me contar sobre este lugar fascinante:\n\n%s\n\n✨ Cada país tem sua própria história única. Imagino quantas aventuras já aconteceram nessas terras!", summary)
	default:
		return fmt.Sprintf("📊 Análise de dados do país solicitado:\n\n%s\n\n📈 Dados obtidos via API RestCountries. Densidade populacional calculada automaticamente.", summary)
	}
}

// generalResponse renders the persona's fixed general-chat template with the
// literal user text interpolated.
func generalResponse(p domain.Persona, userText string) string {
	switch p {
	case domain.PersonaProfessor:
		return fmt.Sprintf("Como educador, vou explicar isso de forma didática. Sobre '%s', posso dizer que é um tópico interessante que pode ser abordado de várias perspectivas. Para informações específicas sobre países, posso consultar dados em tempo real!", userText)
	case domain.PersonaSuporte:
		return fmt.Sprintf("Entendi sua solicitação sobre '%s'. Para questões gerais, posso fornecer orientações. Para dados específicos de países, tenho acesso a APIs atualizadas. Como posso ajudar especificamente?", userText)
	case domain.PersonaContador:
		return fmt.Sprintf("Isso me lembra uma história... Sobre '%s', há sempre algo fascinante para descobrir. Se quiser saber sobre algum país específico, posso buscar informações atualizadas para você!", userText)
	default:
		return fmt.Sprintf("Analisando sua consulta sobre '%s'. Para análises baseadas em dados, especialmente informações de países, posso acessar fontes atualizadas. Que tipo de análise você precisa?", userText)
	}
}
