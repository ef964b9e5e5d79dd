package service

import "fmt"

const feedbackRequestTurn = "Por favor, gere o feedback completo da entrevista no formato JSON especificado."

const feedbackPromptTemplate = `Você é um avaliador especializado de entrevistas de emprego.

Contexto da entrevista:
- Currículo do candidato: %s
- Descrição da vaga: %s

Analise toda a conversa da entrevista que aconteceu e gere um feedback completo e construtivo.

Retorne sua análise no seguinte formato JSON:
{
  "feedback": "Análise detalhada da performance do candidato na entrevista. Inclua pontos fortes, áreas de melhoria, qualidade das respostas, comunicação, e sugestões específicas de como melhorar.",
  "insights": "Análise do alinhamento entre o currículo e a vaga. Inclua gaps de habilidades identificados, sugestões de como melhorar o currículo, competências que devem ser destacadas, e recomendações de desenvolvimento.",
  "score": 85
}

Critérios para o score (0-100):
- 90-100: Excelente performance, candidato muito bem preparado
- 75-89: Boa performance, algumas áreas de melhoria
- 60-74: Performance adequada, várias áreas precisam de desenvolvimento
- 40-59: Performance abaixo do esperado, necessita preparação significativa
- 0-39: Performance inadequada

Seja honesto, construtivo e específico nas suas avaliações. Foque em fornecer feedback acionável.`

func feedbackPrompt(resume, job string) string {
	return fmt.Sprintf(feedbackPromptTemplate, resume, job)
}
