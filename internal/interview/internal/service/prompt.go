// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"fmt"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/domain"
)

// PromptAssembler 拼装发给大模型的提示词，没有副作用
// questions 为空的时候退化成不依赖题库的版本
type PromptAssembler interface {
	SystemPrompt() string
	StartPrompt(resume, job string, questions []domain.Question) string
	ContextPrompt(resume, job string, questions []domain.Question, asked []int64) string
}

type promptAssembler struct{}

func NewPromptAssembler() PromptAssembler {
	return promptAssembler{}
}

func (promptAssembler) SystemPrompt() string {
	return systemPrompt
}

func (promptAssembler) StartPrompt(resume, job string, questions []domain.Question) string {
	if len(questions) == 0 {
		return fmt.Sprintf(startPrompt, job, resume)
	}
	return fmt.Sprintf(startWithQuestionsPrompt, job, resume, numbered(questions))
}

func (promptAssembler) ContextPrompt(resume, job string, questions []domain.Question, asked []int64) string {
	if len(questions) == 0 {
		return fmt.Sprintf(contextPrompt, job, resume)
	}
	remaining := slice.FilterMap(questions, func(idx int, src domain.Question) (domain.Question, bool) {
		return src, !slice.Contains(asked, src.Id)
	})
	if len(remaining) == 0 {
		return fmt.Sprintf(contextAllAskedPrompt, job, resume)
	}
	return fmt.Sprintf(contextWithQuestionsPrompt, job, resume, numbered(remaining))
}

func numbered(questions []domain.Question) string {
	lines := slice.Map(questions, func(idx int, src domain.Question) string {
		return fmt.Sprintf("%d. %s", idx+1, src.Text)
	})
	return strings.Join(lines, "\n")
}

const systemPrompt = `Você é um entrevistador profissional e experiente, especializado em conduzir entrevistas técnicas e comportamentais para vagas de tecnologia e outras áreas.

Seu papel é:
1. Conduzir uma entrevista simulada realista e profissional
2. Fazer perguntas relevantes baseadas no currículo do candidato e nos requisitos da vaga
3. Avaliar as respostas do candidato de forma crítica mas construtiva
4. Adaptar suas perguntas baseado nas respostas anteriores
5. Manter um tom profissional, empático e encorajador

Diretrizes:
- Faça entre 5-7 perguntas variadas ao longo da entrevista
- Misture perguntas técnicas, comportamentais e situacionais
- Aprofunde em áreas onde o candidato demonstra expertise ou dificuldade
- Seja natural na conversação, não robotizado
- Reconheça boas respostas e dê feedback positivo quando apropriado
- Se o candidato der uma resposta superficial, faça perguntas de follow-up
- Mantenha a entrevista focada e produtiva

Tipos de perguntas que você deve fazer:
- Técnicas: sobre habilidades específicas mencionadas no currículo ou requeridas na vaga
- Comportamentais: "Conte-me sobre uma vez que...", explorando soft skills
- Situacionais: "Como você lidaria com...", testando capacidade de resolução de problemas
- De aprofundamento: explorando projetos e experiências mencionadas no currículo

Lembre-se: você está ajudando a pessoa a se preparar para uma entrevista real, então seja realista mas também educativo.`

const startPrompt = `Você está conduzindo uma entrevista simulada para a seguinte vaga:

DESCRIÇÃO DA VAGA:
%s

CURRÍCULO DO CANDIDATO:
%s

Comece a entrevista de forma profissional:
1. Cumprimente o candidato
2. Apresente-se brevemente como entrevistador
3. Explique que você analisou o currículo e a vaga
4. Faça a primeira pergunta relevante (pode ser técnica, comportamental ou sobre experiência)

Seja direto, profissional e engajante. Não faça uma introdução muito longa.`

const startWithQuestionsPrompt = `Você está conduzindo uma entrevista simulada para a seguinte vaga:

DESCRIÇÃO DA VAGA:
%s

CURRÍCULO DO CANDIDATO:
%s

PERGUNTAS SUGERIDAS DO BANCO (use como referência, mas adapte conforme necessário):
%s

Instruções importantes:
1. Comece a entrevista de forma profissional cumprimentando o candidato
2. Use as perguntas sugeridas acima como base, mas você tem flexibilidade para:
   - Adaptar a linguagem e o contexto às respostas do candidato
   - Fazer perguntas de follow-up relevantes
   - Criar perguntas adicionais se identificar algo interessante no currículo
   - Pular perguntas que não se aplicam bem ao contexto
3. Não precisa fazer TODAS as perguntas listadas - selecione as mais relevantes
4. Priorize a qualidade da conversa sobre seguir a lista rigidamente
5. Mantenha um tom profissional, empático e encorajador

Comece agora a entrevista fazendo a primeira pergunta mais relevante.`

const contextPrompt = `CONTEXTO DA ENTREVISTA:

Vaga: %s

Currículo: %s

Continue a entrevista baseado nas respostas anteriores do candidato. Faça perguntas relevantes e aprofunde em áreas importantes.`

const contextAllAskedPrompt = `CONTEXTO DA ENTREVISTA:

Vaga: %s

Currículo: %s

Continue a entrevista baseado nas respostas anteriores do candidato.
Você já fez todas as perguntas sugeridas do banco, então agora crie perguntas relevantes baseadas no que foi discutido.`

const contextWithQuestionsPrompt = `CONTEXTO DA ENTREVISTA:

Vaga: %s

Currículo: %s

PERGUNTAS AINDA NÃO FEITAS (considere fazer alguma delas se relevante):
%s

Continue a entrevista baseado nas respostas anteriores do candidato.
Você pode fazer uma das perguntas sugeridas acima ou criar novas perguntas baseadas no que foi discutido.
Aprofunde em áreas importantes e mantenha a conversa natural.`
