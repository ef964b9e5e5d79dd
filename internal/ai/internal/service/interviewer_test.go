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
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/mockinterview/internal/ai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterviewer_Chat(t *testing.T) {
	testCases := []struct {
		name   string
		answer domain.LLMResponse
		err    error

		wantResp domain.ChatResponse
		wantErr  error
	}{
		{
			name:     "成功",
			answer:   domain.LLMResponse{Answer: "Olá! Vamos começar.", Tokens: 120},
			wantResp: domain.ChatResponse{Content: "Olá! Vamos começar.", Tokens: 120},
		},
		{
			name:    "模型调用失败",
			err:     errors.New("mock timeout"),
			wantErr: ErrUpstream,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubLLMService{resp: tc.answer, err: tc.err}
			svc := NewService(stub, ChatConfig{Model: "gpt-4o-mini", MaxTokens: 2000, Temperature: 0.7})
			msgs := []domain.Message{
				{Role: domain.RoleSystem, Content: "system"},
				{Role: domain.RoleUser, Content: "oi"},
			}
			resp, err := svc.Chat(context.Background(), domain.ChatRequest{Uid: 1, Messages: msgs})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantResp, resp)

			require.Len(t, stub.reqs, 1)
			req := stub.reqs[0]
			assert.Equal(t, domain.BizInterviewChat, req.Biz)
			assert.NotEmpty(t, req.Tid)
			assert.Equal(t, msgs, req.Messages)
			assert.Equal(t, domain.Config{Model: "gpt-4o-mini", MaxTokens: 2000, Temperature: 0.7}, req.Config)
		})
	}
}

func TestInterviewer_Feedback(t *testing.T) {
	testCases := []struct {
		name   string
		answer string
		err    error

		wantFeedback domain.Feedback
		wantErr      error
	}{
		{
			name:   "完整的评价",
			answer: `{"feedback":"Bom","insights":"Estude Go","score":85}`,
			wantFeedback: domain.Feedback{
				Feedback: "Bom",
				Insights: "Estude Go",
				Score:    85,
			},
		},
		{
			name:   "带有 markdown 标记",
			answer: "```json\n{\"feedback\":\"Bom\",\"insights\":\"Ok\",\"score\":70}\n```",
			wantFeedback: domain.Feedback{
				Feedback: "Bom",
				Insights: "Ok",
				Score:    70,
			},
		},
		{
			name:   "缺少字段使用默认值",
			answer: `{}`,
			wantFeedback: domain.Feedback{
				Feedback: defaultFeedback,
				Insights: defaultInsights,
				Score:    defaultScore,
			},
		},
		{
			name:   "空回答使用默认值",
			answer: "",
			wantFeedback: domain.Feedback{
				Feedback: defaultFeedback,
				Insights: defaultInsights,
				Score:    defaultScore,
			},
		},
		{
			name:   "0 分不会被替换",
			answer: `{"feedback":"Ruim","insights":"-","score":0}`,
			wantFeedback: domain.Feedback{
				Feedback: "Ruim",
				Insights: "-",
				Score:    0,
			},
		},
		{
			name:   "越界的分数原样返回",
			answer: `{"feedback":"x","insights":"y","score":120}`,
			wantFeedback: domain.Feedback{
				Feedback: "x",
				Insights: "y",
				Score:    120,
			},
		},
		{
			name:    "不是 JSON",
			answer:  "Desculpe, não posso ajudar.",
			wantErr: ErrUpstream,
		},
		{
			name:    "JSON 格式错误",
			answer:  `{"feedback": "Bom", "score": "alto"}`,
			wantErr: ErrUpstream,
		},
		{
			name:    "模型调用失败",
			err:     errors.New("mock 500"),
			wantErr: ErrUpstream,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubLLMService{resp: domain.LLMResponse{Answer: tc.answer}, err: tc.err}
			svc := NewService(stub, ChatConfig{Model: "gpt-4o-mini"})
			history := []domain.Message{
				{Role: domain.RoleAssistant, Content: "Fale sobre você"},
				{Role: domain.RoleUser, Content: "Sou desenvolvedor Go"},
			}
			fb, err := svc.Feedback(context.Background(), domain.FeedbackRequest{
				Uid:      1,
				Resume:   "Dev Go",
				Job:      "Backend",
				Messages: history,
			})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantFeedback, fb)

			require.Len(t, stub.reqs, 1)
			req := stub.reqs[0]
			assert.Equal(t, domain.BizInterviewFeedback, req.Biz)
			assert.True(t, req.Config.JSONMode)
			assert.Equal(t, int64(feedbackMaxTokens), req.Config.MaxTokens)
			assert.Equal(t, feedbackTemperature, req.Config.Temperature)
			// system + 历史 + 最后的请求
			require.Len(t, req.Messages, 4)
			assert.Equal(t, domain.RoleSystem, req.Messages[0].Role)
			assert.Contains(t, req.Messages[0].Content, "Currículo do candidato: Dev Go")
			assert.Contains(t, req.Messages[0].Content, "Descrição da vaga: Backend")
			assert.Equal(t, history, req.Messages[1:3])
			assert.Equal(t, domain.Message{Role: domain.RoleUser, Content: feedbackRequestTurn}, req.Messages[3])
		})
	}
}

type stubLLMService struct {
	resp domain.LLMResponse
	err  error
	reqs []domain.LLMRequest
}

func (s *stubLLMService) Invoke(_ context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	s.reqs = append(s.reqs, req)
	return s.resp, s.err
}
