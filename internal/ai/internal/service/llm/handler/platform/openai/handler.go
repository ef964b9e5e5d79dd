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

package openai

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mockinterview/internal/ai/internal/domain"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultBaseURL = "https://api.openai.com/v1/"

// Handler 走 OpenAI 兼容协议，换 baseURL 也可以对接其他兼容的平台
type Handler struct {
	client *openai.Client
}

func NewHandler(apikey, baseURL string) *Handler {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apikey),
	)
	return &Handler{
		client: client,
	}
}

func (h *Handler) Name() string {
	return "openai"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	var opts []option.RequestOption
	if req.Config.JSONMode {
		opts = append(opts, option.WithJSONSet("response_format", map[string]string{"type": "json_object"}))
	}
	completion, err := h.client.Chat.Completions.New(ctx, h.buildParams(req), opts...)
	if err != nil {
		return domain.LLMResponse{}, err
	}
	resp := domain.LLMResponse{
		Tokens: completion.Usage.TotalTokens,
	}
	if len(completion.Choices) > 0 {
		resp.Answer = completion.Choices[0].Message.Content
	}
	return resp, nil
}

func (h *Handler) buildParams(req domain.LLMRequest) openai.ChatCompletionNewParams {
	msgs := slice.Map(req.Messages, func(idx int, src domain.Message) openai.ChatCompletionMessageParamUnion {
		switch src.Role {
		case domain.RoleSystem:
			return openai.SystemMessage(src.Content)
		case domain.RoleAssistant:
			return openai.AssistantMessage(src.Content)
		default:
			return openai.UserMessage(src.Content)
		}
	})
	params := openai.ChatCompletionNewParams{
		Messages: openai.F(msgs),
		Model:    openai.F(req.Config.Model),
	}
	if req.Config.MaxTokens > 0 {
		params.MaxTokens = openai.F(req.Config.MaxTokens)
	}
	if req.Config.Temperature > 0 {
		params.Temperature = openai.F(req.Config.Temperature)
	}
	return params
}
