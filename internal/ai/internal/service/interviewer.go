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
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/ecodeclub/mockinterview/internal/ai/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/ai/internal/service/llm"
	"github.com/go-playground/validator/v10"
	"github.com/lithammer/shortuuid/v4"
)

// ErrUpstream 模型调用失败或者返回了无法解析的内容
var ErrUpstream = errors.New("LLM 服务异常")

const (
	defaultFeedback = "Feedback não disponível"
	defaultInsights = "Insights não disponíveis"
	defaultScore    = 50

	feedbackMaxTokens   = 3000
	feedbackTemperature = 0.5
)

// 模型偶尔会在 JSON 前后加上 markdown 标记
const jsonExpr = `\{(?s:.*)\}`

//go:generate mockgen -source=./interviewer.go -destination=../../mocks/interviewer.mock.go -package=aimocks -typed=true Service
type Service interface {
	// Chat 按照顺序把对话发给模型，返回模型的下一句话
	Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error)
	// Feedback 面试结束之后生成整体评价
	Feedback(ctx context.Context, req domain.FeedbackRequest) (domain.Feedback, error)
}

// ChatConfig 对话使用的模型参数
type ChatConfig struct {
	Model       string  `yaml:"model"`
	MaxTokens   int64   `yaml:"maxTokens"`
	Temperature float64 `yaml:"temperature"`
}

type interviewer struct {
	llmSvc   llm.Service
	cfg      ChatConfig
	validate *validator.Validate
	jsonExpr *regexp.Regexp
}

func NewService(llmSvc llm.Service, cfg ChatConfig) Service {
	return &interviewer{
		llmSvc:   llmSvc,
		cfg:      cfg,
		validate: validator.New(),
		jsonExpr: regexp.MustCompile(jsonExpr),
	}
}

func (s *interviewer) Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error) {
	resp, err := s.llmSvc.Invoke(ctx, domain.LLMRequest{
		Biz:      domain.BizInterviewChat,
		Uid:      req.Uid,
		Tid:      shortuuid.New(),
		Messages: req.Messages,
		Config: domain.Config{
			Model:       s.cfg.Model,
			MaxTokens:   s.cfg.MaxTokens,
			Temperature: s.cfg.Temperature,
		},
	})
	if err != nil {
		return domain.ChatResponse{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return domain.ChatResponse{
		Content: resp.Answer,
		Tokens:  resp.Tokens,
	}, nil
}

func (s *interviewer) Feedback(ctx context.Context, req domain.FeedbackRequest) (domain.Feedback, error) {
	msgs := make([]domain.Message, 0, len(req.Messages)+2)
	msgs = append(msgs, domain.Message{
		Role:    domain.RoleSystem,
		Content: feedbackPrompt(req.Resume, req.Job),
	})
	msgs = append(msgs, req.Messages...)
	msgs = append(msgs, domain.Message{
		Role:    domain.RoleUser,
		Content: feedbackRequestTurn,
	})
	resp, err := s.llmSvc.Invoke(ctx, domain.LLMRequest{
		Biz:      domain.BizInterviewFeedback,
		Uid:      req.Uid,
		Tid:      shortuuid.New(),
		Messages: msgs,
		Config: domain.Config{
			Model:       s.cfg.Model,
			MaxTokens:   feedbackMaxTokens,
			Temperature: feedbackTemperature,
			JSONMode:    true,
		},
	})
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return s.parseFeedback(resp.Answer)
}

// 评价最后落到 TEXT 字段
type feedbackPayload struct {
	Feedback string `json:"feedback" validate:"max=16000"`
	Insights string `json:"insights" validate:"max=16000"`
	// 分数是否越界由面试自己校验
	Score *int `json:"score"`
}

func (s *interviewer) parseFeedback(answer string) (domain.Feedback, error) {
	raw := s.jsonExpr.FindString(answer)
	if raw == "" {
		raw = "{}"
		if answer != "" {
			return domain.Feedback{}, fmt.Errorf("%w: 评价不是 JSON 格式", ErrUpstream)
		}
	}
	var payload feedbackPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return domain.Feedback{}, fmt.Errorf("%w: 解析评价失败 %w", ErrUpstream, err)
	}
	if err := s.validate.Struct(payload); err != nil {
		return domain.Feedback{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	res := domain.Feedback{
		Feedback: payload.Feedback,
		Insights: payload.Insights,
		Score:    defaultScore,
	}
	if res.Feedback == "" {
		res.Feedback = defaultFeedback
	}
	if res.Insights == "" {
		res.Insights = defaultInsights
	}
	if payload.Score != nil {
		res.Score = *payload.Score
	}
	return res, nil
}
