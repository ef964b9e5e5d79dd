package zhipu

import (
	"context"

	"github.com/ecodeclub/mockinterview/internal/ai/internal/domain"
	"github.com/yankeguo/zhipu"
)

const jsonModeInstruction = "Responda apenas com um único objeto JSON válido, sem markdown e sem nenhum texto antes ou depois."

// Handler 智谱作为备选平台
type Handler struct {
	client *zhipu.Client
}

func NewHandler(apikey string) (*Handler, error) {
	client, err := zhipu.NewClient(zhipu.WithAPIKey(apikey))
	if err != nil {
		return nil, err
	}
	return &Handler{
		client: client,
	}, err
}

func (h *Handler) Name() string {
	return "zhipu"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	// 这边它不会调用 next，因为它是最终的出口
	completion, err := h.buildReq(req).Do(ctx)
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

func (h *Handler) buildReq(req domain.LLMRequest) *zhipu.ChatCompletionService {
	chatReq := h.client.ChatCompletion(req.Config.Model)
	for _, msg := range req.Messages {
		chatReq = chatReq.AddMessage(zhipu.ChatCompletionMessage{
			Role:    h.role(msg.Role),
			Content: msg.Content,
		})
	}
	if req.Config.JSONMode {
		// SDK 不支持 response_format，只能在提示词里要求
		chatReq = chatReq.AddMessage(zhipu.ChatCompletionMessage{
			Role:    zhipu.RoleSystem,
			Content: jsonModeInstruction,
		})
	}
	if req.Config.Temperature > 0 {
		chatReq = chatReq.SetTemperature(req.Config.Temperature)
	}
	if req.Config.MaxTokens > 0 {
		chatReq = chatReq.SetMaxTokens(int(req.Config.MaxTokens))
	}
	return chatReq
}

func (h *Handler) role(r domain.Role) string {
	switch r {
	case domain.RoleSystem:
		return zhipu.RoleSystem
	case domain.RoleAssistant:
		return zhipu.RoleAssistant
	default:
		return zhipu.RoleUser
	}
}
