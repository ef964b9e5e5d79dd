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

package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/service"
	"github.com/ecodeclub/mockinterview/internal/quota"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/interview")
	g.POST("/start", ginx.BS[StartReq](h.Start))
	g.POST("/message", ginx.BS[MessageReq](h.SendMessage))
	g.POST("/complete", ginx.BS[IdReq](h.Complete))
	g.POST("/cancel", ginx.BS[IdReq](h.Cancel))
	g.POST("/delete", ginx.BS[IdReq](h.Delete))
	g.POST("/history", ginx.BS[IdReq](h.History))
	g.POST("/recent", ginx.BS[RecentReq](h.Recent))
	g.POST("/detail", ginx.BS[IdReq](h.Detail))
	g.POST("/list", ginx.BS[ListReq](h.List))
}

// Start 套餐放在 session 里面，没有就当免费用户
func (h *Handler) Start(ctx *ginx.Context, req StartReq, sess session.Session) (ginx.Result, error) {
	plan := quota.Plan(sess.Claims().Get("plan").StringOrDefault(string(quota.PlanFree)))
	res, err := h.svc.Start(ctx, sess.Claims().Uid, plan, service.StartRequest{
		Type:   domain.Type(req.Type),
		Resume: req.Resume,
		Job:    req.Job,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newStartResp(res)}, nil
}

func (h *Handler) SendMessage(ctx *ginx.Context, req MessageReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.SendMessage(ctx, sess.Claims().Uid, req.Id, req.Content)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: MessageResp{
		UserMessage:      newMessage(res.UserMessage),
		AssistantMessage: newMessage(res.AssistantMessage),
	}}, nil
}

func (h *Handler) Complete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	itv, err := h.svc.Complete(ctx, sess.Claims().Uid, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newInterview(itv)}, nil
}

func (h *Handler) Cancel(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	itv, err := h.svc.Cancel(ctx, sess.Claims().Uid, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newInterview(itv)}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	if err := h.svc.Delete(ctx, sess.Claims().Uid, req.Id); err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) History(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	itv, msgs, err := h.svc.History(ctx, sess.Claims().Uid, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: HistoryResp{
		Interview: newInterview(itv),
		Messages:  newMessages(msgs),
	}}, nil
}

func (h *Handler) Recent(ctx *ginx.Context, req RecentReq, sess session.Session) (ginx.Result, error) {
	msgs, err := h.svc.RecentMessages(ctx, sess.Claims().Uid, req.Id, req.Limit)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newMessages(msgs)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	itv, err := h.svc.Detail(ctx, sess.Claims().Uid, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newInterview(itv)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	itvs, total, err := h.svc.List(ctx, sess.Claims().Uid, req.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newInterviewList(itvs, total)}, nil
}
