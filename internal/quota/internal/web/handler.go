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
	"github.com/ecodeclub/mockinterview/internal/quota/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/quota/internal/errs"
	"github.com/ecodeclub/mockinterview/internal/quota/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.Service
	limits domain.Limits
}

func NewHandler(svc service.Service, limits domain.Limits) *Handler {
	return &Handler{svc: svc, limits: limits}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/quota")
	g.POST("/usage", ginx.S(h.Usage))
}

func (h *Handler) Usage(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.Usage(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return ginx.Result{
			Code: errs.SystemError.Code,
			Msg:  errs.SystemError.Msg,
		}, err
	}
	plan := domain.Plan(sess.Claims().Get("plan").StringOrDefault(string(domain.PlanFree)))
	return ginx.Result{
		Data: Usage{
			Month:      u.Month,
			Plan:       string(plan),
			Limit:      h.limits.Of(plan),
			TextCount:  u.TextCount,
			AudioCount: u.AudioCount,
		},
	}, nil
}

type Usage struct {
	Month      string `json:"month"`
	Plan       string `json:"plan"`
	Limit      int    `json:"limit"`
	TextCount  int    `json:"textCount"`
	AudioCount int    `json:"audioCount"`
}
