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
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/questionbank/internal/service"
	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

type AdminHandler struct {
	svc        service.Service
	classifier service.Classifier
}

func NewAdminHandler(svc service.Service, classifier service.Classifier) *AdminHandler {
	return &AdminHandler{
		svc:        svc,
		classifier: classifier,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/question-bank")
	g.POST("/save", ginx.B[SaveReq](h.Save))
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/activate", ginx.B[IdReq](h.Activate))
	g.POST("/deactivate", ginx.B[IdReq](h.Deactivate))
	g.POST("/classify", ginx.B[ClassifyReq](h.Classify))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.Question.toDomain())
	switch {
	case errors.Is(err, domain.ErrEmptyQuestionText), errors.Is(err, domain.ErrInvalidEnum):
		return invalidQuestionResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	limit := req.Limit
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	qs, total, err := h.svc.List(ctx, req.Offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newQuestionList(qs, total)}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	q, err := h.svc.Detail(ctx, req.Id)
	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		return questionNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newQuestion(q)}, nil
}

func (h *AdminHandler) Activate(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	if err := h.svc.Activate(ctx, req.Id); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) Deactivate(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	if err := h.svc.Deactivate(ctx, req.Id); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

// Classify 给运营看简历和 JD 会被识别成什么
func (h *AdminHandler) Classify(ctx *ginx.Context, req ClassifyReq) (ginx.Result, error) {
	return ginx.Result{
		Data: newClassification(h.classifier.Classify(req.Resume, req.Job)),
	}, nil
}
