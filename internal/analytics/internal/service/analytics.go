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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/analytics/internal/repository"
	"github.com/ecodeclub/mockinterview/internal/interview"
	"github.com/gotomicro/ego/core/elog"
)

var ErrAnalyticsNotFound = errors.New("分析报告不存在")

//go:generate mockgen -source=./analytics.go -destination=../../mocks/analytics.mock.go -package=analyticsmocks -typed=true Service
type Service interface {
	// Analyze 幂等，已经有报告的直接返回原来的报告
	Analyze(ctx context.Context, interviewId int64) (domain.InterviewAnalytics, error)
	Find(ctx context.Context, uid, interviewId int64) (domain.InterviewAnalytics, error)
	// Unanalyzed 过滤出还没有报告的面试
	Unanalyzed(ctx context.Context, interviewIds []int64) ([]int64, error)
	// Delete 面试被删除之后调用，没有报告也不报错
	Delete(ctx context.Context, interviewId int64) error
}

type service struct {
	itvSvc interview.Service
	repo   repository.AnalyticsRepository
	logger *elog.Component
}

func NewService(itvSvc interview.Service, repo repository.AnalyticsRepository) Service {
	return &service{
		itvSvc: itvSvc,
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Analyze(ctx context.Context, interviewId int64) (domain.InterviewAnalytics, error) {
	snap, err := s.itvSvc.Snapshot(ctx, interviewId)
	if err != nil {
		return domain.InterviewAnalytics{}, err
	}
	if snap.Interview.Status != interview.StatusCompleted {
		return domain.InterviewAnalytics{}, fmt.Errorf("%w: 面试 %d 状态为 %s",
			domain.ErrNotCompleted, interviewId, snap.Interview.Status)
	}
	existing, err := s.repo.FindByInterviewId(ctx, interviewId)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrAnalyticsNotFound) {
		return domain.InterviewAnalytics{}, err
	}

	a, err := aggregate(snap)
	if err != nil {
		return domain.InterviewAnalytics{}, err
	}
	_, err = s.repo.Create(ctx, a)
	if errors.Is(err, repository.ErrDuplicatedAnalytics) {
		// 并发分析，以先写入的为准
		s.logger.Warn("重复生成分析报告", elog.Int64("interviewId", interviewId))
	} else if err != nil {
		return domain.InterviewAnalytics{}, err
	}
	// 重新读一遍，带上子记录的 ID
	return s.repo.FindByInterviewId(ctx, interviewId)
}

func (s *service) Find(ctx context.Context, uid, interviewId int64) (domain.InterviewAnalytics, error) {
	a, err := s.repo.FindByInterviewId(ctx, interviewId)
	if errors.Is(err, repository.ErrAnalyticsNotFound) {
		return domain.InterviewAnalytics{}, ErrAnalyticsNotFound
	}
	if err != nil {
		return domain.InterviewAnalytics{}, err
	}
	if !a.BelongsTo(uid) {
		return domain.InterviewAnalytics{}, domain.ErrForbidden
	}
	return a, nil
}

func (s *service) Unanalyzed(ctx context.Context, interviewIds []int64) ([]int64, error) {
	analyzed, err := s.repo.FindAnalyzedInterviewIds(ctx, interviewIds)
	if err != nil {
		return nil, err
	}
	return slice.DiffSet(interviewIds, analyzed), nil
}

func (s *service) Delete(ctx context.Context, interviewId int64) error {
	return s.repo.DeleteByInterviewId(ctx, interviewId)
}
